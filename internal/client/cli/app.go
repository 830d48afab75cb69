package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/avdenisov/groupplan/internal/client/api"
	"github.com/avdenisov/groupplan/internal/client/config"
	"github.com/avdenisov/groupplan/internal/client/models"
	"github.com/avdenisov/groupplan/internal/logging"
)

// App wires the REPL to the backend client. It holds the logged-in account
// and the currently selected group; both are nil until the corresponding
// commands ran.
type App struct {
	config *config.Config
	api    *api.Client
	log    logging.Logger

	me    *models.Me
	group *models.Group

	reader *bufio.Reader
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	app := &App{config: c, log: logger, reader: bufio.NewReader(os.Stdin)}

	apiClient, err := api.New(c.ServerBaseURL,
		api.WithLogger(logger),
		api.WithUnauthenticatedHandler(app.onSessionExpired),
	)
	if err != nil {
		return nil, err
	}
	app.api = apiClient

	return app, nil
}

// onSessionExpired drops the logged-in state. The server already rejected
// the cookie, so there is nothing to tear down besides local bookkeeping.
func (a *App) onSessionExpired() {
	if a.me != nil {
		a.me = nil
		a.group = nil
		fmt.Println("Session expired, please log in again.")
	}
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.me != nil
}

// StartSessionWatcher periodically asks the server whether the session
// cookie is still accepted. An expired session surfaces through the
// unauthenticated handler; transport errors are ignored until the next tick.
func (a *App) StartSessionWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !a.isLoggedIn() {
				continue
			}
			checkCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			// An expired session fires the unauthenticated handler inside
			// Verify; only transport errors are worth a log line here.
			_, err := a.api.Verify(checkCtx)
			cancel()
			if err != nil {
				log.Printf("session check failed: %s", err.Error())
			}

		case <-ctx.Done():
			return
		}
	}
}
