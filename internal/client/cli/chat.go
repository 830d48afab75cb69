package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/avdenisov/groupplan/internal/client/api"
	"github.com/avdenisov/groupplan/internal/client/models"
)

func printChatMessage(m *models.Message) {
	fmt.Printf("[%s] member #%d: %s\n",
		m.SentAt.Time.Local().Format("15:04"), m.UserAndGroupID, m.Content)
}

// runChat opens the event's chat and hands the terminal over to it until
// the user types /quit. History prints oldest first so the newest line ends
// up right above the input; live messages are printed as they arrive.
func (a *App) runChat(ctx context.Context, args []string) error {
	id, ok := argID(args, 0, "chat <event id>")
	if !ok {
		return nil
	}
	e, err := a.api.Event(ctx, id)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	session, err := a.api.OpenChat(ctx, e)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer session.Close()

	history := session.Snapshot()
	for i := len(history) - 1; i >= 0; i-- {
		printChatMessage(history[i])
	}

	go func() {
		for m := range session.Incoming() {
			printChatMessage(m)
		}
	}()

	fmt.Printf("Chatting in %s. Type a message, /older for history, /quit to leave.\n", e.Title)

	for {
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return nil
		}
		line = strings.TrimSpace(line)

		switch line {
		case "":
			continue
		case "/quit":
			return nil
		case "/older":
			added, err := session.LoadOlder(ctx)
			if err != nil {
				log.Printf("error: %v", err)
				continue
			}
			if added == 0 && session.AtEnd() {
				fmt.Println("Beginning of the conversation.")
				continue
			}
			snapshot := session.Snapshot()
			for i := len(snapshot) - 1; i >= len(snapshot)-added; i-- {
				printChatMessage(snapshot[i])
			}
		default:
			if err := session.Send(line); err != nil {
				switch {
				case errors.Is(err, api.ErrMessageTooLong):
					fmt.Printf("Messages are capped at %d characters.\n", models.MaxMessageLength)
				case errors.Is(err, api.ErrChatClosed):
					fmt.Println("The chat connection was lost.")
					return err
				default:
					log.Printf("error: %v", err)
				}
			}
		}
	}
}

func (a *App) deleteMessage(ctx context.Context, args []string) error {
	id, ok := argID(args, 0, "rmmsg <message id>")
	if !ok {
		return nil
	}

	if err := a.api.DeleteMessage(ctx, id); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Println("Message deleted.")
	return nil
}
