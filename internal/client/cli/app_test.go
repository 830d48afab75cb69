package cli

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdenisov/groupplan/internal/client/config"
	"github.com/avdenisov/groupplan/internal/client/models"
	"github.com/avdenisov/groupplan/internal/logging"
)

func discardLogger() logging.Logger {
	return logging.Discard()
}

func TestNewApp_RejectsBadServerURL(t *testing.T) {
	cfg := &config.Config{ServerBaseURL: "not a url"}
	_, err := NewApp(cfg, discardLogger())
	assert.Error(t, err)
}

func TestGetStatus(t *testing.T) {
	a := &App{}
	assert.Equal(t, "", a.getStatus())

	a.me = &models.Me{User: models.User{ID: 7, Name: "alice"}}
	assert.Equal(t, "(alice)", a.getStatus())

	a.group = &models.Group{ID: 3, Name: "Trip"}
	assert.Equal(t, "(alice @ Trip)", a.getStatus())
}

func TestOnSessionExpired_ClearsState(t *testing.T) {
	a := &App{
		me:    &models.Me{User: models.User{ID: 7, Name: "alice"}},
		group: &models.Group{ID: 3, Name: "Trip"},
	}
	a.onSessionExpired()

	assert.Nil(t, a.me)
	assert.Nil(t, a.group)
	assert.False(t, a.isLoggedIn())

	a.onSessionExpired() // already logged out, stays quiet
	assert.Nil(t, a.me)
}

func TestTrackSave_SucceedsFirstTry(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader(""))

	calls := 0
	err := trackSave(context.Background(), reader, "draft", func(ctx context.Context, d string) error {
		calls++
		assert.Equal(t, "draft", d)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestTrackSave_RetriesKeptDraft(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("y\n"))

	calls := 0
	err := trackSave(context.Background(), reader, "draft", func(ctx context.Context, d string) error {
		calls++
		assert.Equal(t, "draft", d, "the retry re-submits the kept draft")
		if calls == 1 {
			return errors.New("boom")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestTrackSave_GivingUpReturnsError(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("n\n"))

	boom := errors.New("boom")
	err := trackSave(context.Background(), reader, "draft", func(ctx context.Context, d string) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}
