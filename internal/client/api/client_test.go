package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdenisov/groupplan/internal/common"
	"github.com/avdenisov/groupplan/internal/optional"
)

// newTestClient wires a Client against an httptest server and counts
// unauthenticated-handler invocations.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *int) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	unauthenticated := 0
	c, err := New(srv.URL, WithUnauthenticatedHandler(func() { unauthenticated++ }))
	require.NoError(t, err)
	return c, &unauthenticated
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	_, err := New("not a url")
	assert.Error(t, err)

	_, err = New("ftp://example.com")
	assert.Error(t, err)
}

func TestClient_Unauthorized_FiresHandlerOnce(t *testing.T) {
	c, unauthenticated := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]any{"reasons": []string{"Auth required."}})
	}))

	_, err := c.Me(context.Background())
	assert.ErrorIs(t, err, common.ErrUnauthorized)
	assert.Equal(t, 1, *unauthenticated)

	// A second failing call fires the handler again: once per response.
	_, err = c.Me(context.Background())
	assert.ErrorIs(t, err, common.ErrUnauthorized)
	assert.Equal(t, 2, *unauthenticated)
}

func TestClient_NotFound_MapsToSentinelAndKeepsMessage(t *testing.T) {
	c, unauthenticated := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]string{"error": "Event not found"})
	}))

	_, err := c.Event(context.Background(), 99)
	assert.ErrorIs(t, err, common.ErrNotFound)

	var apiErr *Error
	require.True(t, asAPIError(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Event not found", apiErr.Message)
	assert.Zero(t, *unauthenticated)
}

func TestClient_NetworkError_MapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := New(url)
	require.NoError(t, err)

	_, err = c.Me(context.Background())
	assert.ErrorIs(t, err, common.ErrUnavailable)
}

func TestClient_MalformedJSON_IsAnError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("{truncated"))
	}))

	_, err := c.Me(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrUnavailable)
}

func TestClient_SendsJSONContentTypeAndRequestID(t *testing.T) {
	var gotContentType, gotRequestID string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-Id")
		writeJSON(t, w, http.StatusOK, map[string]any{})
	}))

	require.NoError(t, c.Authenticate(context.Background(), "alice", "secret"))
	assert.Equal(t, "application/json", gotContentType)
	assert.NotEmpty(t, gotRequestID)
}

func TestClient_CookieJar_CarriesSessionAcrossCalls(t *testing.T) {
	var sawCookie bool
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc", Path: "/"})
		writeJSON(t, w, http.StatusOK, map[string]any{})
	})
	mux.HandleFunc("GET /api/users/me", func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie("session"); err == nil && cookie.Value == "abc" {
			sawCookie = true
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"id": 1, "name": "alice", "owner": false})
	})
	c, _ := newTestClient(t, mux)

	require.NoError(t, c.Authenticate(context.Background(), "alice", "secret"))
	me, err := c.Me(context.Background())
	require.NoError(t, err)

	assert.True(t, sawCookie, "session cookie should ride along automatically")
	assert.Equal(t, "alice", me.Name)
}

func TestVerify_ExpiredSessionIsFalseNotError(t *testing.T) {
	c, unauthenticated := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]any{"reasons": []string{"expired"}})
	}))

	ok, err := c.Verify(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, *unauthenticated)
}

// Constraint tags sit on optional update fields, so the validator has to
// see through the wrapper: the inner value when supplied, nothing when not.
func TestValidateParams_SeesThroughOptionalFields(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("invalid parameters must not reach the server")
	}))

	tests := []struct {
		name   string
		params any
	}{
		{"group name too long", GroupUpdate{Name: optional.Some(strings.Repeat("x", 33))}},
		{"event color not hex", EventUpdate{Color: optional.Some("zzzzzz")}},
		{"event color wrong length", EventUpdate{Color: optional.Some("abe5")}},
		{"option date malformed", EventOptionUpdate{Date: optional.Some("01.05.2024")}},
		{"option start time malformed", EventOptionUpdate{StartTime: optional.Some("10am")}},
		{"vote title too long", VoteUpdate{Title: optional.Some(strings.Repeat("x", 101))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, c.validateParams(tt.params))
		})
	}

	// Supplied values inside bounds and unset fields both pass.
	assert.NoError(t, c.validateParams(GroupUpdate{Name: optional.Some("Trip")}))
	assert.NoError(t, c.validateParams(EventUpdate{Color: optional.Some("abe5aa")}))
	assert.NoError(t, c.validateParams(EventUpdate{}))
	assert.NoError(t, c.validateParams(GroupUpdate{Description: optional.Some[*string](nil)}))
}
