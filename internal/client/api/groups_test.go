package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdenisov/groupplan/internal/client/models"
	"github.com/avdenisov/groupplan/internal/optional"
)

func TestGroupEvents_SortedNewestFirst_AndCached(t *testing.T) {
	payload := []map[string]any{
		{"id": 1, "title": "oldest", "color": "abe5aa", "state": 2, "group_id": 3, "created": "2024-05-01T10:00:00"},
		{"id": 2, "title": "newest", "color": "abe5aa", "state": 2, "group_id": 3, "created": "2024-05-03T10:00:00"},
		{"id": 3, "title": "middle", "color": "abe5aa", "state": 2, "group_id": 3, "created": "2024-05-02T10:00:00"},
	}
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, payload)
	}))

	g := &models.Group{ID: 3, Name: "Trip"}
	events, err := c.GroupEvents(context.Background(), g)
	require.NoError(t, err)

	require.Len(t, events, 3)
	assert.Equal(t, "newest", events[0].Title)
	assert.Equal(t, "middle", events[1].Title)
	assert.Equal(t, "oldest", events[2].Title)

	cached, ok := g.Events.Get()
	require.True(t, ok, "fetch must cache onto the group")
	assert.Equal(t, events, cached)
}

func TestCreateEvent_PrependsToCachedList(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"id": 9, "title": "Hiking", "color": "abe5aa", "state": 1,
			"group_id": 3, "created": "2024-05-04T10:00:00",
		})
	}))

	existing := &models.Event{ID: 2, Title: "existing"}
	g := &models.Group{ID: 3, Events: optional.Some([]*models.Event{existing})}

	e, err := c.CreateEvent(context.Background(), g, EventCreate{
		Title: "Hiking",
		Color: "abe5aa",
		State: models.EventStateVoting,
	})
	require.NoError(t, err)

	cached := g.Events.Unwrap()
	require.Len(t, cached, 2)
	assert.Same(t, e, cached[0], "new event goes to index 0")
	assert.Same(t, existing, cached[1], "existing order is untouched")
}

func TestCreateEvent_NoCacheNoPanic(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"id": 9, "title": "Hiking", "color": "abe5aa", "state": 1,
			"group_id": 3, "created": "2024-05-04T10:00:00",
		})
	}))

	g := &models.Group{ID: 3}
	_, err := c.CreateEvent(context.Background(), g, EventCreate{
		Title: "Hiking", Color: "abe5aa", State: models.EventStateVoting,
	})
	require.NoError(t, err)
	assert.False(t, g.Events.IsSet, "an unloaded list stays unloaded")
}

func TestGroupVotes_SortedNewestFirst(t *testing.T) {
	payload := []map[string]any{
		{"id": 1, "title": "old poll", "multi_select": false, "group_id": 3, "created": "2024-04-01T08:00:00"},
		{"id": 2, "title": "new poll", "multi_select": true, "group_id": 3, "created": "2024-04-09T08:00:00"},
	}
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, payload)
	}))

	g := &models.Group{ID: 3}
	votes, err := c.GroupVotes(context.Background(), g)
	require.NoError(t, err)

	require.Len(t, votes, 2)
	assert.Equal(t, "new poll", votes[0].Title)
	assert.True(t, g.Votes.IsSet)
}

func TestCreateVoteForGroup_Prepends(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"id": 5, "title": "Lunch place", "multi_select": false, "group_id": 3,
			"created": "2024-04-10T08:00:00",
		})
	}))

	old := &models.Vote{ID: 1, Title: "old"}
	g := &models.Group{ID: 3, Votes: optional.Some([]*models.Vote{old})}

	v, err := c.CreateVoteForGroup(context.Background(), g, VoteCreate{Title: "Lunch place"})
	require.NoError(t, err)

	cached := g.Votes.Unwrap()
	require.Len(t, cached, 2)
	assert.Same(t, v, cached[0])
}

func TestUpdateGroup_ServerStateWins_AndOmitsUnsetFields(t *testing.T) {
	var rawBody []byte
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawBody, _ = io.ReadAll(r.Body)
		// Server normalizes the name its own way.
		writeJSON(t, w, http.StatusOK, map[string]any{
			"id": 3, "name": "Trip 2024", "description": "to the mountains",
		})
	}))

	g := &models.Group{ID: 3, Name: "Trip", Events: optional.Some([]*models.Event{{ID: 1}})}
	err := c.UpdateGroup(context.Background(), g, GroupUpdate{Name: optional.Some("trip 2024")})
	require.NoError(t, err)

	// Only the supplied field went over the wire.
	var sent map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rawBody, &sent))
	assert.Contains(t, sent, "name")
	assert.NotContains(t, sent, "description")

	// The confirmed state, not the optimistic input, lands in memory.
	assert.Equal(t, "Trip 2024", g.Name)
	assert.Equal(t, "to the mountains", g.Description.Unwrap())
	assert.True(t, g.Events.IsSet, "caches survive an update")
}

func TestUpdateGroup_ExplicitNullClearsDescription(t *testing.T) {
	var rawBody []byte
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawBody, _ = io.ReadAll(r.Body)
		writeJSON(t, w, http.StatusOK, map[string]any{"id": 3, "name": "Trip", "description": nil})
	}))

	g := &models.Group{ID: 3, Name: "Trip", Description: optional.Some("old")}
	err := c.UpdateGroup(context.Background(), g, GroupUpdate{Description: optional.Some[*string](nil)})
	require.NoError(t, err)

	assert.JSONEq(t, `{"description":null}`, string(rawBody))
	assert.False(t, g.Description.IsSet)
}

func TestUserPermissions_DecodesEnumList(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []int{1, 4})
	}))

	g := &models.Group{ID: 3}
	perms, err := c.UserPermissions(context.Background(), g, 7)
	require.NoError(t, err)
	assert.Equal(t, []models.Permission{models.PermissionAdmin, models.PermissionManageEvents}, perms)
}
