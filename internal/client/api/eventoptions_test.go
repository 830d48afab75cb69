package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdenisov/groupplan/internal/client/models"
	"github.com/avdenisov/groupplan/internal/optional"
)

// Exercises a full decision round on an event: fetch the slots, tally
// answers, pick a winner and check the event resolves it.
func TestEventDecisionRound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/events/1/event_options", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []map[string]any{
			{"id": 10, "date": "2024-06-01", "start_time": "18:00:00", "end_time": "21:00:00", "event_id": 1},
			{"id": 11, "date": "2024-06-02", "start_time": "12:00:00", "end_time": nil, "event_id": 1},
		})
	})
	mux.HandleFunc("GET /api/event_options/10/user_event_option_response", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []map[string]any{
			{"id": 30, "response": 1, "event_option_id": 10, "user_and_group_id": 7},
			{"id": 31, "response": 1, "event_option_id": 10, "user_and_group_id": 8},
			{"id": 32, "response": 2, "reason": "on vacation", "event_option_id": 10, "user_and_group_id": 9},
		})
	})
	mux.HandleFunc("PUT /api/event_options/10/set_for_event", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"id": 1, "title": "Barbecue", "color": "abe5aa", "state": 2,
			"group_id": 3, "created": "2024-05-01T10:00:00", "choosen_event_option_id": 10,
		})
	})
	c, _ := newTestClient(t, mux)
	ctx := context.Background()

	e := &models.Event{ID: 1, Title: "Barbecue", Color: "abe5aa", State: models.EventStateVoting, GroupID: 3}

	options, err := c.EventOptions(ctx, e)
	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.True(t, e.Options.IsSet)
	assert.False(t, options[1].EndTime.IsSet, "open-ended slot has no end time")

	responses, err := c.EventOptionResponses(ctx, options[0])
	require.NoError(t, err)
	require.Len(t, responses, 3)
	assert.Equal(t, 2, options[0].AcceptedCount())
	assert.Equal(t, 1, options[0].DeniedCount())
	assert.Equal(t, "on vacation", responses[2].Reason.Unwrap())

	require.NoError(t, c.SetForEvent(ctx, e, options[0]))
	assert.Equal(t, 10, e.ChoosenEventOptionID.Unwrap())

	chosen := e.ChoosenEventOption()
	require.NotNil(t, chosen, "chosen id resolves against the loaded slots")
	assert.Same(t, options[0], chosen)
}

func TestCreateEventOptionResponse_AppendsToCache(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/event_options/10/user_event_option_response", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"id": 40, "response": 2, "reason": "working late", "event_option_id": 10, "user_and_group_id": 7,
		})
	})
	c, _ := newTestClient(t, mux)

	o := &models.EventOption{ID: 10, Responses: optional.Some([]*models.UserEventOptionResponse{})}
	reason := "working late"
	resp, err := c.CreateEventOptionResponse(context.Background(), o, EventOptionResponseCreate{
		Response: models.ResponseDenied,
		Reason:   optional.Some(&reason),
	})
	require.NoError(t, err)

	assert.Equal(t, models.ResponseDenied, resp.Response)
	cached := o.Responses.Unwrap()
	require.Len(t, cached, 1)
	assert.Same(t, resp, cached[0])
}

func TestCreateEventOptionResponse_RejectsBadAnswer(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("invalid input must not reach the server")
	}))

	o := &models.EventOption{ID: 10}
	_, err := c.CreateEventOptionResponse(context.Background(), o, EventOptionResponseCreate{Response: 3})
	assert.Error(t, err)
}

func TestCreateEventOption_AppendsToCache(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/events/1/event_options", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"id": 12, "date": "2024-06-03", "start_time": "10:00:00", "end_time": nil, "event_id": 1,
		})
	})
	c, _ := newTestClient(t, mux)

	existing := &models.EventOption{ID: 10}
	e := &models.Event{ID: 1, Options: optional.Some([]*models.EventOption{existing})}

	o, err := c.CreateEventOption(context.Background(), e, EventOptionCreate{
		Date:      "2024-06-03",
		StartTime: "10:00:00",
	})
	require.NoError(t, err)

	cached := e.Options.Unwrap()
	require.Len(t, cached, 2)
	assert.Same(t, o, cached[1], "slots keep insertion order")
}

func TestUpdateUserEventOptionResponse_FlipsAnswer(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/user_event_option_response/30", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"id": 30, "response": 2, "reason": "plans changed", "event_option_id": 10, "user_and_group_id": 7,
		})
	})
	c, _ := newTestClient(t, mux)

	r := &models.UserEventOptionResponse{ID: 30, Response: models.ResponseAccepted, EventOptionID: 10, UserAndGroupID: 7}
	reason := "plans changed"
	err := c.UpdateUserEventOptionResponse(context.Background(), r, EventOptionResponseUpdate{
		Response: optional.Some(models.ResponseDenied),
		Reason:   optional.Some(&reason),
	})
	require.NoError(t, err)

	assert.Equal(t, models.ResponseDenied, r.Response)
	assert.Equal(t, "plans changed", r.Reason.Unwrap())
}
