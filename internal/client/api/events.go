package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/avdenisov/groupplan/internal/client/models"
	"github.com/avdenisov/groupplan/internal/optional"
	"github.com/avdenisov/groupplan/internal/timex"
)

// Event fetches one event by id.
func (c *Client) Event(ctx context.Context, id int) (*models.Event, error) {
	var e models.Event
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/events/%d", id), nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// EventUpdate is a partial event edit.
type EventUpdate struct {
	Title       optional.Optional[string]            `json:"title,omitzero" validate:"omitempty,max=100"`
	Color       optional.Optional[string]            `json:"color,omitzero" validate:"omitempty,len=6,hexadecimal"`
	State       optional.Optional[models.EventState] `json:"state,omitzero"`
	Description optional.Optional[*string]           `json:"description,omitzero"`
	VoteEndDate optional.Optional[*string]           `json:"vote_end_date,omitzero"`
}

// UpdateEvent submits a partial edit and overwrites e's scalar fields with
// the server-confirmed state. The cached options list survives.
func (c *Client) UpdateEvent(ctx context.Context, e *models.Event, upd EventUpdate) error {
	if err := c.validateParams(upd); err != nil {
		return err
	}
	var confirmed models.Event
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/events/%d", e.ID), upd, &confirmed); err != nil {
		return err
	}
	applyEvent(e, &confirmed)
	return nil
}

// applyEvent copies server-confirmed scalar state onto e, leaving the local
// options cache alone.
func applyEvent(e *models.Event, confirmed *models.Event) {
	e.Title = confirmed.Title
	e.Color = confirmed.Color
	e.State = confirmed.State
	e.Description = confirmed.Description
	e.VoteEndDate = confirmed.VoteEndDate
	e.ChoosenEventOptionID = confirmed.ChoosenEventOptionID
}

// DeleteEvent removes the event. The caller drops it from any cached group
// list.
func (c *Client) DeleteEvent(ctx context.Context, e *models.Event) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/events/%d", e.ID), nil, nil)
}

// EventOptions fetches the candidate slots of an event and caches them on e.
func (c *Client) EventOptions(ctx context.Context, e *models.Event) ([]*models.EventOption, error) {
	var options []*models.EventOption
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/events/%d/event_options", e.ID), nil, &options); err != nil {
		return nil, err
	}
	e.Options = optional.Some(options)
	return options, nil
}

// EventOptionCreate carries the fields of a new candidate slot. Whether
// EndTime lies after StartTime is checked by the submitting surface, not
// here; the server stores what it is given.
type EventOptionCreate struct {
	Date      string                     `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string                     `json:"start_time" validate:"required,datetime=15:04:05"`
	EndTime   optional.Optional[*string] `json:"end_time"`
}

// CreateEventOption adds a candidate slot to the event and appends it to
// the cached options when they are loaded.
func (c *Client) CreateEventOption(ctx context.Context, e *models.Event, p EventOptionCreate) (*models.EventOption, error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}
	var option models.EventOption
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/events/%d/event_options", e.ID), p, &option); err != nil {
		return nil, err
	}
	if cached, ok := e.Options.Get(); ok {
		e.Options = optional.Some(append(cached, &option))
	}
	return &option, nil
}

// EventMessages fetches one backward page of chat history, newest first.
// A zero before means "starting from the most recent message".
func (c *Client) EventMessages(ctx context.Context, eventID, limit int, before time.Time) ([]*models.Message, error) {
	values := url.Values{}
	values.Set("limit", strconv.Itoa(limit))
	if !before.IsZero() {
		values.Set("before", timex.Cursor(before))
	}
	path := fmt.Sprintf("/api/events/%d/messages?%s", eventID, values.Encode())

	var messages []*models.Message
	if err := c.do(ctx, http.MethodGet, path, nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
