package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avdenisov/groupplan/internal/client/models"
	"github.com/avdenisov/groupplan/internal/optional"
)

// EventOption fetches one candidate slot by id.
func (c *Client) EventOption(ctx context.Context, id int) (*models.EventOption, error) {
	var option models.EventOption
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/event_options/%d", id), nil, &option); err != nil {
		return nil, err
	}
	return &option, nil
}

// EventOptionUpdate is a partial slot edit.
type EventOptionUpdate struct {
	Date      optional.Optional[string]  `json:"date,omitzero" validate:"omitempty,datetime=2006-01-02"`
	StartTime optional.Optional[string]  `json:"start_time,omitzero" validate:"omitempty,datetime=15:04:05"`
	EndTime   optional.Optional[*string] `json:"end_time,omitzero"`
}

// UpdateEventOption submits a partial edit and overwrites o's fields with
// the server-confirmed state. The cached responses survive.
func (c *Client) UpdateEventOption(ctx context.Context, o *models.EventOption, upd EventOptionUpdate) error {
	if err := c.validateParams(upd); err != nil {
		return err
	}
	var confirmed models.EventOption
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/event_options/%d", o.ID), upd, &confirmed); err != nil {
		return err
	}
	o.Date = confirmed.Date
	o.StartTime = confirmed.StartTime
	o.EndTime = confirmed.EndTime
	return nil
}

// DeleteEventOption removes the slot. The caller drops it from the parent
// event's cache.
func (c *Client) DeleteEventOption(ctx context.Context, o *models.EventOption) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/event_options/%d", o.ID), nil, nil)
}

// SetForEvent finalizes o as the winning slot of e. The server answers with
// the updated event, whose confirmed state (including the chosen option id)
// is applied to e.
func (c *Client) SetForEvent(ctx context.Context, e *models.Event, o *models.EventOption) error {
	var confirmed models.Event
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/event_options/%d/set_for_event", o.ID), nil, &confirmed); err != nil {
		return err
	}
	applyEvent(e, &confirmed)
	return nil
}

// EventOptionResponses fetches the accept/deny answers for the slot and
// caches them on o.
func (c *Client) EventOptionResponses(ctx context.Context, o *models.EventOption) ([]*models.UserEventOptionResponse, error) {
	var responses []*models.UserEventOptionResponse
	path := fmt.Sprintf("/api/event_options/%d/user_event_option_response", o.ID)
	if err := c.do(ctx, http.MethodGet, path, nil, &responses); err != nil {
		return nil, err
	}
	o.Responses = optional.Some(responses)
	return responses, nil
}

// EventOptionResponseCreate carries a first accept/deny answer.
type EventOptionResponseCreate struct {
	Response models.OptionResponse      `json:"response" validate:"required,min=1,max=2"`
	Reason   optional.Optional[*string] `json:"reason,omitzero"`
}

// CreateEventOptionResponse records the caller's first answer for the slot.
// Changing an existing answer goes through UpdateUserEventOptionResponse
// instead; a stale duplicate create is the server's call to reject or
// answer with the existing object, and either outcome is passed through.
func (c *Client) CreateEventOptionResponse(ctx context.Context, o *models.EventOption, p EventOptionResponseCreate) (*models.UserEventOptionResponse, error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}
	var response models.UserEventOptionResponse
	path := fmt.Sprintf("/api/event_options/%d/user_event_option_response", o.ID)
	if err := c.do(ctx, http.MethodPost, path, p, &response); err != nil {
		return nil, err
	}
	if cached, ok := o.Responses.Get(); ok {
		o.Responses = optional.Some(append(cached, &response))
	}
	return &response, nil
}
