package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avdenisov/groupplan/internal/client/models"
	"github.com/avdenisov/groupplan/internal/optional"
)

// UserEventOptionResponse fetches one accept/deny answer by id.
func (c *Client) UserEventOptionResponse(ctx context.Context, id int) (*models.UserEventOptionResponse, error) {
	var response models.UserEventOptionResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/user_event_option_response/%d", id), nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// EventOptionResponseUpdate changes an existing answer and/or its reason.
type EventOptionResponseUpdate struct {
	Response optional.Optional[models.OptionResponse] `json:"response,omitzero"`
	Reason   optional.Optional[*string]               `json:"reason,omitzero"`
}

// UpdateUserEventOptionResponse submits the change and overwrites r with
// the server-confirmed state.
func (c *Client) UpdateUserEventOptionResponse(ctx context.Context, r *models.UserEventOptionResponse, upd EventOptionResponseUpdate) error {
	if err := c.validateParams(upd); err != nil {
		return err
	}
	var confirmed models.UserEventOptionResponse
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/user_event_option_response/%d", r.ID), upd, &confirmed); err != nil {
		return err
	}
	r.Response = confirmed.Response
	r.Reason = confirmed.Reason
	return nil
}

// UserVoteOptionResponse fetches one selection by id.
func (c *Client) UserVoteOptionResponse(ctx context.Context, id int) (*models.UserVoteOptionResponse, error) {
	var response models.UserVoteOptionResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/user_vote_option_response/%d", id), nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// DeleteUserVoteOptionResponse withdraws a selection by id.
func (c *Client) DeleteUserVoteOptionResponse(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/user_vote_option_response/%d", id), nil, nil)
}
