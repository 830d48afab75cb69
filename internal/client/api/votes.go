package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avdenisov/groupplan/internal/client/models"
	"github.com/avdenisov/groupplan/internal/optional"
)

// Votes lists every vote visible to the caller.
func (c *Client) Votes(ctx context.Context) ([]*models.Vote, error) {
	var votes []*models.Vote
	if err := c.do(ctx, http.MethodGet, "/api/votes", nil, &votes); err != nil {
		return nil, err
	}
	return votes, nil
}

// Vote fetches one vote by id.
func (c *Client) Vote(ctx context.Context, id int) (*models.Vote, error) {
	var v models.Vote
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/votes/%d", id), nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// voteCreateBody is VoteCreate plus the owning group for the top-level
// endpoint.
type voteCreateBody struct {
	VoteCreate
	GroupID int `json:"group_id" validate:"required"`
}

// CreateVote creates a vote through the top-level endpoint. The group-scoped
// CreateVoteForGroup is the variant that also maintains the cached list.
func (c *Client) CreateVote(ctx context.Context, groupID int, p VoteCreate) (*models.Vote, error) {
	body := voteCreateBody{VoteCreate: p, GroupID: groupID}
	if err := c.validateParams(body); err != nil {
		return nil, err
	}
	var v models.Vote
	if err := c.do(ctx, http.MethodPost, "/api/votes", body, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// VoteUpdate is a partial vote edit.
type VoteUpdate struct {
	Title       optional.Optional[string] `json:"title,omitzero" validate:"omitempty,max=100"`
	MultiSelect optional.Optional[bool]   `json:"multi_select,omitzero"`
}

// UpdateVote submits a partial edit and overwrites v's scalar fields with
// the server-confirmed state. Cached options survive.
func (c *Client) UpdateVote(ctx context.Context, v *models.Vote, upd VoteUpdate) error {
	if err := c.validateParams(upd); err != nil {
		return err
	}
	var confirmed models.Vote
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/votes/%d", v.ID), upd, &confirmed); err != nil {
		return err
	}
	v.Title = confirmed.Title
	v.MultiSelect = confirmed.MultiSelect
	return nil
}

// DeleteVote removes the vote. The caller drops it from any cached group
// list.
func (c *Client) DeleteVote(ctx context.Context, v *models.Vote) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/votes/%d", v.ID), nil, nil)
}

// VoteOptions fetches the vote's answer options and caches them on v.
func (c *Client) VoteOptions(ctx context.Context, v *models.Vote) ([]*models.VoteOption, error) {
	var options []*models.VoteOption
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/votes/%d/vote_options", v.ID), nil, &options); err != nil {
		return nil, err
	}
	v.Options = optional.Some(options)
	return options, nil
}

type voteOptionCreate struct {
	Title string `json:"title" validate:"required,max=100"`
}

// CreateVoteOption adds an answer option and appends it to the cache when
// loaded.
func (c *Client) CreateVoteOption(ctx context.Context, v *models.Vote, title string) (*models.VoteOption, error) {
	body := voteOptionCreate{Title: title}
	if err := c.validateParams(body); err != nil {
		return nil, err
	}
	var option models.VoteOption
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/votes/%d/vote_options", v.ID), body, &option); err != nil {
		return nil, err
	}
	if cached, ok := v.Options.Get(); ok {
		v.Options = optional.Some(append(cached, &option))
	}
	return &option, nil
}
