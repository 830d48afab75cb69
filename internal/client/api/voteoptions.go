package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/avdenisov/groupplan/internal/client/models"
	"github.com/avdenisov/groupplan/internal/optional"
)

// VoteOption fetches one answer option by id.
func (c *Client) VoteOption(ctx context.Context, id int) (*models.VoteOption, error) {
	var option models.VoteOption
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/vote_options/%d", id), nil, &option); err != nil {
		return nil, err
	}
	return &option, nil
}

// UpdateVoteOption renames the option and overwrites o with the confirmed
// title.
func (c *Client) UpdateVoteOption(ctx context.Context, o *models.VoteOption, title string) error {
	body := voteOptionCreate{Title: title}
	if err := c.validateParams(body); err != nil {
		return err
	}
	var confirmed models.VoteOption
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/vote_options/%d", o.ID), body, &confirmed); err != nil {
		return err
	}
	o.Title = confirmed.Title
	return nil
}

// DeleteVoteOption removes the option. The caller drops it from the parent
// vote's cache.
func (c *Client) DeleteVoteOption(ctx context.Context, o *models.VoteOption) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/vote_options/%d", o.ID), nil, nil)
}

// VoteOptionResponses fetches the selections on the option and caches them
// on o.
func (c *Client) VoteOptionResponses(ctx context.Context, o *models.VoteOption) ([]*models.UserVoteOptionResponse, error) {
	var responses []*models.UserVoteOptionResponse
	path := fmt.Sprintf("/api/vote_options/%d/user_vote_option_response", o.ID)
	if err := c.do(ctx, http.MethodGet, path, nil, &responses); err != nil {
		return nil, err
	}
	o.Responses = optional.Some(responses)
	return responses, nil
}

// CreateVoteOptionResponse records a plain (non-toggle) selection.
func (c *Client) CreateVoteOptionResponse(ctx context.Context, o *models.VoteOption) (*models.UserVoteOptionResponse, error) {
	var response models.UserVoteOptionResponse
	path := fmt.Sprintf("/api/vote_options/%d/user_vote_option_response", o.ID)
	if err := c.do(ctx, http.MethodPost, path, nil, &response); err != nil {
		return nil, err
	}
	if cached, ok := o.Responses.Get(); ok {
		o.Responses = optional.Some(append(cached, &response))
	}
	return &response, nil
}

// ToggleResult is the decoded outcome of the toggle endpoint: either the
// caller is now selected (with the created response) or now deselected.
type ToggleResult struct {
	Selected bool
	Response *models.UserVoteOptionResponse
}

// ToggleVoteOptionResponse flips the caller's selection on the option.
//
// The endpoint answers with either a full response object (now selected) or
// a bare {"message": ...} acknowledgment (now deselected); the two are told
// apart here, once, instead of leaking the structural check to callers.
// A selection is appended to the cached responses when loaded; after a
// deselection the sentinel names no membership, so callers refresh via
// VoteOptionResponses when they need the exact cache state.
func (c *Client) ToggleVoteOptionResponse(ctx context.Context, o *models.VoteOption) (*ToggleResult, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/api/vote_options/%d/user_vote_option_response/toggel", o.ID)
	if err := c.do(ctx, http.MethodPost, path, nil, &raw); err != nil {
		return nil, err
	}

	result, err := decodeToggle(raw)
	if err != nil {
		return nil, err
	}

	if result.Selected {
		if cached, ok := o.Responses.Get(); ok {
			o.Responses = optional.Some(append(cached, result.Response))
		}
	}
	return result, nil
}

// decodeToggle turns the toggle endpoint's two wire shapes into the tagged
// ToggleResult. Anything without an id is the deselection sentinel.
func decodeToggle(raw json.RawMessage) (*ToggleResult, error) {
	var probe struct {
		ID *int `json:"id"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("decode toggle response: %w", err)
	}
	if probe.ID == nil {
		return &ToggleResult{Selected: false}, nil
	}

	var response models.UserVoteOptionResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		return nil, fmt.Errorf("decode toggle response: %w", err)
	}
	return &ToggleResult{Selected: true, Response: &response}, nil
}

// SelectionResult reports the outcome of a single-select unit of work:
// the toggle itself plus which sibling clears succeeded or failed. The
// clears are independent network calls, so a partial failure leaves the
// vote visibly inconsistent until retried; the result says exactly where.
type SelectionResult struct {
	Toggle *ToggleResult

	// ClearedSiblings holds the option ids whose stale selection was removed.
	ClearedSiblings []int
	// FailedSiblings maps option ids to the error that kept their stale
	// selection alive.
	FailedSiblings map[int]error
}

// Consistent reports whether every required sibling clear went through.
func (r *SelectionResult) Consistent() bool {
	return len(r.FailedSiblings) == 0
}

// SelectVoteOption toggles target and, for single-select votes that ended
// up selected, clears the caller's selection on every sibling option of v.
// Sibling responses are fetched as needed; each clear is tracked
// individually so the caller can retry exactly what failed.
func (c *Client) SelectVoteOption(ctx context.Context, v *models.Vote, target *models.VoteOption) (*SelectionResult, error) {
	toggle, err := c.ToggleVoteOptionResponse(ctx, target)
	if err != nil {
		return nil, err
	}

	result := &SelectionResult{Toggle: toggle, FailedSiblings: map[int]error{}}
	if v.MultiSelect || !toggle.Selected {
		return result, nil
	}

	membershipID := toggle.Response.UserAndGroupID

	options, ok := v.Options.Get()
	if !ok {
		options, err = c.VoteOptions(ctx, v)
		if err != nil {
			result.FailedSiblings[-1] = fmt.Errorf("list sibling options: %w", err)
			return result, nil
		}
	}

	for _, sibling := range options {
		if sibling.ID == target.ID {
			continue
		}
		if err := c.clearSelection(ctx, sibling, membershipID); err != nil {
			result.FailedSiblings[sibling.ID] = err
			continue
		}
		result.ClearedSiblings = append(result.ClearedSiblings, sibling.ID)
	}
	return result, nil
}

// clearSelection removes the membership's selection on the option, if any,
// and prunes the local cache to match.
func (c *Client) clearSelection(ctx context.Context, o *models.VoteOption, membershipID int) error {
	responses, ok := o.Responses.Get()
	if !ok {
		var err error
		responses, err = c.VoteOptionResponses(ctx, o)
		if err != nil {
			return err
		}
	}

	for _, r := range responses {
		if r.UserAndGroupID != membershipID {
			continue
		}
		if err := c.DeleteUserVoteOptionResponse(ctx, r.ID); err != nil {
			return err
		}
		remaining := make([]*models.UserVoteOptionResponse, 0, len(responses)-1)
		for _, keep := range responses {
			if keep.ID != r.ID {
				remaining = append(remaining, keep)
			}
		}
		o.Responses = optional.Some(remaining)
		return nil
	}
	return nil
}
