package models

import (
	"github.com/avdenisov/groupplan/internal/optional"
	"github.com/avdenisov/groupplan/internal/timex"
)

// Vote is a group poll. When MultiSelect is false, selecting one option must
// clear the caller's selection on every sibling option.
type Vote struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	MultiSelect bool            `json:"multi_select"`
	GroupID     int             `json:"group_id"`
	Created     timex.Timestamp `json:"created"`

	// Options is set by VoteOptions on the API client.
	Options optional.Optional[[]*VoteOption] `json:"-"`
}

// VoteOption is one candidate answer of a poll.
type VoteOption struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	VoteID int    `json:"vote_id"`

	// Responses is set by VoteOptionResponses on the API client.
	Responses optional.Optional[[]*UserVoteOptionResponse] `json:"-"`
}

// UserVoteOptionResponse marks a membership as having selected an option.
// Existence is the whole signal; there is no value beyond the relation.
type UserVoteOptionResponse struct {
	ID             int `json:"id"`
	VoteOptionID   int `json:"vote_option_id"`
	UserAndGroupID int `json:"user_and_group_id"`

	UserAndGroup optional.Optional[*UserAndGroup] `json:"user_and_group"`
}

// SelectedBy reports whether the loaded responses contain a selection by the
// given membership.
func (o *VoteOption) SelectedBy(userAndGroupID int) bool {
	responses, ok := o.Responses.Get()
	if !ok {
		return false
	}
	for _, r := range responses {
		if r.UserAndGroupID == userAndGroupID {
			return true
		}
	}
	return false
}
