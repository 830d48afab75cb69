package models

import (
	"github.com/avdenisov/groupplan/internal/optional"
	"github.com/avdenisov/groupplan/internal/timex"
)

// Event is a planned group activity with candidate date/time options.
type Event struct {
	ID                   int                       `json:"id"`
	Title                string                    `json:"title"`
	Color                string                    `json:"color"`
	State                EventState                `json:"state"`
	GroupID              int                       `json:"group_id"`
	Description          optional.Optional[string] `json:"description"`
	VoteEndDate          optional.Optional[string] `json:"vote_end_date"`
	Created              timex.Timestamp           `json:"created"`
	ChoosenEventOptionID optional.Optional[int]    `json:"choosen_event_option_id"`

	// Options is set by EventOptions on the API client.
	Options optional.Optional[[]*EventOption] `json:"-"`
}

// ChoosenEventOption resolves the finalized option against the loaded
// options. Returns nil when no option is chosen or the options have not been
// fetched yet; an unresolved id is not an error.
func (e *Event) ChoosenEventOption() *EventOption {
	id, ok := e.ChoosenEventOptionID.Get()
	if !ok {
		return nil
	}
	options, ok := e.Options.Get()
	if !ok {
		return nil
	}
	for _, o := range options {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// EventOption is one candidate date/time slot for an event.
type EventOption struct {
	ID        int                       `json:"id"`
	Date      string                    `json:"date"`
	StartTime string                    `json:"start_time"`
	EndTime   optional.Optional[string] `json:"end_time"`
	EventID   int                       `json:"event_id"`

	// Responses is set by EventOptionResponses on the API client.
	Responses optional.Optional[[]*UserEventOptionResponse] `json:"-"`
}

// AcceptedCount counts loaded ACCEPTED responses.
func (o *EventOption) AcceptedCount() int {
	return o.countResponses(ResponseAccepted)
}

// DeniedCount counts loaded DENIED responses.
func (o *EventOption) DeniedCount() int {
	return o.countResponses(ResponseDenied)
}

func (o *EventOption) countResponses(r OptionResponse) int {
	responses, ok := o.Responses.Get()
	if !ok {
		return 0
	}
	n := 0
	for _, resp := range responses {
		if resp.Response == r {
			n++
		}
	}
	return n
}

// UserEventOptionResponse is one user's accept/deny answer for one option.
// A user holds at most one per option and changes it via update.
type UserEventOptionResponse struct {
	ID             int                       `json:"id"`
	Response       OptionResponse            `json:"response"`
	Reason         optional.Optional[string] `json:"reason"`
	EventOptionID  int                       `json:"event_option_id"`
	UserAndGroupID int                       `json:"user_and_group_id"`

	UserAndGroup optional.Optional[*UserAndGroup] `json:"user_and_group"`
}
