// Package models defines the client-side representations of GroupPlan server
// resources. Structs mirror the wire format (snake_case JSON, integer enums);
// lazily loaded relations use optional.Optional so "not fetched yet" stays
// distinguishable from "fetched and empty".
package models

// EventState is the ordered lifecycle of an event.
type EventState int

const (
	EventStateVoting EventState = iota + 1
	EventStateOpen
	EventStateActive
	EventStateClosed
	EventStateArchived
)

func (s EventState) String() string {
	switch s {
	case EventStateVoting:
		return "VOTING"
	case EventStateOpen:
		return "OPEN"
	case EventStateActive:
		return "ACTIVE"
	case EventStateClosed:
		return "CLOSED"
	case EventStateArchived:
		return "ARCHIVED"
	default:
		return "UNKNOWN"
	}
}

// OptionResponse is a user's answer to one candidate event slot.
type OptionResponse int

const (
	ResponseAccepted OptionResponse = iota + 1
	ResponseDenied
)

func (r OptionResponse) String() string {
	switch r {
	case ResponseAccepted:
		return "ACCEPTED"
	case ResponseDenied:
		return "DENIED"
	default:
		return "UNKNOWN"
	}
}

// Permission is a per-membership grant. Admin, like platform ownership,
// implies every other permission; the server enforces this, the client only
// mirrors it for display.
type Permission int

const (
	PermissionAdmin Permission = iota + 1
	PermissionManageUsers
	PermissionManageInvites
	PermissionManageEvents
	PermissionManageVotes
)

func (p Permission) String() string {
	switch p {
	case PermissionAdmin:
		return "ADMIN"
	case PermissionManageUsers:
		return "MANAGE_USERS"
	case PermissionManageInvites:
		return "MANAGE_INVITES"
	case PermissionManageEvents:
		return "MANAGE_EVENTS"
	case PermissionManageVotes:
		return "MANAGE_VOTES"
	default:
		return "UNKNOWN"
	}
}

// Implies reports whether holding p grants the rights of other.
func (p Permission) Implies(other Permission) bool {
	return p == PermissionAdmin || p == other
}

// EventColors is the fixed palette of 6-hex-digit event colors offered by
// the UI. The server stores whatever it receives; the client validates
// against this list before submitting.
var EventColors = []string{
	"abe5aa",
	"aac8e5",
	"e5aaab",
	"e5d8aa",
	"c8aae5",
	"aae5e0",
	"e5c8aa",
	"e0aae5",
}
