// Package cli implements the interactive shell of the group planner client.
//
// The shell is a plain read-eval-print loop over stdin. Commands operate on
// the logged-in account and, once a group is selected with "group <id>", on
// that group's members, invites, events and polls. "chat <event id>" switches
// into a live chat view until the user types /quit.
//
// Any errors returned by command handlers are logged where they occur; the
// loop itself stays resilient and focused on I/O.
package cli
