// Package common defines shared sentinel errors used across the GroupPlan
// client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrNotFound means the server reported that the addressed resource
	// does not exist (HTTP 404).
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized means the session is missing or expired (HTTP 401).
	// The transport fires its unauthenticated handler before returning it.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable means the server could not be reached at all.
	ErrUnavailable = errors.New("server unavailable")
)
