package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/avdenisov/groupplan/internal/common"
)

// Error is a non-2xx response from the server, carrying the HTTP status and
// whatever human-readable reason the body contained. It unwraps to the
// matching sentinel in common so callers can branch with errors.Is while the
// login/registration surfaces still reach the exact server message.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.Status)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return common.ErrUnauthorized
	case http.StatusNotFound:
		return common.ErrNotFound
	}
	return nil
}

// errorBody matches the failure payload variants the server emits:
// {"error": ...} on resource routes, {"message": ...} on auth/register,
// {"reasons": [...]} from the authentication middleware.
type errorBody struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Reasons []string `json:"reasons"`
}

func isUnauthorized(err error) bool {
	return errors.Is(err, common.ErrUnauthorized)
}

// asAPIError extracts the *Error from a wrapped chain.
func asAPIError(err error, target **Error) bool {
	return errors.As(err, target)
}

func (b errorBody) text() string {
	if len(b.Reasons) > 0 {
		return b.Reasons[0]
	}
	if b.Message != "" {
		return b.Message
	}
	return b.Error
}
