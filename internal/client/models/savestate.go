package models

// SavePhase enumerates where an editable entity stands between the local
// draft and the server-confirmed value.
type SavePhase int

const (
	SaveIdle SavePhase = iota
	SaveSaving
	SaveSaved
	SaveFailed
)

func (p SavePhase) String() string {
	switch p {
	case SaveIdle:
		return "idle"
	case SaveSaving:
		return "saving"
	case SaveSaved:
		return "saved"
	case SaveFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SaveState is a tagged union tracking an optimistic edit: a pending draft
// while the write is in flight, the confirmed value once the server answered,
// or the failure. It lets a consumer render "saving" and "saved" as distinct
// states instead of mutating fields in place and hoping.
//
// Transitions: Begin moves Idle to Saving; Confirm ends in Saved, Fail in
// Failed; Reset returns to Idle.
// Begin is also legal from Saved/Failed (a new edit of the same entity).
type SaveState[T any] struct {
	phase SavePhase
	draft T
	value T
	err   error
}

func (s *SaveState[T]) Phase() SavePhase {
	return s.phase
}

// Begin records a pending draft and moves to Saving.
func (s *SaveState[T]) Begin(draft T) {
	s.phase = SaveSaving
	s.draft = draft
	s.err = nil
}

// Confirm records the server-authoritative value and moves to Saved.
// The draft is discarded: the server response wins regardless of what was sent.
func (s *SaveState[T]) Confirm(value T) {
	var zero T
	s.phase = SaveSaved
	s.value = value
	s.draft = zero
	s.err = nil
}

// Fail records the failure and keeps the draft so the caller can retry or
// surface what was being saved.
func (s *SaveState[T]) Fail(err error) {
	s.phase = SaveFailed
	s.err = err
}

// Reset returns to Idle, dropping draft, value and error.
func (s *SaveState[T]) Reset() {
	var zero T
	*s = SaveState[T]{draft: zero, value: zero}
}

// Draft returns the pending draft; ok is true only while Saving or Failed.
func (s *SaveState[T]) Draft() (T, bool) {
	if s.phase == SaveSaving || s.phase == SaveFailed {
		return s.draft, true
	}
	var zero T
	return zero, false
}

// Value returns the confirmed value; ok is true only when Saved.
func (s *SaveState[T]) Value() (T, bool) {
	if s.phase == SaveSaved {
		return s.value, true
	}
	var zero T
	return zero, false
}

// Err returns the recorded failure, nil unless Failed.
func (s *SaveState[T]) Err() error {
	if s.phase != SaveFailed {
		return nil
	}
	return s.err
}
