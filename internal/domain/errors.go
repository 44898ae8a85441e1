// Package domain contains the GarajHub entities, the entity-store contract
// and the error taxonomy shared by every layer.
package domain

import "errors"

var (
	// ErrNotFound is returned when a referenced entity id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidOperation signals a violated precondition: duplicate
	// membership, self-join, missing required field or reason, illegal
	// status target.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrConflict signals a concurrent mutation of the same startup or
	// user; the caller may retry.
	ErrConflict = errors.New("conflict")
	// ErrUpstreamUnavailable signals a collaborator timeout or failure.
	// The mentor service is the only place allowed to degrade to a
	// fallback value instead of surfacing it.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
