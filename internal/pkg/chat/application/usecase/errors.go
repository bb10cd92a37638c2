package usecase

import "errors"

// Error kinds surfaced by chat use cases. Controllers map these to
// transport-level statuses with errors.Is.
var (
	// ErrValidation indicates missing or malformed caller input. It is
	// detected before any mutation, so no partial effects exist.
	ErrValidation = errors.New("chat use case: invalid input")

	// ErrNotFound indicates the referenced conversation or message does not
	// exist or the caller has no access to it.
	ErrNotFound = errors.New("chat use case: not found")

	// ErrPersistence indicates an infrastructure/repository failure inside a
	// use case. Retrying is a caller concern; use cases never retry.
	ErrPersistence = errors.New("chat use case: persistence error")
)
