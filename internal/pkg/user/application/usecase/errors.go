package usecase

import "errors"

var (
	// ErrValidation indicates missing or malformed caller input.
	ErrValidation = errors.New("user use case: invalid input")

	// ErrInvalidCredentials covers both unknown username and wrong password,
	// so login failures do not reveal which one it was.
	ErrInvalidCredentials = errors.New("user use case: invalid credentials")

	// ErrUsernameTaken indicates the requested username already exists.
	ErrUsernameTaken = errors.New("user use case: username already taken")

	// ErrNotFound indicates the referenced user does not exist.
	ErrNotFound = errors.New("user use case: not found")

	// ErrPersistence indicates an infrastructure/repository failure.
	ErrPersistence = errors.New("user use case: persistence error")
)
