package domain

import "errors"

var (
	// ErrNotFound covers missing rows and zero-row scoped deletes. An
	// existing reservation owned by someone else is reported as this same
	// error, never as a distinct "not yours" signal.
	ErrNotFound = errors.New("not found")

	// ErrUnauthenticated means no usable caller identity was presented.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden means the caller is identified but lacks a required role.
	ErrForbidden = errors.New("forbidden")
)
