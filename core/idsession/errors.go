package idsession

import "errors"

var (
	// ErrNotFound is returned when a session id is unknown or the session
	// has already been purged as expired.
	ErrNotFound = errors.New("session not found")
	// ErrChallengeGeneration is returned when the entropy source fails.
	ErrChallengeGeneration = errors.New("failed to generate challenge")
)
