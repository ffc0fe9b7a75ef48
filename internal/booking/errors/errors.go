package errors

import "errors"

var (
	ErrSessionNotFound = errors.New("booking session not found")

	ErrSessionClosed = errors.New("booking session already closed")

	ErrUnknownStep = errors.New("unknown wizard step")
)
