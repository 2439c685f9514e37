package voice

import "errors"

// Domain-specific errors for the voice package.
var (
	ErrSessionNotFound = errors.New("voice session not found or expired")
	ErrTaskCreate      = errors.New("failed to create task")
)
