package model

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrValidation    = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrConfiguration = errors.New("channel not configured")
	ErrInvalidState  = errors.New("invalid ad state transition")
	ErrRateLimited   = errors.New("rate limit exceeded")
	ErrStorage       = errors.New("storage error")
)

// AIBackendError is returned when the generative backend fails or is unreachable.
// StatusCode is 0 when no HTTP response was received.
type AIBackendError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *AIBackendError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("ai backend unavailable: %v", e.Err)
	}
	return fmt.Sprintf("ai backend returned status %d", e.StatusCode)
}

func (e *AIBackendError) Unwrap() error {
	return e.Err
}

// ChannelError is returned when a distribution channel rejects a post or cannot be reached.
type ChannelError struct {
	Channel    string
	StatusCode int
	Body       string
	Err        error
}

func (e *ChannelError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("failed to post to %s: %v", e.Channel, e.Err)
	}
	return fmt.Sprintf("failed to post to %s: status %d", e.Channel, e.StatusCode)
}

func (e *ChannelError) Unwrap() error {
	return e.Err
}
