package llm

import (
	"context"
	"fmt"
)

// Completer sends one system+user prompt pair to a chat completion backend and
// returns the assistant's text. Implementations never retry.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Name() string
}

// APIError describes a failed call. StatusCode is 0 when the backend could not be reached.
type APIError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s API error: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s API error: status %d: %s", e.Provider, e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error {
	return e.Err
}
