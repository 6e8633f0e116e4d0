package llm

import (
	"context"
	"errors"
	"fmt"
)

// NewCompleter builds the client for provider: gateway, openai, anthropic or gemini.
// baseURL is only used by the gateway.
func NewCompleter(ctx context.Context, provider, apiKey, baseURL, model string) (Completer, error) {
	if apiKey == "" {
		return nil, errors.New("AI API key is not configured")
	}

	switch provider {
	case "gateway":
		if baseURL == "" {
			baseURL = DefaultGatewayURL
		}
		return NewOpenAIClient(apiKey, baseURL, model), nil
	case "openai":
		return NewOpenAIClient(apiKey, "", model), nil
	case "anthropic":
		return NewAnthropicClient(apiKey, model), nil
	case "gemini":
		return NewGeminiClient(ctx, apiKey, model)
	}
	return nil, fmt.Errorf("unknown AI provider %q", provider)
}
