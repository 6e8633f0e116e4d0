package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultGatewayURL is an OpenAI-compatible chat completions gateway.
const DefaultGatewayURL = "https://ai.gateway.lovable.dev/v1"

// OpenAIClient talks to OpenAI or any OpenAI-compatible gateway.
type OpenAIClient struct {
	client *openai.Client
	model  openai.ChatModel
	name   string
}

func NewOpenAIClient(apiKey, baseURL, model string) *OpenAIClient {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	name := "openai"
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
		name = "gateway"
	}
	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(opts...)
	return &OpenAIClient{
		client: &client,
		model:  openai.ChatModel(model),
		name:   name,
	}
}

func (c *OpenAIClient) Name() string {
	return c.name
}

func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})

	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) {
			return "", &APIError{Provider: c.name, StatusCode: apierr.StatusCode, Body: apierr.RawJSON(), Err: err}
		}
		return "", &APIError{Provider: c.name, Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &APIError{Provider: c.name, Err: fmt.Errorf("no response from %s", c.name)}
	}

	return resp.Choices[0].Message.Content, nil
}
