package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func TestOpenAIComplete(t *testing.T) {
	var got chatRequest
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&got)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   "google/gemini-2.5-flash",
			"choices": []map[string]interface{}{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]interface{}{
						"role":    "assistant",
						"content": "INSIGHTS: ok",
					},
				},
			},
		})
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", srv.URL, "google/gemini-2.5-flash")

	text, err := client.Complete(context.Background(), "system prompt", "user prompt")

	assert.Equal(t, nil, err)
	assert.Equal(t, "INSIGHTS: ok", text)
	assert.Equal(t, "Bearer test-key", auth)
	assert.Equal(t, "google/gemini-2.5-flash", got.Model)
	assert.Equal(t, 2, len(got.Messages))
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "system prompt", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "user prompt", got.Messages[1].Content)
	assert.Equal(t, "gateway", client.Name())
}

func TestOpenAIComplete_ErrorStatusIsNotRetried(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":{"message":"overloaded","type":"server_error"}}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", srv.URL, "m")

	_, err := client.Complete(context.Background(), "s", "u")

	var apiErr *APIError
	assert.Equal(t, true, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, "gateway", apiErr.Provider)
	assert.Equal(t, 1, calls)
}

func TestOpenAIComplete_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewOpenAIClient("test-key", url, "m")

	_, err := client.Complete(context.Background(), "s", "u")

	var apiErr *APIError
	assert.Equal(t, true, errors.As(err, &apiErr))
	assert.Equal(t, 0, apiErr.StatusCode)
	assert.Equal(t, true, strings.Contains(err.Error(), "gateway API error"))
}
