package channel

import (
	"context"
	"net/http"
	"time"
)

// WebhookClient posts to a URL the owner configured on their profile.
type WebhookClient struct {
	httpClient *http.Client
	now        func() time.Time
}

func NewWebhookClient(timeout time.Duration) *WebhookClient {
	return &WebhookClient{httpClient: NewHTTPClient(timeout), now: time.Now}
}

func (c *WebhookClient) Kind() Kind {
	return KindWebhook
}

func (c *WebhookClient) RequiresCredential() bool {
	return true
}

func (c *WebhookClient) Send(ctx context.Context, post Post, url string) error {
	return postJSON(ctx, c.httpClient, KindWebhook, url, nil, webhookPayload{
		Platform:  post.Platform,
		Content:   post.Text,
		Timestamp: c.now().UTC().Format(time.RFC3339),
	})
}

type webhookPayload struct {
	Platform  string `json:"platform"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}
