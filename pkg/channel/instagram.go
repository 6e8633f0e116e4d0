package channel

import (
	"context"
	"net/http"
	"time"
)

const instagramMediaURL = "https://graph.instagram.com/me/media"

type InstagramClient struct {
	httpClient *http.Client
}

func NewInstagramClient(timeout time.Duration) *InstagramClient {
	return &InstagramClient{httpClient: NewHTTPClient(timeout)}
}

func (c *InstagramClient) Kind() Kind {
	return KindInstagram
}

func (c *InstagramClient) RequiresCredential() bool {
	return true
}

// Send creates a media container captioned with the post text.
func (c *InstagramClient) Send(ctx context.Context, post Post, accessToken string) error {
	return postJSON(ctx, c.httpClient, KindInstagram, instagramMediaURL, nil, instagramMedia{
		AccessToken: accessToken,
		Caption:     post.Text,
	})
}

type instagramMedia struct {
	AccessToken string `json:"access_token"`
	Caption     string `json:"caption"`
}
