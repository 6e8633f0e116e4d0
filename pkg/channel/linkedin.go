package channel

import (
	"context"
	"net/http"
	"time"
)

const (
	linkedInUGCPostsURL = "https://api.linkedin.com/v2/ugcPosts"

	DefaultLinkedInAuthor = "urn:li:person:YOUR_PERSON_ID"
)

type LinkedInClient struct {
	author     string
	httpClient *http.Client
}

// NewLinkedInClient posts on behalf of author, a person or organization URN.
func NewLinkedInClient(author string, timeout time.Duration) *LinkedInClient {
	if author == "" {
		author = DefaultLinkedInAuthor
	}
	return &LinkedInClient{author: author, httpClient: NewHTTPClient(timeout)}
}

func (c *LinkedInClient) Kind() Kind {
	return KindLinkedIn
}

func (c *LinkedInClient) RequiresCredential() bool {
	return true
}

func (c *LinkedInClient) Send(ctx context.Context, post Post, token string) error {
	payload := ugcPost{
		Author:         c.author,
		LifecycleState: "PUBLISHED",
		SpecificContent: ugcSpecificContent{
			ShareContent: ugcShareContent{
				ShareCommentary:    ugcText{Text: post.Text},
				ShareMediaCategory: "NONE",
			},
		},
		Visibility: ugcVisibility{MemberNetwork: "PUBLIC"},
	}

	headers := map[string]string{
		"Authorization":             "Bearer " + token,
		"X-Restli-Protocol-Version": "2.0.0",
	}

	return postJSON(ctx, c.httpClient, KindLinkedIn, linkedInUGCPostsURL, headers, payload)
}

type ugcPost struct {
	Author          string             `json:"author"`
	LifecycleState  string             `json:"lifecycleState"`
	SpecificContent ugcSpecificContent `json:"specificContent"`
	Visibility      ugcVisibility      `json:"visibility"`
}

type ugcSpecificContent struct {
	ShareContent ugcShareContent `json:"com.linkedin.ugc.ShareContent"`
}

type ugcShareContent struct {
	ShareCommentary    ugcText `json:"shareCommentary"`
	ShareMediaCategory string  `json:"shareMediaCategory"`
}

type ugcText struct {
	Text string `json:"text"`
}

type ugcVisibility struct {
	MemberNetwork string `json:"com.linkedin.ugc.MemberNetworkVisibility"`
}
