package channel

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Kind names a distribution target. The set is closed.
type Kind string

const (
	KindInstagram Kind = "instagram"
	KindLinkedIn  Kind = "linkedin"
	KindWebhook   Kind = "webhook"
	KindChat      Kind = "chat"
)

// DefaultTimeout bounds every outbound channel call unless configured otherwise.
const DefaultTimeout = 30 * time.Second

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindInstagram, KindLinkedIn, KindWebhook, KindChat:
		return k, nil
	}
	return "", fmt.Errorf("unknown channel %q", s)
}

// ForPlatform maps an ad platform to the API that natively publishes it.
func ForPlatform(platform string) (Kind, bool) {
	switch platform {
	case "instagram":
		return KindInstagram, true
	case "linkedin":
		return KindLinkedIn, true
	}
	return "", false
}

// Post is what a backend sends.
type Post struct {
	Platform string
	Text     string
}

// Backend publishes a post to one external channel.
// credential is the owner's token or URL and is empty for backends that need none.
type Backend interface {
	Kind() Kind
	RequiresCredential() bool
	Send(ctx context.Context, post Post, credential string) error
}

// Error is returned for any failed send. StatusCode is 0 for transport failures.
type Error struct {
	Kind       Kind
	StatusCode int
	Body       string
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: status %d", e.Kind, e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewHTTPClient returns the client shared by the HTTP backends.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// Registry holds one backend per kind.
type Registry struct {
	backends map[Kind]Backend
}

func NewRegistry(backends ...Backend) *Registry {
	r := &Registry{backends: make(map[Kind]Backend, len(backends))}
	for _, b := range backends {
		r.backends[b.Kind()] = b
	}
	return r
}

func (r *Registry) Get(kind Kind) (Backend, bool) {
	b, ok := r.backends[kind]
	return b, ok
}
