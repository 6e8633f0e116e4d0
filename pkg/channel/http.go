package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

const maxErrorBody = 4096

// postJSON sends payload to url and treats anything but 2xx as a failure.
func postJSON(ctx context.Context, client *http.Client, kind Kind, url string, headers map[string]string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &Error{Kind: kind, Err: fmt.Errorf("encode: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return &Error{Kind: kind, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return &Error{Kind: kind, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		slog.Error("channel rejected post", "channel", kind, "status", resp.StatusCode, "body", string(raw))
		return &Error{Kind: kind, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	io.Copy(io.Discard, resp.Body)
	return nil
}
