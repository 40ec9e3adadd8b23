// Package notify is the webhook ingestor's client for the license-notify
// endpoint. The notifier runs in the same process, so this is a loopback
// HTTP call carrying the shared secret; keeping it an HTTP hop (rather than
// a direct function call) preserves the internal contract and lets the
// notifier be split out later without touching the ingestor.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Request is the license-notify payload.
type Request struct {
	Token      string `json:"token"`
	Email      string `json:"email"`
	LicenseKey string `json:"license_key"`
	Platform   string `json:"platform"`
}

// Client posts license-delivery requests to the notify endpoint.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
}

// New returns a Client targeting the full license-notify endpoint URL with
// the shared secret token. httpClient may be nil, in which case
// http.DefaultClient is used. No timeout or retry is layered on top of the
// supplied client; a hung notifier stalls the caller.
func New(endpoint, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{endpoint: endpoint, token: token, http: httpClient}
}

// SendLicense asks the notifier to deliver licenseKey for platform to
// email. Any non-2xx response is an error carrying the response body, so
// the caller can audit-log what the notifier said.
func (c *Client) SendLicense(ctx context.Context, email, licenseKey, platform string) error {
	body, err := json.Marshal(Request{
		Token:      c.token,
		Email:      email,
		LicenseKey: licenseKey,
		Platform:   platform,
	})
	if err != nil {
		return fmt.Errorf("notify: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("notify: post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 8<<10))
		return fmt.Errorf("notify: status %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}
