// Package kit is a minimal client for the ConvertKit (Kit) v3 API. The
// licensing backend uses exactly one call: subscribing an email address to a
// form with the license key and platform attached as custom fields, which
// triggers the license-delivery email on the Kit side.
package kit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// UpstreamError carries a non-2xx response from Kit so callers can surface
// the provider's own error text.
type UpstreamError struct {
	Status int
	Body   string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("kit: upstream status %d: %s", e.Status, e.Body)
}

// Client calls the Kit v3 subscribe endpoint. The zero value is not usable;
// construct with New.
type Client struct {
	baseURL string
	apiKey  string
	formID  string
	http    *http.Client
}

// New returns a Client for the given Kit credentials. httpClient may be nil,
// in which case http.DefaultClient is used.
func New(baseURL, apiKey, formID string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, apiKey: apiKey, formID: formID, http: httpClient}
}

// subscribeRequest is the Kit v3 create-subscriber-with-form payload. The
// custom field names must exactly match the fields configured in Kit.
type subscribeRequest struct {
	APIKey string            `json:"api_key"`
	Email  string            `json:"email"`
	Fields map[string]string `json:"fields"`
}

// Subscribe upserts email on the configured form with license_key and
// platform as custom fields. A non-2xx response is returned as
// *UpstreamError with the provider's body preserved.
func (c *Client) Subscribe(ctx context.Context, email, licenseKey, platform string) error {
	endpoint := fmt.Sprintf("%s/v3/forms/%s/subscribe", c.baseURL, url.PathEscape(c.formID))

	body, err := json.Marshal(subscribeRequest{
		APIKey: c.apiKey,
		Email:  email,
		Fields: map[string]string{
			"license_key": licenseKey,
			"platform":    platform,
		},
	})
	if err != nil {
		return fmt.Errorf("kit: marshal subscribe request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("kit: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("kit: subscribe: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return &UpstreamError{Status: resp.StatusCode, Body: string(raw)}
	}
	return nil
}
