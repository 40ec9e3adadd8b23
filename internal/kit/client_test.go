package kit

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSubscribe_SendsV3FormPayload(t *testing.T) {
	var gotPath string
	var gotBody subscribeRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &gotBody); err != nil {
			t.Errorf("request body not json: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL, "api-key-1", "form42", nil)
	if err := c.Subscribe(context.Background(), "a@x.com", "KEY-1", "nt"); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	if gotPath != "/v3/forms/form42/subscribe" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotBody.APIKey != "api-key-1" || gotBody.Email != "a@x.com" {
		t.Fatalf("payload = %+v", gotBody)
	}
	if gotBody.Fields["license_key"] != "KEY-1" || gotBody.Fields["platform"] != "nt" {
		t.Fatalf("custom fields = %v", gotBody.Fields)
	}
}

func TestSubscribe_NonOKBecomesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Form not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "k", "missing", nil)
	err := c.Subscribe(context.Background(), "a@x.com", "KEY", "tv")

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("err = %v, want *UpstreamError", err)
	}
	if upstream.Status != http.StatusNotFound || upstream.Body != `{"error":"Form not found"}` {
		t.Fatalf("upstream = %+v", upstream)
	}
}

func TestSubscribe_NetworkErrorIsNotUpstream(t *testing.T) {
	c := New("http://127.0.0.1:0", "k", "f", nil)
	err := c.Subscribe(context.Background(), "a@x.com", "KEY", "nt")
	if err == nil {
		t.Fatal("expected error")
	}
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		t.Fatalf("transport failure classified as upstream: %v", err)
	}
}
