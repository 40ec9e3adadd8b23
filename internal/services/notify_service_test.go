package services

import (
	"context"
	"errors"
	"testing"

	"github.com/OmidAcu/acutrader-web/internal/kit"
)

// stubList implements MailingList and records the forwarded fields.
type stubList struct {
	email, key, platform string
	calls                int
	err                  error
}

func (s *stubList) Subscribe(_ context.Context, email, licenseKey, platform string) error {
	s.calls++
	s.email, s.key, s.platform = email, licenseKey, platform
	return s.err
}

func TestDeliver_TokenMismatch(t *testing.T) {
	list := &stubList{}
	svc := &NotifyService{Token: "secret", List: list}

	cases := []string{"", "wrong", "Secret", "secret "}
	for _, token := range cases {
		err := svc.Deliver(context.Background(), NotifyRequest{
			Token: token, Email: "a@x.com", LicenseKey: "KEY", Platform: "nt",
		})
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("token %q: err = %v, want ErrUnauthorized", token, err)
		}
	}
	if list.calls != 0 {
		t.Fatalf("provider reached with bad token")
	}
}

func TestDeliver_MissingFields(t *testing.T) {
	list := &stubList{}
	svc := &NotifyService{Token: "secret", List: list}

	cases := []NotifyRequest{
		{Token: "secret", Email: "", LicenseKey: "KEY", Platform: "nt"},
		{Token: "secret", Email: "  ", LicenseKey: "KEY", Platform: "nt"},
		{Token: "secret", Email: "a@x.com", LicenseKey: " ", Platform: "nt"},
		{Token: "secret", Email: "a@x.com", LicenseKey: "KEY", Platform: ""},
	}
	for i, req := range cases {
		if err := svc.Deliver(context.Background(), req); !errors.Is(err, ErrMissingFields) {
			t.Fatalf("case %d: err = %v, want ErrMissingFields", i, err)
		}
	}
	if list.calls != 0 {
		t.Fatalf("provider reached with missing fields")
	}
}

func TestDeliver_NormalizesAndForwards(t *testing.T) {
	list := &stubList{}
	svc := &NotifyService{Token: "secret", List: list}

	err := svc.Deliver(context.Background(), NotifyRequest{
		Token:      "secret",
		Email:      "  John.Doe@X.COM ",
		LicenseKey: " KEY-1 ",
		Platform:   " tv ",
	})
	if err != nil {
		t.Fatalf("Deliver: %v", err)
	}
	if list.email != "john.doe@x.com" || list.key != "KEY-1" || list.platform != "tv" {
		t.Fatalf("forwarded fields: email=%q key=%q platform=%q", list.email, list.key, list.platform)
	}
}

func TestDeliver_ProviderErrorPassthrough(t *testing.T) {
	upstream := &kit.UpstreamError{Status: 422, Body: `{"error":"Form not found"}`}
	list := &stubList{err: upstream}
	svc := &NotifyService{Token: "secret", List: list}

	err := svc.Deliver(context.Background(), NotifyRequest{
		Token: "secret", Email: "a@x.com", LicenseKey: "KEY", Platform: "nt",
	})

	var got *kit.UpstreamError
	if !errors.As(err, &got) {
		t.Fatalf("err = %v, want *kit.UpstreamError", err)
	}
	if got.Status != 422 || got.Body != upstream.Body {
		t.Fatalf("upstream error mutated: %+v", got)
	}
}
