// Package services – NotifyService
//
// This file implements the license-notify use-case: authenticate the
// internal shared-secret token, normalize and validate the delivery fields,
// and forward the subscription upsert to the mailing-list provider. The
// notifier persists nothing; it is a pure translation layer between the
// internal contract and the provider's API shape.
package services

import (
	"context"
	"crypto/subtle"
	"strings"
)

// MailingList is the outbound side of the notifier: upsert a subscriber
// with the license key and platform attached as custom fields.
type MailingList interface {
	Subscribe(ctx context.Context, email, licenseKey, platform string) error
}

// NotifyRequest carries the raw fields of a license-notify call before
// normalization.
type NotifyRequest struct {
	Token      string
	Email      string
	LicenseKey string
	Platform   string
}

// NotifyService validates and forwards license-delivery requests.
type NotifyService struct {
	// Token is the server-held shared secret. Exact match is the sole
	// authentication mechanism on this endpoint.
	Token string
	// List is the mailing-list provider client.
	List MailingList
}

// Deliver authenticates req, validates its fields, and forwards the
// subscription to the provider.
//
// Errors:
//   - ErrUnauthorized when the token is absent or does not match.
//   - ErrMissingFields when email, license key, or platform is empty after
//     trimming (email is additionally lower-cased).
//   - The provider error unchanged otherwise, so the handler can embed the
//     upstream body in a 502.
func (s *NotifyService) Deliver(ctx context.Context, req NotifyRequest) error {
	if req.Token == "" || subtle.ConstantTimeCompare([]byte(req.Token), []byte(s.Token)) != 1 {
		return ErrUnauthorized
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	licenseKey := strings.TrimSpace(req.LicenseKey)
	platform := strings.TrimSpace(req.Platform)

	if email == "" || licenseKey == "" || platform == "" {
		return ErrMissingFields
	}

	return s.List.Subscribe(ctx, email, licenseKey, platform)
}
