// Package services – WebhookService
//
// This file implements the webhook ingestion use-case: record the raw
// event, tolerantly extract customer/transaction/price fields, upsert the
// customer and subscription, provision at most one license per
// (customer, platform), and trigger license delivery while the license is
// still marked un-notified. Everything except the customer upsert is
// best-effort: a webhook is acknowledged with 200 even when downstream
// notification fails, so the payment provider never retries a delivery
// because of an internal email problem.
package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/OmidAcu/acutrader-web/internal/license"
	"github.com/OmidAcu/acutrader-web/internal/paddle"
	"github.com/OmidAcu/acutrader-web/internal/repo"
)

// AuditSink records append-only audit events. Implementations never return
// an error and never block primary control flow; a sink that cannot write
// drops the event.
type AuditSink interface {
	Record(ctx context.Context, typ string, body any)
}

// LicenseNotifier delivers a freshly provisioned (or not-yet-delivered)
// license to the customer. An error means the delivery did not happen and
// should be retried on the next webhook for the same license.
type LicenseNotifier interface {
	SendLicense(ctx context.Context, email, licenseKey, platform string) error
}

// WebhookOutcome tells the handler which of the enumerated success bodies
// to answer with.
type WebhookOutcome int

const (
	// OutcomeProcessed is the normal path: payload carried an email and was
	// fully processed.
	OutcomeProcessed WebhookOutcome = iota
	// OutcomeNoEmail means no resolvable email was present; nothing was
	// written beyond the audit record.
	OutcomeNoEmail
)

// WebhookService implements webhook ingestion. All writes go through the
// repo package against DB; audit events go through Audit; license delivery
// goes through Notifier.
type WebhookService struct {
	DB       *gorm.DB
	Audit    AuditSink
	Notifier LicenseNotifier

	// NewKey generates license keys; defaults to license.NewKey.
	// Overridable for tests.
	NewKey func() (string, error)
}

// RecordInvalid audit-logs a payload that failed to parse. The handler
// calls this before answering 400 so even garbage deliveries leave a trace.
func (s *WebhookService) RecordInvalid(ctx context.Context, reason string) {
	s.Audit.Record(ctx, "webhook.error", map[string]string{"reason": reason})
}

// Process runs the ingestion steps for one parsed webhook payload.
//
// Semantics:
//   - The raw payload is always audit-logged under its best-effort event
//     type before anything else.
//   - A payload without a resolvable email yields OutcomeNoEmail and writes
//     no customer, subscription, or license rows. Absence of an email is
//     not an error.
//   - The customer upsert is the only hard dependency: if the row cannot be
//     established, ErrCustomerUpsert is returned and the provider gets 500.
//   - A subscription row is upserted only when the payload carries a
//     transaction id; redeliveries overwrite status, product label, and
//     price id (last-write-wins).
//   - A license is provisioned only for success statuses and a known
//     product label. Provisioning is atomic per (customer, platform): the
//     unique index guarantees at most one row even under concurrent
//     redelivery.
//   - Delivery is attempted on every webhook until it succeeds once; the
//     notified flag is the only guard. A failed delivery is audit-logged
//     and swallowed.
func (s *WebhookService) Process(ctx context.Context, payload paddle.Payload) (WebhookOutcome, error) {
	s.Audit.Record(ctx, payload.EventType(), payload)

	fields := payload.Extract()
	label := paddle.ProductLabel(fields.PriceID)

	// Emails arrive in whatever casing the customer typed at checkout;
	// normalize before keying customer rows on them.
	email := strings.ToLower(strings.TrimSpace(fields.Email))
	if email == "" {
		s.Audit.Record(ctx, "webhook.note", map[string]string{"note": "no email in payload"})
		return OutcomeNoEmail, nil
	}

	customer, err := repo.UpsertCustomer(ctx, s.DB, email)
	if err != nil {
		s.Audit.Record(ctx, "webhook.error", map[string]string{
			"reason": "customer upsert failed",
			"email":  email,
		})
		return OutcomeProcessed, ErrCustomerUpsert
	}

	if fields.TransactionID != "" {
		if err := repo.UpsertSubscription(ctx, s.DB, customer.ID, fields.TransactionID, label, fields.PriceID, fields.Status); err != nil {
			// Subscription state is advisory; the webhook is still acknowledged.
			s.Audit.Record(ctx, "webhook.error", map[string]string{
				"reason":         "subscription upsert failed",
				"transaction_id": fields.TransactionID,
			})
		}
	}

	if paddle.IsSuccessStatus(fields.Status) && label != paddle.LabelUnknown {
		s.provision(ctx, customer.ID, email, label)
	}

	return OutcomeProcessed, nil
}

// provision mints the license for (customerID, platform) if absent and
// attempts delivery while the license has not been notified yet.
func (s *WebhookService) provision(ctx context.Context, customerID uint, email, platform string) {
	newKey := s.NewKey
	if newKey == nil {
		newKey = license.NewKey
	}

	key, err := newKey()
	if err != nil {
		s.Audit.Record(ctx, "webhook.error", map[string]string{"reason": "key generation failed"})
		return
	}

	lic, created, err := repo.CreateLicenseIfAbsent(ctx, s.DB, customerID, platform, key)
	if err != nil {
		s.Audit.Record(ctx, "webhook.error", map[string]string{
			"reason":   "license provisioning failed",
			"platform": platform,
		})
		return
	}
	if created {
		s.Audit.Record(ctx, "license.created", map[string]string{
			"email":      email,
			"platform":   platform,
			"licenseKey": lic.LicenseKey,
		})
	}

	if lic.Notified || lic.LicenseKey == "" {
		return
	}

	s.Audit.Record(ctx, "notify.attempt", map[string]string{
		"email":       email,
		"license_key": lic.LicenseKey,
		"platform":    platform,
	})

	if err := s.Notifier.SendLicense(ctx, email, lic.LicenseKey, platform); err != nil {
		s.Audit.Record(ctx, "notify.fail", map[string]string{"error": err.Error()})
		return
	}

	if err := repo.MarkLicenseNotified(ctx, s.DB, customerID, platform, lic.LicenseKey, time.Now().UTC()); err != nil {
		// Delivery happened; worst case the flag stays 0 and the next
		// webhook re-sends the same key.
		s.Audit.Record(ctx, "webhook.error", map[string]string{"reason": "mark notified failed"})
		return
	}
	s.Audit.Record(ctx, "notify.ok", map[string]string{"email": email, "platform": platform})
}
