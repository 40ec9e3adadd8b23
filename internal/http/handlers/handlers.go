// Package handlers provides HTTP handler implementations for the public API.
//
// Handlers are transport-thin: they parse input, delegate to application
// services, and translate outcomes into HTTP results. The payment provider
// endpoints deliberately answer with short plain-text bodies ("ok",
// "invalid json", ...) rather than JSON envelopes; those exact strings are
// part of the external contract.
package handlers

import (
	"context"

	"github.com/OmidAcu/acutrader-web/internal/paddle"
	"github.com/OmidAcu/acutrader-web/internal/services"
)

//
// Service contracts (context-aware)
//

// WebhookProcessor defines the ingestion operations consumed by the webhook
// handler. Implementations should be safe for concurrent use and must honor
// the provided context.
type WebhookProcessor interface {
	// Process runs the full ingestion pipeline for a parsed payload.
	Process(ctx context.Context, payload paddle.Payload) (services.WebhookOutcome, error)
	// RecordInvalid audit-logs a body that failed to parse.
	RecordInvalid(ctx context.Context, reason string)
}

// NotifyDeliverer defines the license-delivery operation consumed by the
// notify handler.
type NotifyDeliverer interface {
	// Deliver authenticates, validates, and forwards one delivery request.
	Deliver(ctx context.Context, req services.NotifyRequest) error
}

// AuditRecorder records append-only audit events; used directly by the
// selftest and generic event-recorder endpoints.
type AuditRecorder interface {
	Record(ctx context.Context, typ string, body any)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints of the licensing backend. It depends
// on abstract service interfaces to keep transport concerns separate from
// business logic.
type Handlers struct {
	webhookSvc WebhookProcessor
	notifySvc  NotifyDeliverer
	audit      AuditRecorder
}

// New constructs and returns a Handlers instance bound to the given services.
func New(webhookSvc WebhookProcessor, notifySvc NotifyDeliverer, audit AuditRecorder) *Handlers {
	return &Handlers{webhookSvc: webhookSvc, notifySvc: notifySvc, audit: audit}
}
