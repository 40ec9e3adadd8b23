// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the append-only audit event sink.
package repo

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/OmidAcu/acutrader-web/internal/domain"
)

// EventSink records audit events into the events table. Its contract is
// deliberately loose: Record never returns an error and never blocks the
// caller's primary flow. A failed insert is logged at debug level and
// dropped, because audit logging must not be able to break webhook
// processing.
type EventSink struct {
	DB *gorm.DB
}

// Record appends one audit event. body is serialized to JSON; values that
// cannot be marshaled (and nil) are stored as "{}".
func (s *EventSink) Record(ctx context.Context, typ string, body any) {
	raw := "{}"
	if body != nil {
		if b, err := json.Marshal(body); err == nil {
			raw = string(b)
		}
	}
	ev := &domain.Event{Type: typ, Body: raw}
	if err := s.DB.WithContext(ctx).Create(ev).Error; err != nil {
		log.Debug().Err(err).Str("type", typ).Msg("audit event dropped")
	}
}
