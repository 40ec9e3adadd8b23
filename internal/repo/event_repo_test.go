package repo

import (
	"context"
	"testing"

	"github.com/OmidAcu/acutrader-web/internal/domain"
)

func TestEventSink_RecordInsertsRow(t *testing.T) {
	db := newTestDB(t, "eventsink", &domain.Event{})
	sink := &EventSink{DB: db}

	sink.Record(context.Background(), "selftest", map[string]bool{"ping": true})

	var ev domain.Event
	if err := db.First(&ev).Error; err != nil {
		t.Fatalf("read event: %v", err)
	}
	if ev.Type != "selftest" {
		t.Fatalf("type = %q", ev.Type)
	}
	if ev.Body != `{"ping":true}` {
		t.Fatalf("body = %q", ev.Body)
	}
}

func TestEventSink_NilBodyStoresEmptyObject(t *testing.T) {
	db := newTestDB(t, "eventsink_nil", &domain.Event{})
	sink := &EventSink{DB: db}

	sink.Record(context.Background(), "webhook.note", nil)

	var ev domain.Event
	if err := db.First(&ev).Error; err != nil {
		t.Fatalf("read event: %v", err)
	}
	if ev.Body != "{}" {
		t.Fatalf("body = %q, want {}", ev.Body)
	}
}

func TestEventSink_SwallowsWriteFailure(t *testing.T) {
	// No migration: the events table does not exist, so the insert fails.
	db := newTestDB(t, "eventsink_notable")
	sink := &EventSink{DB: db}

	// Must not panic and must not return anything to swallow.
	sink.Record(context.Background(), "selftest", map[string]bool{"ping": true})
}
