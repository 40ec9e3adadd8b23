package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/OmidAcu/acutrader-web/internal/domain"
)

func TestUpsertCustomer_InsertThenIgnore(t *testing.T) {
	db := newTestDB(t, "customers", &domain.Customer{})
	ctx := context.Background()

	first, err := UpsertCustomer(ctx, db, "a@x.com")
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if first.ID == 0 {
		t.Fatalf("surrogate id not populated")
	}

	// Second sighting must be a no-op returning the same row.
	second, err := UpsertCustomer(ctx, db, "a@x.com")
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("id changed on re-upsert: %d != %d", second.ID, first.ID)
	}

	var count int64
	db.Model(&domain.Customer{}).Count(&count)
	if count != 1 {
		t.Fatalf("customer rows = %d, want 1", count)
	}
}

func TestGetCustomerByEmail_NotFound(t *testing.T) {
	db := newTestDB(t, "customers_nf", &domain.Customer{})

	_, err := GetCustomerByEmail(context.Background(), db, "missing@x.com")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpsertCustomer_Error_NoTable(t *testing.T) {
	db := newTestDB(t, "customers_notable")

	if _, err := UpsertCustomer(context.Background(), db, "a@x.com"); err == nil {
		t.Fatalf("expected error when customers table is missing")
	}
}
