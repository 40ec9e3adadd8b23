// Package domain defines the persistence models for webhook events,
// customers, subscriptions, and licenses. These types are mapped with GORM
// and form the core data layer of the licensing backend.
package domain

import (
	"time"
)

// Event is an append-only audit record of an inbound webhook or internal
// milestone. Events are write-only from the application's point of view:
// they exist for debugging and are never read back by business logic.
//
// Fields:
//   - ID: auto-increment surrogate key.
//   - Type: best-effort event label (e.g. "transaction.completed",
//     "webhook.error", "notify.ok", "selftest").
//   - Body: raw JSON snapshot of the payload or milestone detail.
//   - CreatedAt: insert timestamp managed by GORM.
type Event struct {
	ID        uint      `json:"id"         gorm:"primaryKey;autoIncrement"`
	Type      string    `json:"type"       gorm:"type:varchar(128);not null;index"`
	Body      string    `json:"body"       gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for Event.
func (Event) TableName() string { return "events" }

// Customer is created on first sighting of an email in a webhook payload.
// Rows are never updated and never deleted; the unique index on email makes
// repeated upserts no-ops.
type Customer struct {
	ID        uint      `json:"id"         gorm:"primaryKey;autoIncrement"`
	Email     string    `json:"email"      gorm:"type:varchar(320);not null;uniqueIndex:ux_customers_email"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for Customer.
func (Customer) TableName() string { return "customers" }

// Subscription mirrors the latest known state of a Paddle transaction.
// Rows are keyed on the Paddle transaction id; a redelivered or out-of-order
// webhook overwrites status, product_label, and price_id with whatever
// arrived last (last-write-wins, no ordering guarantee).
//
// Fields:
//   - CustomerID: owning customer (set on first insert).
//   - PaddleTransactionID: unique transaction key from the provider.
//   - ProductLabel: derived platform label ("nt", "tv", "dual", "unknown").
//   - PriceID: raw provider price identifier the label was derived from.
//   - Status: lower-cased provider status, defaulted to "pending".
type Subscription struct {
	ID                  uint      `json:"id"                    gorm:"primaryKey;autoIncrement"`
	CustomerID          uint      `json:"customer_id"           gorm:"not null;index"`
	PaddleTransactionID string    `json:"paddle_transaction_id" gorm:"type:varchar(128);not null;uniqueIndex:ux_subscriptions_tx"`
	ProductLabel        string    `json:"product_label"         gorm:"type:varchar(16);not null"`
	PriceID             string    `json:"price_id"              gorm:"type:varchar(128)"`
	Status              string    `json:"status"                gorm:"type:varchar(32);not null"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`

	Customer Customer `json:"-" gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Subscription.
func (Subscription) TableName() string { return "subscriptions" }

// License grants a customer access to one product platform. At most one
// license exists per (customer_id, platform) pair, enforced by a unique
// index so concurrent deliveries of the same event cannot mint duplicates.
//
// Status is fixed at "active" on creation. Notified/NotifiedAt are the only
// fields mutated afterwards: they flip once the license-notify call
// succeeds, and stay set from then on.
type License struct {
	ID         uint       `json:"id"          gorm:"primaryKey;autoIncrement"`
	CustomerID uint       `json:"customer_id" gorm:"not null;uniqueIndex:ux_licenses_customer_platform,priority:1"`
	Platform   string     `json:"platform"    gorm:"type:varchar(16);not null;uniqueIndex:ux_licenses_customer_platform,priority:2"`
	LicenseKey string     `json:"license_key" gorm:"type:varchar(64);not null"`
	Status     string     `json:"status"      gorm:"type:varchar(32);not null"`
	Notified   bool       `json:"notified"    gorm:"not null;default:false"`
	NotifiedAt *time.Time `json:"notified_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Customer Customer `json:"-" gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for License.
func (License) TableName() string { return "licenses" }
