// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// Subscription model.
package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/OmidAcu/acutrader-web/internal/domain"
)

// UpsertSubscription inserts or updates the subscription row keyed on the
// Paddle transaction id. On conflict the status, product_label, and
// price_id columns are overwritten with the incoming values unconditionally.
// Webhooks carry no sequence number, so this is last-write-wins: a delayed
// redelivery can clobber a newer status.
func UpsertSubscription(ctx context.Context, db *gorm.DB, customerID uint, transactionID, productLabel, priceID, status string) error {
	sub := &domain.Subscription{
		CustomerID:          customerID,
		PaddleTransactionID: transactionID,
		ProductLabel:        productLabel,
		PriceID:             priceID,
		Status:              status,
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "paddle_transaction_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "product_label", "price_id", "updated_at"}),
		}).
		Create(sub).Error
}

// GetSubscriptionByTransactionID fetches a subscription row, returning
// ErrNotFound when absent.
func GetSubscriptionByTransactionID(ctx context.Context, db *gorm.DB, transactionID string) (*domain.Subscription, error) {
	var sub domain.Subscription
	err := db.WithContext(ctx).Where("paddle_transaction_id = ?", transactionID).First(&sub).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}
