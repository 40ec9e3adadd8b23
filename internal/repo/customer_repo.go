// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Customer
// model.
//
// The repository follows a "thin" approach: it performs persistence and
// simple query composition, leaving business rules to the services package.
package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/OmidAcu/acutrader-web/internal/domain"
)

// ErrNotFound indicates the requested row does not exist.
var ErrNotFound = errors.New("not found")

// UpsertCustomer inserts a customer row for email, ignoring the insert when
// the email already exists (customers are never updated). It returns the
// surviving row, whether freshly inserted or pre-existing.
func UpsertCustomer(ctx context.Context, db *gorm.DB, email string) (*domain.Customer, error) {
	c := &domain.Customer{Email: email}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(c).Error
	if err != nil {
		return nil, err
	}
	// Re-read so the surrogate id is populated on the conflict path too.
	return GetCustomerByEmail(ctx, db, email)
}

// GetCustomerByEmail fetches a customer by email, returning ErrNotFound
// when absent.
func GetCustomerByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.Customer, error) {
	var c domain.Customer
	err := db.WithContext(ctx).Where("email = ?", email).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
