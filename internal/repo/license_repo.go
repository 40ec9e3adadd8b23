// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the License
// model.
package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/OmidAcu/acutrader-web/internal/domain"
)

// LicenseStatusActive is the status every license is created with. Licenses
// are never transitioned to any other status by this system.
const LicenseStatusActive = "active"

// GetLicense fetches the license for (customerID, platform), returning
// ErrNotFound when none exists.
func GetLicense(ctx context.Context, db *gorm.DB, customerID uint, platform string) (*domain.License, error) {
	var lic domain.License
	err := db.WithContext(ctx).
		Where("customer_id = ? AND platform = ?", customerID, platform).
		First(&lic).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lic, nil
}

// CreateLicenseIfAbsent atomically provisions a license for
// (customerID, platform) with the given key. The insert rides on the unique
// index over (customer_id, platform): when a row already exists the insert
// is a no-op and the existing row is returned instead, so two concurrent
// deliveries of the same event cannot mint two keys. The boolean result
// reports whether this call created the row.
func CreateLicenseIfAbsent(ctx context.Context, db *gorm.DB, customerID uint, platform, key string) (*domain.License, bool, error) {
	lic := &domain.License{
		CustomerID: customerID,
		Platform:   platform,
		LicenseKey: key,
		Status:     LicenseStatusActive,
		Notified:   false,
	}
	res := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "customer_id"}, {Name: "platform"}},
			DoNothing: true,
		}).
		Create(lic)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected > 0 {
		return lic, true, nil
	}
	existing, err := GetLicense(ctx, db, customerID, platform)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// MarkLicenseNotified flips the notified flag and stamps notified_at for
// the license matching (customerID, platform, key). Scoping on the key as
// well keeps a racing re-provision from being marked by someone else's
// delivery confirmation.
func MarkLicenseNotified(ctx context.Context, db *gorm.DB, customerID uint, platform, key string, at time.Time) error {
	return db.WithContext(ctx).
		Model(&domain.License{}).
		Where("customer_id = ? AND platform = ? AND license_key = ?", customerID, platform, key).
		Updates(map[string]any{"notified": true, "notified_at": at}).Error
}
