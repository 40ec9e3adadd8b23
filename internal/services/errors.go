// Package services implements the business logic for webhook ingestion and
// license delivery. This file centralizes service-level error values so that
// they can be consistently returned by service methods and checked by
// callers.
//
// Translation into HTTP statuses is performed at the handler layer.
package services

import "errors"

var (
	// ErrCustomerUpsert indicates the customer row could not be written or
	// re-read after the upsert. This is the one unrecoverable dependency
	// failure the webhook surfaces as a 500.
	ErrCustomerUpsert = errors.New("customer upsert failed")

	// ErrUnauthorized is returned by the notifier when the shared-secret
	// token does not exactly match, or is absent.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrMissingFields is returned by the notifier when email, license key,
	// or platform is empty after normalization.
	ErrMissingFields = errors.New("missing fields")
)
