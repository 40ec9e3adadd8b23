// Package handlers defines HTTP-layer error codes used by the JSON error
// envelope (see response.go). Codes are lowercase snake_case and mirror the
// common HTTP status semantics; clients branch on them rather than on
// message text.
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeUnauthorized     = "unauthorized"
	ErrCodeNotFound         = "not_found"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodeInternal         = "internal_error"
)
