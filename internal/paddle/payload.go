// Package paddle extracts the handful of fields the licensing backend cares
// about from a Paddle v2 webhook payload. Paddle payloads are treated as
// untrusted and loosely structured: every field is looked up through an
// ordered list of candidate paths, and the first non-empty hit wins. A
// missing field is never an error at this layer.
package paddle

import "strings"

// Product labels recognized by the price-id heuristic. Anything else maps
// to LabelUnknown, which disables license provisioning.
const (
	LabelNT      = "nt"
	LabelTV      = "tv"
	LabelDual    = "dual"
	LabelUnknown = "unknown"
)

// DefaultEventType is recorded when a payload carries no recognizable
// event-type field.
const DefaultEventType = "transaction"

// defaultStatus is assumed when a payload carries no status field.
const defaultStatus = "pending"

// Payload is a decoded webhook body. Paddle v2 usually nests the
// transaction under "data", but older shapes put fields at the top level,
// so accessors fall back to the root object.
type Payload map[string]any

// Fields are the extracted values the ingestor works with. Empty string
// means "not present in the payload".
type Fields struct {
	Email         string
	PriceID       string
	TransactionID string
	Status        string // lower-cased, defaulted to "pending"
}

// accessor resolves one candidate location inside a payload object.
// It returns "" when the path does not exist or does not hold a string.
type accessor func(obj map[string]any) string

// at returns an accessor that walks the given key path and returns the
// string leaf, if any.
func at(path ...string) accessor {
	return func(obj map[string]any) string {
		cur := any(obj)
		for _, key := range path {
			m, ok := cur.(map[string]any)
			if !ok {
				return ""
			}
			cur, ok = m[key]
			if !ok {
				return ""
			}
		}
		s, _ := cur.(string)
		return strings.TrimSpace(s)
	}
}

// atItem0 returns an accessor for a path under the first element of the
// "items" array (Paddle line items).
func atItem0(path ...string) accessor {
	return func(obj map[string]any) string {
		items, ok := obj["items"].([]any)
		if !ok || len(items) == 0 {
			return ""
		}
		first, ok := items[0].(map[string]any)
		if !ok {
			return ""
		}
		return at(path...)(first)
	}
}

// Candidate paths in priority order, evaluated against the transaction
// object (payload "data" when present, else the payload root).
var (
	emailAccessors = []accessor{
		at("customer", "email"),
		at("customer_email"),
		at("user", "email"),
	}
	priceIDAccessors = []accessor{
		atItem0("price", "id"),
		atItem0("price_id"),
	}
	transactionIDAccessors = []accessor{
		at("id"),
		at("transaction_id"),
	}
	eventTypeAccessors = []accessor{
		at("event_type"),
		at("type"),
	}
)

// first evaluates accessors in order against obj and returns the first
// non-empty result.
func first(obj map[string]any, accessors []accessor) string {
	for _, fn := range accessors {
		if v := fn(obj); v != "" {
			return v
		}
	}
	return ""
}

// transaction returns the object field lookups run against: the nested
// "data" object when present, otherwise the payload itself.
func (p Payload) transaction() map[string]any {
	if data, ok := p["data"].(map[string]any); ok {
		return data
	}
	return p
}

// EventType returns the best-effort audit label for the payload, falling
// back to DefaultEventType when no candidate field is present.
func (p Payload) EventType() string {
	if t := first(p, eventTypeAccessors); t != "" {
		return t
	}
	return DefaultEventType
}

// Extract pulls the customer email, price id, transaction id, and status
// out of the payload. Status falls back from the transaction object to the
// payload root before defaulting to "pending", and is case-folded.
func (p Payload) Extract() Fields {
	tx := p.transaction()

	status := first(tx, []accessor{at("status")})
	if status == "" {
		status = first(p, []accessor{at("status")})
	}
	if status == "" {
		status = defaultStatus
	}

	return Fields{
		Email:         first(tx, emailAccessors),
		PriceID:       first(tx, priceIDAccessors),
		TransactionID: first(tx, transactionIDAccessors),
		Status:        strings.ToLower(status),
	}
}

// ProductLabel derives the platform label from a price identifier by
// substring match. This is a heuristic, not an exact mapping: a price id
// containing "nt" anywhere classifies as LabelNT, so ids must be named
// with care. Order matters because "dual" also contains no other token
// but a hypothetical "nt" hit would shadow it if checked later.
func ProductLabel(priceID string) string {
	switch {
	case priceID == "":
		return LabelUnknown
	case strings.Contains(priceID, LabelNT):
		return LabelNT
	case strings.Contains(priceID, LabelTV):
		return LabelTV
	case strings.Contains(priceID, LabelDual):
		return LabelDual
	default:
		return LabelUnknown
	}
}

// SuccessStatuses is the fixed set of provider statuses that trigger
// license provisioning.
var SuccessStatuses = map[string]struct{}{
	"completed": {},
	"paid":      {},
	"billed":    {},
	"active":    {},
}

// IsSuccessStatus reports whether a (case-insensitive) status should
// provision a license.
func IsSuccessStatus(status string) bool {
	_, ok := SuccessStatuses[strings.ToLower(status)]
	return ok
}
