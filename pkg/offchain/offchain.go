// Package offchain implements the dual-backend store for mutable
// metadata. A remote backend holds the shared copy and a local backend
// doubles as accelerator and fallback, so every operation succeeds as
// long as the local backend does.
package offchain

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned when neither backend holds a value for the
// key. It means "no data", not a failure.
var ErrNotFound = errors.New("offchain record not found")

// Collections are the logical document groups shared with the remote
// store schema.
const (
	CollectionProfiles      = "user_profiles"
	CollectionChat          = "chat_messages"
	CollectionCategories    = "campaign_categories"
	CollectionNotifications = "notifications"
	CollectionReceipts      = "donation_receipts"
	CollectionCounters      = "counters"
)

// Backend is one storage side of the store: a keyed JSON document bag.
// A missing key yields ErrNotFound.
type Backend interface {
	// Get retrieves the document stored under (collection, key).
	Get(ctx context.Context, collection, key string) ([]byte, error)

	// Put stores the document under (collection, key), overwriting any
	// previous value.
	Put(ctx context.Context, collection, key string, value []byte) error

	// List retrieves the documents for the given keys. Missing keys are
	// simply absent from the result, never an error.
	List(ctx context.Context, collection string, keys []string) (map[string][]byte, error)
}

// NormalizeKey lower-cases an identity-derived key. Every store entry
// point normalizes here so case-inconsistent wallet strings cannot
// split a record across keys.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
