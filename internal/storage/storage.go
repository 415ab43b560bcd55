// Package storage provides durable keyed storage for whole record
// collections. Each collection is one JSON array under a fixed key, loaded
// whole at startup and rewritten whole after every mutation; the in-memory
// state owned by the entity stores remains the source of truth between
// writes.
package storage

import "context"

// Collection keys. One key per entity store.
const (
	KeyProducts  = "products"
	KeyProviders = "providers"
	KeyUsers     = "users"
	KeyOrders    = "orders"
	KeySales     = "sales"
)

// Store is the durable keyed storage contract.
type Store interface {
	// Load returns the raw JSON stored under key. The boolean is false
	// when the key has never been written, which tells the caller to fall
	// back to its seed dataset.
	Load(ctx context.Context, key string) ([]byte, bool, error)

	// Save replaces the JSON stored under key.
	Save(ctx context.Context, key string, data []byte) error
}
