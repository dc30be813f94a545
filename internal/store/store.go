// Package store provides the key/value persistence surface backing the admin
// platform. Two logical records exist: the order collection and the single
// active subscription, each serialized as a string. Every write replaces the
// prior value wholesale; there are no partial or merge updates.
package store

import "context"

// Logical record keys.
const (
	KeyOrders       = "saas_app_orders_db"
	KeySubscription = "saas_app_subscription_db"
)

// Store is a synchronous get-and-set string store.
type Store interface {
	// Read returns the value for key and whether the key exists. A missing
	// key is not an error.
	Read(ctx context.Context, key string) (string, bool, error)
	// Write replaces the value for key. Last write wins.
	Write(ctx context.Context, key, value string) error
}
