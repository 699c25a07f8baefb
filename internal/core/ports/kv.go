package ports

import "context"

// KVStore is the durable key-value store backing sessions, the registered-user
// roster, and baskets. Get reports presence separately from failure so an
// absent key is not an error.
type KVStore interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
