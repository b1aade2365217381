package repository

import "context"

// Store is a whole-value key-value store. Values are replaced, never patched.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}
