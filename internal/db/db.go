package db

import (
	"context"
	"time"
)

// Store is the database facade used by the service and catalog-push.
type Store interface {
	Pinger
	KVStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// KVReader reads raw values by key.
type KVReader interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// KVStore provides simple key-value operations.
type KVStore interface {
	KVReader
	Set(ctx context.Context, key string, value []byte) error
}
