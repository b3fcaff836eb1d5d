package catalog

import (
	"context"

	"github.com/kailas-cloud/partsearch/internal/db"
)

// mockKVReader implements db.KVReader for tests.
type mockKVReader struct {
	data    map[string][]byte
	err     error
	lastKey string
}

func (m *mockKVReader) Get(_ context.Context, key string) ([]byte, error) {
	m.lastKey = key
	if m.err != nil {
		return nil, m.err
	}
	v, ok := m.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}
