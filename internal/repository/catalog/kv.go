package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/partsearch/internal/db"
	"github.com/kailas-cloud/partsearch/internal/domain/product"
)

// KVLoader reads a JSON catalog document stored under a single key.
type KVLoader struct {
	store db.KVReader
	key   string
}

// NewKVLoader creates a KVLoader.
func NewKVLoader(store db.KVReader, key string) *KVLoader {
	return &KVLoader{store: store, key: key}
}

// Source implements usecase/catalog.Loader.
func (l *KVLoader) Source() string { return "kv:" + l.key }

// Load fetches and decodes the document.
func (l *KVLoader) Load(ctx context.Context) ([]product.Product, error) {
	data, err := l.store.Get(ctx, l.key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, fmt.Errorf("key %q: %w", l.key, err)
		}
		return nil, fmt.Errorf("get catalog: %w", err)
	}
	return DecodeJSON(data)
}
