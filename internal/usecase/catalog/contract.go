package catalog

import (
	"context"

	"github.com/kailas-cloud/partsearch/internal/domain/product"
)

// Loader reads the full product list from a catalog source.
type Loader interface {
	Load(ctx context.Context) ([]product.Product, error)
	// Source describes the origin for logs and snapshots, e.g. "file:data/products.json".
	Source() string
}

// Invalidator is notified after every successful reload.
type Invalidator interface {
	Flush()
}
