package catalog

import (
	"time"

	"github.com/kailas-cloud/partsearch/internal/domain/product"
)

// Snapshot is an immutable view of the catalog at a point in time.
// A new Snapshot replaces the previous one wholesale on reload.
type Snapshot struct {
	products []product.Product
	version  uint64
	loadedAt time.Time
	source   string
}

// NewSnapshot creates a Snapshot. The products slice must not be modified afterwards.
func NewSnapshot(products []product.Product, version uint64, loadedAt time.Time, source string) *Snapshot {
	return &Snapshot{products: products, version: version, loadedAt: loadedAt, source: source}
}

// Empty returns a version-0 snapshot with no products.
func Empty() *Snapshot {
	return &Snapshot{}
}

// Products returns the catalog entries in source order.
func (s *Snapshot) Products() []product.Product { return s.products }

// Len returns the number of products.
func (s *Snapshot) Len() int { return len(s.products) }

// Version returns the monotonically increasing snapshot version (0 = never loaded).
func (s *Snapshot) Version() uint64 { return s.version }

// LoadedAt returns when the snapshot was built.
func (s *Snapshot) LoadedAt() time.Time { return s.loadedAt }

// Source describes where the products came from (file path or kv key).
func (s *Snapshot) Source() string { return s.source }
