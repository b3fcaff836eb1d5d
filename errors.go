package partsearch

import "github.com/kailas-cloud/partsearch/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrCatalogLoad  = domain.ErrCatalogLoad
	ErrCatalogEmpty = domain.ErrCatalogEmpty
	ErrQueryTooLong = domain.ErrQueryTooLong
)
