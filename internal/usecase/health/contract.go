package health

import "context"

// StorePinger checks key-value store availability.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// CatalogChecker reports whether a usable catalog is loaded.
type CatalogChecker interface {
	HealthCheck(ctx context.Context) error
}
