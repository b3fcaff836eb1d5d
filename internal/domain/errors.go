package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrCatalogLoad signals that the catalog source could not be read or decoded.
	ErrCatalogLoad = errors.New("catalog load failed")
	// ErrCatalogEmpty signals that no products are loaded.
	ErrCatalogEmpty = errors.New("catalog is empty")
	// ErrQueryRequired signals a missing query parameter.
	ErrQueryRequired = errors.New("query is required")
	// ErrQueryTooLong signals a query above MaxQueryLength.
	ErrQueryTooLong = errors.New("query too long")
	// ErrUnauthorized signals a missing or invalid API key.
	ErrUnauthorized = errors.New("unauthorized")
)

// MaxQueryLength is the maximum accepted raw query length in bytes.
const MaxQueryLength = 4096

// CatalogLoadError wraps ErrCatalogLoad with the source that failed.
type CatalogLoadError struct {
	Source string
	Err    error
}

func (e *CatalogLoadError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrCatalogLoad.Error(), e.Source, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause to errors.Is.
func (e *CatalogLoadError) Unwrap() []error { return []error{ErrCatalogLoad, e.Err} }

// NewCatalogLoadError creates a catalog load error for the given source.
func NewCatalogLoadError(source string, err error) error {
	return &CatalogLoadError{Source: source, Err: err}
}
