package search

import (
	"github.com/kailas-cloud/partsearch/internal/domain/catalog"
	"github.com/kailas-cloud/partsearch/internal/domain/search/result"
)

// SnapshotReader returns the active catalog snapshot.
type SnapshotReader interface {
	Current() *catalog.Snapshot
}

// ResultCache stores search results by key.
type ResultCache interface {
	Get(key string) (result.Result, bool)
	Set(key string, r result.Result)
}
