package search

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/partsearch/internal/domain"
	"github.com/kailas-cloud/partsearch/internal/domain/search/result"
	logpkg "github.com/kailas-cloud/partsearch/internal/logger"
	"github.com/kailas-cloud/partsearch/internal/metrics"
)

// Service answers queries against the active catalog snapshot.
type Service struct {
	catalog SnapshotReader
	engine  *Engine
	cache   ResultCache
}

// New creates a search service. A nil engine uses the built-in dictionary.
func New(catalog SnapshotReader, engine *Engine) *Service {
	if engine == nil {
		engine = defaultEngine
	}
	return &Service{catalog: catalog, engine: engine}
}

// WithCache enables result caching. Keys include the snapshot version.
func (s *Service) WithCache(c ResultCache) *Service {
	s.cache = c
	return s
}

// Search runs the pipeline for rawQuery. The snapshot is read once, so a
// concurrent reload never changes the catalog mid-search.
func (s *Service) Search(ctx context.Context, rawQuery string) (result.Result, error) {
	if len(rawQuery) > domain.MaxQueryLength {
		return result.Result{}, fmt.Errorf("%w (max %d bytes)", domain.ErrQueryTooLong, domain.MaxQueryLength)
	}

	start := time.Now()
	snap := s.catalog.Current()

	var key string
	if s.cache != nil {
		key = cacheKey(snap.Version(), Normalize(rawQuery))
		if res, ok := s.cache.Get(key); ok {
			metrics.QueryCacheTotal.WithLabelValues("hit").Inc()
			s.observe(ctx, rawQuery, &res, snap.Version(), start, true)
			return res, nil
		}
		metrics.QueryCacheTotal.WithLabelValues("miss").Inc()
	}

	res := s.engine.Search(snap.Products(), rawQuery)
	if s.cache != nil {
		s.cache.Set(key, res)
	}
	s.observe(ctx, rawQuery, &res, snap.Version(), start, false)

	return res, nil
}

// observe records metrics and the debug line for every answered search, cached or not.
func (s *Service) observe(
	ctx context.Context, rawQuery string, res *result.Result, version uint64, start time.Time, cached bool,
) {
	elapsed := time.Since(start)
	metrics.ObserveSearch(string(res.Intent()), string(res.Phase()), res.Len(), elapsed)
	logpkg.FromContext(ctx).Debug("search completed",
		zap.String("query", rawQuery),
		zap.String("intent", string(res.Intent())),
		zap.String("phase", string(res.Phase())),
		zap.Strings("variants", res.Variants()),
		zap.Int("results", res.Len()),
		zap.Bool("cached", cached),
		zap.Uint64("catalog_version", version),
		zap.Duration("latency", elapsed),
	)
}

func cacheKey(version uint64, normalized string) string {
	return strconv.FormatUint(version, 10) + ":" + normalized
}
