package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/partsearch/internal/domain"
	domcat "github.com/kailas-cloud/partsearch/internal/domain/catalog"
	logpkg "github.com/kailas-cloud/partsearch/internal/logger"
	"github.com/kailas-cloud/partsearch/internal/metrics"
)

// Service owns the active catalog snapshot.
type Service struct {
	loader       Loader
	invalidators []Invalidator

	current atomic.Pointer[domcat.Snapshot]
	mu      sync.Mutex // serializes reloads
	version uint64
	now     func() time.Time
}

var errNoLoader = errors.New("no catalog source configured")

// New creates a Service holding an empty snapshot until the first Reload.
func New(loader Loader, invalidators ...Invalidator) *Service {
	s := &Service{loader: loader, invalidators: invalidators, now: time.Now}
	s.current.Store(domcat.Empty())
	return s
}

// Current returns the active snapshot. Never nil.
func (s *Service) Current() *domcat.Snapshot {
	return s.current.Load()
}

// Reload reads the source and swaps in a new snapshot. On failure the
// previous snapshot stays active and the error wraps domain.ErrCatalogLoad.
func (s *Service) Reload(ctx context.Context) (*domcat.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loader == nil {
		return nil, domain.NewCatalogLoadError("none", errNoLoader)
	}

	log := logpkg.FromContext(ctx)
	source := s.loader.Source()

	products, err := s.loader.Load(ctx)
	if err != nil {
		metrics.CatalogReloadsTotal.WithLabelValues("error").Inc()
		log.Warn("catalog reload failed",
			zap.String("source", source),
			zap.Uint64("active_version", s.Current().Version()),
			zap.Error(err),
		)
		return nil, domain.NewCatalogLoadError(source, err)
	}

	s.version++
	snap := domcat.NewSnapshot(products, s.version, s.now(), source)
	s.current.Store(snap)

	for _, inv := range s.invalidators {
		inv.Flush()
	}

	metrics.CatalogReloadsTotal.WithLabelValues("ok").Inc()
	metrics.CatalogProducts.Set(float64(snap.Len()))
	log.Info("catalog reloaded",
		zap.String("source", source),
		zap.Int("products", snap.Len()),
		zap.Uint64("version", snap.Version()),
	)

	return snap, nil
}

// HealthCheck returns domain.ErrCatalogEmpty when no products are loaded.
func (s *Service) HealthCheck(_ context.Context) error {
	if s.Current().Len() == 0 {
		return fmt.Errorf("version %d: %w", s.Current().Version(), domain.ErrCatalogEmpty)
	}
	return nil
}
