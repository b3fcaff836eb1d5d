package partsearch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/partsearch/internal/db"
	dbRedis "github.com/kailas-cloud/partsearch/internal/db/redis"
	domdict "github.com/kailas-cloud/partsearch/internal/domain/dictionary"
	"github.com/kailas-cloud/partsearch/internal/domain/product"
	"github.com/kailas-cloud/partsearch/internal/domain/search/result"
	catalogrepo "github.com/kailas-cloud/partsearch/internal/repository/catalog"
	dictrepo "github.com/kailas-cloud/partsearch/internal/repository/dictionary"
	"github.com/kailas-cloud/partsearch/internal/repository/querycache"
	catalogsvc "github.com/kailas-cloud/partsearch/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/partsearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/partsearch/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

var errNoSource = errors.New(
	"partsearch: catalog source required (use WithCatalogFile, WithValkey, WithRedis or WithProducts)",
)

type searchUseCase interface {
	Search(ctx context.Context, rawQuery string) (result.Result, error)
}

// Client is the partsearch entry point. It is safe for concurrent use.
type Client struct {
	store     db.Store // nil unless the catalog lives in Valkey/Redis
	catalog   *catalogsvc.Service
	searchSvc searchUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New creates a Client and loads the catalog. Exactly one catalog source
// must be configured. The provided context bounds the store readiness
// check and the first load.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	var store db.Store
	if cfg.driver != "" {
		s, err := createStore(cfg)
		if err != nil {
			return nil, err
		}
		if err := s.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
			s.Close()
			return nil, fmt.Errorf("partsearch: database not ready: %w", err)
		}
		store = s
	}

	c, err := wireClient(ctx, store, cfg)
	if err != nil && store != nil {
		store.Close()
	}
	return c, err
}

func validate(cfg *clientConfig) error {
	sources := 0
	if cfg.catalogFile != "" {
		sources++
	}
	if cfg.driver != "" {
		sources++
	}
	if cfg.hasProducts {
		sources++
	}
	switch {
	case sources == 0:
		return errNoSource
	case sources > 1:
		return errors.New("partsearch: more than one catalog source configured")
	case cfg.driver != "" && cfg.key == "":
		return errors.New("partsearch: catalog key required")
	}
	return nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "valkey", "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("partsearch: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("partsearch: unknown driver %q", cfg.driver)
	}
}

func wireClient(ctx context.Context, store db.Store, cfg *clientConfig) (*Client, error) {
	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	dict := domdict.Default()
	if cfg.dictionaryFile != "" {
		dict, err = dictrepo.LoadFile(cfg.dictionaryFile)
		if err != nil {
			return nil, fmt.Errorf("partsearch: %w", err)
		}
	}

	var loader catalogsvc.Loader
	switch {
	case store != nil:
		loader = catalogrepo.NewKVLoader(store, cfg.key)
	case cfg.catalogFile != "":
		loader = catalogrepo.NewFileLoader(cfg.catalogFile)
	default:
		loader = newStaticLoader(cfg.products)
	}

	var (
		cache        *querycache.Cache
		invalidators []catalogsvc.Invalidator
	)
	if cfg.cacheTTL > 0 {
		cache = querycache.New(cfg.cacheTTL, 2*cfg.cacheTTL)
		invalidators = append(invalidators, cache)
	}
	catalog := catalogsvc.New(loader, invalidators...)
	searchSvc := searchuc.New(catalog, searchuc.NewEngine(dict))
	if cache != nil {
		searchSvc.WithCache(cache)
	}

	// Pass nil interface (not typed nil pointer) when there is no store.
	var pinger healthuc.StorePinger
	if store != nil {
		pinger = store
	}

	c := &Client{
		store:     store,
		catalog:   catalog,
		searchSvc: searchSvc,
		healthSvc: healthuc.New(catalog, pinger),
		obs:       obs,
	}

	if err := c.Reload(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Search returns up to five products matching query, best first, unique by
// code. An empty or unmatched query yields an empty slice and no error.
func (c *Client) Search(ctx context.Context, query string) (_ []Product, err error) {
	start := time.Now()
	var res result.Result
	defer func() {
		c.obs.observe("search", start, err,
			"phase", string(res.Phase()),
			"results", res.Len(),
		)
	}()

	res, err = c.searchSvc.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	found := res.Products()
	out := make([]Product, 0, len(found))
	for i := range found {
		out = append(out, fromDomain(&found[i]))
	}
	return out, nil
}

// Reload re-reads the catalog source. On failure the previously loaded
// catalog keeps serving searches and the error wraps ErrCatalogLoad.
func (c *Client) Reload(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("reload", start, err) }()

	snap, err := c.catalog.Reload(ctx)
	if err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	if c.obs.logger != nil {
		c.obs.logger.Info("catalog loaded",
			"source", snap.Source(),
			"products", snap.Len(),
			"version", snap.Version(),
		)
	}
	return nil
}

// staticLoader serves a fixed product list.
type staticLoader struct {
	products []product.Product
}

func newStaticLoader(products []Product) *staticLoader {
	out := make([]product.Product, 0, len(products))
	for _, p := range products {
		out = append(out, p.toDomain())
	}
	return &staticLoader{products: out}
}

func (l *staticLoader) Source() string { return "memory" }

func (l *staticLoader) Load(_ context.Context) ([]product.Product, error) {
	out := make([]product.Product, len(l.products))
	copy(out, l.products)
	return out, nil
}
