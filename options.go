package partsearch

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	driver   string // "valkey" or "redis"
	addrs    []string
	password string
	key      string

	catalogFile string
	products    []Product
	hasProducts bool

	dictionaryFile string
	cacheTTL       time.Duration

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithCatalogFile loads the catalog from a .json, .yaml or .yml file.
func WithCatalogFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.catalogFile = path
	})
}

// WithValkey loads the catalog document stored under key on a Valkey instance.
func WithValkey(addr, password, key string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "valkey"
		c.addrs = []string{addr}
		c.password = password
		c.key = key
	})
}

// WithRedis loads the catalog document stored under key on a Redis instance.
func WithRedis(addr, password, key string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
		c.key = key
	})
}

// WithProducts serves a fixed in-memory catalog. The slice is copied.
func WithProducts(products []Product) Option {
	return optionFunc(func(c *clientConfig) {
		c.products = append([]Product(nil), products...)
		c.hasProducts = true
	})
}

// WithDictionaryFile replaces the built-in corrections and synonyms with
// the tables from a YAML file.
func WithDictionaryFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.dictionaryFile = path
	})
}

// WithCacheTTL caches search results for d. Zero disables the cache (default).
// A reload drops every cached result.
func WithCacheTTL(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.cacheTTL = d
	})
}

// WithLogger enables structured logging for client operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers client metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
