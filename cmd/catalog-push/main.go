// Command catalog-push validates a catalog file and publishes it to the
// Valkey/Redis key the service reads when catalog.source is kv.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/kailas-cloud/partsearch/internal/config"
	"github.com/kailas-cloud/partsearch/internal/db"
	dbRedis "github.com/kailas-cloud/partsearch/internal/db/redis"
	logpkg "github.com/kailas-cloud/partsearch/internal/logger"
	catalogrepo "github.com/kailas-cloud/partsearch/internal/repository/catalog"
	"github.com/kailas-cloud/partsearch/internal/version"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "catalog-push:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "catalog-push",
		Usage:   "Validate a product catalog and store it in Valkey/Redis",
		Version: version.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env",
				Aliases: []string{"e"},
				Usage:   "Config environment (config/<env>.yaml)",
				EnvVars: []string{"ENV"},
				Value:   "local",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Catalog file (.json, .yaml, .yml); defaults to catalog.path",
			},
			&cli.StringFlag{
				Name:    "key",
				Aliases: []string{"k"},
				Usage:   "Target key; defaults to catalog.key",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Validate the file without writing",
			},
		},
		Action: pushCommand,
	}
}

func pushCommand(c *cli.Context) error {
	env := c.String("env")
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logpkg.NewLogger(env, logpkg.Options{Level: cfg.Logging.Level})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	path := c.String("file")
	if path == "" {
		path = cfg.Catalog.Path
	}
	key := c.String("key")
	if key == "" {
		key = cfg.Catalog.Key
	}

	doc, count, err := prepare(path)
	if err != nil {
		return err
	}
	logger.Info("Catalog validated", zap.String("file", path), zap.Int("products", count))

	if c.Bool("dry-run") {
		return nil
	}
	if len(cfg.Database.Addrs) == 0 {
		return fmt.Errorf("database.addrs is required to push")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(c.Context, time.Duration(cfg.Database.ReadinessTimeout)*time.Second)
	defer cancel()

	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		return err
	}
	if err := publish(ctx, store, key, doc); err != nil {
		return err
	}

	logger.Info("Catalog pushed",
		zap.String("key", key),
		zap.Int("products", count),
		zap.Int("bytes", len(doc)),
	)
	return nil
}

// prepare decodes the file and re-encodes it as the JSON document the KV loader expects.
func prepare(path string) ([]byte, int, error) {
	if path == "" {
		return nil, 0, fmt.Errorf("no catalog file given and catalog.path is empty")
	}
	products, err := catalogrepo.NewFileLoader(path).Load(context.Background())
	if err != nil {
		return nil, 0, fmt.Errorf("validate %s: %w", path, err)
	}
	if len(products) == 0 {
		return nil, 0, fmt.Errorf("validate %s: no products", path)
	}
	doc, err := catalogrepo.EncodeJSON(products)
	if err != nil {
		return nil, 0, err
	}
	return doc, len(products), nil
}

func publish(ctx context.Context, store db.KVStore, key string, doc []byte) error {
	if err := store.Set(ctx, key, doc); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
