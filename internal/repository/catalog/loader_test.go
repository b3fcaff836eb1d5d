package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kailas-cloud/partsearch/internal/db"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestFileLoader_JSON(t *testing.T) {
	path := writeFile(t, "products.json", `[{"code":"AB12","name":"Switch"}]`)
	l := NewFileLoader(path)

	products, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 || products[0].Code() != "AB12" {
		t.Errorf("unexpected products: %v", products)
	}
	if l.Source() != "file:"+path {
		t.Errorf("unexpected source %q", l.Source())
	}
}

func TestFileLoader_YAML(t *testing.T) {
	for _, name := range []string{"products.yaml", "products.YML"} {
		path := writeFile(t, name, "products:\n  - code: AB12\n    name: Switch\n")

		products, err := NewFileLoader(path).Load(context.Background())
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if len(products) != 1 || products[0].Name() != "Switch" {
			t.Errorf("%s: unexpected products: %v", name, products)
		}
	}
}

func TestFileLoader_Missing(t *testing.T) {
	l := NewFileLoader(filepath.Join(t.TempDir(), "nope.json"))

	_, err := l.Load(context.Background())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestFileLoader_CanceledContext(t *testing.T) {
	path := writeFile(t, "products.json", `[]`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewFileLoader(path).Load(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestKVLoader_Success(t *testing.T) {
	kv := &mockKVReader{data: map[string][]byte{
		"partsearch:catalog": []byte(`{"products":[{"code":"K1","name":"Cavo"}]}`),
	}}
	l := NewKVLoader(kv, "partsearch:catalog")

	products, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 || products[0].Code() != "K1" {
		t.Errorf("unexpected products: %v", products)
	}
	if kv.lastKey != "partsearch:catalog" {
		t.Errorf("unexpected key %q", kv.lastKey)
	}
	if l.Source() != "kv:partsearch:catalog" {
		t.Errorf("unexpected source %q", l.Source())
	}
}

func TestKVLoader_NotFound(t *testing.T) {
	l := NewKVLoader(&mockKVReader{}, "missing")

	_, err := l.Load(context.Background())
	if !errors.Is(err, db.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestKVLoader_StoreError(t *testing.T) {
	cause := &db.Error{Op: db.OpGet, Err: context.DeadlineExceeded}
	l := NewKVLoader(&mockKVReader{err: cause}, "k")

	_, err := l.Load(context.Background())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected wrapped cause, got %v", err)
	}
}

func TestKVLoader_BadDocument(t *testing.T) {
	l := NewKVLoader(&mockKVReader{data: map[string][]byte{"k": []byte("not json")}}, "k")

	if _, err := l.Load(context.Background()); err == nil {
		t.Error("expected decode error")
	}
}
