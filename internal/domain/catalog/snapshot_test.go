package catalog

import (
	"testing"
	"time"

	"github.com/kailas-cloud/partsearch/internal/domain/product"
)

func TestNewSnapshot(t *testing.T) {
	now := time.Now()
	products := []product.Product{
		product.New("A1", "one", "", ""),
		product.New("A2", "two", "", ""),
	}

	s := NewSnapshot(products, 3, now, "file:products.json")

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if s.Version() != 3 {
		t.Errorf("Version() = %d, want 3", s.Version())
	}
	if !s.LoadedAt().Equal(now) {
		t.Errorf("LoadedAt() = %v, want %v", s.LoadedAt(), now)
	}
	if s.Source() != "file:products.json" {
		t.Errorf("Source() = %q", s.Source())
	}
	if s.Products()[1].Code() != "A2" {
		t.Errorf("Products()[1].Code() = %q", s.Products()[1].Code())
	}
}

func TestEmpty(t *testing.T) {
	s := Empty()
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if s.Version() != 0 {
		t.Errorf("Version() = %d, want 0", s.Version())
	}
}
