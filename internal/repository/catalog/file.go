package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kailas-cloud/partsearch/internal/domain/product"
)

// FileLoader reads a catalog from a local JSON or YAML file.
type FileLoader struct {
	path string
}

// NewFileLoader creates a FileLoader. The format follows the file extension;
// anything other than .yaml/.yml is parsed as JSON.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Source implements usecase/catalog.Loader.
func (l *FileLoader) Source() string { return "file:" + l.path }

// Load reads and decodes the whole file.
func (l *FileLoader) Load(ctx context.Context) ([]product.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Decode(l.path, data)
}

// Decode picks the decoder by file name extension.
func Decode(name string, data []byte) ([]product.Product, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return DecodeYAML(data)
	default:
		return DecodeJSON(data)
	}
}
