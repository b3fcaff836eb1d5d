package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/partsearch/internal/domain/product"
)

// looseString decodes any JSON/YAML scalar or structure; only strings keep their value.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		*s = ""
		return nil //nolint:nilerr // non-string fields decode as empty
	}
	*s = looseString(v)
	return nil
}

func (s *looseString) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!str" {
		*s = ""
		return nil
	}
	*s = looseString(node.Value)
	return nil
}

// productRow is the on-disk representation of one product.
type productRow struct {
	Code        looseString `json:"code" yaml:"code"`
	Name        looseString `json:"name" yaml:"name"`
	Category    looseString `json:"category,omitempty" yaml:"category"`
	Description looseString `json:"description,omitempty" yaml:"description"`
}

func (r productRow) toDomain() product.Product {
	return product.New(string(r.Code), string(r.Name), string(r.Category), string(r.Description))
}

// catalogDocument is the object form: {"products": [...]}.
type catalogDocument struct {
	Products []productRow `json:"products" yaml:"products"`
}

// DecodeJSON parses a catalog document: a top-level array of products or an
// object with a "products" array.
func DecodeJSON(data []byte) ([]product.Product, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty catalog document")
	}

	var rows []productRow
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return nil, fmt.Errorf("decode product array: %w", err)
		}
	case '{':
		var doc catalogDocument
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("decode catalog object: %w", err)
		}
		rows = doc.Products
	default:
		return nil, fmt.Errorf("catalog must be a JSON array or object")
	}

	return toDomain(rows), nil
}

// DecodeYAML parses a YAML catalog with the same two shapes as DecodeJSON.
func DecodeYAML(data []byte) ([]product.Product, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("empty catalog document")
	}

	var rows []productRow
	switch node := root.Content[0]; node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&rows); err != nil {
			return nil, fmt.Errorf("decode product list: %w", err)
		}
	case yaml.MappingNode:
		var doc catalogDocument
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode catalog mapping: %w", err)
		}
		rows = doc.Products
	default:
		return nil, fmt.Errorf("catalog must be a YAML list or mapping")
	}

	return toDomain(rows), nil
}

func toDomain(rows []productRow) []product.Product {
	products := make([]product.Product, len(rows))
	for i, r := range rows {
		products[i] = r.toDomain()
	}
	return products
}

// EncodeJSON renders products as an object-form catalog document.
func EncodeJSON(products []product.Product) ([]byte, error) {
	doc := catalogDocument{Products: make([]productRow, len(products))}
	for i, p := range products {
		doc.Products[i] = productRow{
			Code:        looseString(p.Code()),
			Name:        looseString(p.Name()),
			Category:    looseString(p.Category()),
			Description: looseString(p.Description()),
		}
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return data, nil
}
