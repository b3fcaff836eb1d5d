package partsearch

import "github.com/kailas-cloud/partsearch/internal/domain/product"

// Product is a catalog entry. Code identifies the product; the other
// fields are free text and may be empty.
type Product struct {
	Code        string
	Name        string
	Category    string
	Description string
}

func (p Product) toDomain() product.Product {
	return product.New(p.Code, p.Name, p.Category, p.Description)
}

func fromDomain(p *product.Product) Product {
	return Product{
		Code:        p.Code(),
		Name:        p.Name(),
		Category:    p.Category(),
		Description: p.Description(),
	}
}
