package product

// Product is a catalog entry (immutable value object).
// Optional fields are empty strings when absent.
type Product struct {
	code        string
	name        string
	category    string
	description string
}

// New creates a Product. No validation: an empty code or name is kept as-is.
func New(code, name, category, description string) Product {
	return Product{code: code, name: name, category: category, description: description}
}

// Code returns the product identifier.
func (p *Product) Code() string { return p.code }

// Name returns the product name.
func (p *Product) Name() string { return p.name }

// Category returns the product category (may be empty).
func (p *Product) Category() string { return p.category }

// Description returns the product description (may be empty).
func (p *Product) Description() string { return p.description }
