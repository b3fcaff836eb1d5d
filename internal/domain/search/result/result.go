package result

import (
	"github.com/kailas-cloud/partsearch/internal/domain/product"
	"github.com/kailas-cloud/partsearch/internal/domain/search/intent"
)

// Phase names the retrieval step that produced the final result set.
type Phase string

// Phase constants, in cascade order.
const (
	PhaseNone        Phase = "none"
	PhaseExactCode   Phase = "exact_code"
	PhaseConfident   Phase = "code_confident"
	PhaseCode        Phase = "code"
	PhaseName        Phase = "name"
	PhaseMultiToken  Phase = "multi_token"
	PhaseCategory    Phase = "category"
	PhaseDescription Phase = "description"
	PhaseToken       Phase = "token"
)

// Result is the outcome of one search call.
type Result struct {
	products []product.Product
	intent   intent.Intent
	phase    Phase
	variants []string
}

// New creates a search result.
func New(products []product.Product, in intent.Intent, phase Phase, variants []string) Result {
	return Result{products: products, intent: in, phase: phase, variants: variants}
}

// Products returns the ranked products (at most five, unique by code).
func (r *Result) Products() []product.Product { return r.products }

// Intent returns the classified query intent. Empty for empty queries.
func (r *Result) Intent() intent.Intent { return r.intent }

// Phase returns the retrieval step that produced the products.
func (r *Result) Phase() Phase { return r.phase }

// Variants returns the candidate queries that were searched, original first.
func (r *Result) Variants() []string { return r.variants }

// Len returns the number of products.
func (r *Result) Len() int { return len(r.products) }
