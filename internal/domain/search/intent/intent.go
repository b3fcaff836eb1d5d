package intent

// Intent is the inferred purpose of a query; it selects the scoring weights.
type Intent string

// Intent constants.
const (
	// Code means the query looks like a (partial) product code.
	Code     Intent = "CODE"
	Product  Intent = "PRODUCT"
	Category Intent = "CATEGORY"
)

// Weights are the per-field multipliers applied by the scorer.
type Weights struct {
	Code     float64
	Name     float64
	Category float64
}

// Weights returns the field weights for the intent. Unknown intents use Product weights.
func (i Intent) Weights() Weights {
	switch i {
	case Code:
		return Weights{Code: 3.0, Name: 1.0, Category: 0.3}
	case Category:
		return Weights{Code: 0.5, Name: 1.5, Category: 3.0}
	default:
		return Weights{Code: 1.0, Name: 3.0, Category: 1.0}
	}
}
