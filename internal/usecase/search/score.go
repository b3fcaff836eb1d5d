package search

import (
	"strings"

	"github.com/kailas-cloud/partsearch/internal/domain/product"
	"github.com/kailas-cloud/partsearch/internal/domain/search/intent"
)

// Score tiers, multiplied by the intent weight of the matched field.
const (
	scoreCodeExact     = 10000
	scoreCodePrefix    = 5000
	scoreCodeSubstring = 2500
	scoreCodeFuzzy     = 1200

	scoreNameExact     = 3000
	scoreNamePrefix    = 1500
	scoreNameSubstring = 800
	scoreNameFuzzy     = 400

	scoreCategory = 600

	tokenBonusCode        = 300
	tokenBonusName        = 150
	tokenBonusCategory    = 100
	tokenBonusDescription = 50

	descriptionFallbackBelow = 500
	scoreDescription         = 200
)

// minFuzzyLength is the shortest pattern eligible for the one-substitution check.
const minFuzzyLength = 3

// entry is a product with its searchable fields normalized.
type entry struct {
	product     *product.Product
	code        string
	name        string
	category    string
	description string
}

func newEntry(p *product.Product) entry {
	return entry{
		product:     p,
		code:        Normalize(p.Code()),
		name:        Normalize(p.Name()),
		category:    Normalize(p.Category()),
		description: Normalize(p.Description()),
	}
}

// prepare normalizes every product once per search call.
func prepare(products []product.Product) []entry {
	entries := make([]entry, len(products))
	for i := range products {
		entries[i] = newEntry(&products[i])
	}
	return entries
}

// ScoreProduct computes the relevance of p for a normalized query.
// tokens are the whitespace tokens of the original query; intent selects field weights.
func ScoreProduct(p product.Product, query string, tokens []string, in intent.Intent) float64 {
	e := newEntry(&p)
	return scoreEntry(&e, query, tokens, in)
}

func scoreEntry(e *entry, query string, tokens []string, in intent.Intent) float64 {
	if query == "" {
		return 0
	}
	w := in.Weights()

	if e.code == query {
		return scoreCodeExact * w.Code
	}

	var score float64

	switch {
	case strings.HasPrefix(e.code, query):
		score += scoreCodePrefix * w.Code
	case strings.Contains(e.code, query):
		score += scoreCodeSubstring * w.Code
	case FuzzyMatch(e.code, query):
		score += scoreCodeFuzzy * w.Code
	}

	switch {
	case e.name == query:
		score += scoreNameExact * w.Name
	case strings.HasPrefix(e.name, query):
		score += scoreNamePrefix * w.Name
	case strings.Contains(e.name, query):
		score += scoreNameSubstring * w.Name
	case FuzzyMatch(e.name, query):
		score += scoreNameFuzzy * w.Name
	}

	if strings.Contains(e.category, query) {
		score += scoreCategory * w.Category
	}

	if len(tokens) >= 2 {
		score += tokenBonus(e, tokens, w)
	}

	if score < descriptionFallbackBelow && strings.Contains(e.description, query) {
		score += scoreDescription
	}

	return score
}

// tokenBonus rewards each token by the most important field it occurs in.
// The bonus doubles when every token matched somewhere.
func tokenBonus(e *entry, tokens []string, w intent.Weights) float64 {
	var bonus float64
	matched := 0
	for _, tok := range tokens {
		switch {
		case strings.Contains(e.code, tok):
			bonus += tokenBonusCode * w.Code
		case strings.Contains(e.name, tok):
			bonus += tokenBonusName * w.Name
		case strings.Contains(e.category, tok):
			bonus += tokenBonusCategory * w.Category
		case strings.Contains(e.description, tok):
			bonus += tokenBonusDescription
		default:
			continue
		}
		matched++
	}
	if matched == len(tokens) {
		bonus *= 2
	}
	return bonus
}

// FuzzyMatch reports whether pattern occurs in haystack, either verbatim or, for
// patterns of at least three runes, in an equal-length window that differs in at
// most one aligned position. Insertions and deletions are not tolerated.
func FuzzyMatch(haystack, pattern string) bool {
	if strings.Contains(haystack, pattern) {
		return true
	}

	p := []rune(pattern)
	if len(p) < minFuzzyLength {
		return false
	}
	h := []rune(haystack)

	for start := 0; start+len(p) <= len(h); start++ {
		diff := 0
		for i := range p {
			if h[start+i] != p[i] {
				diff++
				if diff > 1 {
					break
				}
			}
		}
		if diff <= 1 {
			return true
		}
	}
	return false
}
