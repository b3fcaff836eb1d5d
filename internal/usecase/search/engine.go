package search

import (
	"slices"
	"strings"

	"github.com/kailas-cloud/partsearch/internal/domain/dictionary"
	"github.com/kailas-cloud/partsearch/internal/domain/product"
	"github.com/kailas-cloud/partsearch/internal/domain/search/result"
)

// Engine runs the query pipeline against a catalog using a fixed dictionary.
// An Engine is immutable and safe for concurrent use.
type Engine struct {
	corrections []dictionary.Correction
	synonyms    []dictionary.SynonymSet
}

var defaultEngine = NewEngine(dictionary.Default())

// NewEngine creates an Engine. Dictionary entries are normalized the same way
// queries are; entries that normalize to nothing are dropped. nil uses the built-in dictionary.
func NewEngine(dict *dictionary.Dictionary) *Engine {
	if dict == nil {
		dict = dictionary.Default()
	}

	e := &Engine{}
	for _, c := range dict.Corrections() {
		from := Normalize(c.From)
		if from == "" {
			continue
		}
		e.corrections = append(e.corrections, dictionary.Correction{From: from, To: Normalize(c.To)})
	}
	for _, set := range dict.Synonyms() {
		term := Normalize(set.Term)
		if term == "" {
			continue
		}
		syns := make([]string, 0, len(set.Synonyms))
		for _, s := range set.Synonyms {
			if n := Normalize(s); n != "" && n != term {
				syns = append(syns, n)
			}
		}
		e.synonyms = append(e.synonyms, dictionary.SynonymSet{Term: term, Synonyms: syns})
	}
	return e
}

// AutoCorrect rewrites known misspellings in a normalized query.
// Each matching entry rewrites the input query from scratch, so only the
// last matching entry in dictionary order takes effect.
func (e *Engine) AutoCorrect(query string) string {
	corrected := query
	for _, c := range e.corrections {
		if strings.Contains(query, c.From) {
			corrected = strings.ReplaceAll(query, c.From, c.To)
		}
	}
	return corrected
}

// ExpandWithSynonyms returns the query followed by every variant obtained by
// swapping a dictionary term for its synonyms and a synonym for its term.
// Variants are unique and ordered by dictionary order, then synonym order.
func (e *Engine) ExpandWithSynonyms(query string) []string {
	variants := []string{query}
	seen := map[string]struct{}{query: {}}
	add := func(v string) {
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		variants = append(variants, v)
	}

	for _, set := range e.synonyms {
		if strings.Contains(query, set.Term) {
			for _, syn := range set.Synonyms {
				add(strings.ReplaceAll(query, set.Term, syn))
			}
		}
		for _, syn := range set.Synonyms {
			if strings.Contains(query, syn) {
				add(strings.ReplaceAll(query, syn, set.Term))
			}
		}
	}
	return variants
}

// Search runs the full pipeline and reports how the products were found.
func (e *Engine) Search(products []product.Product, rawQuery string) result.Result {
	query := Normalize(rawQuery)
	if query == "" {
		return result.New([]product.Product{}, "", result.PhaseNone, nil)
	}

	in := ClassifyIntent(query)
	corrected := e.AutoCorrect(query)
	variants := e.ExpandWithSynonyms(corrected)
	// A code typed verbatim must still hit exactly even if a correction rewrote it.
	if corrected != query && !slices.Contains(variants, query) {
		variants = append(variants, query)
	}

	found, phase := searchWithFallback(products, variants, in)
	return result.New(found, in, phase, variants)
}

// SearchProducts returns at most five products best matching rawQuery, unique by code.
func (e *Engine) SearchProducts(products []product.Product, rawQuery string) []product.Product {
	res := e.Search(products, rawQuery)
	return res.Products()
}

// SearchProducts runs the pipeline with the built-in dictionary.
func SearchProducts(products []product.Product, rawQuery string) []product.Product {
	return defaultEngine.SearchProducts(products, rawQuery)
}
