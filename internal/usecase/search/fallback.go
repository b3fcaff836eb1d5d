package search

import (
	"sort"
	"strings"

	"github.com/kailas-cloud/partsearch/internal/domain/product"
	"github.com/kailas-cloud/partsearch/internal/domain/search/intent"
	"github.com/kailas-cloud/partsearch/internal/domain/search/result"
)

// Cascade limits. Early stops make each phase an approximate top-k.
const (
	maxResults = 5

	codeEarlyStopCount = 3
	codeEarlyStopScore = 2500
	confidentScore     = 5000

	nameScanCap = 10

	broadenMinScore = 300
	broadenCap      = 15

	categoryBelow = 3
	categoryCap   = 10

	descriptionBelow    = 2
	descriptionMinQuery = 4
	descriptionCap      = 10

	tokenMinLength = 3
	tokenScanCap   = 5
	tokenScore     = 100
)

type scored struct {
	entry *entry
	score float64
}

// accumulator collects candidates across phases, one per product code,
// keeping the highest score seen for each.
type accumulator struct {
	items []scored
	index map[string]int
}

func newAccumulator() *accumulator {
	return &accumulator{index: make(map[string]int)}
}

func (a *accumulator) add(e *entry, score float64) {
	key := e.product.Code()
	if i, ok := a.index[key]; ok {
		if score > a.items[i].score {
			a.items[i].score = score
		}
		return
	}
	a.index[key] = len(a.items)
	a.items = append(a.items, scored{entry: e, score: score})
}

func (a *accumulator) has(e *entry) bool {
	_, ok := a.index[e.product.Code()]
	return ok
}

func (a *accumulator) len() int { return len(a.items) }

func (a *accumulator) hasScoreAtLeast(threshold float64) bool {
	for _, it := range a.items {
		if it.score >= threshold {
			return true
		}
	}
	return false
}

// best returns the highest-scored item; ties keep the earliest accumulated.
func (a *accumulator) best() (scored, bool) {
	if len(a.items) == 0 {
		return scored{}, false
	}
	top := a.items[0]
	for _, it := range a.items[1:] {
		if it.score > top.score {
			top = it
		}
	}
	return top, true
}

// ranked returns up to limit products by descending score; ties keep accumulation order.
func (a *accumulator) ranked(limit int) []product.Product {
	items := make([]scored, len(a.items))
	copy(items, a.items)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].score > items[j].score
	})
	if len(items) > limit {
		items = items[:limit]
	}

	out := make([]product.Product, len(items))
	for i, it := range items {
		out[i] = *it.entry.product
	}
	return out
}

// searchWithFallback runs the retrieval cascade over the catalog. variants[0] is
// the primary query; its tokens drive the multi-token bonus and the late phases.
func searchWithFallback(
	products []product.Product, variants []string, in intent.Intent,
) ([]product.Product, result.Phase) {
	if len(products) == 0 || len(variants) == 0 {
		return []product.Product{}, result.PhaseNone
	}

	entries := prepare(products)
	primary := variants[0]
	tokens := strings.Fields(primary)

	// An exact code match is authoritative for every variant.
	for _, v := range variants {
		for i := range entries {
			if entries[i].code == v {
				return []product.Product{products[i]}, result.PhaseExactCode
			}
		}
	}

	acc := newAccumulator()
	phase := result.PhaseNone

	for _, v := range variants {
		for i := range entries {
			e := &entries[i]
			if !strings.Contains(e.code, v) {
				continue
			}
			acc.add(e, scoreEntry(e, v, tokens, in))
			phase = result.PhaseCode
			if acc.len() >= codeEarlyStopCount && acc.hasScoreAtLeast(codeEarlyStopScore) {
				break
			}
		}
		// Earlier variants' name matches count toward confidence too.
		if top, ok := acc.best(); ok && top.score >= confidentScore {
			return []product.Product{*top.entry.product}, result.PhaseConfident
		}

		if acc.len() < maxResults {
			for i := range entries {
				e := &entries[i]
				if acc.has(e) || !FuzzyMatch(e.name, v) {
					continue
				}
				if s := scoreEntry(e, v, tokens, in); s > 0 {
					acc.add(e, s)
					phase = result.PhaseName
				}
				if acc.len() >= nameScanCap {
					break
				}
			}
		}

		if acc.len() >= maxResults {
			break
		}
	}

	if acc.len() < maxResults && len(tokens) >= 2 {
		for i := range entries {
			e := &entries[i]
			if acc.has(e) {
				continue
			}
			if s := scoreEntry(e, primary, tokens, in); s >= broadenMinScore {
				acc.add(e, s)
				phase = result.PhaseMultiToken
			}
			if acc.len() >= broadenCap {
				break
			}
		}
	}

	if acc.len() < categoryBelow {
		for i := range entries {
			e := &entries[i]
			if acc.has(e) || !strings.Contains(e.category, primary) {
				continue
			}
			acc.add(e, scoreEntry(e, primary, tokens, in))
			phase = result.PhaseCategory
			if acc.len() >= categoryCap {
				break
			}
		}
	}

	if acc.len() < descriptionBelow && len(primary) > descriptionMinQuery {
		for i := range entries {
			e := &entries[i]
			if acc.has(e) || !strings.Contains(e.description, primary) {
				continue
			}
			acc.add(e, scoreEntry(e, primary, tokens, in))
			phase = result.PhaseDescription
			if acc.len() >= descriptionCap {
				break
			}
		}
	}

	if acc.len() == 0 && len(tokens) >= 2 {
		for _, tok := range tokens {
			if len(tok) < tokenMinLength {
				continue
			}
			if found := scanToken(acc, entries, tok); found > 0 {
				phase = result.PhaseToken
				break
			}
		}
	}

	return acc.ranked(maxResults), phase
}

// scanToken adds up to tokenScanCap unmatched products containing tok in code,
// name or category, at a fixed low score. It returns how many were added.
func scanToken(acc *accumulator, entries []entry, tok string) int {
	found := 0
	for i := range entries {
		e := &entries[i]
		if acc.has(e) {
			continue
		}
		if strings.Contains(e.code, tok) || strings.Contains(e.name, tok) || strings.Contains(e.category, tok) {
			acc.add(e, tokenScore)
			found++
			if found >= tokenScanCap {
				break
			}
		}
	}
	return found
}
