package dictionary

// Correction rewrites a known misspelling.
type Correction struct {
	From string
	To   string
}

// SynonymSet links a canonical term to its registered synonyms.
type SynonymSet struct {
	Term     string
	Synonyms []string
}

// Dictionary holds the correction and synonym tables.
// Iteration order is declaration order and is part of the search semantics:
// corrections are applied last-match-wins and variants are generated in this order.
// A Dictionary is never modified after construction.
type Dictionary struct {
	corrections []Correction
	synonyms    []SynonymSet
}

// New creates a Dictionary from copies of the given tables.
func New(corrections []Correction, synonyms []SynonymSet) *Dictionary {
	c := make([]Correction, len(corrections))
	copy(c, corrections)

	s := make([]SynonymSet, len(synonyms))
	for i, set := range synonyms {
		syns := make([]string, len(set.Synonyms))
		copy(syns, set.Synonyms)
		s[i] = SynonymSet{Term: set.Term, Synonyms: syns}
	}

	return &Dictionary{corrections: c, synonyms: s}
}

// Corrections returns the correction table. Callers must not modify it.
func (d *Dictionary) Corrections() []Correction { return d.corrections }

// Synonyms returns the synonym table. Callers must not modify it.
func (d *Dictionary) Synonyms() []SynonymSet { return d.synonyms }

// Len returns the number of corrections and synonym sets.
func (d *Dictionary) Len() (corrections, synonyms int) {
	return len(d.corrections), len(d.synonyms)
}
