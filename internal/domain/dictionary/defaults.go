package dictionary

// Built-in tables for an electrical parts catalog.
// Misspellings must never be substrings of correctly spelled words.
var (
	defaultCorrections = []Correction{
		{From: "lampadins", To: "lampadina"},
		{From: "lampadian", To: "lampadina"},
		{From: "interutore", To: "interruttore"},
		{From: "interrutore", To: "interruttore"},
		{From: "interuttore", To: "interruttore"},
		{From: "magnetotermco", To: "magnetotermico"},
		{From: "differenzale", To: "differenziale"},
		{From: "trasformatre", To: "trasformatore"},
		{From: "deviatre", To: "deviatore"},
		{From: "plafonera", To: "plafoniera"},
		{From: "farretto", To: "faretto"},
		{From: "morsseto", To: "morsetto"},
	}

	defaultSynonyms = []SynonymSet{
		{Term: "interruttore", Synonyms: []string{"switch", "pulsante"}},
		{Term: "lampadina", Synonyms: []string{"lampada", "bulb"}},
		{Term: "presa", Synonyms: []string{"socket", "spina"}},
		{Term: "cavo", Synonyms: []string{"cable", "filo"}},
		{Term: "differenziale", Synonyms: []string{"salvavita"}},
		{Term: "quadro", Synonyms: []string{"centralino", "panel"}},
		{Term: "faretto", Synonyms: []string{"spot", "incasso"}},
		{Term: "morsetto", Synonyms: []string{"terminal", "morsettiera"}},
		{Term: "trasformatore", Synonyms: []string{"alimentatore", "transformer"}},
	}
)

// Default returns the built-in dictionary.
func Default() *Dictionary {
	return New(defaultCorrections, defaultSynonyms)
}
