package dictionary

import (
	"strings"
	"testing"
)

func TestNew_CopiesInput(t *testing.T) {
	corrections := []Correction{{From: "abc", To: "abd"}}
	synonyms := []SynonymSet{{Term: "cavo", Synonyms: []string{"cable"}}}

	d := New(corrections, synonyms)
	corrections[0].To = "changed"
	synonyms[0].Synonyms[0] = "changed"

	if d.Corrections()[0].To != "abd" {
		t.Errorf("correction mutated through input slice: %q", d.Corrections()[0].To)
	}
	if d.Synonyms()[0].Synonyms[0] != "cable" {
		t.Errorf("synonym mutated through input slice: %q", d.Synonyms()[0].Synonyms[0])
	}
}

func TestDefault_Order(t *testing.T) {
	d := Default()
	c, s := d.Len()
	if c == 0 || s == 0 {
		t.Fatalf("default dictionary is empty: corrections=%d synonyms=%d", c, s)
	}
	if d.Synonyms()[0].Term != "interruttore" {
		t.Errorf("first synonym term = %q, want interruttore", d.Synonyms()[0].Term)
	}
}

func TestDefault_MisspellingsNotInCorrectWords(t *testing.T) {
	d := Default()
	for _, c := range d.Corrections() {
		if strings.Contains(c.To, c.From) {
			t.Errorf("correction %q -> %q would rewrite the correct spelling", c.From, c.To)
		}
		for _, set := range d.Synonyms() {
			if strings.Contains(set.Term, c.From) {
				t.Errorf("misspelling %q occurs inside synonym term %q", c.From, set.Term)
			}
		}
	}
}
