package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kailas-cloud/partsearch/internal/domain/search/intent"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "Interruttore Bipolare 16A", "interruttore bipolare 16a"},
		{"diacritics", "Lampadína  LED", "lampadina led"},
		{"uppercase diacritics", "ÀÉÎÕÜ", "aeiou"},
		{"punctuation to space", "  SW-100/B  ", "sw-100 b"},
		{"keeps dash underscore dot", "a_b.c-d", "a_b.c-d"},
		{"collapses whitespace", "\tfoo\n\n  bar ", "foo bar"},
		{"only symbols", "¿¡!?", ""},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"non latin", "ключ 12", "12"},
		{"ligature dropped", "ﬁlo", "lo"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Interruttore Bipolare 16A",
		"Lampadína  LED!!",
		"  SW-100/B  ",
		"Relè passo-passo 230V~",
		"İstanbul kablo",
		"straße",
		"ÅÄÖ ñ ç",
		"",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		query string
		want  intent.Intent
	}{
		{"ab12", intent.Code},
		{"sw-100 b", intent.Code},
		{"12345", intent.Code},
		{"123 456 789", intent.Code},
		{"interruttore", intent.Category},
		{"interruttore bipolare", intent.Product},
		{"cavo 3x2.5 rame", intent.Product},
		{"abcdefghij123456", intent.Product},
		{"switch 10a", intent.Code},
		{"", intent.Product},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyIntent(tc.query))
		})
	}
}
