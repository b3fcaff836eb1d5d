// Package dictionary loads correction and synonym tables from YAML.
//
// The file has two optional top-level mappings whose key order is significant:
//
//	corrections:
//	  lampadins: lampadina
//	synonyms:
//	  interruttore: [switch, pulsante]
package dictionary

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	domdict "github.com/kailas-cloud/partsearch/internal/domain/dictionary"
)

// LoadFile reads and decodes a dictionary file.
func LoadFile(path string) (*domdict.Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	dict, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("dictionary %s: %w", path, err)
	}
	return dict, nil
}

// Decode parses a dictionary document, keeping entries in document order.
// An empty document yields an empty dictionary.
func Decode(data []byte) (*domdict.Dictionary, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(root.Content) == 0 {
		return domdict.New(nil, nil), nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: top level must be a mapping", doc.Line)
	}

	var (
		corrections []domdict.Correction
		synonyms    []domdict.SynonymSet
	)
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, val := doc.Content[i], doc.Content[i+1]
		var err error
		switch key.Value {
		case "corrections":
			corrections, err = decodeCorrections(val)
		case "synonyms":
			synonyms, err = decodeSynonyms(val)
		default:
			err = fmt.Errorf("line %d: unknown section %q", key.Line, key.Value)
		}
		if err != nil {
			return nil, err
		}
	}

	return domdict.New(corrections, synonyms), nil
}

func decodeCorrections(node *yaml.Node) ([]domdict.Correction, error) {
	if isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: corrections must be a mapping", node.Line)
	}

	out := make([]domdict.Correction, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		from, to := node.Content[i], node.Content[i+1]
		if to.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: correction for %q must be a string", to.Line, from.Value)
		}
		out = append(out, domdict.Correction{From: from.Value, To: to.Value})
	}
	return out, nil
}

func decodeSynonyms(node *yaml.Node) ([]domdict.SynonymSet, error) {
	if isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: synonyms must be a mapping", node.Line)
	}

	out := make([]domdict.SynonymSet, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		term, val := node.Content[i], node.Content[i+1]
		var syns []string
		switch val.Kind {
		case yaml.ScalarNode:
			if !isNull(val) {
				syns = []string{val.Value}
			}
		case yaml.SequenceNode:
			if err := val.Decode(&syns); err != nil {
				return nil, fmt.Errorf("line %d: synonyms of %q: %w", val.Line, term.Value, err)
			}
		default:
			return nil, fmt.Errorf("line %d: synonyms of %q must be a list", val.Line, term.Value)
		}
		out = append(out, domdict.SynonymSet{Term: term.Value, Synonyms: syns})
	}
	return out, nil
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}
