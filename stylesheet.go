package desk

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// StyleSheet is a set of named StyleRules classes. A class may name a base
// class with the "extends" key; lookups merge the chain base first.
//
//	panel:
//	  border: rounded
//	  padding: 1
//	editor:
//	  extends: panel
//	  width: 60%
//	  height: 100%
type StyleSheet struct {
	classes map[string]StyleRules
}

const extendsKey = "extends"

// NewStyleSheet returns an empty style sheet.
func NewStyleSheet() *StyleSheet {
	return &StyleSheet{classes: make(map[string]StyleRules)}
}

// LoadStyleSheet reads a YAML style sheet from path.
func LoadStyleSheet(path string) (*StyleSheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open style sheet: %w", err)
	}
	defer f.Close()
	s, err := ParseStyleSheet(f)
	if err != nil {
		return nil, fmt.Errorf("style sheet %s: %w", path, err)
	}
	return s, nil
}

// ParseStyleSheet decodes a YAML mapping of class name to rules and checks
// that every extends chain resolves without cycles.
func ParseStyleSheet(r io.Reader) (*StyleSheet, error) {
	raw := map[string]StyleRules{}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse style sheet: %w", err)
	}
	s := NewStyleSheet()
	for name, rules := range raw {
		s.Define(name, rules)
	}
	for name := range s.classes {
		if _, err := s.resolve(name, nil); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Define sets the rules of a class, replacing any previous definition.
func (s *StyleSheet) Define(name string, rules StyleRules) {
	s.classes[normalizeClass(name)] = rules.Clone()
}

// Has reports whether a class is defined.
func (s *StyleSheet) Has(name string) bool {
	_, ok := s.classes[normalizeClass(name)]
	return ok
}

// Rules merges the named classes left to right, each after its extends
// chain. Unknown classes and broken chains contribute nothing. The
// "extends" key itself never appears in the result.
func (s *StyleSheet) Rules(names ...string) StyleRules {
	out := NewRules()
	for _, name := range names {
		r, err := s.resolve(name, nil)
		if err != nil {
			continue
		}
		out = out.Merge(r)
	}
	return out
}

func (s *StyleSheet) resolve(name string, seen []string) (StyleRules, error) {
	name = normalizeClass(name)
	for _, n := range seen {
		if n == name {
			return StyleRules{}, fmt.Errorf("style class %q extends itself via %s", name, strings.Join(append(seen, name), " -> "))
		}
	}
	rules, ok := s.classes[name]
	if !ok {
		return StyleRules{}, fmt.Errorf("unknown style class %q", name)
	}

	base := NewRules()
	if parent := rules.String(extendsKey, ""); parent != "" {
		r, err := s.resolve(parent, append(seen, name))
		if err != nil {
			return StyleRules{}, err
		}
		base = r
	}
	own := rules.Clone()
	own.Delete(extendsKey)
	return base.Merge(own), nil
}

func normalizeClass(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
