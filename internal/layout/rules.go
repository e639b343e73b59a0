package layout

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rules is an ordered, CSS-like property bag.
//
// Keys are case-insensitive and kept in insertion order. Values are whatever
// the caller stored (ints, strings such as "50%" or "1 2", colour tokens,
// bools); the typed readers interpret them and fall back to a default when a
// key is missing or malformed. The zero value is an empty, usable bag.
type Rules struct {
	keys   []string
	values map[string]any
}

// NewRules builds Rules from alternating key/value arguments.
// A trailing key without a value is ignored, as are non-string keys.
func NewRules(kv ...any) Rules {
	var r Rules
	for i := 0; i+1 < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			continue
		}
		r.Set(k, kv[i+1])
	}
	return r
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

// Set stores a property, keeping the key's original position if it already exists.
func (r *Rules) Set(key string, value any) {
	key = normalizeKey(key)
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// With returns a copy of the rules with one property set. The receiver is unchanged.
func (r Rules) With(key string, value any) Rules {
	c := r.Clone()
	c.Set(key, value)
	return c
}

// Delete removes a property. Deleting a missing key is a no-op.
func (r *Rules) Delete(key string) {
	key = normalizeKey(key)
	if _, ok := r.values[key]; !ok {
		return
	}
	delete(r.values, key)
	r.keys = slices.DeleteFunc(r.keys, func(k string) bool { return k == key })
}

// Get returns the raw value stored for key.
func (r Rules) Get(key string) (any, bool) {
	v, ok := r.values[normalizeKey(key)]
	return v, ok
}

// Has reports whether key is present.
func (r Rules) Has(key string) bool {
	_, ok := r.values[normalizeKey(key)]
	return ok
}

// Keys returns the property names in insertion order.
func (r Rules) Keys() []string {
	return slices.Clone(r.keys)
}

// Len returns the number of properties.
func (r Rules) Len() int {
	return len(r.keys)
}

// Clone returns an independent copy.
func (r Rules) Clone() Rules {
	return Rules{keys: slices.Clone(r.keys), values: maps.Clone(r.values)}
}

// Merge returns a new bag with other's properties layered over the receiver's.
// Keys already present keep their position; new keys are appended.
func (r Rules) Merge(other Rules) Rules {
	out := r.Clone()
	for _, k := range other.keys {
		out.Set(k, other.values[k])
	}
	return out
}

// Int reads an integer property, accepting ints, floats and numeric strings.
func (r Rules) Int(key string, def int) int {
	v, ok := r.Get(key)
	if !ok {
		return def
	}
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return def
		}
		return n
	}
	return def
}

// String reads a property as a string. Non-string scalars are formatted.
func (r Rules) String(key string, def string) string {
	v, ok := r.Get(key)
	if !ok || v == nil {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Bool reads a boolean property, accepting bools and strconv.ParseBool strings.
func (r Rules) Bool(key string, def bool) bool {
	v, ok := r.Get(key)
	if !ok {
		return def
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		if err != nil {
			return def
		}
		return b
	}
	return def
}

// Value reads a sizing property (see ParseValue).
func (r Rules) Value(key string, def Value) Value {
	v, ok := r.Get(key)
	if !ok {
		return def
	}
	parsed, ok := ParseValue(v)
	if !ok {
		return def
	}
	return parsed
}

// Edges reads a margin/padding property (see ParseEdges). Side properties such
// as "margin-top" or "padding-left" override the matching side of the shorthand.
func (r Rules) Edges(key string, def Edges) Edges {
	e := def
	if v, ok := r.Get(key); ok {
		if parsed, ok := ParseEdges(v); ok {
			e = parsed
		}
	}
	key = normalizeKey(key)
	e.Top = r.Int(key+"-top", e.Top)
	e.Right = r.Int(key+"-right", e.Right)
	e.Bottom = r.Int(key+"-bottom", e.Bottom)
	e.Left = r.Int(key+"-left", e.Left)
	return e
}

// UnmarshalYAML decodes a YAML mapping, preserving key order.
func (r *Rules) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("style rules: line %d: expected a mapping", node.Line)
	}

	*r = Rules{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		var value any
		if err := valNode.Decode(&value); err != nil {
			return fmt.Errorf("style rules: property %q: %w", keyNode.Value, err)
		}
		r.Set(keyNode.Value, value)
	}
	return nil
}

// MarshalYAML encodes the rules as a mapping in insertion order.
func (r Rules) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range r.keys {
		var valNode yaml.Node
		if err := valNode.Encode(r.values[k]); err != nil {
			return nil, fmt.Errorf("style rules: property %q: %w", k, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&valNode,
		)
	}
	return node, nil
}
