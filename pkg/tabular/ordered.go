package tabular

import (
	"bytes"
	"encoding/json"
	"iter"

	"gopkg.in/yaml.v3"
)

// Map is a map keyed by Key that remembers insertion order.
// The zero value is ready to use. A Map is not safe for concurrent writes.
type Map[V any] struct {
	keys  []Key
	items map[Key]V
}

// NewMap returns an empty map with room for size keys.
func NewMap[V any](size int) *Map[V] {
	return &Map[V]{
		keys:  make([]Key, 0, size),
		items: make(map[Key]V, size),
	}
}

// Set stores v under k. Overwriting an existing key keeps its position.
func (m *Map[V]) Set(k Key, v V) {
	if m.items == nil {
		m.items = make(map[Key]V)
	}
	if _, ok := m.items[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.items[k] = v
}

// Get returns the value stored under k.
func (m *Map[V]) Get(k Key) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.items[k]
	return v, ok
}

// Lookup normalizes an arbitrary value with KeyOf and returns the value stored under it.
func (m *Map[V]) Lookup(v any) (V, bool) {
	k, ok := KeyOf(v)
	if !ok {
		var zero V
		return zero, false
	}
	return m.Get(k)
}

// Has reports whether k is present.
func (m *Map[V]) Has(k Key) bool {
	_, ok := m.Get(k)
	return ok
}

// Len returns the number of keys.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m *Map[V]) Keys() []Key {
	if m == nil {
		return []Key{}
	}
	keys := make([]Key, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Values returns the values in key insertion order.
func (m *Map[V]) Values() []V {
	if m == nil {
		return []V{}
	}
	values := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		values = append(values, m.items[k])
	}
	return values
}

// All iterates over key/value pairs in insertion order.
func (m *Map[V]) All() iter.Seq2[Key, V] {
	return func(yield func(Key, V) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.items[k]) {
				return
			}
		}
	}
}

// MarshalJSON encodes the map as a JSON object, preserving key order.
func (m *Map[V]) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(k))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := json.Marshal(m.items[k])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalYAML encodes the map as a YAML mapping, preserving key order.
func (m *Map[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, v := range m.All() {
		var val yaml.Node
		if err := val.Encode(v); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(k)},
			&val,
		)
	}
	return node, nil
}
