package infobox

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ParameterMap is an insertion-ordered mapping from template parameter name
// to value. Keys are unique; setting an existing key replaces its value but
// keeps its original position.
//
// A key may hold several values when the map was decoded from JSON that
// used an array for a multi-valued field. Tokenize never produces those.
type ParameterMap struct {
	keys   []string
	values map[string][]string
}

// NewParameterMap returns an empty map.
func NewParameterMap() *ParameterMap {
	return &ParameterMap{values: make(map[string][]string)}
}

// Set stores value under key, replacing any previous value.
func (m *ParameterMap) Set(key, value string) {
	m.setValues(key, []string{value})
}

func (m *ParameterMap) setValues(key string, values []string) {
	if m.values == nil {
		m.values = make(map[string][]string)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = values
}

// Get returns the value stored under key. Multiple values are joined with
// a comma. The bool result is false if the key is absent.
func (m *ParameterMap) Get(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.values[key]
	if !ok {
		return "", false
	}
	return strings.Join(v, ","), true
}

// Values returns every value stored under key.
func (m *ParameterMap) Values(key string) []string {
	if m == nil {
		return nil
	}
	return m.values[key]
}

// Keys returns the parameter names in insertion order.
func (m *ParameterMap) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// Len returns the number of parameters.
func (m *ParameterMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Parameter is a single name/value pair of a ParameterMap.
type Parameter struct {
	Name  string
	Value string
}

// Parameters returns the pairs in insertion order.
func (m *ParameterMap) Parameters() []Parameter {
	if m == nil {
		return nil
	}
	params := make([]Parameter, 0, len(m.keys))
	for _, k := range m.keys {
		v, _ := m.Get(k)
		params = append(params, Parameter{Name: k, Value: v})
	}
	return params
}

// MarshalJSON encodes the map as a JSON object with keys in insertion order.
func (m *ParameterMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if m != nil {
		for i, k := range m.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, err := marshalUnescaped(k)
			if err != nil {
				return nil, err
			}
			buf.Write(kb)
			buf.WriteByte(':')

			var vb []byte
			if vals := m.values[k]; len(vals) == 1 {
				vb, err = marshalUnescaped(vals[0])
			} else {
				vb, err = marshalUnescaped(vals)
			}
			if err != nil {
				return nil, err
			}
			buf.Write(vb)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalUnescaped encodes v without escaping HTML characters, which are
// common in wikitext values.
func marshalUnescaped(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON decodes a JSON object, preserving key order. Values must be
// strings or arrays of strings.
func (m *ParameterMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("infobox must be a JSON object")
	}

	m.keys = nil
	m.values = make(map[string][]string)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}

		var single string
		if err := json.Unmarshal(raw, &single); err == nil {
			m.setValues(key, []string{single})
			continue
		}
		var multi []string
		if err := json.Unmarshal(raw, &multi); err != nil {
			return fmt.Errorf("parameter %q: value must be a string or an array of strings", key)
		}
		m.setValues(key, multi)
	}

	_, err = dec.Token()
	return err
}
