package tiled

import (
	"strconv"
	"strings"
)

// document is a decoded JSON object. Every lookup is permissive: a missing
// key or a value of the wrong type yields the zero value and false.
type document map[string]any

func (d document) number(key string) (float64, bool) {
	v, ok := d[key].(float64)
	return v, ok
}

func (d document) int(key string) int {
	v, ok := d.number(key)
	if !ok || v < 0 {
		return 0
	}
	return int(v)
}

func (d document) string(key string) (string, bool) {
	v, ok := d[key].(string)
	return v, ok
}

func (d document) bool(key string) (bool, bool) {
	return truthy(d[key])
}

func (d document) objects(key string) []document {
	list, ok := d[key].([]any)
	if !ok {
		return nil
	}
	out := make([]document, 0, len(list))
	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			out = append(out, nil)
			continue
		}
		out = append(out, document(obj))
	}
	return out
}

// truthy interprets JSON booleans, numbers and strings ("true", "1", ...).
func truthy(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case float64:
		return t != 0, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		if err != nil {
			return false, false
		}
		return b, true
	}
	return false, false
}

// Properties is a Tiled custom property bag.
type Properties map[string]any

// Bool reports a property as a boolean; missing or non boolean-ish values are false.
func (p Properties) Bool(name string) bool {
	if p == nil {
		return false
	}
	b, _ := truthy(p[name])
	return b
}

// parseProperties accepts the legacy object form ({"collision": "true"}) and
// the array form ([{"name": "collision", "type": "bool", "value": true}]).
func parseProperties(v any) Properties {
	switch t := v.(type) {
	case map[string]any:
		props := make(Properties, len(t))
		for k, val := range t {
			props[k] = val
		}
		return props
	case []any:
		props := make(Properties, len(t))
		for _, item := range t {
			obj, ok := item.(map[string]any)
			if !ok {
				continue
			}
			name, ok := obj["name"].(string)
			if !ok || name == "" {
				continue
			}
			props[name] = obj["value"]
		}
		return props
	}
	return nil
}
