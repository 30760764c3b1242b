package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Extra holds provider-supplied keys that have no typed field. They are kept
// on decode and written back on encode so unknown output is not dropped.
type Extra map[string]any

// Levels accepted for competition, market potential and revenue potential.
const (
	LevelLow    = "low"
	LevelMedium = "medium"
	LevelHigh   = "high"
)

// NormalizeLevel lowercases s and reports whether it is low, medium or high.
func NormalizeLevel(s string) (string, bool) {
	l := strings.ToLower(strings.TrimSpace(s))
	switch l {
	case LevelLow, LevelMedium, LevelHigh:
		return l, true
	}
	return l, false
}

// extraFields returns every top-level key of the JSON object in data that is
// not listed in known.
func extraFields(data []byte, known []string) (Extra, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(raw, k)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	extra := make(Extra, len(raw))
	for k, v := range raw {
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		extra[k] = val
	}
	return extra, nil
}

// mergeObject encodes v and adds fields to the resulting JSON object. When
// overwrite is false, keys already present in v are left alone.
func mergeObject(v any, fields map[string]any, overwrite bool) ([]byte, error) {
	base, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return base, nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(base, &obj); err != nil {
		return nil, err
	}
	for k, val := range fields {
		if _, exists := obj[k]; exists && !overwrite {
			continue
		}
		enc, err := json.Marshal(val)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		obj[k] = enc
	}
	return json.Marshal(obj)
}

func copyExtra(e Extra, add map[string]any) Extra {
	out := make(Extra, len(e)+len(add))
	for k, v := range e {
		out[k] = v
	}
	for k, v := range add {
		out[k] = v
	}
	return out
}

func extraMap(e Extra) map[string]any {
	return map[string]any(e)
}
