// Package entities contains the pokedex domain types
package entities

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/KirkDiggler/pokedex/internal/errors"
)

// Record is one pokemon payload exactly as decoded from the upstream API.
// No schema is applied; FromRecord pulls out the fields the view-model needs.
type Record map[string]any

// lookup walks nested objects along keys and returns how many keys resolved.
// The value is only meaningful when found == len(keys). A non-object in the
// middle of the path is a type error.
func (r Record) lookup(keys ...string) (value any, found int, err error) {
	var current any = map[string]any(r)
	for i, key := range keys {
		obj, ok := asObject(current)
		if !ok {
			path := strings.Join(keys[:i], ".")
			return nil, i, errors.InvalidFieldf(path, "%s must be an object, got %T", path, current)
		}
		current, ok = obj[key]
		if !ok {
			return nil, i, nil
		}
	}
	return current, len(keys), nil
}

func asObject(v any) (map[string]any, bool) {
	switch obj := v.(type) {
	case map[string]any:
		return obj, true
	case Record:
		return obj, true
	default:
		return nil, false
	}
}

// toInt accepts the numeric shapes a decoded or hand-built payload can hold.
// Floats must be integral.
func toInt(path string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, errors.InvalidFieldf(path, "%s must be an integer, got %v", path, n)
		}
		return int(n), nil
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), nil
		}
		// 64.0 and 6.4e1 are integral but Int64 rejects them
		f, err := n.Float64()
		if err != nil || f != math.Trunc(f) {
			return 0, errors.InvalidFieldf(path, "%s must be an integer, got %s", path, n.String())
		}
		return int(f), nil
	default:
		return 0, errors.InvalidFieldf(path, "%s must be an integer, got %T", path, v)
	}
}

func toString(path string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errors.InvalidFieldf(path, "%s must be a string, got %T", path, v)
	}
	return s, nil
}

func entryPath(base string, i int) string {
	return fmt.Sprintf("%s[%d]", base, i)
}

func indexPath(base string, i int, rest string) string {
	return entryPath(base, i) + "." + rest
}
