package variables

import (
	"sort"
	"strconv"
	"strings"

	"github.com/arthur-debert/pihello/pkg/errors"
	"github.com/knadh/koanf/maps"
)

// Store maps dot-joined keys to scalar values.
type Store map[string]Value

// Lookup returns the value stored under key.
func (s Store) Lookup(key string) (Value, bool) {
	v, ok := s[key]
	return v, ok
}

// Keys returns every key in s, sorted.
func (s Store) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge returns a new Store holding s overridden by other.
func (s Store) Merge(other Store) Store {
	merged := make(Store, len(s)+len(other))
	for k, v := range s {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// FromMap flattens a nested map into a Store. Keys of nested maps are joined
// with ".". Lists and other non-scalar values are rejected.
func FromMap(nested map[string]interface{}) (Store, error) {
	flat, _ := maps.Flatten(nested, nil, ".")
	store := make(Store, len(flat))
	for key, raw := range flat {
		v, ok := FromInterface(raw)
		if !ok {
			return nil, errors.Newf(errors.ErrInvalidInput, "variable %q is not a scalar (%T)", key, raw).
				WithDetail("key", key)
		}
		store[key] = v
	}
	return store, nil
}

// ParseAssignment parses a "key=value" pair. The value becomes an Int,
// Float or Bool when it reads as one, and a String otherwise.
func ParseAssignment(assignment string) (string, Value, error) {
	key, raw, found := strings.Cut(assignment, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return "", Value{}, errors.Newf(errors.ErrInvalidInput, "expected key=value, got %q", assignment).
			WithDetail("assignment", assignment)
	}
	return key, inferValue(raw), nil
}

// ParseAssignments parses every pair into a Store. Later pairs win.
func ParseAssignments(assignments []string) (Store, error) {
	store := make(Store, len(assignments))
	for _, a := range assignments {
		key, v, err := ParseAssignment(a)
		if err != nil {
			return nil, err
		}
		store[key] = v
	}
	return store, nil
}

func inferValue(raw string) Value {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return Int(i)
	}
	// ParseFloat also accepts "inf" and "nan"; those stay strings
	if strings.ContainsAny(raw, "0123456789") {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return Float(f)
		}
	}
	switch strings.ToLower(raw) {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	return String(raw)
}
