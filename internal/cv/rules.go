// Package cv provides the validated résumé data model and its serialization engine.
package cv

import (
	"encoding/json"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Date code widths
const (
	YearWidth      = 4 // YYYY
	YearMonthWidth = 6 // YYYYMM
)

// IRLScales is the fixed vocabulary of Interagency Language Roundtable labels
var IRLScales = []string{
	"No Proficiency",
	"Elementary Proficiency",
	"Limited Working Proficiency",
	"Professional Working Proficiency",
	"Full Professional Proficiency",
	"Bilingual",
	"Native",
}

// CEFRLevels is the fixed vocabulary of Common European Framework levels
var CEFRLevels = []string{"A1", "A2", "B1", "B2", "C1", "C2"}

// AssertString checks that value is nil or a string.
func AssertString(name string, value any) (*string, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		return &v, nil
	case *string:
		return v, nil
	default:
		return nil, newError(ErrInvalidType, name, "expect a str, got %T", value)
	}
}

// AssertInt checks that value is nil or an integral number. JSON numbers
// decoded as float64 or json.Number are accepted when they have no fraction.
func AssertInt(name string, value any) (*int, error) {
	var n int
	switch v := value.(type) {
	case nil:
		return nil, nil
	case int:
		n = v
	case *int:
		return v, nil
	case int32:
		n = int(v)
	case int64:
		n = int(v)
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return nil, newError(ErrInvalidType, name, "expect an int, got %v", v)
		}
		n = int(v)
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return nil, newError(ErrInvalidType, name, "expect an int, got %q", v.String())
		}
		n = int(i)
	default:
		return nil, newError(ErrInvalidType, name, "expect an int, got %T", value)
	}
	return &n, nil
}

// AssertDateCode checks that value is nil or an integer written with exactly
// width decimal digits. Negative values are rejected.
func AssertDateCode(name string, value any, width int) (*int, error) {
	n, err := AssertInt(name, value)
	if err != nil || n == nil {
		return nil, err
	}
	if err := checkDateCode(name, *n, width); err != nil {
		return nil, err
	}
	return n, nil
}

func checkDateCode(name string, value, width int) error {
	if value < 0 || len(strconv.Itoa(value)) != width {
		return newError(ErrInvalidFormat, name,
			"%d has an incorrect length, should be %d digits (%s)", value, width, dateLayout(width))
	}
	return nil
}

func dateLayout(width int) string {
	if width == YearWidth {
		return "YYYY"
	}
	return "YYYYMM"
}

// AssertEnum normalizes value and checks it belongs to allowed. A nil value passes.
func AssertEnum(name string, value any, normalize func(string) string, allowed []string) (*string, error) {
	s, err := AssertString(name, value)
	if err != nil || s == nil {
		return nil, err
	}
	normalized := normalize(*s)
	if !slices.Contains(allowed, normalized) {
		ve := newError(ErrUnknownEnumValue, name, "'%s' unknown", *s)
		ve.Allowed = slices.Clone(allowed)
		return nil, ve
	}
	return &normalized, nil
}

// AssertList checks that value is nil or a sequence, returning its elements.
func AssertList(name string, value any) ([]any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []any:
		return v, nil
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, nil
	default:
		return nil, newError(ErrInvalidType, name, "expect a list, got %T", value)
	}
}

// AssertStringList checks that value is nil or a sequence of strings.
func AssertStringList(name string, value any) ([]string, error) {
	items, err := AssertList(name, value)
	if err != nil || items == nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, err := AssertString(name+"["+strconv.Itoa(i)+"]", item)
		if err != nil {
			return nil, err
		}
		if s == nil {
			return nil, newError(ErrInvalidType, name, "element %d is null", i)
		}
		out = append(out, *s)
	}
	return out, nil
}

// AssertBool checks that value is nil or a boolean.
func AssertBool(name string, value any) (*bool, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case bool:
		return &v, nil
	default:
		return nil, newError(ErrInvalidType, name, "expect a bool, got %T", value)
	}
}

// TitleCase upper-cases the first letter of every word and lower-cases the rest.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		lower := []rune(strings.ToLower(w))
		lower[0] = []rune(strings.ToUpper(string(lower[0])))[0]
		words[i] = string(lower)
	}
	return strings.Join(words, " ")
}

func requireValue(name string, v any) error {
	if v == nil {
		return newError(ErrMissingField, name, "is required")
	}
	return nil
}
