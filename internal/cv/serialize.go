// Package cv provides the validated résumé data model and its serialization engine.
package cv

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is one named value of an entity, listed in declaration order
type Field struct {
	Name  string
	Value any
}

// Serializable is implemented by every entity of the résumé tree.
// Field values are nil, scalars, Serializable values, or []any sequences
// whose elements are scalars or Serializable values.
type Serializable interface {
	Fields() []Field
}

// ToDict converts an entity tree into nested maps, sequences and scalars.
//
// With keepNull the conversion is lossless: every field is present, null or
// not. Without it null fields, null list elements and lists that end up empty
// are dropped, leaving only data a template can print.
func ToDict(s Serializable, keepNull bool) map[string]any {
	dict := make(map[string]any)
	for _, f := range s.Fields() {
		if v, ok := convert(f.Value, keepNull); ok {
			dict[f.Name] = v
		}
	}
	return dict
}

func convert(value any, keepNull bool) (any, bool) {
	switch v := value.(type) {
	case Serializable:
		return ToDict(v, keepNull), true
	case []any:
		list := make([]any, 0, len(v))
		for _, item := range v {
			if s, ok := item.(Serializable); ok {
				list = append(list, ToDict(s, keepNull))
			} else if item != nil || keepNull {
				list = append(list, item)
			}
		}
		if len(list) > 0 || keepNull {
			return list, true
		}
		return nil, false
	case nil:
		return nil, keepNull
	default:
		return v, true
	}
}

// MarshalJSON encodes an entity tree like ToDict but keeps fields in
// declaration order rather than the alphabetical order of encoded maps.
func MarshalJSON(s Serializable, keepNull bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeEntity(&buf, s, keepNull); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalIndentJSON is MarshalJSON followed by json.Indent.
func MarshalIndentJSON(s Serializable, keepNull bool, prefix, indent string) ([]byte, error) {
	raw, err := MarshalJSON(s, keepNull)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, prefix, indent); err != nil {
		return nil, fmt.Errorf("failed to indent JSON: %w", err)
	}
	return out.Bytes(), nil
}

func writeEntity(buf *bytes.Buffer, s Serializable, keepNull bool) error {
	buf.WriteByte('{')
	first := true
	for _, f := range s.Fields() {
		v, ok := convert(f.Value, keepNull)
		if !ok {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if err := writeScalar(buf, f.Name); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := writeValue(buf, f.Value, v, keepNull); err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}
	}
	buf.WriteByte('}')
	return nil
}

// writeValue writes the converted value, recursing through the original one
// so nested entities keep their field order too.
func writeValue(buf *bytes.Buffer, original, converted any, keepNull bool) error {
	switch v := original.(type) {
	case Serializable:
		return writeEntity(buf, v, keepNull)
	case []any:
		buf.WriteByte('[')
		first := true
		for _, item := range v {
			if item == nil && !keepNull {
				continue
			}
			if !first {
				buf.WriteByte(',')
			}
			first = false
			if s, ok := item.(Serializable); ok {
				if err := writeEntity(buf, s, keepNull); err != nil {
					return err
				}
				continue
			}
			if err := writeScalar(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	}
	return writeScalar(buf, converted)
}

// writeScalar encodes value without HTML escaping, so "R&D" stays readable.
func writeScalar(buf *bytes.Buffer, value any) error {
	var raw bytes.Buffer
	enc := json.NewEncoder(&raw)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(raw.Bytes(), []byte("\n")))
	return nil
}
