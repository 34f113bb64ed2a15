// Package cv provides the validated résumé data model and its serialization engine.
package cv

import "strings"

// Language is a spoken language with optional IRL and CEFR proficiency ratings
type Language struct {
	name      string
	irlScale  *string
	cefrLevel *string
}

// LanguageFields holds the constructor arguments of a Language
type LanguageFields struct {
	Name      string
	IRLScale  *string
	CEFRLevel *string
}

// NewLanguage builds a Language, normalizing and validating both ratings.
func NewLanguage(f LanguageFields) (*Language, error) {
	l := &Language{name: f.Name}
	if err := l.SetIRLScale(f.IRLScale); err != nil {
		return nil, err
	}
	if err := l.SetCEFRLevel(f.CEFRLevel); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Language) Name() string       { return l.name }
func (l *Language) IRLScale() *string  { return clonePtr(l.irlScale) }
func (l *Language) CEFRLevel() *string { return clonePtr(l.cefrLevel) }

func (l *Language) SetName(name string) {
	l.name = name
}

// SetIRLScale title-cases the scale before checking it against IRLScales.
func (l *Language) SetIRLScale(scale *string) error {
	v, err := AssertEnum("irl_scale", optional(scale), TitleCase, IRLScales)
	if err != nil {
		return err
	}
	l.irlScale = v
	return nil
}

// SetCEFRLevel upper-cases the level before checking it against CEFRLevels.
func (l *Language) SetCEFRLevel(level *string) error {
	v, err := AssertEnum("cefr_level", optional(level), strings.ToUpper, CEFRLevels)
	if err != nil {
		return err
	}
	l.cefrLevel = v
	return nil
}

// Set writes a field by its serialized name.
func (l *Language) Set(field string, value any) error {
	switch field {
	case "name":
		if err := requireValue(field, value); err != nil {
			return err
		}
		s, err := AssertString(field, value)
		if err != nil {
			return err
		}
		l.SetName(*s)
		return nil
	case "irl_scale":
		s, err := AssertString(field, value)
		if err != nil {
			return err
		}
		return l.SetIRLScale(s)
	case "cefr_level":
		s, err := AssertString(field, value)
		if err != nil {
			return err
		}
		return l.SetCEFRLevel(s)
	}
	return unknownField("Language", field)
}

func (l *Language) Fields() []Field {
	return []Field{
		{Name: "name", Value: l.name},
		{Name: "irl_scale", Value: optional(l.irlScale)},
		{Name: "cefr_level", Value: optional(l.cefrLevel)},
	}
}

// optional turns a nil pointer into an untyped nil.
func optional[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func unknownField(entity, field string) error {
	return newError(ErrUnknownField, field, "%s has no such field", entity)
}
