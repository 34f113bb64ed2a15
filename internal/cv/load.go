// Package cv provides the validated résumé data model and its serialization engine.
package cv

import (
	"fmt"
	"sort"
)

// PruneNulls returns a copy of a parsed JSON value with every null map entry
// and null sequence element removed, recursively.
func PruneNulls(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			if item == nil {
				continue
			}
			out[key] = PruneNulls(item)
		}
		return out
	case []any:
		out := make([]any, 0, len(v))
		for _, item := range v {
			if item == nil {
				continue
			}
			out = append(out, PruneNulls(item))
		}
		return out
	default:
		return v
	}
}

// LoadEmployee builds an Employee from a parsed, null-pruned JSON document.
//
// lastname, firstname, position, languages, works and educations are
// required; summary, trainings and itskills are read when present. Language,
// Education and Project objects are strict: an unknown key fails the load.
// Work objects only read the keys they know. The first violation aborts the
// whole load.
func LoadEmployee(doc any) (*Employee, error) {
	obj, err := asObject("(root)", doc)
	if err != nil {
		return nil, err
	}

	e := &Employee{}
	for _, key := range []string{"lastname", "firstname", "position"} {
		value, err := required(obj, key)
		if err != nil {
			return nil, err
		}
		if err := e.Set(key, value); err != nil {
			return nil, err
		}
	}

	languages, err := requiredList(obj, "languages")
	if err != nil {
		return nil, err
	}
	e.languages = make([]*Language, 0, len(languages))
	for i, item := range languages {
		l, err := loadLanguage(item)
		if err != nil {
			return nil, withPath(err, fmt.Sprintf("languages[%d]", i))
		}
		e.languages = append(e.languages, l)
	}

	if value, ok := obj["summary"]; ok {
		if err := e.Set("summary", value); err != nil {
			return nil, err
		}
	}

	works, err := requiredList(obj, "works")
	if err != nil {
		return nil, err
	}
	e.works = make([]*WorkExperience, 0, len(works))
	for i, item := range works {
		w, err := loadWork(item)
		if err != nil {
			return nil, withPath(err, workPath(i))
		}
		e.works = append(e.works, w)
	}

	for _, key := range []string{"trainings", "itskills"} {
		if value, ok := obj[key]; ok {
			if err := e.Set(key, value); err != nil {
				return nil, err
			}
		}
	}

	educations, err := requiredList(obj, "educations")
	if err != nil {
		return nil, err
	}
	e.educations = make([]*Education, 0, len(educations))
	for i, item := range educations {
		ed, err := loadEducation(item)
		if err != nil {
			return nil, withPath(err, fmt.Sprintf("educations[%d]", i))
		}
		e.educations = append(e.educations, ed)
	}

	return e, nil
}

func loadLanguage(value any) (*Language, error) {
	obj, err := asObject("", value)
	if err != nil {
		return nil, err
	}
	if _, err := required(obj, "name"); err != nil {
		return nil, err
	}
	l := &Language{}
	if err := spread(obj, l.Set); err != nil {
		return nil, err
	}
	return l, nil
}

func loadEducation(value any) (*Education, error) {
	obj, err := asObject("", value)
	if err != nil {
		return nil, err
	}
	for _, key := range []string{"school", "degree", "start"} {
		if _, err := required(obj, key); err != nil {
			return nil, err
		}
	}
	ed := &Education{}
	if err := spread(obj, ed.Set); err != nil {
		return nil, err
	}
	return ed, nil
}

func loadProject(value any) (*Project, error) {
	obj, err := asObject("", value)
	if err != nil {
		return nil, err
	}
	p := &Project{confidential: true}
	if err := spread(obj, p.Set); err != nil {
		return nil, err
	}
	return p, nil
}

func loadWork(value any) (*WorkExperience, error) {
	obj, err := asObject("", value)
	if err != nil {
		return nil, err
	}
	w := &WorkExperience{}
	for _, key := range []string{"employer", "start"} {
		v, err := required(obj, key)
		if err != nil {
			return nil, err
		}
		if err := w.Set(key, v); err != nil {
			return nil, err
		}
	}
	for _, key := range []string{"end", "position", "description"} {
		if v, ok := obj[key]; ok {
			if err := w.Set(key, v); err != nil {
				return nil, err
			}
		}
	}
	if v, ok := obj["projects"]; ok {
		items, err := AssertList("projects", v)
		if err != nil {
			return nil, err
		}
		w.projects = make([]*Project, 0, len(items))
		for i, item := range items {
			p, err := loadProject(item)
			if err != nil {
				return nil, withPath(err, fmt.Sprintf("projects[%d]", i))
			}
			w.projects = append(w.projects, p)
		}
	}
	return w, nil
}

// spread writes every key of obj through set, in sorted key order so the
// first reported error does not depend on map iteration.
func spread(obj map[string]any, set func(string, any) error) error {
	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := set(key, obj[key]); err != nil {
			return err
		}
	}
	return nil
}

func asObject(name string, value any) (map[string]any, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, newError(ErrInvalidType, name, "expect an object, got %T", value)
	}
	return obj, nil
}

func required(obj map[string]any, key string) (any, error) {
	value, ok := obj[key]
	if !ok {
		return nil, newError(ErrMissingField, key, "required key is absent")
	}
	return value, nil
}

func requiredList(obj map[string]any, key string) ([]any, error) {
	value, err := required(obj, key)
	if err != nil {
		return nil, err
	}
	items, err := AssertList(key, value)
	if err != nil {
		return nil, err
	}
	if items == nil {
		return nil, newError(ErrMissingField, key, "required key is absent")
	}
	return items, nil
}

func workPath(i int) string {
	return fmt.Sprintf("works[%d]", i)
}
