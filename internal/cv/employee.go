// Package cv provides the validated résumé data model and its serialization engine.
package cv

import "slices"

// Employee is the root of a résumé: identity, languages, summary, work
// history, trainings, IT skills and educations. Every list is unset until
// its first Add.
type Employee struct {
	lastname   *string
	firstname  *string
	position   *string
	languages  []*Language
	summary    []string
	works      []*WorkExperience
	trainings  []string
	itskills   []string
	educations []*Education
}

// EmployeeFields holds the constructor arguments of an Employee. All are optional.
type EmployeeFields struct {
	Lastname   *string
	Firstname  *string
	Position   *string
	Languages  []*Language
	Summary    []string
	Works      []*WorkExperience
	Trainings  []string
	ITSkills   []string
	Educations []*Education
}

// NewEmployee builds an Employee. Object lists must not contain nil entries.
func NewEmployee(f EmployeeFields) (*Employee, error) {
	if err := noNil("languages", f.Languages); err != nil {
		return nil, err
	}
	if err := noNil("works", f.Works); err != nil {
		return nil, err
	}
	if err := noNil("educations", f.Educations); err != nil {
		return nil, err
	}
	return &Employee{
		lastname:   clonePtr(f.Lastname),
		firstname:  clonePtr(f.Firstname),
		position:   clonePtr(f.Position),
		languages:  cloneList(f.Languages),
		summary:    cloneList(f.Summary),
		works:      cloneList(f.Works),
		trainings:  cloneList(f.Trainings),
		itskills:   cloneList(f.ITSkills),
		educations: cloneList(f.Educations),
	}, nil
}

func (e *Employee) Lastname() *string        { return clonePtr(e.lastname) }
func (e *Employee) Firstname() *string       { return clonePtr(e.firstname) }
func (e *Employee) Position() *string        { return clonePtr(e.position) }
func (e *Employee) Languages() []*Language   { return cloneList(e.languages) }
func (e *Employee) Summary() []string        { return cloneList(e.summary) }
func (e *Employee) Works() []*WorkExperience { return cloneList(e.works) }
func (e *Employee) Trainings() []string      { return cloneList(e.trainings) }
func (e *Employee) ITSkills() []string       { return cloneList(e.itskills) }
func (e *Employee) Educations() []*Education { return cloneList(e.educations) }

func (e *Employee) SetLastname(lastname *string)   { e.lastname = clonePtr(lastname) }
func (e *Employee) SetFirstname(firstname *string) { e.firstname = clonePtr(firstname) }
func (e *Employee) SetPosition(position *string)   { e.position = clonePtr(position) }

// Languages

func (e *Employee) AddLanguage(l *Language) error {
	if l == nil {
		return newError(ErrInvalidType, "new_language", "expect a Language object")
	}
	addItem(&e.languages, l)
	return nil
}

// RemoveLanguage removes l by identity.
func (e *Employee) RemoveLanguage(l *Language) error {
	if e.languages == nil {
		return newError(ErrEmptyCollection, "languages", "is empty")
	}
	if l == nil {
		return newError(ErrInvalidType, "old_language", "expect a Language object")
	}
	return removeItem("languages", &e.languages, l)
}

func (e *Employee) ReorderLanguages(order []int) error {
	return reorderItems("languages", &e.languages, order)
}

// Summary

func (e *Employee) AddSummary(paragraph string) {
	addItem(&e.summary, paragraph)
}

func (e *Employee) RemoveSummary(paragraph string) error {
	return removeItem("summary", &e.summary, paragraph)
}

func (e *Employee) ReorderSummary(order []int) error {
	return reorderItems("summary", &e.summary, order)
}

// Works

func (e *Employee) AddWork(w *WorkExperience) error {
	if w == nil {
		return newError(ErrInvalidType, "new_work", "expect a WorkExperience object")
	}
	addItem(&e.works, w)
	return nil
}

// RemoveWork removes w by identity.
func (e *Employee) RemoveWork(w *WorkExperience) error {
	if e.works == nil {
		return newError(ErrEmptyCollection, "works", "is empty")
	}
	if w == nil {
		return newError(ErrInvalidType, "old_work", "expect a WorkExperience object")
	}
	return removeItem("works", &e.works, w)
}

func (e *Employee) ReorderWorks(order []int) error {
	return reorderItems("works", &e.works, order)
}

// Trainings

func (e *Employee) AddTraining(training string) {
	addItem(&e.trainings, training)
}

func (e *Employee) RemoveTraining(training string) error {
	return removeItem("trainings", &e.trainings, training)
}

func (e *Employee) ReorderTrainings(order []int) error {
	return reorderItems("trainings", &e.trainings, order)
}

// IT skills

func (e *Employee) AddITSkill(skill string) {
	addItem(&e.itskills, skill)
}

func (e *Employee) RemoveITSkill(skill string) error {
	return removeItem("itskills", &e.itskills, skill)
}

func (e *Employee) ReorderITSkills(order []int) error {
	return reorderItems("itskills", &e.itskills, order)
}

// Educations

func (e *Employee) AddEducation(ed *Education) error {
	if ed == nil {
		return newError(ErrInvalidType, "new_education", "expect an Education object")
	}
	addItem(&e.educations, ed)
	return nil
}

// RemoveEducation removes ed by identity.
func (e *Employee) RemoveEducation(ed *Education) error {
	if e.educations == nil {
		return newError(ErrEmptyCollection, "educations", "is empty")
	}
	if ed == nil {
		return newError(ErrInvalidType, "old_education", "expect an Education object")
	}
	return removeItem("educations", &e.educations, ed)
}

func (e *Employee) ReorderEducations(order []int) error {
	return reorderItems("educations", &e.educations, order)
}

// Sorting

// SortWorks orders the works on (start, end).
func (e *Employee) SortWorks(order SortOrder) error {
	return sortDated("works", e.works, order)
}

// SortProjects orders the projects of every work on (start, end). Works
// without projects are left alone.
func (e *Employee) SortProjects(order SortOrder) error {
	if err := order.validate(); err != nil {
		return err
	}
	if e.works == nil {
		return newError(ErrEmptyCollection, "works", "is empty")
	}
	for i, w := range e.works {
		if w.projects == nil {
			continue
		}
		if err := w.SortProjects(order); err != nil {
			return withPath(err, workPath(i))
		}
	}
	return nil
}

// SortEducations orders the educations on (start, end).
func (e *Employee) SortEducations(order SortOrder) error {
	return sortDated("educations", e.educations, order)
}

// DiscloseProjects marks every project whose name is in names as not
// confidential, so templates may print its client name. It returns the
// number of projects that changed.
func (e *Employee) DiscloseProjects(names ...string) int {
	changed := 0
	for _, w := range e.works {
		for _, p := range w.projects {
			if p.name == nil || !p.confidential || !slices.Contains(names, *p.name) {
				continue
			}
			p.SetConfidential(false)
			changed++
		}
	}
	return changed
}

// Set writes a scalar or string-list field by its serialized name. Entity
// lists are filled through their Add methods.
func (e *Employee) Set(field string, value any) error {
	switch field {
	case "lastname", "firstname", "position":
		s, err := AssertString(field, value)
		if err != nil {
			return err
		}
		switch field {
		case "lastname":
			e.SetLastname(s)
		case "firstname":
			e.SetFirstname(s)
		default:
			e.SetPosition(s)
		}
		return nil
	case "summary", "trainings", "itskills":
		items, err := AssertStringList(field, value)
		if err != nil {
			return err
		}
		switch field {
		case "summary":
			e.summary = items
		case "trainings":
			e.trainings = items
		default:
			e.itskills = items
		}
		return nil
	case "languages", "works", "educations":
		return newError(ErrInvalidType, field, "entity lists are filled with Add methods")
	}
	return unknownField("Employee", field)
}

func (e *Employee) Fields() []Field {
	return []Field{
		{Name: "lastname", Value: optional(e.lastname)},
		{Name: "firstname", Value: optional(e.firstname)},
		{Name: "position", Value: optional(e.position)},
		{Name: "languages", Value: listValue(e.languages)},
		{Name: "summary", Value: listValue(e.summary)},
		{Name: "works", Value: listValue(e.works)},
		{Name: "trainings", Value: listValue(e.trainings)},
		{Name: "itskills", Value: listValue(e.itskills)},
		{Name: "educations", Value: listValue(e.educations)},
	}
}
