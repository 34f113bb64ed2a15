// Package cv provides the validated résumé data model and its serialization engine.
package cv

// WorkExperience is a position held at an employer, dated with YYYYMM codes
type WorkExperience struct {
	employer    string
	start       int
	end         *int
	position    *string
	description []string
	projects    []*Project
}

// WorkExperienceFields holds the constructor arguments of a WorkExperience
type WorkExperienceFields struct {
	Employer    string
	Start       int
	End         *int
	Position    *string
	Description []string
	Projects    []*Project
}

// NewWorkExperience builds a WorkExperience. Start and End must be 6-digit YYYYMM codes.
func NewWorkExperience(f WorkExperienceFields) (*WorkExperience, error) {
	w := &WorkExperience{employer: f.Employer, position: clonePtr(f.Position)}
	if err := w.SetStart(f.Start); err != nil {
		return nil, err
	}
	if err := w.SetEnd(f.End); err != nil {
		return nil, err
	}
	w.SetDescription(f.Description)
	if err := w.SetProjects(f.Projects); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *WorkExperience) Employer() string      { return w.employer }
func (w *WorkExperience) Start() int            { return w.start }
func (w *WorkExperience) End() *int             { return clonePtr(w.end) }
func (w *WorkExperience) Position() *string     { return clonePtr(w.position) }
func (w *WorkExperience) Description() []string { return cloneList(w.description) }

// Projects returns the projects in their current order. The slice is a copy;
// the projects themselves are shared with the WorkExperience.
func (w *WorkExperience) Projects() []*Project { return cloneList(w.projects) }

func (w *WorkExperience) SetEmployer(employer string)  { w.employer = employer }
func (w *WorkExperience) SetPosition(position *string) { w.position = clonePtr(position) }

func (w *WorkExperience) SetStart(start int) error {
	if err := checkDateCode("start", start, YearMonthWidth); err != nil {
		return err
	}
	w.start = start
	return nil
}

func (w *WorkExperience) SetEnd(end *int) error {
	return setDateCode("end", &w.end, end, YearMonthWidth)
}

// SetDescription replaces the description; nil unsets it.
func (w *WorkExperience) SetDescription(description []string) {
	w.description = cloneList(description)
}

// SetProjects replaces the projects; nil unsets them.
func (w *WorkExperience) SetProjects(projects []*Project) error {
	if err := noNil("projects", projects); err != nil {
		return err
	}
	w.projects = cloneList(projects)
	return nil
}

func (w *WorkExperience) AddDescription(paragraph string) {
	addItem(&w.description, paragraph)
}

func (w *WorkExperience) RemoveDescription(paragraph string) error {
	return removeItem("description", &w.description, paragraph)
}

func (w *WorkExperience) ReorderDescription(order []int) error {
	return reorderItems("description", &w.description, order)
}

func (w *WorkExperience) AddProject(p *Project) error {
	if p == nil {
		return newError(ErrInvalidType, "new_project", "expect a Project object")
	}
	addItem(&w.projects, p)
	return nil
}

// RemoveProject removes p by identity.
func (w *WorkExperience) RemoveProject(p *Project) error {
	if w.projects == nil {
		return newError(ErrEmptyCollection, "projects", "is empty")
	}
	if p == nil {
		return newError(ErrInvalidType, "old_project", "expect a Project object")
	}
	return removeItem("projects", &w.projects, p)
}

func (w *WorkExperience) ReorderProjects(order []int) error {
	return reorderItems("projects", &w.projects, order)
}

// SortProjects orders the projects on (start, end).
func (w *WorkExperience) SortProjects(order SortOrder) error {
	return sortDated("projects", w.projects, order)
}

// Set writes a field by its serialized name. Projects must be added as
// *Project values; use AddProject for entities built from raw data.
func (w *WorkExperience) Set(field string, value any) error {
	switch field {
	case "employer":
		if err := requireValue(field, value); err != nil {
			return err
		}
		s, err := AssertString(field, value)
		if err != nil {
			return err
		}
		w.SetEmployer(*s)
		return nil
	case "position":
		s, err := AssertString(field, value)
		if err != nil {
			return err
		}
		w.SetPosition(s)
		return nil
	case "start":
		if err := requireValue(field, value); err != nil {
			return err
		}
		n, err := AssertDateCode(field, value, YearMonthWidth)
		if err != nil {
			return err
		}
		return w.SetStart(*n)
	case "end":
		n, err := AssertDateCode(field, value, YearMonthWidth)
		if err != nil {
			return err
		}
		return w.SetEnd(n)
	case "description":
		items, err := AssertStringList(field, value)
		if err != nil {
			return err
		}
		w.SetDescription(items)
		return nil
	case "projects":
		switch v := value.(type) {
		case nil:
			return w.SetProjects(nil)
		case []*Project:
			return w.SetProjects(v)
		}
		return newError(ErrInvalidType, field, "expect a list of Project objects, got %T", value)
	}
	return unknownField("WorkExperience", field)
}

func (w *WorkExperience) Fields() []Field {
	return []Field{
		{Name: "employer", Value: w.employer},
		{Name: "start", Value: w.start},
		{Name: "end", Value: optional(w.end)},
		{Name: "position", Value: optional(w.position)},
		{Name: "description", Value: listValue(w.description)},
		{Name: "projects", Value: listValue(w.projects)},
	}
}

func (w *WorkExperience) period() (start, end *int) {
	return &w.start, w.end
}
