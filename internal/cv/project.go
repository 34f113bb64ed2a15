// Package cv provides the validated résumé data model and its serialization engine.
package cv

// Project is an engagement carried out within a WorkExperience.
// Projects are confidential unless told otherwise: templates show the
// redacted label instead of the client name.
type Project struct {
	name         *string
	redacted     *string
	position     *string
	start        *int
	end          *int
	description  []string
	activities   []string
	confidential bool
}

// ProjectFields holds the constructor arguments of a Project.
// A nil Confidential defaults to true.
type ProjectFields struct {
	Name         *string
	Redacted     *string
	Position     *string
	Start        *int
	End          *int
	Description  []string
	Activities   []string
	Confidential *bool
}

// NewProject builds a Project. Start and End must be 6-digit YYYYMM codes.
func NewProject(f ProjectFields) (*Project, error) {
	p := &Project{
		name:         clonePtr(f.Name),
		redacted:     clonePtr(f.Redacted),
		position:     clonePtr(f.Position),
		confidential: true,
	}
	if err := p.SetStart(f.Start); err != nil {
		return nil, err
	}
	if err := p.SetEnd(f.End); err != nil {
		return nil, err
	}
	p.SetDescription(f.Description)
	p.SetActivities(f.Activities)
	if f.Confidential != nil {
		p.SetConfidential(*f.Confidential)
	}
	return p, nil
}

func (p *Project) Name() *string         { return clonePtr(p.name) }
func (p *Project) Redacted() *string     { return clonePtr(p.redacted) }
func (p *Project) Position() *string     { return clonePtr(p.position) }
func (p *Project) Start() *int           { return clonePtr(p.start) }
func (p *Project) End() *int             { return clonePtr(p.end) }
func (p *Project) Description() []string { return cloneList(p.description) }
func (p *Project) Activities() []string  { return cloneList(p.activities) }
func (p *Project) Confidential() bool    { return p.confidential }

func (p *Project) SetName(name *string)         { p.name = clonePtr(name) }
func (p *Project) SetRedacted(redacted *string) { p.redacted = clonePtr(redacted) }
func (p *Project) SetPosition(position *string) { p.position = clonePtr(position) }
func (p *Project) SetConfidential(v bool)       { p.confidential = v }

func (p *Project) SetStart(start *int) error {
	return setDateCode("start", &p.start, start, YearMonthWidth)
}

func (p *Project) SetEnd(end *int) error {
	return setDateCode("end", &p.end, end, YearMonthWidth)
}

// SetDescription replaces the description; nil unsets it.
func (p *Project) SetDescription(description []string) {
	p.description = cloneList(description)
}

// SetActivities replaces the activities; nil unsets them.
func (p *Project) SetActivities(activities []string) {
	p.activities = cloneList(activities)
}

func (p *Project) AddDescription(paragraph string) {
	addItem(&p.description, paragraph)
}

func (p *Project) RemoveDescription(paragraph string) error {
	return removeItem("description", &p.description, paragraph)
}

func (p *Project) ReorderDescription(order []int) error {
	return reorderItems("description", &p.description, order)
}

func (p *Project) AddActivity(activity string) {
	addItem(&p.activities, activity)
}

func (p *Project) RemoveActivity(activity string) error {
	return removeItem("activities", &p.activities, activity)
}

func (p *Project) ReorderActivities(order []int) error {
	return reorderItems("activities", &p.activities, order)
}

// Set writes a field by its serialized name.
func (p *Project) Set(field string, value any) error {
	switch field {
	case "name", "redacted", "position":
		s, err := AssertString(field, value)
		if err != nil {
			return err
		}
		switch field {
		case "name":
			p.SetName(s)
		case "redacted":
			p.SetRedacted(s)
		default:
			p.SetPosition(s)
		}
		return nil
	case "start", "end":
		n, err := AssertDateCode(field, value, YearMonthWidth)
		if err != nil {
			return err
		}
		if field == "start" {
			return p.SetStart(n)
		}
		return p.SetEnd(n)
	case "description", "activities":
		items, err := AssertStringList(field, value)
		if err != nil {
			return err
		}
		if field == "description" {
			p.SetDescription(items)
		} else {
			p.SetActivities(items)
		}
		return nil
	case "confidential":
		b, err := AssertBool(field, value)
		if err != nil {
			return err
		}
		if b == nil {
			b = Ptr(true)
		}
		p.SetConfidential(*b)
		return nil
	}
	return unknownField("Project", field)
}

func (p *Project) Fields() []Field {
	return []Field{
		{Name: "name", Value: optional(p.name)},
		{Name: "redacted", Value: optional(p.redacted)},
		{Name: "position", Value: optional(p.position)},
		{Name: "start", Value: optional(p.start)},
		{Name: "end", Value: optional(p.end)},
		{Name: "description", Value: listValue(p.description)},
		{Name: "activities", Value: listValue(p.activities)},
		{Name: "confidential", Value: p.confidential},
	}
}

func (p *Project) period() (start, end *int) {
	return p.start, p.end
}

func setDateCode(name string, dst **int, value *int, width int) error {
	if value != nil {
		if err := checkDateCode(name, *value, width); err != nil {
			return err
		}
	}
	*dst = clonePtr(value)
	return nil
}

func cloneList[T any](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}
