// Package cv provides the validated résumé data model and its serialization engine.
package cv

// Education is a degree awarded by a school, dated with YYYY years
type Education struct {
	school string
	degree string
	start  int
	end    *int
}

// EducationFields holds the constructor arguments of an Education
type EducationFields struct {
	School string
	Degree string
	Start  int
	End    *int
}

// NewEducation builds an Education. Start and End must be 4-digit years.
func NewEducation(f EducationFields) (*Education, error) {
	e := &Education{school: f.School, degree: f.Degree}
	if err := e.SetStart(f.Start); err != nil {
		return nil, err
	}
	if err := e.SetEnd(f.End); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Education) School() string { return e.school }
func (e *Education) Degree() string { return e.degree }
func (e *Education) Start() int     { return e.start }
func (e *Education) End() *int      { return clonePtr(e.end) }

func (e *Education) SetSchool(school string) { e.school = school }
func (e *Education) SetDegree(degree string) { e.degree = degree }

func (e *Education) SetStart(start int) error {
	if err := checkDateCode("start", start, YearWidth); err != nil {
		return err
	}
	e.start = start
	return nil
}

func (e *Education) SetEnd(end *int) error {
	return setDateCode("end", &e.end, end, YearWidth)
}

// Set writes a field by its serialized name.
func (e *Education) Set(field string, value any) error {
	switch field {
	case "school", "degree":
		if err := requireValue(field, value); err != nil {
			return err
		}
		s, err := AssertString(field, value)
		if err != nil {
			return err
		}
		if field == "school" {
			e.SetSchool(*s)
		} else {
			e.SetDegree(*s)
		}
		return nil
	case "start":
		if err := requireValue(field, value); err != nil {
			return err
		}
		n, err := AssertDateCode(field, value, YearWidth)
		if err != nil {
			return err
		}
		return e.SetStart(*n)
	case "end":
		n, err := AssertDateCode(field, value, YearWidth)
		if err != nil {
			return err
		}
		return e.SetEnd(n)
	}
	return unknownField("Education", field)
}

func (e *Education) Fields() []Field {
	return []Field{
		{Name: "school", Value: e.school},
		{Name: "degree", Value: e.degree},
		{Name: "start", Value: e.start},
		{Name: "end", Value: optional(e.end)},
	}
}

func (e *Education) period() (start, end *int) {
	return &e.start, e.end
}
