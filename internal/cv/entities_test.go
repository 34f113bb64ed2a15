package cv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguage_NormalizesRatings(t *testing.T) {
	l, err := NewLanguage(LanguageFields{Name: "French", IRLScale: Ptr("native"), CEFRLevel: Ptr("b2")})
	require.NoError(t, err)
	assert.Equal(t, "Native", *l.IRLScale())
	assert.Equal(t, "B2", *l.CEFRLevel())

	require.NoError(t, l.Set("irl_scale", "limited working proficiency"))
	assert.Equal(t, "Limited Working Proficiency", *l.IRLScale())
}

func TestLanguage_RejectsUnknownRatings(t *testing.T) {
	_, err := NewLanguage(LanguageFields{Name: "French", IRLScale: Ptr("xyz")})
	assert.ErrorIs(t, err, ErrUnknownEnumValue)

	_, err = NewLanguage(LanguageFields{Name: "French", CEFRLevel: Ptr("Z9")})
	assert.ErrorIs(t, err, ErrUnknownEnumValue)
}

func TestLanguage_RejectedWriteKeepsPreviousValue(t *testing.T) {
	l, err := NewLanguage(LanguageFields{Name: "German", CEFRLevel: Ptr("C1")})
	require.NoError(t, err)

	err = l.SetCEFRLevel(Ptr("D1"))
	require.ErrorIs(t, err, ErrUnknownEnumValue)
	assert.Equal(t, "C1", *l.CEFRLevel())

	require.NoError(t, l.SetCEFRLevel(nil))
	assert.Nil(t, l.CEFRLevel())
}

func TestLanguage_Set(t *testing.T) {
	l := &Language{}
	assert.ErrorIs(t, l.Set("name", 12), ErrInvalidType)
	assert.ErrorIs(t, l.Set("name", nil), ErrMissingField)
	assert.ErrorIs(t, l.Set("level", "B1"), ErrUnknownField)
	assert.ErrorIs(t, l.Set("cefr_level", 3), ErrInvalidType)
}

func TestEducation_DateCodes(t *testing.T) {
	e, err := NewEducation(EducationFields{School: "MIT", Degree: "BSc", Start: 1999})
	require.NoError(t, err)
	assert.Equal(t, 1999, e.Start())
	assert.Nil(t, e.End())

	_, err = NewEducation(EducationFields{School: "MIT", Degree: "BSc", Start: 99})
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = NewEducation(EducationFields{School: "MIT", Degree: "BSc", Start: 1999, End: Ptr(200301)})
	assert.ErrorIs(t, err, ErrInvalidFormat)

	assert.ErrorIs(t, e.Set("start", "1999"), ErrInvalidType)
	assert.Equal(t, 1999, e.Start())

	require.NoError(t, e.Set("end", 2003))
	assert.Equal(t, 2003, *e.End())
}

func TestProject_Defaults(t *testing.T) {
	p, err := NewProject(ProjectFields{})
	require.NoError(t, err)
	assert.True(t, p.Confidential())
	assert.Nil(t, p.Name())
	assert.Nil(t, p.Start())
	assert.Nil(t, p.Description())
	assert.Nil(t, p.Activities())
}

func TestProject_DateCodes(t *testing.T) {
	p, err := NewProject(ProjectFields{Start: Ptr(202301)})
	require.NoError(t, err)
	assert.Equal(t, 202301, *p.Start())

	_, err = NewProject(ProjectFields{Start: Ptr(2023)})
	assert.ErrorIs(t, err, ErrInvalidFormat)

	assert.ErrorIs(t, p.SetEnd(Ptr(20231)), ErrInvalidFormat)
	assert.Nil(t, p.End())
}

func TestProject_Set(t *testing.T) {
	p, err := NewProject(ProjectFields{})
	require.NoError(t, err)

	assert.ErrorIs(t, p.Set("description", "single paragraph"), ErrInvalidType)
	assert.ErrorIs(t, p.Set("confidential", "no"), ErrInvalidType)
	assert.ErrorIs(t, p.Set("client", "Acme"), ErrUnknownField)

	require.NoError(t, p.Set("confidential", false))
	assert.False(t, p.Confidential())
	require.NoError(t, p.Set("activities", []any{"Design", "Delivery"}))
	assert.Equal(t, []string{"Design", "Delivery"}, p.Activities())
}

func TestProject_ListEditing(t *testing.T) {
	p, err := NewProject(ProjectFields{})
	require.NoError(t, err)

	assert.ErrorIs(t, p.RemoveActivity("Design"), ErrEmptyCollection)
	assert.ErrorIs(t, p.ReorderActivities([]int{0}), ErrEmptyCollection)

	p.AddActivity("Design")
	p.AddActivity("Build")
	p.AddActivity("Run")
	require.NoError(t, p.ReorderActivities([]int{2, 0, 1}))
	assert.Equal(t, []string{"Run", "Design", "Build"}, p.Activities())

	require.NoError(t, p.RemoveActivity("Design"))
	assert.Equal(t, []string{"Run", "Build"}, p.Activities())
	assert.ErrorIs(t, p.RemoveActivity("Design"), ErrNotFound)

	p.AddDescription("Migration of the billing platform")
	require.NoError(t, p.RemoveDescription("Migration of the billing platform"))
	assert.NotNil(t, p.Description())
	assert.Empty(t, p.Description())
}

func TestProject_GettersReturnCopies(t *testing.T) {
	p, err := NewProject(ProjectFields{Description: []string{"a"}, Name: Ptr("Acme")})
	require.NoError(t, err)

	p.Description()[0] = "changed"
	*p.Name() = "changed"
	assert.Equal(t, []string{"a"}, p.Description())
	assert.Equal(t, "Acme", *p.Name())
}

func TestWorkExperience_Construction(t *testing.T) {
	w, err := NewWorkExperience(WorkExperienceFields{Employer: "Acme", Start: 202001, Position: Ptr("Consultant")})
	require.NoError(t, err)
	assert.Equal(t, "Acme", w.Employer())
	assert.Equal(t, 202001, w.Start())
	assert.Nil(t, w.Projects())

	_, err = NewWorkExperience(WorkExperienceFields{Employer: "Acme", Start: 2020})
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = NewWorkExperience(WorkExperienceFields{Employer: "Acme", Start: 202001, Projects: []*Project{nil}})
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestWorkExperience_Projects(t *testing.T) {
	w, err := NewWorkExperience(WorkExperienceFields{Employer: "Acme", Start: 202001})
	require.NoError(t, err)

	assert.ErrorIs(t, w.AddProject(nil), ErrInvalidType)
	assert.ErrorIs(t, w.RemoveProject(&Project{}), ErrEmptyCollection)

	a, err := NewProject(ProjectFields{Name: Ptr("A")})
	require.NoError(t, err)
	b, err := NewProject(ProjectFields{Name: Ptr("A")})
	require.NoError(t, err)
	require.NoError(t, w.AddProject(a))
	require.NoError(t, w.AddProject(b))

	// identical content, different identity
	other, err := NewProject(ProjectFields{Name: Ptr("A")})
	require.NoError(t, err)
	assert.ErrorIs(t, w.RemoveProject(other), ErrNotFound)

	require.NoError(t, w.RemoveProject(b))
	require.Len(t, w.Projects(), 1)
	assert.Same(t, a, w.Projects()[0])
}

func TestWorkExperience_Set(t *testing.T) {
	w, err := NewWorkExperience(WorkExperienceFields{Employer: "Acme", Start: 202001})
	require.NoError(t, err)

	assert.ErrorIs(t, w.Set("employer", nil), ErrMissingField)
	assert.ErrorIs(t, w.Set("end", 20211), ErrInvalidFormat)
	assert.ErrorIs(t, w.Set("projects", []any{}), ErrInvalidType)
	assert.ErrorIs(t, w.Set("client", "x"), ErrUnknownField)

	require.NoError(t, w.Set("end", 202112))
	assert.Equal(t, 202112, *w.End())
	require.NoError(t, w.Set("projects", []*Project{}))
	assert.NotNil(t, w.Projects())
}
