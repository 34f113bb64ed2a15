package cv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func employers(works []*WorkExperience) []string {
	out := make([]string, len(works))
	for i, w := range works {
		out[i] = w.Employer()
	}
	return out
}

func projectNames(projects []*Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = *p.Name()
	}
	return out
}

func TestParseSortOrder(t *testing.T) {
	order, err := ParseSortOrder("desc")
	require.NoError(t, err)
	assert.Equal(t, Descending, order)

	_, err = ParseSortOrder("descending")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = ParseSortOrder("")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSortWorks_OngoingFirstWhenDescending(t *testing.T) {
	e, err := NewEmployee(EmployeeFields{})
	require.NoError(t, err)
	require.NoError(t, e.AddWork(newTestWork(t, "Closed", 202001, Ptr(202006))))
	require.NoError(t, e.AddWork(newTestWork(t, "Ongoing", 202101, nil)))

	require.NoError(t, e.SortWorks(Descending))
	assert.Equal(t, []string{"Ongoing", "Closed"}, employers(e.Works()))

	require.NoError(t, e.SortWorks(Ascending))
	assert.Equal(t, []string{"Closed", "Ongoing"}, employers(e.Works()))
}

func TestSortWorks_SameStartBreaksOnEnd(t *testing.T) {
	e, err := NewEmployee(EmployeeFields{})
	require.NoError(t, err)
	require.NoError(t, e.AddWork(newTestWork(t, "Ongoing", 202001, nil)))
	require.NoError(t, e.AddWork(newTestWork(t, "Long", 202001, Ptr(202112))))
	require.NoError(t, e.AddWork(newTestWork(t, "Short", 202001, Ptr(202003))))

	require.NoError(t, e.SortWorks(Ascending))
	assert.Equal(t, []string{"Short", "Long", "Ongoing"}, employers(e.Works()))

	require.NoError(t, e.SortWorks(Descending))
	assert.Equal(t, []string{"Ongoing", "Long", "Short"}, employers(e.Works()))
}

func TestSortWorks_StableOnTies(t *testing.T) {
	e, err := NewEmployee(EmployeeFields{})
	require.NoError(t, err)
	require.NoError(t, e.AddWork(newTestWork(t, "First", 202001, Ptr(202002))))
	require.NoError(t, e.AddWork(newTestWork(t, "Second", 202001, Ptr(202002))))
	require.NoError(t, e.AddWork(newTestWork(t, "Older", 201901, nil)))

	require.NoError(t, e.SortWorks(Descending))
	assert.Equal(t, []string{"First", "Second", "Older"}, employers(e.Works()))

	require.NoError(t, e.SortWorks(Ascending))
	assert.Equal(t, []string{"Older", "First", "Second"}, employers(e.Works()))
}

func TestSortWorks_Errors(t *testing.T) {
	e, err := NewEmployee(EmployeeFields{})
	require.NoError(t, err)
	assert.ErrorIs(t, e.SortWorks(Ascending), ErrEmptyCollection)

	require.NoError(t, e.AddWork(newTestWork(t, "A", 202001, nil)))
	assert.ErrorIs(t, e.SortWorks("random"), ErrInvalidArgument)
}

func TestSortProjects_UndatedStartFirstWhenAscending(t *testing.T) {
	w := newTestWork(t, "Acme", 201901, nil,
		newTestProject(t, "Late", Ptr(202105), nil),
		newTestProject(t, "Undated", nil, nil),
		newTestProject(t, "Early", Ptr(201902), Ptr(201912)),
	)

	require.NoError(t, w.SortProjects(Ascending))
	assert.Equal(t, []string{"Undated", "Early", "Late"}, projectNames(w.Projects()))

	require.NoError(t, w.SortProjects(Descending))
	assert.Equal(t, []string{"Late", "Early", "Undated"}, projectNames(w.Projects()))
}

func TestEmployeeSortProjects_SkipsWorksWithoutProjects(t *testing.T) {
	e, err := NewEmployee(EmployeeFields{})
	require.NoError(t, err)
	assert.ErrorIs(t, e.SortProjects(Descending), ErrEmptyCollection)

	withProjects := newTestWork(t, "Acme", 201901, nil,
		newTestProject(t, "Early", Ptr(201902), Ptr(201912)),
		newTestProject(t, "Late", Ptr(202105), nil),
	)
	require.NoError(t, e.AddWork(newTestWork(t, "Solo", 201801, Ptr(201812))))
	require.NoError(t, e.AddWork(withProjects))

	require.NoError(t, e.SortProjects(Descending))
	assert.Equal(t, []string{"Late", "Early"}, projectNames(withProjects.Projects()))
	assert.Nil(t, e.Works()[0].Projects())

	assert.ErrorIs(t, e.SortProjects("up"), ErrInvalidArgument)
}

func TestSortEducations(t *testing.T) {
	e, err := NewEmployee(EmployeeFields{})
	require.NoError(t, err)
	assert.ErrorIs(t, e.SortEducations(Descending), ErrEmptyCollection)

	bachelor, err := NewEducation(EducationFields{School: "Uni", Degree: "BSc", Start: 2005, End: Ptr(2008)})
	require.NoError(t, err)
	phd, err := NewEducation(EducationFields{School: "Uni", Degree: "PhD", Start: 2010})
	require.NoError(t, err)
	master, err := NewEducation(EducationFields{School: "Uni", Degree: "MSc", Start: 2008, End: Ptr(2010)})
	require.NoError(t, err)
	require.NoError(t, e.AddEducation(bachelor))
	require.NoError(t, e.AddEducation(phd))
	require.NoError(t, e.AddEducation(master))

	require.NoError(t, e.SortEducations(Descending))
	assert.Equal(t, []*Education{phd, master, bachelor}, e.Educations())
}
