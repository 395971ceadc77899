package mapper

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpattn/hrapi/internal/domain"
	"github.com/rpattn/hrapi/internal/dto"
)

func ptr[T any](v T) *T { return &v }

func TestJobHistoryRoundTrip(t *testing.T) {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	lang := domain.LanguageSpanish
	e := domain.JobHistory{
		ID:         7,
		StartDate:  &start,
		Language:   &lang,
		Job:        &domain.Job{ID: 5, JobTitle: ptr("Engineer")},
		Department: &domain.Department{ID: 2, DepartmentName: "R&D"},
		Employee:   &domain.Employee{ID: 3},
	}

	d := JobHistoryToDTO(e)
	require.NotNil(t, d.Job)
	assert.Equal(t, int64(5), *d.Job.ID)
	assert.Nil(t, d.Job.JobTitle, "references carry only the id")
	assert.Nil(t, d.EndDate)

	back := JobHistoryToEntity(d)
	want := domain.JobHistory{
		ID:         7,
		StartDate:  &start,
		Language:   &lang,
		Job:        &domain.Job{ID: 5},
		Department: &domain.Department{ID: 2},
		Employee:   &domain.Employee{ID: 3},
	}
	if diff := cmp.Diff(want, back); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestToDTODoesNotAliasEntity(t *testing.T) {
	e := domain.Region{ID: 1, RegionName: ptr("Europe")}
	d := RegionToDTO(e)
	*d.RegionName = "Asia"
	assert.Equal(t, "Europe", *e.RegionName)
}

func TestUnsavedEntityHasNoID(t *testing.T) {
	d := TaskToDTO(domain.Task{Title: ptr("plan")})
	assert.Nil(t, d.ID)
	assert.Equal(t, int64(0), TaskToEntity(d).ID)
}

func TestJobTasksKeepTitle(t *testing.T) {
	e := domain.Job{
		ID:       4,
		JobTitle: ptr("Lead"),
		Tasks: []domain.Task{
			{ID: 10, Title: ptr("review"), Description: ptr("code review")},
			{ID: 11, Title: ptr("deploy")},
		},
		Employee: &domain.Employee{ID: 9, FirstName: ptr("Ada")},
	}

	d := JobToDTO(e)
	require.Len(t, d.Tasks, 2)
	assert.Equal(t, "review", *d.Tasks[0].Title)
	assert.Nil(t, d.Tasks[0].Description)
	assert.Equal(t, dto.EmployeeDTO{ID: ptr(int64(9))}, *d.Employee)

	back := JobToEntity(d)
	assert.Equal(t, []int64{10, 11}, back.TaskIDs())
	assert.Equal(t, int64(9), back.Employee.ID)
}

func TestListConversionsPreserveNil(t *testing.T) {
	assert.Nil(t, RegionsToDTOs(nil))
	assert.Nil(t, CountriesToEntities(nil))
	assert.Len(t, EmployeesToDTOs([]domain.Employee{{ID: 1}, {ID: 2}}), 2)
}

func TestEmployeeRoundTrip(t *testing.T) {
	hired := time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)
	e := domain.Employee{
		ID:            12,
		FirstName:     ptr("Grace"),
		LastName:      ptr("Hopper"),
		Email:         ptr("grace@example.com"),
		PhoneNumber:   ptr("555-0100"),
		HireDate:      &hired,
		Salary:        ptr(int64(90000)),
		CommissionPct: ptr(int64(5)),
		Manager:       &domain.Employee{ID: 1},
		Department:    &domain.Department{ID: 2},
	}
	assert.Equal(t, e, EmployeeToEntity(EmployeeToDTO(e)))
}

func TestLocationCountryRegionChain(t *testing.T) {
	c := domain.Country{ID: 3, CountryName: ptr("France"), Region: &domain.Region{ID: 1, RegionName: ptr("Europe")}}
	cd := CountryToDTO(c)
	assert.Equal(t, &dto.RegionDTO{ID: ptr(int64(1))}, cd.Region)

	l := domain.Location{ID: 8, City: ptr("Paris"), Country: &c}
	ld := LocationToDTO(l)
	assert.Equal(t, &dto.CountryDTO{ID: ptr(int64(3))}, ld.Country)
	assert.Equal(t, int64(3), LocationToEntity(ld).Country.ID)
}

func TestDepartmentNameAlwaysRendered(t *testing.T) {
	d := DepartmentToDTO(domain.Department{ID: 1, DepartmentName: "Sales", Location: &domain.Location{ID: 4}})
	require.NotNil(t, d.DepartmentName)
	assert.Equal(t, "Sales", *d.DepartmentName)
	assert.Equal(t, domain.Department{ID: 1, DepartmentName: "Sales", Location: &domain.Location{ID: 4}}, DepartmentToEntity(d))
}

func TestPartialUpdateSkipsNilFields(t *testing.T) {
	e := domain.Employee{
		ID:         1,
		FirstName:  ptr("Alan"),
		LastName:   ptr("Turing"),
		Department: &domain.Department{ID: 2},
	}
	PartialUpdateEmployee(&e, dto.EmployeeDTO{
		ID:       ptr(int64(1)),
		LastName: ptr("Kay"),
		Manager:  &dto.EmployeeDTO{ID: ptr(int64(6))},
	})

	assert.Equal(t, "Alan", *e.FirstName)
	assert.Equal(t, "Kay", *e.LastName)
	assert.Equal(t, int64(6), e.Manager.ID)
	assert.Equal(t, int64(2), e.Department.ID)
}

func TestPartialUpdateJobTasks(t *testing.T) {
	e := domain.Job{ID: 1, Tasks: []domain.Task{{ID: 1}}}

	PartialUpdateJob(&e, dto.JobDTO{MinSalary: ptr(int64(10))})
	assert.Equal(t, []int64{1}, e.TaskIDs())
	assert.Equal(t, int64(10), *e.MinSalary)

	PartialUpdateJob(&e, dto.JobDTO{Tasks: []dto.TaskDTO{}})
	assert.Empty(t, e.TaskIDs())
}

func TestPartialUpdateDepartmentAndHistory(t *testing.T) {
	dep := domain.Department{ID: 1, DepartmentName: "Ops"}
	PartialUpdateDepartment(&dep, dto.DepartmentDTO{Location: &dto.LocationDTO{ID: ptr(int64(3))}})
	assert.Equal(t, "Ops", dep.DepartmentName)
	assert.Equal(t, int64(3), dep.Location.ID)

	lang := domain.LanguageFrench
	h := domain.JobHistory{ID: 1}
	PartialUpdateJobHistory(&h, dto.JobHistoryDTO{Language: &lang, Job: &dto.JobDTO{ID: ptr(int64(5))}})
	assert.Equal(t, domain.LanguageFrench, *h.Language)
	assert.Equal(t, int64(5), h.Job.ID)
	assert.Nil(t, h.Department)
}
