package criteria

import (
	"github.com/rpattn/hrapi/internal/domain"
	"github.com/rpattn/hrapi/internal/filter"
)

// JobHistoryCriteria filters job histories, e.g.
// `/api/job-histories?startDate.in=...&language.in=FRENCH,ENGLISH&jobId.equals=5`.
type JobHistoryCriteria struct {
	ID           *filter.LongFilter
	StartDate    *filter.InstantFilter
	EndDate      *filter.InstantFilter
	Language     *LanguageFilter
	JobID        *filter.LongFilter
	DepartmentID *filter.LongFilter
	EmployeeID   *filter.LongFilter
	Distinct     *bool
}

// Copy returns a deep copy of c.
func (c *JobHistoryCriteria) Copy() *JobHistoryCriteria {
	return &JobHistoryCriteria{
		ID:           c.ID.Copy(),
		StartDate:    c.StartDate.Copy(),
		EndDate:      c.EndDate.Copy(),
		Language:     c.Language.Copy(),
		JobID:        c.JobID.Copy(),
		DepartmentID: c.DepartmentID.Copy(),
		EmployeeID:   c.EmployeeID.Copy(),
		Distinct:     copyFlag(c.Distinct),
	}
}

// Equal compares every filter and the distinct flag.
func (c *JobHistoryCriteria) Equal(other *JobHistoryCriteria) bool {
	return equal(c, other)
}

func (c *JobHistoryCriteria) IDFilter() *filter.LongFilter           { return ensure(&c.ID) }
func (c *JobHistoryCriteria) StartDateFilter() *filter.InstantFilter { return ensure(&c.StartDate) }
func (c *JobHistoryCriteria) EndDateFilter() *filter.InstantFilter   { return ensure(&c.EndDate) }
func (c *JobHistoryCriteria) LanguageFilter() *LanguageFilter        { return ensure(&c.Language) }
func (c *JobHistoryCriteria) JobIDFilter() *filter.LongFilter        { return ensure(&c.JobID) }
func (c *JobHistoryCriteria) DepartmentIDFilter() *filter.LongFilter { return ensure(&c.DepartmentID) }
func (c *JobHistoryCriteria) EmployeeIDFilter() *filter.LongFilter   { return ensure(&c.EmployeeID) }
func (c *JobHistoryCriteria) IsDistinct() bool                       { return isDistinct(c.Distinct) }

func (c *JobHistoryCriteria) Binders() map[string]filter.Binder {
	return map[string]filter.Binder{
		"id":           filter.BindRange(&c.ID, filter.ParseInt64),
		"startDate":    filter.BindRange(&c.StartDate, filter.ParseInstant),
		"endDate":      filter.BindRange(&c.EndDate, filter.ParseInstant),
		"language":     filter.BindFilter(&c.Language, domain.ParseLanguage),
		"jobId":        filter.BindRange(&c.JobID, filter.ParseInt64),
		"departmentId": filter.BindRange(&c.DepartmentID, filter.ParseInt64),
		"employeeId":   filter.BindRange(&c.EmployeeID, filter.ParseInt64),
		"distinct":     filter.BindFlag(&c.Distinct),
	}
}

func (c *JobHistoryCriteria) String() string {
	var p []string
	p = set(p, "id", c.ID)
	p = set(p, "startDate", c.StartDate)
	p = set(p, "endDate", c.EndDate)
	p = set(p, "language", c.Language)
	p = set(p, "jobId", c.JobID)
	p = set(p, "departmentId", c.DepartmentID)
	p = set(p, "employeeId", c.EmployeeID)
	return render("JobHistoryCriteria", p, c.Distinct)
}
