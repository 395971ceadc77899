package criteria

import "github.com/rpattn/hrapi/internal/filter"

// JobCriteria filters jobs, e.g. `/api/jobs?id.greaterThan=5&jobTitle.contains=dev`.
type JobCriteria struct {
	ID         *filter.LongFilter
	JobTitle   *filter.StringFilter
	MinSalary  *filter.LongFilter
	MaxSalary  *filter.LongFilter
	TaskID     *filter.LongFilter
	EmployeeID *filter.LongFilter
	Distinct   *bool
}

// Copy returns a deep copy of c.
func (c *JobCriteria) Copy() *JobCriteria {
	return &JobCriteria{
		ID:         c.ID.Copy(),
		JobTitle:   c.JobTitle.Copy(),
		MinSalary:  c.MinSalary.Copy(),
		MaxSalary:  c.MaxSalary.Copy(),
		TaskID:     c.TaskID.Copy(),
		EmployeeID: c.EmployeeID.Copy(),
		Distinct:   copyFlag(c.Distinct),
	}
}

// Equal compares every filter and the distinct flag.
func (c *JobCriteria) Equal(other *JobCriteria) bool {
	return equal(c, other)
}

func (c *JobCriteria) IDFilter() *filter.LongFilter         { return ensure(&c.ID) }
func (c *JobCriteria) JobTitleFilter() *filter.StringFilter { return ensure(&c.JobTitle) }
func (c *JobCriteria) MinSalaryFilter() *filter.LongFilter  { return ensure(&c.MinSalary) }
func (c *JobCriteria) MaxSalaryFilter() *filter.LongFilter  { return ensure(&c.MaxSalary) }
func (c *JobCriteria) TaskIDFilter() *filter.LongFilter     { return ensure(&c.TaskID) }
func (c *JobCriteria) EmployeeIDFilter() *filter.LongFilter { return ensure(&c.EmployeeID) }
func (c *JobCriteria) IsDistinct() bool                     { return isDistinct(c.Distinct) }

func (c *JobCriteria) Binders() map[string]filter.Binder {
	return map[string]filter.Binder{
		"id":         filter.BindRange(&c.ID, filter.ParseInt64),
		"jobTitle":   filter.BindString(&c.JobTitle),
		"minSalary":  filter.BindRange(&c.MinSalary, filter.ParseInt64),
		"maxSalary":  filter.BindRange(&c.MaxSalary, filter.ParseInt64),
		"taskId":     filter.BindRange(&c.TaskID, filter.ParseInt64),
		"employeeId": filter.BindRange(&c.EmployeeID, filter.ParseInt64),
		"distinct":   filter.BindFlag(&c.Distinct),
	}
}

func (c *JobCriteria) String() string {
	var p []string
	p = set(p, "id", c.ID)
	p = set(p, "jobTitle", c.JobTitle)
	p = set(p, "minSalary", c.MinSalary)
	p = set(p, "maxSalary", c.MaxSalary)
	p = set(p, "taskId", c.TaskID)
	p = set(p, "employeeId", c.EmployeeID)
	return render("JobCriteria", p, c.Distinct)
}
