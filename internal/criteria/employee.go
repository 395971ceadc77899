package criteria

import "github.com/rpattn/hrapi/internal/filter"

// EmployeeCriteria filters employees.
type EmployeeCriteria struct {
	ID            *filter.LongFilter
	FirstName     *filter.StringFilter
	LastName      *filter.StringFilter
	Email         *filter.StringFilter
	PhoneNumber   *filter.StringFilter
	HireDate      *filter.InstantFilter
	Salary        *filter.LongFilter
	CommissionPct *filter.LongFilter
	JobID         *filter.LongFilter
	ManagerID     *filter.LongFilter
	DepartmentID  *filter.LongFilter
	Distinct      *bool
}

// Copy returns a deep copy of c.
func (c *EmployeeCriteria) Copy() *EmployeeCriteria {
	return &EmployeeCriteria{
		ID:            c.ID.Copy(),
		FirstName:     c.FirstName.Copy(),
		LastName:      c.LastName.Copy(),
		Email:         c.Email.Copy(),
		PhoneNumber:   c.PhoneNumber.Copy(),
		HireDate:      c.HireDate.Copy(),
		Salary:        c.Salary.Copy(),
		CommissionPct: c.CommissionPct.Copy(),
		JobID:         c.JobID.Copy(),
		ManagerID:     c.ManagerID.Copy(),
		DepartmentID:  c.DepartmentID.Copy(),
		Distinct:      copyFlag(c.Distinct),
	}
}

// Equal compares every filter and the distinct flag.
func (c *EmployeeCriteria) Equal(other *EmployeeCriteria) bool {
	return equal(c, other)
}

func (c *EmployeeCriteria) IDFilter() *filter.LongFilter            { return ensure(&c.ID) }
func (c *EmployeeCriteria) FirstNameFilter() *filter.StringFilter   { return ensure(&c.FirstName) }
func (c *EmployeeCriteria) LastNameFilter() *filter.StringFilter    { return ensure(&c.LastName) }
func (c *EmployeeCriteria) EmailFilter() *filter.StringFilter       { return ensure(&c.Email) }
func (c *EmployeeCriteria) PhoneNumberFilter() *filter.StringFilter { return ensure(&c.PhoneNumber) }
func (c *EmployeeCriteria) HireDateFilter() *filter.InstantFilter   { return ensure(&c.HireDate) }
func (c *EmployeeCriteria) SalaryFilter() *filter.LongFilter        { return ensure(&c.Salary) }
func (c *EmployeeCriteria) CommissionPctFilter() *filter.LongFilter { return ensure(&c.CommissionPct) }
func (c *EmployeeCriteria) JobIDFilter() *filter.LongFilter         { return ensure(&c.JobID) }
func (c *EmployeeCriteria) ManagerIDFilter() *filter.LongFilter     { return ensure(&c.ManagerID) }
func (c *EmployeeCriteria) DepartmentIDFilter() *filter.LongFilter  { return ensure(&c.DepartmentID) }
func (c *EmployeeCriteria) IsDistinct() bool                        { return isDistinct(c.Distinct) }

func (c *EmployeeCriteria) Binders() map[string]filter.Binder {
	return map[string]filter.Binder{
		"id":            filter.BindRange(&c.ID, filter.ParseInt64),
		"firstName":     filter.BindString(&c.FirstName),
		"lastName":      filter.BindString(&c.LastName),
		"email":         filter.BindString(&c.Email),
		"phoneNumber":   filter.BindString(&c.PhoneNumber),
		"hireDate":      filter.BindRange(&c.HireDate, filter.ParseInstant),
		"salary":        filter.BindRange(&c.Salary, filter.ParseInt64),
		"commissionPct": filter.BindRange(&c.CommissionPct, filter.ParseInt64),
		"jobId":         filter.BindRange(&c.JobID, filter.ParseInt64),
		"managerId":     filter.BindRange(&c.ManagerID, filter.ParseInt64),
		"departmentId":  filter.BindRange(&c.DepartmentID, filter.ParseInt64),
		"distinct":      filter.BindFlag(&c.Distinct),
	}
}

func (c *EmployeeCriteria) String() string {
	var p []string
	p = set(p, "id", c.ID)
	p = set(p, "firstName", c.FirstName)
	p = set(p, "lastName", c.LastName)
	p = set(p, "email", c.Email)
	p = set(p, "phoneNumber", c.PhoneNumber)
	p = set(p, "hireDate", c.HireDate)
	p = set(p, "salary", c.Salary)
	p = set(p, "commissionPct", c.CommissionPct)
	p = set(p, "jobId", c.JobID)
	p = set(p, "managerId", c.ManagerID)
	p = set(p, "departmentId", c.DepartmentID)
	return render("EmployeeCriteria", p, c.Distinct)
}
