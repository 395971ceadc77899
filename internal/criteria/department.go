package criteria

import "github.com/rpattn/hrapi/internal/filter"

// DepartmentCriteria filters departments. EmployeeID matches departments that
// have at least one employee satisfying the filter.
type DepartmentCriteria struct {
	ID             *filter.LongFilter
	DepartmentName *filter.StringFilter
	LocationID     *filter.LongFilter
	EmployeeID     *filter.LongFilter
	Distinct       *bool
}

// Copy returns a deep copy of c.
func (c *DepartmentCriteria) Copy() *DepartmentCriteria {
	return &DepartmentCriteria{
		ID:             c.ID.Copy(),
		DepartmentName: c.DepartmentName.Copy(),
		LocationID:     c.LocationID.Copy(),
		EmployeeID:     c.EmployeeID.Copy(),
		Distinct:       copyFlag(c.Distinct),
	}
}

// Equal compares every filter and the distinct flag.
func (c *DepartmentCriteria) Equal(other *DepartmentCriteria) bool {
	return equal(c, other)
}

func (c *DepartmentCriteria) IDFilter() *filter.LongFilter { return ensure(&c.ID) }
func (c *DepartmentCriteria) DepartmentNameFilter() *filter.StringFilter {
	return ensure(&c.DepartmentName)
}
func (c *DepartmentCriteria) LocationIDFilter() *filter.LongFilter { return ensure(&c.LocationID) }
func (c *DepartmentCriteria) EmployeeIDFilter() *filter.LongFilter { return ensure(&c.EmployeeID) }
func (c *DepartmentCriteria) IsDistinct() bool                     { return isDistinct(c.Distinct) }

func (c *DepartmentCriteria) Binders() map[string]filter.Binder {
	return map[string]filter.Binder{
		"id":             filter.BindRange(&c.ID, filter.ParseInt64),
		"departmentName": filter.BindString(&c.DepartmentName),
		"locationId":     filter.BindRange(&c.LocationID, filter.ParseInt64),
		"employeeId":     filter.BindRange(&c.EmployeeID, filter.ParseInt64),
		"distinct":       filter.BindFlag(&c.Distinct),
	}
}

func (c *DepartmentCriteria) String() string {
	var p []string
	p = set(p, "id", c.ID)
	p = set(p, "departmentName", c.DepartmentName)
	p = set(p, "locationId", c.LocationID)
	p = set(p, "employeeId", c.EmployeeID)
	return render("DepartmentCriteria", p, c.Distinct)
}
