package criteria

import "github.com/rpattn/hrapi/internal/filter"

// RegionCriteria filters regions.
type RegionCriteria struct {
	ID         *filter.LongFilter
	RegionName *filter.StringFilter
	Distinct   *bool
}

// Copy returns a deep copy of c.
func (c *RegionCriteria) Copy() *RegionCriteria {
	return &RegionCriteria{
		ID:         c.ID.Copy(),
		RegionName: c.RegionName.Copy(),
		Distinct:   copyFlag(c.Distinct),
	}
}

// Equal compares every filter and the distinct flag.
func (c *RegionCriteria) Equal(other *RegionCriteria) bool {
	return equal(c, other)
}

func (c *RegionCriteria) IDFilter() *filter.LongFilter           { return ensure(&c.ID) }
func (c *RegionCriteria) RegionNameFilter() *filter.StringFilter { return ensure(&c.RegionName) }
func (c *RegionCriteria) IsDistinct() bool                       { return isDistinct(c.Distinct) }

func (c *RegionCriteria) Binders() map[string]filter.Binder {
	return map[string]filter.Binder{
		"id":         filter.BindRange(&c.ID, filter.ParseInt64),
		"regionName": filter.BindString(&c.RegionName),
		"distinct":   filter.BindFlag(&c.Distinct),
	}
}

func (c *RegionCriteria) String() string {
	var p []string
	p = set(p, "id", c.ID)
	p = set(p, "regionName", c.RegionName)
	return render("RegionCriteria", p, c.Distinct)
}
