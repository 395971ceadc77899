package criteria

import "github.com/rpattn/hrapi/internal/filter"

// CountryCriteria filters countries.
type CountryCriteria struct {
	ID          *filter.LongFilter
	CountryName *filter.StringFilter
	RegionID    *filter.LongFilter
	Distinct    *bool
}

// Copy returns a deep copy of c.
func (c *CountryCriteria) Copy() *CountryCriteria {
	return &CountryCriteria{
		ID:          c.ID.Copy(),
		CountryName: c.CountryName.Copy(),
		RegionID:    c.RegionID.Copy(),
		Distinct:    copyFlag(c.Distinct),
	}
}

// Equal compares every filter and the distinct flag.
func (c *CountryCriteria) Equal(other *CountryCriteria) bool {
	return equal(c, other)
}

func (c *CountryCriteria) IDFilter() *filter.LongFilter            { return ensure(&c.ID) }
func (c *CountryCriteria) CountryNameFilter() *filter.StringFilter { return ensure(&c.CountryName) }
func (c *CountryCriteria) RegionIDFilter() *filter.LongFilter      { return ensure(&c.RegionID) }
func (c *CountryCriteria) IsDistinct() bool                        { return isDistinct(c.Distinct) }

func (c *CountryCriteria) Binders() map[string]filter.Binder {
	return map[string]filter.Binder{
		"id":          filter.BindRange(&c.ID, filter.ParseInt64),
		"countryName": filter.BindString(&c.CountryName),
		"regionId":    filter.BindRange(&c.RegionID, filter.ParseInt64),
		"distinct":    filter.BindFlag(&c.Distinct),
	}
}

func (c *CountryCriteria) String() string {
	var p []string
	p = set(p, "id", c.ID)
	p = set(p, "countryName", c.CountryName)
	p = set(p, "regionId", c.RegionID)
	return render("CountryCriteria", p, c.Distinct)
}
