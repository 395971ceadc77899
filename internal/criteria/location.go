package criteria

import "github.com/rpattn/hrapi/internal/filter"

// LocationCriteria filters locations, e.g.
// `/api/locations?city.contains=ber&countryId.equals=3&streetAddress.specified=false`.
type LocationCriteria struct {
	ID            *filter.LongFilter
	StreetAddress *filter.StringFilter
	PostalCode    *filter.StringFilter
	City          *filter.StringFilter
	StateProvince *filter.StringFilter
	CountryID     *filter.LongFilter
	Distinct      *bool
}

// Copy returns a deep copy of c.
func (c *LocationCriteria) Copy() *LocationCriteria {
	return &LocationCriteria{
		ID:            c.ID.Copy(),
		StreetAddress: c.StreetAddress.Copy(),
		PostalCode:    c.PostalCode.Copy(),
		City:          c.City.Copy(),
		StateProvince: c.StateProvince.Copy(),
		CountryID:     c.CountryID.Copy(),
		Distinct:      copyFlag(c.Distinct),
	}
}

// Equal compares every filter and the distinct flag.
func (c *LocationCriteria) Equal(other *LocationCriteria) bool {
	return equal(c, other)
}

func (c *LocationCriteria) IDFilter() *filter.LongFilter { return ensure(&c.ID) }
func (c *LocationCriteria) StreetAddressFilter() *filter.StringFilter {
	return ensure(&c.StreetAddress)
}
func (c *LocationCriteria) PostalCodeFilter() *filter.StringFilter { return ensure(&c.PostalCode) }
func (c *LocationCriteria) CityFilter() *filter.StringFilter       { return ensure(&c.City) }
func (c *LocationCriteria) StateProvinceFilter() *filter.StringFilter {
	return ensure(&c.StateProvince)
}
func (c *LocationCriteria) CountryIDFilter() *filter.LongFilter { return ensure(&c.CountryID) }
func (c *LocationCriteria) IsDistinct() bool                    { return isDistinct(c.Distinct) }

func (c *LocationCriteria) Binders() map[string]filter.Binder {
	return map[string]filter.Binder{
		"id":            filter.BindRange(&c.ID, filter.ParseInt64),
		"streetAddress": filter.BindString(&c.StreetAddress),
		"postalCode":    filter.BindString(&c.PostalCode),
		"city":          filter.BindString(&c.City),
		"stateProvince": filter.BindString(&c.StateProvince),
		"countryId":     filter.BindRange(&c.CountryID, filter.ParseInt64),
		"distinct":      filter.BindFlag(&c.Distinct),
	}
}

func (c *LocationCriteria) String() string {
	var p []string
	p = set(p, "id", c.ID)
	p = set(p, "streetAddress", c.StreetAddress)
	p = set(p, "postalCode", c.PostalCode)
	p = set(p, "city", c.City)
	p = set(p, "stateProvince", c.StateProvince)
	p = set(p, "countryId", c.CountryID)
	return render("LocationCriteria", p, c.Distinct)
}
