package domain

// Location is a street address inside a country.
type Location struct {
	ID            int64
	StreetAddress *string
	PostalCode    *string
	City          *string
	StateProvince *string
	Country       *Country
}
