package domain

// Region groups countries.
type Region struct {
	ID         int64
	RegionName *string
}
