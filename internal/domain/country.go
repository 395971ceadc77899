package domain

// Country belongs to at most one region.
type Country struct {
	ID          int64
	CountryName *string
	Region      *Region
}
