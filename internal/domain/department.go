package domain

// Department is an organisational unit. DepartmentName is mandatory.
type Department struct {
	ID             int64
	DepartmentName string
	Location       *Location
}
