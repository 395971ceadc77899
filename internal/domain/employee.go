package domain

import "time"

// Employee works in a department and may report to a manager.
type Employee struct {
	ID            int64
	FirstName     *string
	LastName      *string
	Email         *string
	PhoneNumber   *string
	HireDate      *time.Time
	Salary        *int64
	CommissionPct *int64
	Manager       *Employee
	Department    *Department
}
