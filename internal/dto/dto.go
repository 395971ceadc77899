// Package dto holds the JSON transfer objects exchanged over the REST API.
// Relationship attributes are reference DTOs that carry only the related
// entity's id and, where declared, its display field.
package dto

import (
	"errors"
	"time"

	"github.com/rpattn/hrapi/internal/domain"
)

// ErrDepartmentNameRequired is returned when a department has no name.
var ErrDepartmentNameRequired = errors.New("departmentName is required")

type RegionDTO struct {
	ID         *int64  `json:"id"`
	RegionName *string `json:"regionName"`
}

type CountryDTO struct {
	ID          *int64     `json:"id"`
	CountryName *string    `json:"countryName"`
	Region      *RegionDTO `json:"region"`
}

type LocationDTO struct {
	ID            *int64      `json:"id"`
	StreetAddress *string     `json:"streetAddress"`
	PostalCode    *string     `json:"postalCode"`
	City          *string     `json:"city"`
	StateProvince *string     `json:"stateProvince"`
	Country       *CountryDTO `json:"country"`
}

type DepartmentDTO struct {
	ID             *int64       `json:"id"`
	DepartmentName *string      `json:"departmentName"`
	Location       *LocationDTO `json:"location"`
}

// Validate checks the constraints the database would otherwise reject.
func (d DepartmentDTO) Validate() error {
	if d.DepartmentName == nil {
		return ErrDepartmentNameRequired
	}
	return nil
}

type TaskDTO struct {
	ID          *int64  `json:"id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type EmployeeDTO struct {
	ID            *int64         `json:"id"`
	FirstName     *string        `json:"firstName"`
	LastName      *string        `json:"lastName"`
	Email         *string        `json:"email"`
	PhoneNumber   *string        `json:"phoneNumber"`
	HireDate      *time.Time     `json:"hireDate"`
	Salary        *int64         `json:"salary"`
	CommissionPct *int64         `json:"commissionPct"`
	Manager       *EmployeeDTO   `json:"manager"`
	Department    *DepartmentDTO `json:"department"`
}

type JobDTO struct {
	ID        *int64       `json:"id"`
	JobTitle  *string      `json:"jobTitle"`
	MinSalary *int64       `json:"minSalary"`
	MaxSalary *int64       `json:"maxSalary"`
	Tasks     []TaskDTO    `json:"tasks"`
	Employee  *EmployeeDTO `json:"employee"`
}

type JobHistoryDTO struct {
	ID         *int64           `json:"id"`
	StartDate  *time.Time       `json:"startDate"`
	EndDate    *time.Time       `json:"endDate"`
	Language   *domain.Language `json:"language"`
	Job        *JobDTO          `json:"job"`
	Department *DepartmentDTO   `json:"department"`
	Employee   *EmployeeDTO     `json:"employee"`
}
