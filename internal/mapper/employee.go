package mapper

import (
	"github.com/rpattn/hrapi/internal/domain"
	"github.com/rpattn/hrapi/internal/dto"
)

func EmployeeToDTO(e domain.Employee) dto.EmployeeDTO {
	return dto.EmployeeDTO{
		ID:            idPtr(e.ID),
		FirstName:     clone(e.FirstName),
		LastName:      clone(e.LastName),
		Email:         clone(e.Email),
		PhoneNumber:   clone(e.PhoneNumber),
		HireDate:      clone(e.HireDate),
		Salary:        clone(e.Salary),
		CommissionPct: clone(e.CommissionPct),
		Manager:       employeeRef(e.Manager),
		Department:    departmentRef(e.Department),
	}
}

func EmployeeToEntity(d dto.EmployeeDTO) domain.Employee {
	return domain.Employee{
		ID:            idValue(d.ID),
		FirstName:     clone(d.FirstName),
		LastName:      clone(d.LastName),
		Email:         clone(d.Email),
		PhoneNumber:   clone(d.PhoneNumber),
		HireDate:      clone(d.HireDate),
		Salary:        clone(d.Salary),
		CommissionPct: clone(d.CommissionPct),
		Manager:       employeeFromRef(d.Manager),
		Department:    departmentFromRef(d.Department),
	}
}

func EmployeesToDTOs(es []domain.Employee) []dto.EmployeeDTO { return mapAll(es, EmployeeToDTO) }

func EmployeesToEntities(ds []dto.EmployeeDTO) []domain.Employee {
	return mapAll(ds, EmployeeToEntity)
}

// PartialUpdateEmployee copies the non-nil fields of d onto e.
func PartialUpdateEmployee(e *domain.Employee, d dto.EmployeeDTO) {
	patch(&e.FirstName, d.FirstName)
	patch(&e.LastName, d.LastName)
	patch(&e.Email, d.Email)
	patch(&e.PhoneNumber, d.PhoneNumber)
	patch(&e.HireDate, d.HireDate)
	patch(&e.Salary, d.Salary)
	patch(&e.CommissionPct, d.CommissionPct)
	if m := employeeFromRef(d.Manager); m != nil {
		e.Manager = m
	}
	if dep := departmentFromRef(d.Department); dep != nil {
		e.Department = dep
	}
}

func employeeRef(e *domain.Employee) *dto.EmployeeDTO {
	if e == nil {
		return nil
	}
	return &dto.EmployeeDTO{ID: idPtr(e.ID)}
}

func employeeFromRef(d *dto.EmployeeDTO) *domain.Employee {
	if d == nil || d.ID == nil {
		return nil
	}
	return &domain.Employee{ID: *d.ID}
}
