package mapper

import (
	"github.com/rpattn/hrapi/internal/domain"
	"github.com/rpattn/hrapi/internal/dto"
)

func DepartmentToDTO(e domain.Department) dto.DepartmentDTO {
	name := e.DepartmentName
	return dto.DepartmentDTO{
		ID:             idPtr(e.ID),
		DepartmentName: &name,
		Location:       locationRef(e.Location),
	}
}

func DepartmentToEntity(d dto.DepartmentDTO) domain.Department {
	e := domain.Department{
		ID:       idValue(d.ID),
		Location: locationFromRef(d.Location),
	}
	if d.DepartmentName != nil {
		e.DepartmentName = *d.DepartmentName
	}
	return e
}

func DepartmentsToDTOs(es []domain.Department) []dto.DepartmentDTO {
	return mapAll(es, DepartmentToDTO)
}

func DepartmentsToEntities(ds []dto.DepartmentDTO) []domain.Department {
	return mapAll(ds, DepartmentToEntity)
}

// PartialUpdateDepartment copies the non-nil fields of d onto e.
func PartialUpdateDepartment(e *domain.Department, d dto.DepartmentDTO) {
	if d.DepartmentName != nil {
		e.DepartmentName = *d.DepartmentName
	}
	if l := locationFromRef(d.Location); l != nil {
		e.Location = l
	}
}

func departmentRef(e *domain.Department) *dto.DepartmentDTO {
	if e == nil {
		return nil
	}
	return &dto.DepartmentDTO{ID: idPtr(e.ID)}
}

func departmentFromRef(d *dto.DepartmentDTO) *domain.Department {
	if d == nil || d.ID == nil {
		return nil
	}
	return &domain.Department{ID: *d.ID}
}
