package mapper

import (
	"github.com/rpattn/hrapi/internal/domain"
	"github.com/rpattn/hrapi/internal/dto"
)

func JobHistoryToDTO(e domain.JobHistory) dto.JobHistoryDTO {
	return dto.JobHistoryDTO{
		ID:         idPtr(e.ID),
		StartDate:  clone(e.StartDate),
		EndDate:    clone(e.EndDate),
		Language:   clone(e.Language),
		Job:        jobRef(e.Job),
		Department: departmentRef(e.Department),
		Employee:   employeeRef(e.Employee),
	}
}

func JobHistoryToEntity(d dto.JobHistoryDTO) domain.JobHistory {
	return domain.JobHistory{
		ID:         idValue(d.ID),
		StartDate:  clone(d.StartDate),
		EndDate:    clone(d.EndDate),
		Language:   clone(d.Language),
		Job:        jobFromRef(d.Job),
		Department: departmentFromRef(d.Department),
		Employee:   employeeFromRef(d.Employee),
	}
}

func JobHistoriesToDTOs(es []domain.JobHistory) []dto.JobHistoryDTO {
	return mapAll(es, JobHistoryToDTO)
}

func JobHistoriesToEntities(ds []dto.JobHistoryDTO) []domain.JobHistory {
	return mapAll(ds, JobHistoryToEntity)
}

// PartialUpdateJobHistory copies the non-nil fields of d onto e.
func PartialUpdateJobHistory(e *domain.JobHistory, d dto.JobHistoryDTO) {
	patch(&e.StartDate, d.StartDate)
	patch(&e.EndDate, d.EndDate)
	patch(&e.Language, d.Language)
	if j := jobFromRef(d.Job); j != nil {
		e.Job = j
	}
	if dep := departmentFromRef(d.Department); dep != nil {
		e.Department = dep
	}
	if emp := employeeFromRef(d.Employee); emp != nil {
		e.Employee = emp
	}
}
