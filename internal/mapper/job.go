package mapper

import (
	"github.com/rpattn/hrapi/internal/domain"
	"github.com/rpattn/hrapi/internal/dto"
)

func JobToDTO(e domain.Job) dto.JobDTO {
	return dto.JobDTO{
		ID:        idPtr(e.ID),
		JobTitle:  clone(e.JobTitle),
		MinSalary: clone(e.MinSalary),
		MaxSalary: clone(e.MaxSalary),
		Tasks:     mapAll(e.Tasks, taskRef),
		Employee:  employeeRef(e.Employee),
	}
}

func JobToEntity(d dto.JobDTO) domain.Job {
	return domain.Job{
		ID:        idValue(d.ID),
		JobTitle:  clone(d.JobTitle),
		MinSalary: clone(d.MinSalary),
		MaxSalary: clone(d.MaxSalary),
		Tasks:     mapAll(d.Tasks, taskFromRef),
		Employee:  employeeFromRef(d.Employee),
	}
}

func JobsToDTOs(es []domain.Job) []dto.JobDTO { return mapAll(es, JobToDTO) }

func JobsToEntities(ds []dto.JobDTO) []domain.Job { return mapAll(ds, JobToEntity) }

// PartialUpdateJob copies the non-nil fields of d onto e. A non-nil Tasks
// slice replaces the whole task set.
func PartialUpdateJob(e *domain.Job, d dto.JobDTO) {
	patch(&e.JobTitle, d.JobTitle)
	patch(&e.MinSalary, d.MinSalary)
	patch(&e.MaxSalary, d.MaxSalary)
	if d.Tasks != nil {
		e.Tasks = mapAll(d.Tasks, taskFromRef)
	}
	if emp := employeeFromRef(d.Employee); emp != nil {
		e.Employee = emp
	}
}

func jobRef(e *domain.Job) *dto.JobDTO {
	if e == nil {
		return nil
	}
	return &dto.JobDTO{ID: idPtr(e.ID)}
}

func jobFromRef(d *dto.JobDTO) *domain.Job {
	if d == nil || d.ID == nil {
		return nil
	}
	return &domain.Job{ID: *d.ID}
}
