package mapper

import (
	"github.com/rpattn/hrapi/internal/domain"
	"github.com/rpattn/hrapi/internal/dto"
)

func TaskToDTO(e domain.Task) dto.TaskDTO {
	return dto.TaskDTO{
		ID:          idPtr(e.ID),
		Title:       clone(e.Title),
		Description: clone(e.Description),
	}
}

func TaskToEntity(d dto.TaskDTO) domain.Task {
	return domain.Task{
		ID:          idValue(d.ID),
		Title:       clone(d.Title),
		Description: clone(d.Description),
	}
}

func TasksToDTOs(es []domain.Task) []dto.TaskDTO { return mapAll(es, TaskToDTO) }

func TasksToEntities(ds []dto.TaskDTO) []domain.Task { return mapAll(ds, TaskToEntity) }

// PartialUpdateTask copies the non-nil fields of d onto e.
func PartialUpdateTask(e *domain.Task, d dto.TaskDTO) {
	patch(&e.Title, d.Title)
	patch(&e.Description, d.Description)
}

// taskRef keeps the id and the title, the display field of a task.
func taskRef(e domain.Task) dto.TaskDTO {
	return dto.TaskDTO{ID: idPtr(e.ID), Title: clone(e.Title)}
}

func taskFromRef(d dto.TaskDTO) domain.Task {
	return domain.Task{ID: idValue(d.ID), Title: clone(d.Title)}
}
