package repository

import (
	"context"

	"github.com/rpattn/hrapi/internal/criteria"
	"github.com/rpattn/hrapi/internal/domain"
)

// Repository defines the operations every entity store provides. C is the
// entity's criteria type.
type Repository[E any, C criteria.Criteria] interface {
	Create(ctx context.Context, entity E) (E, error)
	Update(ctx context.Context, entity E) (E, error)
	GetByID(ctx context.Context, id int64) (E, error)
	FindByCriteria(ctx context.Context, c C, page domain.Page) ([]E, int64, error)
	CountByCriteria(ctx context.Context, c C) (int64, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type (
	RegionRepository     = Repository[domain.Region, *criteria.RegionCriteria]
	CountryRepository    = Repository[domain.Country, *criteria.CountryCriteria]
	LocationRepository   = Repository[domain.Location, *criteria.LocationCriteria]
	DepartmentRepository = Repository[domain.Department, *criteria.DepartmentCriteria]
	TaskRepository       = Repository[domain.Task, *criteria.TaskCriteria]
	EmployeeRepository   = Repository[domain.Employee, *criteria.EmployeeCriteria]
	JobHistoryRepository = Repository[domain.JobHistory, *criteria.JobHistoryCriteria]
)

// JobRepository additionally resolves the task references of many jobs at
// once for batched loading.
type JobRepository interface {
	Repository[domain.Job, *criteria.JobCriteria]
	TasksByJobIDs(ctx context.Context, jobIDs []int64) (map[int64][]domain.Task, error)
}
