package rest

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/rpattn/hrapi/internal/criteria"
	"github.com/rpattn/hrapi/internal/domain"
	"github.com/rpattn/hrapi/internal/dto"
	"github.com/rpattn/hrapi/internal/entityloader"
	"github.com/rpattn/hrapi/internal/export"
	"github.com/rpattn/hrapi/internal/mapper"
	"github.com/rpattn/hrapi/internal/middleware"
	"github.com/rpattn/hrapi/internal/repository"
)

// Stores bundles the repositories backing the API.
type Stores struct {
	Regions      repository.RegionRepository
	Countries    repository.CountryRepository
	Locations    repository.LocationRepository
	Departments  repository.DepartmentRepository
	Tasks        repository.TaskRepository
	Employees    repository.EmployeeRepository
	Jobs         repository.JobRepository
	JobHistories repository.JobHistoryRepository

	// Ping reports database health; nil means always healthy.
	Ping func(ctx context.Context) error
}

// NewRouter mounts every resource plus a health endpoint.
func NewRouter(stores Stores, logger *zap.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	(&Resource[domain.Region, dto.RegionDTO, *criteria.RegionCriteria]{
		EntityName:    "region",
		Path:          "regions",
		Store:         stores.Regions,
		NewCriteria:   func() *criteria.RegionCriteria { return &criteria.RegionCriteria{} },
		ToDTO:         mapper.RegionToDTO,
		ToEntity:      mapper.RegionToEntity,
		PartialUpdate: mapper.PartialUpdateRegion,
		DTOID:         func(d dto.RegionDTO) *int64 { return d.ID },
		EntityID:      func(e domain.Region) int64 { return e.ID },
		Columns:       export.RegionColumns,
		Logger:        logger,
	}).Register(mux)

	(&Resource[domain.Country, dto.CountryDTO, *criteria.CountryCriteria]{
		EntityName:    "country",
		Path:          "countries",
		Store:         stores.Countries,
		NewCriteria:   func() *criteria.CountryCriteria { return &criteria.CountryCriteria{} },
		ToDTO:         mapper.CountryToDTO,
		ToEntity:      mapper.CountryToEntity,
		PartialUpdate: mapper.PartialUpdateCountry,
		DTOID:         func(d dto.CountryDTO) *int64 { return d.ID },
		EntityID:      func(e domain.Country) int64 { return e.ID },
		Columns:       export.CountryColumns,
		Logger:        logger,
	}).Register(mux)

	(&Resource[domain.Location, dto.LocationDTO, *criteria.LocationCriteria]{
		EntityName:    "location",
		Path:          "locations",
		Store:         stores.Locations,
		NewCriteria:   func() *criteria.LocationCriteria { return &criteria.LocationCriteria{} },
		ToDTO:         mapper.LocationToDTO,
		ToEntity:      mapper.LocationToEntity,
		PartialUpdate: mapper.PartialUpdateLocation,
		DTOID:         func(d dto.LocationDTO) *int64 { return d.ID },
		EntityID:      func(e domain.Location) int64 { return e.ID },
		Columns:       export.LocationColumns,
		Logger:        logger,
	}).Register(mux)

	(&Resource[domain.Department, dto.DepartmentDTO, *criteria.DepartmentCriteria]{
		EntityName:    "department",
		Path:          "departments",
		Store:         stores.Departments,
		NewCriteria:   func() *criteria.DepartmentCriteria { return &criteria.DepartmentCriteria{} },
		ToDTO:         mapper.DepartmentToDTO,
		ToEntity:      mapper.DepartmentToEntity,
		PartialUpdate: mapper.PartialUpdateDepartment,
		DTOID:         func(d dto.DepartmentDTO) *int64 { return d.ID },
		EntityID:      func(e domain.Department) int64 { return e.ID },
		Columns:       export.DepartmentColumns,
		Logger:        logger,
	}).Register(mux)

	(&Resource[domain.Task, dto.TaskDTO, *criteria.TaskCriteria]{
		EntityName:    "task",
		Path:          "tasks",
		Store:         stores.Tasks,
		NewCriteria:   func() *criteria.TaskCriteria { return &criteria.TaskCriteria{} },
		ToDTO:         mapper.TaskToDTO,
		ToEntity:      mapper.TaskToEntity,
		PartialUpdate: mapper.PartialUpdateTask,
		DTOID:         func(d dto.TaskDTO) *int64 { return d.ID },
		EntityID:      func(e domain.Task) int64 { return e.ID },
		Columns:       export.TaskColumns,
		Logger:        logger,
	}).Register(mux)

	(&Resource[domain.Employee, dto.EmployeeDTO, *criteria.EmployeeCriteria]{
		EntityName:    "employee",
		Path:          "employees",
		Store:         stores.Employees,
		NewCriteria:   func() *criteria.EmployeeCriteria { return &criteria.EmployeeCriteria{} },
		ToDTO:         mapper.EmployeeToDTO,
		ToEntity:      mapper.EmployeeToEntity,
		PartialUpdate: mapper.PartialUpdateEmployee,
		DTOID:         func(d dto.EmployeeDTO) *int64 { return d.ID },
		EntityID:      func(e domain.Employee) int64 { return e.ID },
		Columns:       export.EmployeeColumns,
		Logger:        logger,
	}).Register(mux)

	(&Resource[domain.Job, dto.JobDTO, *criteria.JobCriteria]{
		EntityName:    "job",
		Path:          "jobs",
		Store:         stores.Jobs,
		NewCriteria:   func() *criteria.JobCriteria { return &criteria.JobCriteria{} },
		ToDTO:         mapper.JobToDTO,
		ToEntity:      mapper.JobToEntity,
		PartialUpdate: mapper.PartialUpdateJob,
		DTOID:         func(d dto.JobDTO) *int64 { return d.ID },
		EntityID:      func(e domain.Job) int64 { return e.ID },
		Columns:       export.JobColumns,
		Hydrate:       jobTasks(stores.Jobs),
		Logger:        logger,
	}).Register(mux)

	(&Resource[domain.JobHistory, dto.JobHistoryDTO, *criteria.JobHistoryCriteria]{
		EntityName:    "jobHistory",
		Path:          "job-histories",
		Store:         stores.JobHistories,
		NewCriteria:   func() *criteria.JobHistoryCriteria { return &criteria.JobHistoryCriteria{} },
		ToDTO:         mapper.JobHistoryToDTO,
		ToEntity:      mapper.JobHistoryToEntity,
		PartialUpdate: mapper.PartialUpdateJobHistory,
		DTOID:         func(d dto.JobHistoryDTO) *int64 { return d.ID },
		EntityID:      func(e domain.JobHistory) int64 { return e.ID },
		Columns:       export.JobHistoryColumns,
		Logger:        logger,
	}).Register(mux)

	mux.HandleFunc("GET /management/health", health(stores.Ping))

	return mux
}

// jobTasks resolves task references through the request's loader, creating
// one when the request did not pass through DataLoaderMiddleware.
func jobTasks(source entityloader.TaskSource) func(context.Context, []domain.Job) error {
	return func(ctx context.Context, jobs []domain.Job) error {
		loader := middleware.JobTaskLoaderFromContext(ctx)
		if loader == nil {
			loader = entityloader.NewJobTaskLoader(source)
		}
		return loader.Hydrate(ctx, jobs)
	}
}

func health(ping func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ping != nil {
			if err := ping(r.Context()); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "DOWN"})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "UP"})
	}
}
