package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rpattn/hrapi/internal/criteria"
	"github.com/rpattn/hrapi/internal/domain"
	"github.com/rpattn/hrapi/internal/filter"
)

var jobHistoryTable = table{
	name:    "job_history",
	alias:   "h",
	columns: []string{"id", "start_date", "end_date", "language", "job_id", "department_id", "employee_id"},
	sortable: map[string]string{
		"id":        "id",
		"startDate": "start_date",
		"endDate":   "end_date",
		"language":  "language",
	},
}

const jobHistoryReturning = `RETURNING id, start_date, end_date, language, job_id, department_id, employee_id`

type jobHistoryRepository struct {
	db Querier
}

// NewJobHistoryRepository creates a new job history repository
func NewJobHistoryRepository(db Querier) JobHistoryRepository {
	return &jobHistoryRepository{db: db}
}

func scanJobHistory(row pgx.Row) (domain.JobHistory, error) {
	var (
		e            domain.JobHistory
		language     *string
		jobID        *int64
		departmentID *int64
		employeeID   *int64
	)
	err := row.Scan(&e.ID, &e.StartDate, &e.EndDate, &language, &jobID, &departmentID, &employeeID)
	if err != nil {
		return domain.JobHistory{}, err
	}
	if language != nil {
		l, err := domain.ParseLanguage(*language)
		if err != nil {
			return domain.JobHistory{}, fmt.Errorf("job_history %d: %w", e.ID, err)
		}
		e.Language = &l
	}
	if jobID != nil {
		e.Job = &domain.Job{ID: *jobID}
	}
	if departmentID != nil {
		e.Department = &domain.Department{ID: *departmentID}
	}
	if employeeID != nil {
		e.Employee = &domain.Employee{ID: *employeeID}
	}
	return e, nil
}

func jobHistorySpecification(c *criteria.JobHistoryCriteria) *specification {
	s := newSpecification()
	if c == nil {
		return s
	}
	t := jobHistoryTable
	ranged(s, t.col("id"), c.ID)
	ranged(s, t.col("start_date"), c.StartDate)
	ranged(s, t.col("end_date"), c.EndDate)
	equality(s, t.col("language"), filter.Map(c.Language, languageName))
	ranged(s, t.col("job_id"), c.JobID)
	ranged(s, t.col("department_id"), c.DepartmentID)
	ranged(s, t.col("employee_id"), c.EmployeeID)
	return s
}

func languageName(l domain.Language) string {
	return string(l)
}

func languageValue(l *domain.Language) *string {
	if l == nil {
		return nil
	}
	v := string(*l)
	return &v
}

func jobID(j *domain.Job) *int64 {
	if j == nil {
		return nil
	}
	return &j.ID
}

func (r *jobHistoryRepository) Create(ctx context.Context, e domain.JobHistory) (domain.JobHistory, error) {
	created, err := scanJobHistory(r.db.QueryRow(ctx,
		`INSERT INTO job_history (start_date, end_date, language, job_id, department_id, employee_id)
		 VALUES ($1, $2, $3, $4, $5, $6) `+jobHistoryReturning,
		e.StartDate, e.EndDate, languageValue(e.Language),
		jobID(e.Job), departmentID(e.Department), employeeID(e.Employee),
	))
	if err != nil {
		return domain.JobHistory{}, fmt.Errorf("failed to create job_history: %w", constraintError(err))
	}
	return created, nil
}

func (r *jobHistoryRepository) Update(ctx context.Context, e domain.JobHistory) (domain.JobHistory, error) {
	updated, err := scanJobHistory(r.db.QueryRow(ctx,
		`UPDATE job_history SET start_date = $2, end_date = $3, language = $4,
		 job_id = $5, department_id = $6, employee_id = $7
		 WHERE id = $1 `+jobHistoryReturning,
		e.ID, e.StartDate, e.EndDate, languageValue(e.Language),
		jobID(e.Job), departmentID(e.Department), employeeID(e.Employee),
	))
	if err != nil {
		return domain.JobHistory{}, notFound(err, jobHistoryTable, e.ID, "update")
	}
	return updated, nil
}

func (r *jobHistoryRepository) GetByID(ctx context.Context, id int64) (domain.JobHistory, error) {
	return getByID(ctx, r.db, jobHistoryTable, id, scanJobHistory)
}

func (r *jobHistoryRepository) FindByCriteria(ctx context.Context, c *criteria.JobHistoryCriteria, page domain.Page) ([]domain.JobHistory, int64, error) {
	return findPage(ctx, r.db, jobHistoryTable, jobHistorySpecification(c), c.IsDistinct(), page, scanJobHistory)
}

func (r *jobHistoryRepository) CountByCriteria(ctx context.Context, c *criteria.JobHistoryCriteria) (int64, error) {
	return count(ctx, r.db, jobHistoryTable, jobHistorySpecification(c), c.IsDistinct())
}

func (r *jobHistoryRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, jobHistoryTable, id)
}

func (r *jobHistoryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, jobHistoryTable, id)
}
