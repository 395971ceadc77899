package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rpattn/hrapi/internal/criteria"
	"github.com/rpattn/hrapi/internal/domain"
)

var jobTable = table{
	name:    "job",
	alias:   "j",
	columns: []string{"id", "job_title", "min_salary", "max_salary", "employee_id"},
	sortable: map[string]string{
		"id":        "id",
		"jobTitle":  "job_title",
		"minSalary": "min_salary",
		"maxSalary": "max_salary",
	},
}

const jobReturning = `RETURNING id, job_title, min_salary, max_salary, employee_id`

type jobRepository struct {
	db Querier
}

// NewJobRepository creates a new job repository. Job rows returned by
// FindByCriteria do not carry tasks; use TasksByJobIDs to resolve them.
func NewJobRepository(db Querier) JobRepository {
	return &jobRepository{db: db}
}

func scanJob(row pgx.Row) (domain.Job, error) {
	var (
		e          domain.Job
		employeeID *int64
	)
	if err := row.Scan(&e.ID, &e.JobTitle, &e.MinSalary, &e.MaxSalary, &employeeID); err != nil {
		return domain.Job{}, err
	}
	if employeeID != nil {
		e.Employee = &domain.Employee{ID: *employeeID}
	}
	return e, nil
}

func jobSpecification(c *criteria.JobCriteria) *specification {
	s := newSpecification()
	if c == nil {
		return s
	}
	t := jobTable
	ranged(s, t.col("id"), c.ID)
	text(s, t.col("job_title"), c.JobTitle)
	ranged(s, t.col("min_salary"), c.MinSalary)
	ranged(s, t.col("max_salary"), c.MaxSalary)
	related(s, "rel_job__task jt WHERE jt.job_id = "+t.col("id"), "jt.task_id", c.TaskID)
	ranged(s, t.col("employee_id"), c.EmployeeID)
	return s
}

func (r *jobRepository) Create(ctx context.Context, e domain.Job) (domain.Job, error) {
	var created domain.Job
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		created, err = scanJob(tx.QueryRow(ctx,
			`INSERT INTO job (job_title, min_salary, max_salary, employee_id)
			 VALUES ($1, $2, $3, $4) `+jobReturning,
			e.JobTitle, e.MinSalary, e.MaxSalary, employeeID(e.Employee),
		))
		if err != nil {
			return fmt.Errorf("failed to create job: %w", constraintError(err))
		}
		created.Tasks, err = replaceJobTasks(ctx, tx, created.ID, e.TaskIDs(), false)
		return err
	})
	if err != nil {
		return domain.Job{}, err
	}
	return created, nil
}

func (r *jobRepository) Update(ctx context.Context, e domain.Job) (domain.Job, error) {
	var updated domain.Job
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		updated, err = scanJob(tx.QueryRow(ctx,
			`UPDATE job SET job_title = $2, min_salary = $3, max_salary = $4, employee_id = $5
			 WHERE id = $1 `+jobReturning,
			e.ID, e.JobTitle, e.MinSalary, e.MaxSalary, employeeID(e.Employee),
		))
		if err != nil {
			return notFound(err, jobTable, e.ID, "update")
		}
		updated.Tasks, err = replaceJobTasks(ctx, tx, e.ID, e.TaskIDs(), true)
		return err
	})
	if err != nil {
		return domain.Job{}, err
	}
	return updated, nil
}

// replaceJobTasks stores taskIDs as the job's task set and returns the
// resulting task references.
func replaceJobTasks(ctx context.Context, q Querier, jobID int64, taskIDs []int64, reset bool) ([]domain.Task, error) {
	if reset {
		if _, err := q.Exec(ctx, `DELETE FROM rel_job__task WHERE job_id = $1`, jobID); err != nil {
			return nil, fmt.Errorf("failed to clear job tasks: %w", err)
		}
	}
	if len(taskIDs) > 0 {
		_, err := q.Exec(ctx,
			`INSERT INTO rel_job__task (job_id, task_id)
			 SELECT $1, t.id FROM unnest($2::bigint[]) AS t(id) ON CONFLICT DO NOTHING`,
			jobID, taskIDs,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to attach job tasks: %w", constraintError(err))
		}
	}
	tasks, err := tasksByJobIDs(ctx, q, []int64{jobID})
	if err != nil {
		return nil, err
	}
	return tasks[jobID], nil
}

func (r *jobRepository) GetByID(ctx context.Context, id int64) (domain.Job, error) {
	job, err := getByID(ctx, r.db, jobTable, id, scanJob)
	if err != nil {
		return domain.Job{}, err
	}
	tasks, err := tasksByJobIDs(ctx, r.db, []int64{id})
	if err != nil {
		return domain.Job{}, err
	}
	job.Tasks = tasks[id]
	return job, nil
}

func (r *jobRepository) FindByCriteria(ctx context.Context, c *criteria.JobCriteria, page domain.Page) ([]domain.Job, int64, error) {
	return findPage(ctx, r.db, jobTable, jobSpecification(c), c.IsDistinct(), page, scanJob)
}

func (r *jobRepository) CountByCriteria(ctx context.Context, c *criteria.JobCriteria) (int64, error) {
	return count(ctx, r.db, jobTable, jobSpecification(c), c.IsDistinct())
}

func (r *jobRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, jobTable, id)
}

func (r *jobRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, jobTable, id)
}

// TasksByJobIDs returns the id and title of every task attached to the given
// jobs, keyed by job id and ordered by task id.
func (r *jobRepository) TasksByJobIDs(ctx context.Context, jobIDs []int64) (map[int64][]domain.Task, error) {
	return tasksByJobIDs(ctx, r.db, jobIDs)
}

func tasksByJobIDs(ctx context.Context, q Querier, jobIDs []int64) (map[int64][]domain.Task, error) {
	result := make(map[int64][]domain.Task, len(jobIDs))
	if len(jobIDs) == 0 {
		return result, nil
	}

	rows, err := q.Query(ctx,
		`SELECT jt.job_id, t.id, t.title
		 FROM rel_job__task jt JOIN task t ON t.id = jt.task_id
		 WHERE jt.job_id = ANY($1)
		 ORDER BY jt.job_id, t.id`,
		jobIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query job tasks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			jobID int64
			task  domain.Task
		)
		if err := rows.Scan(&jobID, &task.ID, &task.Title); err != nil {
			return nil, fmt.Errorf("failed to scan job task: %w", err)
		}
		result[jobID] = append(result[jobID], task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job tasks: %w", err)
	}
	return result, nil
}
