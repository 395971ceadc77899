package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rpattn/hrapi/internal/criteria"
	"github.com/rpattn/hrapi/internal/domain"
)

var taskTable = table{
	name:    "task",
	alias:   "t",
	columns: []string{"id", "title", "description"},
	sortable: map[string]string{
		"id":          "id",
		"title":       "title",
		"description": "description",
	},
}

type taskRepository struct {
	db Querier
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db Querier) TaskRepository {
	return &taskRepository{db: db}
}

func scanTask(row pgx.Row) (domain.Task, error) {
	var e domain.Task
	err := row.Scan(&e.ID, &e.Title, &e.Description)
	return e, err
}

func taskSpecification(c *criteria.TaskCriteria) *specification {
	s := newSpecification()
	if c == nil {
		return s
	}
	t := taskTable
	ranged(s, t.col("id"), c.ID)
	text(s, t.col("title"), c.Title)
	text(s, t.col("description"), c.Description)
	related(s, "rel_job__task tj WHERE tj.task_id = "+t.col("id"), "tj.job_id", c.JobID)
	return s
}

func (r *taskRepository) Create(ctx context.Context, e domain.Task) (domain.Task, error) {
	created, err := scanTask(r.db.QueryRow(ctx,
		`INSERT INTO task (title, description) VALUES ($1, $2) RETURNING id, title, description`,
		e.Title, e.Description,
	))
	if err != nil {
		return domain.Task{}, fmt.Errorf("failed to create task: %w", constraintError(err))
	}
	return created, nil
}

func (r *taskRepository) Update(ctx context.Context, e domain.Task) (domain.Task, error) {
	updated, err := scanTask(r.db.QueryRow(ctx,
		`UPDATE task SET title = $2, description = $3 WHERE id = $1 RETURNING id, title, description`,
		e.ID, e.Title, e.Description,
	))
	if err != nil {
		return domain.Task{}, notFound(err, taskTable, e.ID, "update")
	}
	return updated, nil
}

func (r *taskRepository) GetByID(ctx context.Context, id int64) (domain.Task, error) {
	return getByID(ctx, r.db, taskTable, id, scanTask)
}

func (r *taskRepository) FindByCriteria(ctx context.Context, c *criteria.TaskCriteria, page domain.Page) ([]domain.Task, int64, error) {
	return findPage(ctx, r.db, taskTable, taskSpecification(c), c.IsDistinct(), page, scanTask)
}

func (r *taskRepository) CountByCriteria(ctx context.Context, c *criteria.TaskCriteria) (int64, error) {
	return count(ctx, r.db, taskTable, taskSpecification(c), c.IsDistinct())
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, taskTable, id)
}

func (r *taskRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, taskTable, id)
}
