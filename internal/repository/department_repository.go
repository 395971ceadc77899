package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rpattn/hrapi/internal/criteria"
	"github.com/rpattn/hrapi/internal/domain"
)

var departmentTable = table{
	name:    "department",
	alias:   "d",
	columns: []string{"id", "department_name", "location_id"},
	sortable: map[string]string{
		"id":             "id",
		"departmentName": "department_name",
	},
}

type departmentRepository struct {
	db Querier
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db Querier) DepartmentRepository {
	return &departmentRepository{db: db}
}

func scanDepartment(row pgx.Row) (domain.Department, error) {
	var (
		e          domain.Department
		locationID *int64
	)
	if err := row.Scan(&e.ID, &e.DepartmentName, &locationID); err != nil {
		return domain.Department{}, err
	}
	if locationID != nil {
		e.Location = &domain.Location{ID: *locationID}
	}
	return e, nil
}

func departmentSpecification(c *criteria.DepartmentCriteria) *specification {
	s := newSpecification()
	if c == nil {
		return s
	}
	t := departmentTable
	ranged(s, t.col("id"), c.ID)
	text(s, t.col("department_name"), c.DepartmentName)
	ranged(s, t.col("location_id"), c.LocationID)
	related(s, "employee de WHERE de.department_id = "+t.col("id"), "de.id", c.EmployeeID)
	return s
}

func locationID(l *domain.Location) *int64 {
	if l == nil {
		return nil
	}
	return &l.ID
}

func (r *departmentRepository) Create(ctx context.Context, e domain.Department) (domain.Department, error) {
	created, err := scanDepartment(r.db.QueryRow(ctx,
		`INSERT INTO department (department_name, location_id) VALUES ($1, $2)
		 RETURNING id, department_name, location_id`,
		e.DepartmentName, locationID(e.Location),
	))
	if err != nil {
		return domain.Department{}, fmt.Errorf("failed to create department: %w", constraintError(err))
	}
	return created, nil
}

func (r *departmentRepository) Update(ctx context.Context, e domain.Department) (domain.Department, error) {
	updated, err := scanDepartment(r.db.QueryRow(ctx,
		`UPDATE department SET department_name = $2, location_id = $3 WHERE id = $1
		 RETURNING id, department_name, location_id`,
		e.ID, e.DepartmentName, locationID(e.Location),
	))
	if err != nil {
		return domain.Department{}, notFound(err, departmentTable, e.ID, "update")
	}
	return updated, nil
}

func (r *departmentRepository) GetByID(ctx context.Context, id int64) (domain.Department, error) {
	return getByID(ctx, r.db, departmentTable, id, scanDepartment)
}

func (r *departmentRepository) FindByCriteria(ctx context.Context, c *criteria.DepartmentCriteria, page domain.Page) ([]domain.Department, int64, error) {
	return findPage(ctx, r.db, departmentTable, departmentSpecification(c), c.IsDistinct(), page, scanDepartment)
}

func (r *departmentRepository) CountByCriteria(ctx context.Context, c *criteria.DepartmentCriteria) (int64, error) {
	return count(ctx, r.db, departmentTable, departmentSpecification(c), c.IsDistinct())
}

func (r *departmentRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, departmentTable, id)
}

func (r *departmentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, departmentTable, id)
}
