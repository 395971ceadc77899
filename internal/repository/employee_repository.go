package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rpattn/hrapi/internal/criteria"
	"github.com/rpattn/hrapi/internal/domain"
)

var employeeTable = table{
	name:  "employee",
	alias: "e",
	columns: []string{
		"id", "first_name", "last_name", "email", "phone_number", "hire_date",
		"salary", "commission_pct", "manager_id", "department_id",
	},
	sortable: map[string]string{
		"id":            "id",
		"firstName":     "first_name",
		"lastName":      "last_name",
		"email":         "email",
		"phoneNumber":   "phone_number",
		"hireDate":      "hire_date",
		"salary":        "salary",
		"commissionPct": "commission_pct",
	},
}

type employeeRepository struct {
	db Querier
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db Querier) EmployeeRepository {
	return &employeeRepository{db: db}
}

func scanEmployee(row pgx.Row) (domain.Employee, error) {
	var (
		e            domain.Employee
		managerID    *int64
		departmentID *int64
	)
	err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.PhoneNumber, &e.HireDate,
		&e.Salary, &e.CommissionPct, &managerID, &departmentID,
	)
	if err != nil {
		return domain.Employee{}, err
	}
	if managerID != nil {
		e.Manager = &domain.Employee{ID: *managerID}
	}
	if departmentID != nil {
		e.Department = &domain.Department{ID: *departmentID}
	}
	return e, nil
}

func employeeSpecification(c *criteria.EmployeeCriteria) *specification {
	s := newSpecification()
	if c == nil {
		return s
	}
	t := employeeTable
	ranged(s, t.col("id"), c.ID)
	text(s, t.col("first_name"), c.FirstName)
	text(s, t.col("last_name"), c.LastName)
	text(s, t.col("email"), c.Email)
	text(s, t.col("phone_number"), c.PhoneNumber)
	ranged(s, t.col("hire_date"), c.HireDate)
	ranged(s, t.col("salary"), c.Salary)
	ranged(s, t.col("commission_pct"), c.CommissionPct)
	related(s, "job ej WHERE ej.employee_id = "+t.col("id"), "ej.id", c.JobID)
	ranged(s, t.col("manager_id"), c.ManagerID)
	ranged(s, t.col("department_id"), c.DepartmentID)
	return s
}

func employeeID(e *domain.Employee) *int64 {
	if e == nil {
		return nil
	}
	return &e.ID
}

func departmentID(d *domain.Department) *int64 {
	if d == nil {
		return nil
	}
	return &d.ID
}

const employeeReturning = `RETURNING id, first_name, last_name, email, phone_number, hire_date,
	salary, commission_pct, manager_id, department_id`

func (r *employeeRepository) Create(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	created, err := scanEmployee(r.db.QueryRow(ctx,
		`INSERT INTO employee (first_name, last_name, email, phone_number, hire_date,
		 salary, commission_pct, manager_id, department_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) `+employeeReturning,
		e.FirstName, e.LastName, e.Email, e.PhoneNumber, e.HireDate,
		e.Salary, e.CommissionPct, employeeID(e.Manager), departmentID(e.Department),
	))
	if err != nil {
		return domain.Employee{}, fmt.Errorf("failed to create employee: %w", constraintError(err))
	}
	return created, nil
}

func (r *employeeRepository) Update(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	updated, err := scanEmployee(r.db.QueryRow(ctx,
		`UPDATE employee SET first_name = $2, last_name = $3, email = $4, phone_number = $5,
		 hire_date = $6, salary = $7, commission_pct = $8, manager_id = $9, department_id = $10
		 WHERE id = $1 `+employeeReturning,
		e.ID, e.FirstName, e.LastName, e.Email, e.PhoneNumber, e.HireDate,
		e.Salary, e.CommissionPct, employeeID(e.Manager), departmentID(e.Department),
	))
	if err != nil {
		return domain.Employee{}, notFound(err, employeeTable, e.ID, "update")
	}
	return updated, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (domain.Employee, error) {
	return getByID(ctx, r.db, employeeTable, id, scanEmployee)
}

func (r *employeeRepository) FindByCriteria(ctx context.Context, c *criteria.EmployeeCriteria, page domain.Page) ([]domain.Employee, int64, error) {
	return findPage(ctx, r.db, employeeTable, employeeSpecification(c), c.IsDistinct(), page, scanEmployee)
}

func (r *employeeRepository) CountByCriteria(ctx context.Context, c *criteria.EmployeeCriteria) (int64, error) {
	return count(ctx, r.db, employeeTable, employeeSpecification(c), c.IsDistinct())
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, employeeTable, id)
}

func (r *employeeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, employeeTable, id)
}
