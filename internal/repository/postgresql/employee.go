package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/joabe-nascimento/talents-flow/internal/domain/employee"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/database"
)

const employeeColumns = `
	e.id, e.user_id, e.name, e.email, e.department_id, e.position,
	e.salary, e.hire_date, e.status, e.created_at, e.updated_at,
	d.name AS department_name
`

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, user_id, name, email, department_id, position, salary, hire_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := q.Exec(ctx, query,
		emp.ID,
		emp.UserID,
		emp.Name,
		emp.Email,
		emp.DepartmentID,
		emp.Position,
		emp.Salary,
		emp.HireDate,
		string(emp.Status),
		emp.CreatedAt,
		emp.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := database.GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.id = $1
	`, employeeColumns)

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

func (r *employeeRepository) GetByStatus(ctx context.Context, status employee.EmployeeStatus) ([]employee.Employee, error) {
	q := database.GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.status = $1
		ORDER BY e.name
	`, employeeColumns)

	rows, err := q.Query(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := database.GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		ORDER BY e.name
	`, employeeColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := database.GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $2, email = $3, department_id = $4, position = $5,
		    salary = $6, status = $7, updated_at = $8
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		emp.ID,
		emp.Name,
		emp.Email,
		emp.DepartmentID,
		emp.Position,
		emp.Salary,
		string(emp.Status),
		emp.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.ErrEmailExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) UpdateStatus(ctx context.Context, id string, status employee.EmployeeStatus) error {
	q := database.GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE employees SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return fmt.Errorf("failed to update employee status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	var status string

	err := row.Scan(
		&emp.ID,
		&emp.UserID,
		&emp.Name,
		&emp.Email,
		&emp.DepartmentID,
		&emp.Position,
		&emp.Salary,
		&emp.HireDate,
		&status,
		&emp.CreatedAt,
		&emp.UpdatedAt,
		&emp.DepartmentName,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	emp.Status = employee.EmployeeStatus(status)
	return emp, nil
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}
	return employees, nil
}

// isUniqueViolation reports a Postgres 23505 error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
