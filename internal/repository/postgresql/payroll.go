package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/joabe-nascimento/talents-flow/internal/domain/payroll"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/database"
)

const payrollColumns = `
	p.id, p.employee_id, p.reference_month, p.reference_year, p.base_salary,
	p.overtime_hours, p.overtime_value, p.bonus, p.commission,
	p.meal_allowance, p.transport_allowance, p.health_allowance, p.other_earnings,
	p.gross_salary,
	p.social_security_value, p.social_security_rate,
	p.income_tax_value, p.income_tax_rate, p.statutory_fund_value,
	p.health_discount, p.dental_discount, p.meal_discount,
	p.transport_discount, p.loan_discount, p.other_deductions,
	p.total_deductions, p.net_salary,
	p.status, p.payment_date, p.notes, p.processed_at, p.processed_by,
	p.created_at, p.updated_at,
	e.name AS employee_name
`

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

func (r *payrollRepository) Create(ctx context.Context, record payroll.Payroll) (payroll.Payroll, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (
			id, employee_id, reference_month, reference_year, base_salary,
			overtime_hours, overtime_value, bonus, commission,
			meal_allowance, transport_allowance, health_allowance, other_earnings,
			gross_salary,
			social_security_value, social_security_rate,
			income_tax_value, income_tax_rate, statutory_fund_value,
			health_discount, dental_discount, meal_discount,
			transport_discount, loan_discount, other_deductions,
			total_deductions, net_salary,
			status, payment_date, notes, processed_at, processed_by,
			created_at, updated_at
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28,
			$29, $30, $31, $32, $33, $34
		)
	`

	_, err := q.Exec(ctx, query,
		record.ID, record.EmployeeID, record.ReferenceMonth, record.ReferenceYear, record.BaseSalary,
		record.OvertimeHours, record.OvertimeValue, record.Bonus, record.Commission,
		record.MealAllowance, record.TransportAllowance, record.HealthAllowance, record.OtherEarnings,
		record.GrossSalary,
		record.SocialSecurityValue, record.SocialSecurityRate,
		record.IncomeTaxValue, record.IncomeTaxRate, record.StatutoryFundValue,
		record.HealthDiscount, record.DentalDiscount, record.MealDiscount,
		record.TransportDiscount, record.LoanDiscount, record.OtherDeductions,
		record.TotalDeductions, record.NetSalary,
		string(record.Status), record.PaymentDate, record.Notes, record.ProcessedAt, record.ProcessedBy,
		record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return payroll.Payroll{}, payroll.ErrPayrollAlreadyExists
		}
		return payroll.Payroll{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return record, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := database.GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payrolls p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`, payrollColumns)

	record, err := scanPayroll(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll record: %w", err)
	}
	return record, nil
}

func (r *payrollRepository) GetByEmployeeAndPeriod(ctx context.Context, employeeID string, year, month int) (payroll.Payroll, error) {
	q := database.GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payrolls p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1 AND p.reference_year = $2 AND p.reference_month = $3
	`, payrollColumns)

	record, err := scanPayroll(q.QueryRow(ctx, query, employeeID, year, month))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll record: %w", err)
	}
	return record, nil
}

func (r *payrollRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Payroll, error) {
	q := database.GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payrolls p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1
		ORDER BY p.reference_year DESC, p.reference_month DESC
	`, payrollColumns)

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll records: %w", err)
	}
	defer rows.Close()

	return collectPayrolls(rows)
}

func (r *payrollRepository) ListByPeriod(ctx context.Context, year, month int) ([]payroll.Payroll, error) {
	q := database.GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payrolls p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.reference_year = $1 AND p.reference_month = $2
		ORDER BY e.name
	`, payrollColumns)

	rows, err := q.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll records: %w", err)
	}
	defer rows.Close()

	return collectPayrolls(rows)
}

func (r *payrollRepository) Update(ctx context.Context, record payroll.Payroll) error {
	q := database.GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls
		SET overtime_hours = $2, overtime_value = $3, bonus = $4, commission = $5,
		    meal_allowance = $6, transport_allowance = $7, health_allowance = $8, other_earnings = $9,
		    gross_salary = $10,
		    social_security_value = $11, social_security_rate = $12,
		    income_tax_value = $13, income_tax_rate = $14, statutory_fund_value = $15,
		    health_discount = $16, dental_discount = $17, meal_discount = $18,
		    transport_discount = $19, loan_discount = $20, other_deductions = $21,
		    total_deductions = $22, net_salary = $23,
		    status = $24, payment_date = $25, notes = $26, processed_at = $27, processed_by = $28,
		    updated_at = $29
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		record.ID,
		record.OvertimeHours, record.OvertimeValue, record.Bonus, record.Commission,
		record.MealAllowance, record.TransportAllowance, record.HealthAllowance, record.OtherEarnings,
		record.GrossSalary,
		record.SocialSecurityValue, record.SocialSecurityRate,
		record.IncomeTaxValue, record.IncomeTaxRate, record.StatutoryFundValue,
		record.HealthDiscount, record.DentalDiscount, record.MealDiscount,
		record.TransportDiscount, record.LoanDiscount, record.OtherDeductions,
		record.TotalDeductions, record.NetSalary,
		string(record.Status), record.PaymentDate, record.Notes, record.ProcessedAt, record.ProcessedBy,
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update payroll record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}
	return nil
}

func (r *payrollRepository) TotalPaidByPeriod(ctx context.Context, year, month int) (decimal.Decimal, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(net_salary), 0)
		FROM payrolls
		WHERE reference_year = $1 AND reference_month = $2 AND status = 'PAID'
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, year, month).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum paid payrolls: %w", err)
	}
	return total, nil
}

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	var status string

	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.ReferenceMonth, &p.ReferenceYear, &p.BaseSalary,
		&p.OvertimeHours, &p.OvertimeValue, &p.Bonus, &p.Commission,
		&p.MealAllowance, &p.TransportAllowance, &p.HealthAllowance, &p.OtherEarnings,
		&p.GrossSalary,
		&p.SocialSecurityValue, &p.SocialSecurityRate,
		&p.IncomeTaxValue, &p.IncomeTaxRate, &p.StatutoryFundValue,
		&p.HealthDiscount, &p.DentalDiscount, &p.MealDiscount,
		&p.TransportDiscount, &p.LoanDiscount, &p.OtherDeductions,
		&p.TotalDeductions, &p.NetSalary,
		&status, &p.PaymentDate, &p.Notes, &p.ProcessedAt, &p.ProcessedBy,
		&p.CreatedAt, &p.UpdatedAt,
		&p.EmployeeName,
	)
	if err != nil {
		return payroll.Payroll{}, err
	}

	p.Status = payroll.PayrollStatus(status)
	return p, nil
}

func collectPayrolls(rows pgx.Rows) ([]payroll.Payroll, error) {
	var records []payroll.Payroll
	for rows.Next() {
		record, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read payroll records: %w", err)
	}
	return records, nil
}
