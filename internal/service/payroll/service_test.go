package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joabe-nascimento/talents-flow/internal/domain/employee"
	"github.com/joabe-nascimento/talents-flow/internal/domain/notification"
	"github.com/joabe-nascimento/talents-flow/internal/domain/payroll"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/clock"
)

type fakePayrollRepo struct {
	records map[string]payroll.Payroll
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{records: make(map[string]payroll.Payroll)}
}

func (r *fakePayrollRepo) Create(ctx context.Context, record payroll.Payroll) (payroll.Payroll, error) {
	for _, existing := range r.records {
		if existing.EmployeeID == record.EmployeeID &&
			existing.ReferenceYear == record.ReferenceYear &&
			existing.ReferenceMonth == record.ReferenceMonth {
			return payroll.Payroll{}, payroll.ErrPayrollAlreadyExists
		}
	}
	r.records[record.ID] = record
	return record, nil
}

func (r *fakePayrollRepo) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	record, ok := r.records[id]
	if !ok {
		return payroll.Payroll{}, payroll.ErrPayrollNotFound
	}
	return record, nil
}

func (r *fakePayrollRepo) GetByEmployeeAndPeriod(ctx context.Context, employeeID string, year, month int) (payroll.Payroll, error) {
	for _, record := range r.records {
		if record.EmployeeID == employeeID && record.ReferenceYear == year && record.ReferenceMonth == month {
			return record, nil
		}
	}
	return payroll.Payroll{}, payroll.ErrPayrollNotFound
}

func (r *fakePayrollRepo) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Payroll, error) {
	var result []payroll.Payroll
	for _, record := range r.records {
		if record.EmployeeID == employeeID {
			result = append(result, record)
		}
	}
	return result, nil
}

func (r *fakePayrollRepo) ListByPeriod(ctx context.Context, year, month int) ([]payroll.Payroll, error) {
	var result []payroll.Payroll
	for _, record := range r.records {
		if record.ReferenceYear == year && record.ReferenceMonth == month {
			result = append(result, record)
		}
	}
	return result, nil
}

func (r *fakePayrollRepo) Update(ctx context.Context, record payroll.Payroll) error {
	if _, ok := r.records[record.ID]; !ok {
		return payroll.ErrPayrollNotFound
	}
	r.records[record.ID] = record
	return nil
}

func (r *fakePayrollRepo) TotalPaidByPeriod(ctx context.Context, year, month int) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, record := range r.records {
		if record.ReferenceYear == year && record.ReferenceMonth == month && record.Status == payroll.StatusPaid {
			total = total.Add(record.NetSalary)
		}
	}
	return total, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	repo := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, emp := range emps {
		repo.employees[emp.ID] = emp
	}
	return repo
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.employees[emp.ID] = emp
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByStatus(ctx context.Context, status employee.EmployeeStatus) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, emp := range r.employees {
		if emp.Status == status {
			result = append(result, emp)
		}
	}
	return result, nil
}

func (r *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, emp := range r.employees {
		result = append(result, emp)
	}
	return result, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	if _, ok := r.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	r.employees[emp.ID] = emp
	return nil
}

func (r *fakeEmployeeRepo) UpdateStatus(ctx context.Context, id string, status employee.EmployeeStatus) error {
	emp, ok := r.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.Status = status
	r.employees[id] = emp
	return nil
}

type fakeNotifier struct {
	sent []notification.NotificationType
}

func (n *fakeNotifier) Notify(ctx context.Context, employeeID string, notifType notification.NotificationType, title, message string) error {
	n.sent = append(n.sent, notifType)
	return nil
}

func (n *fakeNotifier) ListByEmployee(ctx context.Context, employeeID string, unreadOnly bool) ([]notification.NotificationResponse, error) {
	return nil, nil
}

func (n *fakeNotifier) MarkRead(ctx context.Context, id string) error            { return nil }
func (n *fakeNotifier) MarkAllRead(ctx context.Context, employeeID string) error { return nil }
func (n *fakeNotifier) CountUnread(ctx context.Context, employeeID string) (int, error) {
	return 0, nil
}

func testEmployee(id, salary string) employee.Employee {
	return employee.Employee{
		ID:       id,
		Name:     "Test Employee",
		Email:    id + "@example.com",
		Salary:   decimal.RequireFromString(salary),
		HireDate: time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC),
		Status:   employee.StatusActive,
	}
}

func newPayrollTestService(payrollRepo *fakePayrollRepo, employeeRepo *fakeEmployeeRepo) payroll.PayrollService {
	clk := clock.Fixed{T: time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)}
	return NewPayrollService(payrollRepo, employeeRepo, NewTaxCalculator(), nil, clk)
}

func TestPayrollService_CreateDraft(t *testing.T) {
	ctx := context.Background()
	payrollRepo := newFakePayrollRepo()
	employeeRepo := newFakeEmployeeRepo(testEmployee("emp-1", "3000.00"))
	svc := newPayrollTestService(payrollRepo, employeeRepo)

	resp, err := svc.CreateDraft(ctx, payroll.CreatePayrollRequest{
		EmployeeID:     "emp-1",
		ReferenceYear:  2024,
		ReferenceMonth: 6,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "DRAFT", resp.Status)
	assert.True(t, resp.BaseSalary.Equal(decimal.RequireFromString("3000.00")))
}

func TestPayrollService_CreateDraft_EmployeeNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newPayrollTestService(newFakePayrollRepo(), newFakeEmployeeRepo())

	_, err := svc.CreateDraft(ctx, payroll.CreatePayrollRequest{
		EmployeeID:     "missing",
		ReferenceYear:  2024,
		ReferenceMonth: 6,
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestPayrollService_Calculate(t *testing.T) {
	ctx := context.Background()
	payrollRepo := newFakePayrollRepo()
	employeeRepo := newFakeEmployeeRepo(testEmployee("emp-1", "3000.00"))
	svc := newPayrollTestService(payrollRepo, employeeRepo)

	draft, err := svc.CreateDraft(ctx, payroll.CreatePayrollRequest{
		EmployeeID: "emp-1", ReferenceYear: 2024, ReferenceMonth: 6,
	})
	require.NoError(t, err)

	bonus := decimal.RequireFromString("500.00")
	health := decimal.RequireFromString("150.00")
	_, err = svc.UpdateLineItems(ctx, payroll.UpdateLineItemsRequest{
		ID:             draft.ID,
		Bonus:          &bonus,
		HealthDiscount: &health,
	})
	require.NoError(t, err)

	resp, err := svc.Calculate(ctx, draft.ID)
	require.NoError(t, err)

	// gross 3500 -> SS 12% = 420, income tax base 3080 in the 15% band:
	// 3080 * 0.15 - 381.44 = 80.56; fund 280
	assert.Equal(t, "CALCULATED", resp.Status)
	assert.True(t, resp.GrossSalary.Equal(decimal.RequireFromString("3500.00")), "gross %s", resp.GrossSalary)
	assert.True(t, resp.SocialSecurityValue.Equal(decimal.RequireFromString("420.00")), "ss %s", resp.SocialSecurityValue)
	assert.True(t, resp.IncomeTaxValue.Equal(decimal.RequireFromString("80.56")), "it %s", resp.IncomeTaxValue)
	assert.True(t, resp.StatutoryFundValue.Equal(decimal.RequireFromString("280.00")), "fund %s", resp.StatutoryFundValue)

	// 420 + 80.56 + 280 + 150 = 930.56; net 3500 - 930.56 = 2569.44
	assert.True(t, resp.TotalDeductions.Equal(decimal.RequireFromString("930.56")), "deductions %s", resp.TotalDeductions)
	assert.True(t, resp.NetSalary.Equal(decimal.RequireFromString("2569.44")), "net %s", resp.NetSalary)
	assert.NotNil(t, resp.ProcessedAt)
}

func TestPayrollService_Calculate_Recalculate(t *testing.T) {
	ctx := context.Background()
	payrollRepo := newFakePayrollRepo()
	employeeRepo := newFakeEmployeeRepo(testEmployee("emp-1", "2000.00"))
	svc := newPayrollTestService(payrollRepo, employeeRepo)

	draft, err := svc.CreateDraft(ctx, payroll.CreatePayrollRequest{
		EmployeeID: "emp-1", ReferenceYear: 2024, ReferenceMonth: 6,
	})
	require.NoError(t, err)

	first, err := svc.Calculate(ctx, draft.ID)
	require.NoError(t, err)

	// A CALCULATED record can be corrected and recalculated.
	second, err := svc.Calculate(ctx, draft.ID)
	require.NoError(t, err)
	assert.True(t, first.NetSalary.Equal(second.NetSalary))
}

func TestPayrollService_Approve_RequiresCalculated(t *testing.T) {
	ctx := context.Background()
	payrollRepo := newFakePayrollRepo()
	employeeRepo := newFakeEmployeeRepo(testEmployee("emp-1", "2000.00"))
	svc := newPayrollTestService(payrollRepo, employeeRepo)

	draft, err := svc.CreateDraft(ctx, payroll.CreatePayrollRequest{
		EmployeeID: "emp-1", ReferenceYear: 2024, ReferenceMonth: 6,
	})
	require.NoError(t, err)

	_, err = svc.Approve(ctx, draft.ID)
	assert.ErrorIs(t, err, payroll.ErrNotCalculated)
}

func TestPayrollService_MarkPaid_RequiresApproved(t *testing.T) {
	ctx := context.Background()
	payrollRepo := newFakePayrollRepo()
	employeeRepo := newFakeEmployeeRepo(testEmployee("emp-1", "2000.00"))
	svc := newPayrollTestService(payrollRepo, employeeRepo)

	draft, err := svc.CreateDraft(ctx, payroll.CreatePayrollRequest{
		EmployeeID: "emp-1", ReferenceYear: 2024, ReferenceMonth: 6,
	})
	require.NoError(t, err)

	_, err = svc.Calculate(ctx, draft.ID)
	require.NoError(t, err)

	_, err = svc.MarkPaid(ctx, draft.ID)
	assert.ErrorIs(t, err, payroll.ErrNotApproved)
}

func TestPayrollService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	payrollRepo := newFakePayrollRepo()
	employeeRepo := newFakeEmployeeRepo(testEmployee("emp-1", "2000.00"))
	svc := newPayrollTestService(payrollRepo, employeeRepo)

	draft, err := svc.CreateDraft(ctx, payroll.CreatePayrollRequest{
		EmployeeID: "emp-1", ReferenceYear: 2024, ReferenceMonth: 6,
	})
	require.NoError(t, err)

	_, err = svc.Calculate(ctx, draft.ID)
	require.NoError(t, err)

	approved, err := svc.Approve(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", approved.Status)

	// Line items are frozen after approval.
	bonus := decimal.RequireFromString("100.00")
	_, err = svc.UpdateLineItems(ctx, payroll.UpdateLineItemsRequest{ID: draft.ID, Bonus: &bonus})
	assert.ErrorIs(t, err, payroll.ErrPayrollNotEditable)

	paid, err := svc.MarkPaid(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "PAID", paid.Status)

	// A paid record cannot be cancelled.
	_, err = svc.Cancel(ctx, draft.ID)
	assert.ErrorIs(t, err, payroll.ErrAlreadyPaid)

	total, err := svc.TotalPaidByPeriod(ctx, 2024, 6)
	require.NoError(t, err)
	assert.True(t, total.Equal(paid.NetSalary))
}

func TestPayrollService_GenerateForPeriod_SkipsExisting(t *testing.T) {
	ctx := context.Background()
	payrollRepo := newFakePayrollRepo()
	employeeRepo := newFakeEmployeeRepo(
		testEmployee("emp-1", "2000.00"),
		testEmployee("emp-2", "3000.00"),
	)
	terminated := testEmployee("emp-3", "4000.00")
	terminated.Status = employee.StatusTerminated
	employeeRepo.employees["emp-3"] = terminated

	svc := newPayrollTestService(payrollRepo, employeeRepo)

	first, err := svc.GenerateForPeriod(ctx, payroll.GeneratePayrollRequest{ReferenceYear: 2024, ReferenceMonth: 6})
	require.NoError(t, err)
	assert.Len(t, first, 2)

	// Running the same period again creates nothing new.
	second, err := svc.GenerateForPeriod(ctx, payroll.GeneratePayrollRequest{ReferenceYear: 2024, ReferenceMonth: 6})
	require.NoError(t, err)
	assert.Empty(t, second)
}

func TestPayrollService_CreateDraft_DuplicatePeriod(t *testing.T) {
	ctx := context.Background()
	payrollRepo := newFakePayrollRepo()
	employeeRepo := newFakeEmployeeRepo(testEmployee("emp-1", "3000.00"))
	svc := newPayrollTestService(payrollRepo, employeeRepo)

	_, err := svc.CreateDraft(ctx, payroll.CreatePayrollRequest{
		EmployeeID: "emp-1", ReferenceYear: 2024, ReferenceMonth: 6,
	})
	require.NoError(t, err)

	_, err = svc.CreateDraft(ctx, payroll.CreatePayrollRequest{
		EmployeeID: "emp-1", ReferenceYear: 2024, ReferenceMonth: 6,
	})
	assert.ErrorIs(t, err, payroll.ErrPayrollAlreadyExists)

	// A different period for the same employee is fine.
	_, err = svc.CreateDraft(ctx, payroll.CreatePayrollRequest{
		EmployeeID: "emp-1", ReferenceYear: 2024, ReferenceMonth: 7,
	})
	assert.NoError(t, err)
}

func TestPayrollService_GenerateForPeriod_NotifiesEachEmployee(t *testing.T) {
	ctx := context.Background()
	payrollRepo := newFakePayrollRepo()
	employeeRepo := newFakeEmployeeRepo(
		testEmployee("emp-1", "2000.00"),
		testEmployee("emp-2", "3000.00"),
	)
	notifier := &fakeNotifier{}
	clk := clock.Fixed{T: time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)}
	svc := NewPayrollService(payrollRepo, employeeRepo, NewTaxCalculator(), notifier, clk)

	created, err := svc.GenerateForPeriod(ctx, payroll.GeneratePayrollRequest{ReferenceYear: 2024, ReferenceMonth: 6})
	require.NoError(t, err)
	require.Len(t, created, 2)

	require.Len(t, notifier.sent, 2)
	for _, notifType := range notifier.sent {
		assert.Equal(t, notification.TypePayrollGenerated, notifType)
	}

	// A second run creates nothing and stays quiet.
	_, err = svc.GenerateForPeriod(ctx, payroll.GeneratePayrollRequest{ReferenceYear: 2024, ReferenceMonth: 6})
	require.NoError(t, err)
	assert.Len(t, notifier.sent, 2)
}

func TestPayrollService_ListByPeriod_InvalidMonth(t *testing.T) {
	ctx := context.Background()
	svc := newPayrollTestService(newFakePayrollRepo(), newFakeEmployeeRepo())

	_, err := svc.ListByPeriod(ctx, 2024, 13)
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}
