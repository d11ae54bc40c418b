package onboarding

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joabe-nascimento/talents-flow/internal/domain/employee"
	"github.com/joabe-nascimento/talents-flow/internal/domain/onboarding"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/clock"
)

type fakeOnboardingRepo struct {
	items map[string]onboarding.Onboarding
}

func newFakeOnboardingRepo() *fakeOnboardingRepo {
	return &fakeOnboardingRepo{items: make(map[string]onboarding.Onboarding)}
}

func isActive(status onboarding.OnboardingStatus) bool {
	return status == onboarding.StatusNotStarted || status == onboarding.StatusInProgress
}

func (r *fakeOnboardingRepo) Create(ctx context.Context, ob onboarding.Onboarding) (onboarding.Onboarding, error) {
	for _, existing := range r.items {
		if existing.EmployeeID == ob.EmployeeID && isActive(existing.Status) {
			return onboarding.Onboarding{}, onboarding.ErrActiveOnboardingExists
		}
	}
	r.items[ob.ID] = ob
	return ob, nil
}

func (r *fakeOnboardingRepo) GetByID(ctx context.Context, id string) (onboarding.Onboarding, error) {
	ob, ok := r.items[id]
	if !ok {
		return onboarding.Onboarding{}, onboarding.ErrOnboardingNotFound
	}
	return ob, nil
}

func (r *fakeOnboardingRepo) GetActiveByEmployee(ctx context.Context, employeeID string) (onboarding.Onboarding, error) {
	for _, ob := range r.items {
		if ob.EmployeeID == employeeID && isActive(ob.Status) {
			return ob, nil
		}
	}
	return onboarding.Onboarding{}, onboarding.ErrOnboardingNotFound
}

func (r *fakeOnboardingRepo) ListActive(ctx context.Context) ([]onboarding.Onboarding, error) {
	var result []onboarding.Onboarding
	for _, ob := range r.items {
		if isActive(ob.Status) {
			result = append(result, ob)
		}
	}
	return result, nil
}

func (r *fakeOnboardingRepo) Update(ctx context.Context, ob onboarding.Onboarding) error {
	if _, ok := r.items[ob.ID]; !ok {
		return onboarding.ErrOnboardingNotFound
	}
	r.items[ob.ID] = ob
	return nil
}

func (r *fakeOnboardingRepo) CountActive(ctx context.Context) (int64, error) {
	var count int64
	for _, ob := range r.items {
		if isActive(ob.Status) {
			count++
		}
	}
	return count, nil
}

func (r *fakeOnboardingRepo) AverageProgress(ctx context.Context) (float64, error) {
	total, count := 0, 0
	for _, ob := range r.items {
		if isActive(ob.Status) {
			total += ob.ProgressPercentage
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return float64(total) / float64(count), nil
}

type fakeTaskRepo struct {
	tasks map[string]onboarding.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[string]onboarding.Task)}
}

func (r *fakeTaskRepo) Create(ctx context.Context, task onboarding.Task) (onboarding.Task, error) {
	r.tasks[task.ID] = task
	return task, nil
}

func (r *fakeTaskRepo) GetByID(ctx context.Context, id string) (onboarding.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return onboarding.Task{}, onboarding.ErrTaskNotFound
	}
	return task, nil
}

func (r *fakeTaskRepo) ListByOnboarding(ctx context.Context, onboardingID string) ([]onboarding.Task, error) {
	var result []onboarding.Task
	for _, task := range r.tasks {
		if task.OnboardingID == onboardingID {
			result = append(result, task)
		}
	}
	return result, nil
}

func (r *fakeTaskRepo) Update(ctx context.Context, task onboarding.Task) error {
	if _, ok := r.tasks[task.ID]; !ok {
		return onboarding.ErrTaskNotFound
	}
	r.tasks[task.ID] = task
	return nil
}

func (r *fakeTaskRepo) CountByOnboarding(ctx context.Context, onboardingID string) (int64, error) {
	var count int64
	for _, task := range r.tasks {
		if task.OnboardingID == onboardingID {
			count++
		}
	}
	return count, nil
}

func (r *fakeTaskRepo) CountCompletedByOnboarding(ctx context.Context, onboardingID string) (int64, error) {
	var count int64
	for _, task := range r.tasks {
		if task.OnboardingID == onboardingID && task.Status == onboarding.TaskCompleted {
			count++
		}
	}
	return count, nil
}

type fakeTemplateRepo struct {
	templates map[string]onboarding.Template
}

func newFakeTemplateRepo(templates ...onboarding.Template) *fakeTemplateRepo {
	repo := &fakeTemplateRepo{templates: make(map[string]onboarding.Template)}
	for _, tmpl := range templates {
		repo.templates[tmpl.ID] = tmpl
	}
	return repo
}

func (r *fakeTemplateRepo) GetByID(ctx context.Context, id string) (onboarding.Template, error) {
	tmpl, ok := r.templates[id]
	if !ok {
		return onboarding.Template{}, onboarding.ErrTemplateNotFound
	}
	return tmpl, nil
}

func (r *fakeTemplateRepo) GetActiveByDepartment(ctx context.Context, departmentID string) (onboarding.Template, error) {
	for _, tmpl := range r.templates {
		if tmpl.IsActive && tmpl.DepartmentID != nil && *tmpl.DepartmentID == departmentID {
			return tmpl, nil
		}
	}
	return onboarding.Template{}, onboarding.ErrTemplateNotFound
}

func (r *fakeTemplateRepo) GetDefaultActive(ctx context.Context) (onboarding.Template, error) {
	for _, tmpl := range r.templates {
		if tmpl.IsActive && tmpl.DepartmentID == nil {
			return tmpl, nil
		}
	}
	return onboarding.Template{}, onboarding.ErrTemplateNotFound
}

func (r *fakeTemplateRepo) List(ctx context.Context) ([]onboarding.Template, error) {
	var result []onboarding.Template
	for _, tmpl := range r.templates {
		result = append(result, tmpl)
	}
	return result, nil
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

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func defaultTemplate() onboarding.Template {
	return onboarding.Template{
		ID:            "tmpl-1",
		Name:          "Default onboarding",
		EstimatedDays: intPtr(30),
		IsActive:      true,
		Tasks: []onboarding.TaskTemplate{
			{ID: "tt-1", TemplateID: "tmpl-1", Title: "Sign contract", Category: onboarding.CategoryDocumentation, OrderIndex: 1, DueDays: intPtr(1), IsRequired: true},
			{ID: "tt-2", TemplateID: "tmpl-1", Title: "Set up laptop", Category: onboarding.CategoryEquipment, OrderIndex: 2, DueDays: intPtr(3), IsRequired: true},
			{ID: "tt-3", TemplateID: "tmpl-1", Title: "Team lunch", Category: onboarding.CategoryIntegration, OrderIndex: 3, IsRequired: false},
			{ID: "tt-4", TemplateID: "tmpl-1", Title: "Security training", Category: onboarding.CategoryTraining, OrderIndex: 4, DueDays: intPtr(14), IsRequired: true},
		},
	}
}

type onboardingFixture struct {
	svc         onboarding.OnboardingService
	onboardings *fakeOnboardingRepo
	tasks       *fakeTaskRepo
	employees   *fakeEmployeeRepo
}

func newOnboardingFixture(templates ...onboarding.Template) onboardingFixture {
	onboardings := newFakeOnboardingRepo()
	tasks := newFakeTaskRepo()
	employees := newFakeEmployeeRepo(employee.Employee{
		ID:     "emp-1",
		Name:   "New Hire",
		Email:  "new.hire@example.com",
		Status: employee.StatusActive,
	})
	clk := clock.Fixed{T: time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)}
	svc := NewOnboardingService(onboardings, tasks, newFakeTemplateRepo(templates...), employees, nil, clk)
	return onboardingFixture{svc: svc, onboardings: onboardings, tasks: tasks, employees: employees}
}

func TestOnboardingService_Start_DefaultTemplate(t *testing.T) {
	ctx := context.Background()
	f := newOnboardingFixture(defaultTemplate())

	resp, err := f.svc.Start(ctx, onboarding.StartOnboardingRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	assert.Equal(t, "IN_PROGRESS", resp.Status)
	assert.Equal(t, 0, resp.ProgressPercentage)
	assert.Len(t, resp.Tasks, 4)
	require.NotNil(t, resp.ExpectedEndDate)
	assert.Equal(t, "2024-07-03", *resp.ExpectedEndDate)

	// Due dates are offsets from the start date.
	for _, task := range resp.Tasks {
		if task.Title == "Sign contract" {
			require.NotNil(t, task.DueDate)
			assert.Equal(t, "2024-06-04", *task.DueDate)
		}
	}
}

func TestOnboardingService_Start_SecondActiveFails(t *testing.T) {
	ctx := context.Background()
	f := newOnboardingFixture(defaultTemplate())

	_, err := f.svc.Start(ctx, onboarding.StartOnboardingRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	_, err = f.svc.Start(ctx, onboarding.StartOnboardingRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, onboarding.ErrActiveOnboardingExists)
}

func TestOnboardingService_Start_NoTemplate(t *testing.T) {
	ctx := context.Background()
	f := newOnboardingFixture()

	resp, err := f.svc.Start(ctx, onboarding.StartOnboardingRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	assert.Empty(t, resp.Tasks)
	assert.Nil(t, resp.TemplateID)
	assert.Nil(t, resp.ExpectedEndDate)
}

func TestOnboardingService_CompleteTask_Progress(t *testing.T) {
	ctx := context.Background()
	f := newOnboardingFixture(defaultTemplate())

	resp, err := f.svc.Start(ctx, onboarding.StartOnboardingRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	require.Len(t, resp.Tasks, 4)

	_, err = f.svc.CompleteTask(ctx, onboarding.CompleteTaskRequest{TaskID: resp.Tasks[0].ID})
	require.NoError(t, err)
	_, err = f.svc.CompleteTask(ctx, onboarding.CompleteTaskRequest{TaskID: resp.Tasks[1].ID})
	require.NoError(t, err)

	current, err := f.svc.Get(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, current.ProgressPercentage)
	assert.Equal(t, "IN_PROGRESS", current.Status)
}

func TestOnboardingService_CompleteAllTasks_CompletesInstance(t *testing.T) {
	ctx := context.Background()
	f := newOnboardingFixture(defaultTemplate())

	resp, err := f.svc.Start(ctx, onboarding.StartOnboardingRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	for _, task := range resp.Tasks {
		_, err = f.svc.CompleteTask(ctx, onboarding.CompleteTaskRequest{TaskID: task.ID})
		require.NoError(t, err)
	}

	current, err := f.svc.Get(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, current.ProgressPercentage)
	assert.Equal(t, "COMPLETED", current.Status)
	assert.NotNil(t, current.ActualEndDate)
}

func TestOnboardingService_CompleteTask_Twice(t *testing.T) {
	ctx := context.Background()
	f := newOnboardingFixture(defaultTemplate())

	resp, err := f.svc.Start(ctx, onboarding.StartOnboardingRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	_, err = f.svc.CompleteTask(ctx, onboarding.CompleteTaskRequest{TaskID: resp.Tasks[0].ID})
	require.NoError(t, err)

	_, err = f.svc.CompleteTask(ctx, onboarding.CompleteTaskRequest{TaskID: resp.Tasks[0].ID})
	assert.ErrorIs(t, err, onboarding.ErrTaskAlreadyClosed)
}

func TestOnboardingService_SkipTask(t *testing.T) {
	ctx := context.Background()
	f := newOnboardingFixture(defaultTemplate())

	resp, err := f.svc.Start(ctx, onboarding.StartOnboardingRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	var requiredID, optionalID string
	for _, task := range resp.Tasks {
		if task.IsRequired {
			requiredID = task.ID
		} else {
			optionalID = task.ID
		}
	}

	_, err = f.svc.SkipTask(ctx, onboarding.SkipTaskRequest{TaskID: requiredID, Reason: "not needed"})
	assert.ErrorIs(t, err, onboarding.ErrRequiredTaskSkip)

	skipped, err := f.svc.SkipTask(ctx, onboarding.SkipTaskRequest{TaskID: optionalID, Reason: "remote hire"})
	require.NoError(t, err)
	assert.Equal(t, "SKIPPED", skipped.Status)
	require.NotNil(t, skipped.Notes)
	assert.Equal(t, "remote hire", *skipped.Notes)

	// Skipped tasks stay in the denominator, so progress is unchanged.
	current, err := f.svc.Get(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, current.ProgressPercentage)
}

func TestOnboardingService_SkipTask_RecomputesProgress(t *testing.T) {
	ctx := context.Background()
	f := newOnboardingFixture(defaultTemplate())

	resp, err := f.svc.Start(ctx, onboarding.StartOnboardingRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	var optionalID string
	for _, task := range resp.Tasks {
		if task.IsRequired {
			_, err = f.svc.CompleteTask(ctx, onboarding.CompleteTaskRequest{TaskID: task.ID})
			require.NoError(t, err)
		} else {
			optionalID = task.ID
		}
	}

	// Skipping last still runs the progress recompute; the skipped task
	// never counts as done, so the instance stays in progress.
	_, err = f.svc.SkipTask(ctx, onboarding.SkipTaskRequest{TaskID: optionalID, Reason: "remote hire"})
	require.NoError(t, err)

	current, err := f.svc.Get(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, 75, current.ProgressPercentage)
	assert.Equal(t, "IN_PROGRESS", current.Status)
	assert.Nil(t, current.ActualEndDate)
}

func TestOnboardingService_AssignMentor(t *testing.T) {
	ctx := context.Background()
	f := newOnboardingFixture(defaultTemplate())
	f.employees.employees["emp-2"] = employee.Employee{ID: "emp-2", Name: "Mentor", Status: employee.StatusActive}

	resp, err := f.svc.Start(ctx, onboarding.StartOnboardingRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	updated, err := f.svc.AssignMentor(ctx, resp.ID, "emp-2")
	require.NoError(t, err)
	require.NotNil(t, updated.MentorID)
	assert.Equal(t, "emp-2", *updated.MentorID)

	_, err = f.svc.AssignMentor(ctx, resp.ID, "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestOnboardingService_Start_DepartmentTemplateWins(t *testing.T) {
	ctx := context.Background()
	deptTemplate := onboarding.Template{
		ID:           "tmpl-eng",
		Name:         "Engineering onboarding",
		DepartmentID: strPtr("dept-eng"),
		IsActive:     true,
		Tasks: []onboarding.TaskTemplate{
			{ID: "tt-a", TemplateID: "tmpl-eng", Title: "Repo access", Category: onboarding.CategoryAccess, OrderIndex: 1, IsRequired: true},
		},
	}
	f := newOnboardingFixture(defaultTemplate(), deptTemplate)

	emp := f.employees.employees["emp-1"]
	emp.DepartmentID = strPtr("dept-eng")
	f.employees.employees["emp-1"] = emp

	resp, err := f.svc.Start(ctx, onboarding.StartOnboardingRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	require.NotNil(t, resp.TemplateID)
	assert.Equal(t, "tmpl-eng", *resp.TemplateID)
	assert.Len(t, resp.Tasks, 1)
}
