package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/joabe-nascimento/talents-flow/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	DepartmentID *string `json:"department_id,omitempty"`
	Position     *string `json:"position,omitempty"`
	Salary       string  `json:"salary"`
	HireDate     string  `json:"hire_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}

	if salary, err := decimal.NewFromString(r.Salary); err != nil {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be a valid decimal number"})
	} else if salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must not be negative"})
	}

	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID           string  `json:"-"`
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	Position     *string `json:"position,omitempty"`
	Salary       *string `json:"salary,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.Salary != nil {
		if salary, err := decimal.NewFromString(*r.Salary); err != nil {
			errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be a valid decimal number"})
		} else if salary.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "salary", Message: "must not be negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	valid := []string{string(StatusActive), string(StatusOnLeave), string(StatusTerminated)}
	if !validator.IsInSlice(r.Status, valid) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "is not a valid employee status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	DepartmentID   *string `json:"department_id,omitempty"`
	DepartmentName string  `json:"department_name,omitempty"`
	Position       *string `json:"position,omitempty"`
	Salary         string  `json:"salary"`
	HireDate       string  `json:"hire_date"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	departmentName := ""
	if e.DepartmentName != nil {
		departmentName = *e.DepartmentName
	}

	return EmployeeResponse{
		ID:             e.ID,
		Name:           e.Name,
		Email:          e.Email,
		DepartmentID:   e.DepartmentID,
		DepartmentName: departmentName,
		Position:       e.Position,
		Salary:         e.Salary.StringFixed(2),
		HireDate:       e.HireDate.Format("2006-01-02"),
		Status:         string(e.Status),
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
	}
}

func ToResponses(records []Employee) []EmployeeResponse {
	result := make([]EmployeeResponse, 0, len(records))
	for _, r := range records {
		result = append(result, ToResponse(r))
	}
	return result
}
