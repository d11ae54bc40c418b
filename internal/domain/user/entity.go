package user

import "time"

// UserRole enum
type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleManager  UserRole = "MANAGER"
	RoleEmployee UserRole = "EMPLOYEE"
)

// User is a sign-in account. Most accounts link to an employee record;
// service accounts and external admins may not.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         UserRole
	EmployeeID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
