package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of authorization roles. There is no hierarchy
// between them; every protected route enumerates the roles it allows.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleStaff  Role = "staff"
	RoleViewer Role = "viewer"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleViewer:
		return true
	}
	return false
}

// Employee represents a principal: a person identified by a business
// employee id and email, eligible for at most one account.
type Employee struct {
	ID         uuid.UUID `json:"id" db:"id"`
	EmployeeID string    `json:"employee_id" db:"employee_id"`
	FullName   string    `json:"full_name" db:"full_name"`
	Email      string    `json:"email" db:"email"`
	Department string    `json:"department" db:"department"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Account is the authentication identity bound to an employee. EmployeeID
// carries the business identifier, joined in from the employees table.
type Account struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	EmployeeRef uuid.UUID  `json:"employee_ref" db:"employee_ref"`
	EmployeeID  string     `json:"employee_id" db:"employee_id"`
	Role        Role       `json:"role" db:"role"`
	IsActive    bool       `json:"is_active" db:"is_active"`
	CreatedBy   *uuid.UUID `json:"created_by,omitempty" db:"created_by"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty" db:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// UserProfile is the public projection returned to authenticated clients.
type UserProfile struct {
	AccountID   uuid.UUID  `json:"account_id" db:"account_id"`
	EmployeeID  string     `json:"employee_id" db:"employee_id"`
	FullName    string     `json:"full_name" db:"full_name"`
	Email       string     `json:"email" db:"email"`
	Department  string     `json:"department" db:"department"`
	Role        Role       `json:"role" db:"role"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty" db:"last_login_at"`
}

// CreateAccountRequest is the admin request to bind an account to an employee.
type CreateAccountRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Role       Role   `json:"role" validate:"required"`
}

// UpdateRoleRequest changes an account's role.
type UpdateRoleRequest struct {
	Role Role `json:"role" validate:"required"`
}

// UpdateStatusRequest toggles an account's active flag.
type UpdateStatusRequest struct {
	IsActive bool `json:"is_active"`
}
