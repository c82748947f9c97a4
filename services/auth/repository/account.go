package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/serahterima/serahterima/internal/pkg/models"
	"github.com/serahterima/serahterima/services/auth"
)

const accountColumns = `
	a.id, a.employee_ref, e.employee_id, a.role, a.is_active,
	a.created_by, a.last_login_at, a.created_at, a.updated_at
`

// GetEmployeeByEmployeeID retrieves an employee by business employee id
func (r *AuthRepo) GetEmployeeByEmployeeID(ctx context.Context, employeeID string) (*models.Employee, error) {
	query := `
		SELECT id, employee_id, full_name, email, department, created_at
		FROM employees
		WHERE employee_id = $1
	`

	var employee models.Employee
	err := r.db.GetContext(ctx, &employee, query, employeeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return &employee, nil
}

// GetAccountByEmployeeID retrieves an account by the business employee id
// of its bound employee.
func (r *AuthRepo) GetAccountByEmployeeID(ctx context.Context, employeeID string) (*models.Account, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM accounts a
		JOIN employees e ON e.id = a.employee_ref
		WHERE e.employee_id = $1
	`, accountColumns)

	var account models.Account
	err := r.db.GetContext(ctx, &account, query, employeeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &account, nil
}

// GetAccountByID retrieves an account by its id
func (r *AuthRepo) GetAccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM accounts a
		JOIN employees e ON e.id = a.employee_ref
		WHERE a.id = $1
	`, accountColumns)

	var account models.Account
	err := r.db.GetContext(ctx, &account, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &account, nil
}

// GetProfileByAccountID retrieves the public profile projection for an account
func (r *AuthRepo) GetProfileByAccountID(ctx context.Context, id uuid.UUID) (*models.UserProfile, error) {
	query := `
		SELECT a.id AS account_id, e.employee_id, e.full_name, e.email,
			e.department, a.role, a.last_login_at
		FROM accounts a
		JOIN employees e ON e.id = a.employee_ref
		WHERE a.id = $1
	`

	var profile models.UserProfile
	err := r.db.GetContext(ctx, &profile, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}

// CreateAccount inserts a new account bound to an employee
func (r *AuthRepo) CreateAccount(ctx context.Context, account *models.Account) error {
	account.ID = uuid.New()
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now

	query := `
		INSERT INTO accounts (id, employee_ref, role, is_active,
			created_by, created_at, updated_at
		) VALUES (:id, :employee_ref, :role, :is_active,
			:created_by, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, account)
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}

	return nil
}

// ListAccounts returns all accounts, newest first
func (r *AuthRepo) ListAccounts(ctx context.Context) ([]models.Account, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM accounts a
		JOIN employees e ON e.id = a.employee_ref
		ORDER BY a.created_at DESC
	`, accountColumns)

	var accounts []models.Account
	if err := r.db.SelectContext(ctx, &accounts, query); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return accounts, nil
}

// UpdateAccountRole changes an account's role
func (r *AuthRepo) UpdateAccountRole(ctx context.Context, id uuid.UUID, role models.Role) error {
	query := `
		UPDATE accounts
		SET role = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, role, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update account role: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return auth.ErrAccountNotFound
	}

	return nil
}

// SetAccountActive toggles an account's active flag
func (r *AuthRepo) SetAccountActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `
		UPDATE accounts
		SET is_active = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, active, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update account status: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return auth.ErrAccountNotFound
	}

	return nil
}

// UpdateLastLogin records a successful login timestamp
func (r *AuthRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `
		UPDATE accounts
		SET last_login_at = $1, updated_at = $1
		WHERE id = $2
	`

	if _, err := r.db.ExecContext(ctx, query, at, id); err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	return nil
}
