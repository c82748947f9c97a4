package auth

import "errors"

// Sentinel errors the handlers translate into distinct HTTP outcomes.
// Anything touching account existence or code correctness collapses into
// ErrInvalidCredentials before it leaves the usecase layer, so the HTTP
// surface cannot be used to enumerate employee ids.
var (
	// ErrRateLimited is returned when an identifier exhausted its OTP
	// request window. Observable to the caller by design.
	ErrRateLimited = errors.New("otp request rate limit exceeded")

	// ErrInvalidCredentials covers unknown employee, unbound or inactive
	// account, wrong code, expired code, and locked code uniformly.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidRefreshToken is returned when a presented refresh token
	// does not resolve to a live session.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrAccountNotFound is returned by account lookups on protected
	// routes, where existence is no longer a secret.
	ErrAccountNotFound = errors.New("account not found")

	// ErrEmployeeNotFound is returned when binding an account to an
	// unknown employee.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrAccountExists is returned when the employee already has an
	// account bound.
	ErrAccountExists = errors.New("account already exists for employee")

	// ErrSelfAction rejects an admin demoting or deactivating their own
	// account. Distinct from an authorization denial so admins cannot
	// lock themselves out by accident.
	ErrSelfAction = errors.New("operation not permitted on own account")

	// ErrInvalidRole rejects a role outside the closed role set.
	ErrInvalidRole = errors.New("invalid role")
)
