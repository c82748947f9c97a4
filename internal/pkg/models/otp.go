package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxOTPAttempts is the fixed ceiling of wrong-code submissions a single
// credential tolerates before it is retired.
const MaxOTPAttempts = 3

// OTPStatus is the explicit state of a credential, derived from its row
// flags. Pending is the only state a code can be verified from.
type OTPStatus string

const (
	OTPStatusPending  OTPStatus = "pending"
	OTPStatusConsumed OTPStatus = "consumed"
	OTPStatusExpired  OTPStatus = "expired"
	OTPStatusLocked   OTPStatus = "locked"
)

// OTPCredential is a single-use, time-boxed code proving control of an
// account for one login.
type OTPCredential struct {
	ID             uuid.UUID `json:"id" db:"id"`
	AccountID      uuid.UUID `json:"account_id" db:"account_id"`
	Code           string    `json:"-" db:"code"`
	ExpiresAt      time.Time `json:"expires_at" db:"expires_at"`
	Used           bool      `json:"used" db:"used"`
	FailedAttempts int       `json:"failed_attempts" db:"failed_attempts"`
	RequesterIP    string    `json:"requester_ip" db:"requester_ip"`
	UserAgent      string    `json:"user_agent" db:"user_agent"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// Status derives the credential's state at the given instant.
func (o *OTPCredential) Status(now time.Time) OTPStatus {
	switch {
	case o.Used:
		return OTPStatusConsumed
	case now.After(o.ExpiresAt):
		return OTPStatusExpired
	case o.FailedAttempts >= MaxOTPAttempts:
		return OTPStatusLocked
	}
	return OTPStatusPending
}

// OTPOutcome classifies a verification attempt.
type OTPOutcome int

const (
	OTPValid OTPOutcome = iota
	OTPExpired
	OTPMaxAttempts
	OTPWrongCode
)

// OTPVerifyResult carries the outcome of a verification attempt.
// AttemptsRemaining is meaningful only for OTPWrongCode.
type OTPVerifyResult struct {
	Outcome           OTPOutcome
	AttemptsRemaining int
}

// RequestOTPInput is the login-code request, with requester metadata kept
// for audit.
type RequestOTPInput struct {
	EmployeeID string
	IP         string
	UserAgent  string
}

// VerifyOTPInput is the code-verification request.
type VerifyOTPInput struct {
	EmployeeID string
	Code       string
	IP         string
	UserAgent  string
}

// RequestOTPRequest is the wire form of a login-code request.
type RequestOTPRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
}

// VerifyOTPRequest is the wire form of a code-verification request.
type VerifyOTPRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	OTPCode    string `json:"otp_code" validate:"required"`
}

// OTPNotificationEvent is published for the external mailer when a code is
// issued. Delivery failure never surfaces to the requester.
type OTPNotificationEvent struct {
	EmployeeID string    `json:"employee_id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Code       string    `json:"code"`
	ExpiresAt  time.Time `json:"expires_at"`
}
