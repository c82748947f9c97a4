package constants

// Redis key formats
const (
	// OTP request rate limiting, keyed by business employee id and
	// requester IP so one caller cannot exhaust another's window.
	KeyOTPRateLimit = "otp:ratelimit:%s:%s" // Format: otp:ratelimit:{employee_id}:{ip}
)
