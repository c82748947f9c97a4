package constants

// NATS Subjects
const (
	// Consumed by the external mailer to deliver login codes.
	SubjectOTPRequested = "auth.otp.requested"
)
