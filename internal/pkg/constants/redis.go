package constants

// Redis key formats
const (
	// Auth service
	KeyOTPChallenge = "otp:challenge:%s" // Format: otp:challenge:{identity}
)
