package models

import (
	"time"
)

// OTP represents a one-time password challenge for identity verification
type OTP struct {
	Identity  string    `json:"identity"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// VerifyOutcome is the result of an OTP verification attempt
type VerifyOutcome int

const (
	OTPVerified VerifyOutcome = iota
	OTPNotFound
	OTPExpired
	OTPMismatch
)

func (o VerifyOutcome) String() string {
	switch o {
	case OTPVerified:
		return "verified"
	case OTPNotFound:
		return "not_found"
	case OTPExpired:
		return "expired"
	case OTPMismatch:
		return "mismatch"
	}
	return "unknown"
}

// SendOTPRequest represents a request to issue an OTP to an identity
// (email address or mobile number)
type SendOTPRequest struct {
	Identity string `json:"identity" validate:"required"`
}

// VerifyOTPRequest represents a request to verify a previously issued OTP
type VerifyOTPRequest struct {
	Identity string `json:"identity" validate:"required"`
	Code     string `json:"otp" validate:"required"`
}

// SendOTPResponse is returned after an OTP issuance.
// Preview is only populated in SMS simulation mode.
type SendOTPResponse struct {
	Message string `json:"message"`
	Preview string `json:"preview,omitempty"`
}
