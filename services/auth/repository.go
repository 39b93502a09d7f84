package auth

import (
	"context"

	"github.com/adesai/billbridge/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/adesai/billbridge/services/auth OTPRepo

// OTPRepo represents the OTP challenge store interface. At most one live
// challenge exists per identity; storing a new one replaces it.
type OTPRepo interface {
	StoreOTP(ctx context.Context, otp *models.OTP) error
	VerifyOTP(ctx context.Context, identity, code string) (models.VerifyOutcome, error)
}
