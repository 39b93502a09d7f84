package auth

import (
	"context"

	"github.com/adesai/billbridge/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/adesai/billbridge/services/auth AuthUC

// AuthUC represents the OTP authentication usecase interface
type AuthUC interface {
	// SendOTP issues a single-use code to the given identity. In SMS
	// simulation mode the code comes back in the response instead of
	// being delivered.
	SendOTP(ctx context.Context, req *models.SendOTPRequest) (*models.SendOTPResponse, error)

	// VerifyOTP checks a previously issued code. A verified or expired
	// code is consumed; a mismatched one is kept for retry.
	VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) (models.VerifyOutcome, error)
}
