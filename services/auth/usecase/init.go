package usecase

import (
	"github.com/adesai/billbridge/internal/pkg/models"
	"github.com/adesai/billbridge/services/auth"
)

// AuthUC implements OTP issuance and verification
type AuthUC struct {
	cfg      *models.Config
	authRepo auth.OTPRepo
	smsGW    auth.SMSGW
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(cfg *models.Config, authRepo auth.OTPRepo, smsGW auth.SMSGW) *AuthUC {
	return &AuthUC{
		cfg:      cfg,
		authRepo: authRepo,
		smsGW:    smsGW,
	}
}
