package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/adesai/billbridge/internal/pkg/apperrors"
	"github.com/adesai/billbridge/internal/pkg/logger"
	"github.com/adesai/billbridge/internal/pkg/models"
)

const defaultOTPTTL = 5 * time.Minute

// SendOTP issues a fresh six-digit challenge for the identity, replacing any
// live one. With no SMS key configured the code is returned in the response
// instead of delivered; that mode is for test environments only.
func (u *AuthUC) SendOTP(ctx context.Context, req *models.SendOTPRequest) (*models.SendOTPResponse, error) {
	if req.Identity == "" {
		return nil, apperrors.NewValidationError("identity", "identity is required")
	}

	code, err := generateCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP code: %w", err)
	}

	now := time.Now()
	otp := &models.OTP{
		Identity:  req.Identity,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(u.otpTTL()),
	}

	if err := u.authRepo.StoreOTP(ctx, otp); err != nil {
		return nil, err
	}

	if u.cfg.SMS.Key == "" {
		logger.Warn("SMS simulation mode active, returning OTP in response",
			logger.String("identity", req.Identity))
		return &models.SendOTPResponse{
			Message: "OTP generated (simulation mode)",
			Preview: code,
		}, nil
	}

	if err := u.smsGW.SendOTPSMS(ctx, req.Identity, code); err != nil {
		return nil, fmt.Errorf("failed to deliver OTP: %w", err)
	}

	logger.Info("OTP issued", logger.String("identity", req.Identity))
	return &models.SendOTPResponse{Message: "OTP sent"}, nil
}

// VerifyOTP resolves a challenge against the store
func (u *AuthUC) VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) (models.VerifyOutcome, error) {
	if req.Identity == "" {
		return models.OTPNotFound, apperrors.NewValidationError("identity", "identity is required")
	}
	if req.Code == "" {
		return models.OTPNotFound, apperrors.NewValidationError("otp", "otp is required")
	}

	outcome, err := u.authRepo.VerifyOTP(ctx, req.Identity, req.Code)
	if err != nil {
		return models.OTPNotFound, err
	}

	if outcome != models.OTPVerified {
		logger.Warn("OTP verification rejected",
			logger.String("identity", req.Identity),
			logger.String("outcome", outcome.String()))
	}
	return outcome, nil
}

func (u *AuthUC) otpTTL() time.Duration {
	if u.cfg.OTP.TTLSeconds > 0 {
		return time.Duration(u.cfg.OTP.TTLSeconds) * time.Second
	}
	return defaultOTPTTL
}

// generateCode draws a uniform six-digit code from a CSPRNG
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
