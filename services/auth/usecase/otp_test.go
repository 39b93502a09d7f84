package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/adesai/billbridge/internal/pkg/apperrors"
	"github.com/adesai/billbridge/internal/pkg/models"
	"github.com/adesai/billbridge/services/auth/mocks"
)

var sixDigits = regexp.MustCompile(`^\d{6}$`)

func setupAuthUC(t *testing.T, smsKey string) (*AuthUC, *mocks.MockOTPRepo, *mocks.MockSMSGW, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockOTPRepo(ctrl)
	mockSMS := mocks.NewMockSMSGW(ctrl)
	cfg := &models.Config{
		SMS: models.SMSConfig{
			Key:     smsKey,
			BaseURL: "https://sms.example.com/v2",
		},
		OTP: models.OTPConfig{
			TTLSeconds: 300,
		},
	}

	return NewAuthUC(cfg, mockRepo, mockSMS), mockRepo, mockSMS, ctrl
}

func TestSendOTP_DeliversOverSMS(t *testing.T) {
	uc, mockRepo, mockSMS, ctrl := setupAuthUC(t, "sms-api-key")
	defer ctrl.Finish()

	var issuedCode string
	mockRepo.EXPECT().
		StoreOTP(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, otp *models.OTP) error {
			assert.Equal(t, "9876543210", otp.Identity)
			assert.Regexp(t, sixDigits, otp.Code)
			assert.WithinDuration(t, time.Now().Add(5*time.Minute), otp.ExpiresAt, 5*time.Second)
			issuedCode = otp.Code
			return nil
		})
	mockSMS.EXPECT().
		SendOTPSMS(gomock.Any(), "9876543210", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, code string) error {
			assert.Equal(t, issuedCode, code)
			return nil
		})

	resp, err := uc.SendOTP(context.Background(), &models.SendOTPRequest{Identity: "9876543210"})

	assert.NoError(t, err)
	assert.Equal(t, "OTP sent", resp.Message)
	assert.Empty(t, resp.Preview)
}

func TestSendOTP_SimulationModeReturnsPreview(t *testing.T) {
	// No SMS key configured: the code must come back in the response and
	// the SMS gateway must never be called.
	uc, mockRepo, _, ctrl := setupAuthUC(t, "")
	defer ctrl.Finish()

	mockRepo.EXPECT().StoreOTP(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := uc.SendOTP(context.Background(), &models.SendOTPRequest{Identity: "9876543210"})

	assert.NoError(t, err)
	assert.Regexp(t, sixDigits, resp.Preview)
}

func TestSendOTP_MissingIdentity(t *testing.T) {
	uc, _, _, ctrl := setupAuthUC(t, "sms-api-key")
	defer ctrl.Finish()

	resp, err := uc.SendOTP(context.Background(), &models.SendOTPRequest{})

	assert.Nil(t, resp)
	assert.True(t, apperrors.IsValidation(err))
}

func TestSendOTP_StoreFailure(t *testing.T) {
	uc, mockRepo, _, ctrl := setupAuthUC(t, "sms-api-key")
	defer ctrl.Finish()

	mockRepo.EXPECT().
		StoreOTP(gomock.Any(), gomock.Any()).
		Return(errors.New("failed to store OTP in Redis: connection refused"))

	resp, err := uc.SendOTP(context.Background(), &models.SendOTPRequest{Identity: "9876543210"})

	assert.Nil(t, resp)
	assert.Error(t, err)
}

func TestSendOTP_DeliveryFailure(t *testing.T) {
	uc, mockRepo, mockSMS, ctrl := setupAuthUC(t, "sms-api-key")
	defer ctrl.Finish()

	mockRepo.EXPECT().StoreOTP(gomock.Any(), gomock.Any()).Return(nil)
	mockSMS.EXPECT().
		SendOTPSMS(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("SMS provider returned status 503"))

	resp, err := uc.SendOTP(context.Background(), &models.SendOTPRequest{Identity: "9876543210"})

	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "failed to deliver OTP")
}

func TestVerifyOTP_Outcomes(t *testing.T) {
	outcomes := []models.VerifyOutcome{
		models.OTPVerified,
		models.OTPNotFound,
		models.OTPExpired,
		models.OTPMismatch,
	}

	for _, outcome := range outcomes {
		t.Run(outcome.String(), func(t *testing.T) {
			uc, mockRepo, _, ctrl := setupAuthUC(t, "sms-api-key")
			defer ctrl.Finish()

			mockRepo.EXPECT().
				VerifyOTP(gomock.Any(), "9876543210", "482913").
				Return(outcome, nil)

			got, err := uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
				Identity: "9876543210",
				Code:     "482913",
			})

			assert.NoError(t, err)
			assert.Equal(t, outcome, got)
		})
	}
}

func TestVerifyOTP_MissingFields(t *testing.T) {
	uc, _, _, ctrl := setupAuthUC(t, "sms-api-key")
	defer ctrl.Finish()

	_, err := uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{Code: "482913"})
	assert.True(t, apperrors.IsValidation(err))

	_, err = uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{Identity: "9876543210"})
	assert.True(t, apperrors.IsValidation(err))
}
