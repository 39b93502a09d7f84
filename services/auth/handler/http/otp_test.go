package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/adesai/billbridge/internal/pkg/models"
	"github.com/adesai/billbridge/services/auth/mocks"
)

func newTestContext(t *testing.T, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	reqBody, err := json.Marshal(body)
	assert.NoError(t, err)

	e := echo.New()
	request := httptest.NewRequest(http.MethodPost, "/", bytes.NewBuffer(reqBody))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	return e.NewContext(request, recorder), recorder
}

func TestAuthHandler_SendOTP_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	mockUC.EXPECT().
		SendOTP(gomock.Any(), gomock.Any()).
		Return(&models.SendOTPResponse{Message: "OTP sent"}, nil)

	c, recorder := newTestContext(t, map[string]string{"identity": "9876543210"})

	err := handler.SendOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestAuthHandler_SendOTP_SimulationPreview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	mockUC.EXPECT().
		SendOTP(gomock.Any(), gomock.Any()).
		Return(&models.SendOTPResponse{
			Message: "OTP generated (simulation mode)",
			Preview: "482913",
		}, nil)

	c, recorder := newTestContext(t, map[string]string{"identity": "9876543210"})

	err := handler.SendOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "482913", data["preview"])
}

func TestAuthHandler_VerifyOTP(t *testing.T) {
	tests := []struct {
		name         string
		outcome      models.VerifyOutcome
		expectedCode int
	}{
		{name: "verified", outcome: models.OTPVerified, expectedCode: http.StatusOK},
		{name: "not found", outcome: models.OTPNotFound, expectedCode: http.StatusBadRequest},
		{name: "expired", outcome: models.OTPExpired, expectedCode: http.StatusBadRequest},
		{name: "mismatch", outcome: models.OTPMismatch, expectedCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockAuthUC(ctrl)
			handler := NewAuthHandler(mockUC)

			mockUC.EXPECT().
				VerifyOTP(gomock.Any(), gomock.Any()).
				Return(tt.outcome, nil)

			c, recorder := newTestContext(t, map[string]string{
				"identity": "9876543210",
				"otp":      "482913",
			})

			err := handler.VerifyOTP(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCode, recorder.Code)
		})
	}
}
