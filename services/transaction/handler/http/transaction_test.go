package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/adesai/billbridge/internal/pkg/apperrors"
	"github.com/adesai/billbridge/internal/pkg/models"
	"github.com/adesai/billbridge/services/transaction/mocks"
)

func newTestContext(t *testing.T, method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		reqBody, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewBuffer(reqBody)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	e := echo.New()
	request := httptest.NewRequest(method, path, reader)
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	return e.NewContext(request, recorder), recorder
}

func TestNewTransactionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC)

	assert.NotNil(t, handler)
	assert.Equal(t, mockUC, handler.transactionUC)
}

func TestTransactionHandler_Recharge_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC)

	mockUC.EXPECT().
		Recharge(gomock.Any(), gomock.Any()).
		Return(&models.TransactionResult{
			Success:       true,
			Outcome:       models.OutcomeSuccess,
			Message:       "ok",
			MerchantRefNo: "RPK1725123456001",
		}, nil)

	c, recorder := newTestContext(t, http.MethodPost, "/api/recharge", map[string]interface{}{
		"mobileNo": "9876543210",
		"operator": "Airtel",
		"amount":   199,
	})

	err := handler.Recharge(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "RPK1725123456001", data["merchantRefNo"])
}

func TestTransactionHandler_Recharge_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC)

	mockUC.EXPECT().
		Recharge(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationError("mobileNo", "valid 10-digit mobile number is required"))

	c, recorder := newTestContext(t, http.MethodPost, "/api/recharge", map[string]interface{}{
		"mobileNo": "98765",
	})

	err := handler.Recharge(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestTransactionHandler_Recharge_GatewayUnreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC)

	mockUC.EXPECT().
		Recharge(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.GatewayUnreachable(errors.New("dial tcp: i/o timeout")))

	c, recorder := newTestContext(t, http.MethodPost, "/api/recharge", map[string]interface{}{
		"mobileNo": "9876543210",
		"operator": "Jio",
		"amount":   100,
	})

	err := handler.Recharge(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, recorder.Code)
}

func TestTransactionHandler_FetchBill_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC)

	mockUC.EXPECT().
		FetchBill(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.BillRequest) (*models.TransactionResult, error) {
			assert.Equal(t, "110012345678", req.ConsumerID)
			assert.Equal(t, "MSEB", req.Opcode)
			return &models.TransactionResult{
				Success: true,
				Outcome: models.OutcomeSuccess,
				Bill: &models.BillInfo{
					ConsumerName: "RAMESH KUMAR",
					DueAmount:    1540.50,
					DueDate:      "2026-09-15",
				},
			}, nil
		})

	c, recorder := newTestContext(t, http.MethodPost, "/api/bills/fetch", map[string]interface{}{
		"consumerNo": "110012345678",
		"opcode":     "MSEB",
		"mobile":     "9876543210",
		"category":   "electricity",
	})

	err := handler.FetchBill(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	bill := data["bill"].(map[string]interface{})
	assert.Equal(t, "RAMESH KUMAR", bill["custName"])
}

func TestTransactionHandler_PayBill_ProviderRejectionIsHTTP200(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC)

	mockUC.EXPECT().
		PayBill(gomock.Any(), gomock.Any()).
		Return(&models.TransactionResult{
			Success: false,
			Outcome: models.OutcomeFailed,
			Message: "Provider error: RPF",
		}, nil)

	c, recorder := newTestContext(t, http.MethodPost, "/api/bills/pay", map[string]interface{}{
		"consumerNo": "110012345678",
		"opcode":     "MSEB",
		"mobile":     "9876543210",
		"amount":     "1540.50",
	})

	err := handler.PayBill(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, false, data["success"])
	assert.Equal(t, models.OutcomeFailed, data["outcome"])
}

func TestTransactionHandler_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC)

	mockUC.EXPECT().
		Reconcile(gomock.Any(), "17251234567001").
		Return(&models.TransactionResult{
			Success:       true,
			Outcome:       models.OutcomeSuccess,
			MerchantRefNo: "17251234567001",
		}, nil)

	c, recorder := newTestContext(t, http.MethodPost, "/api/recharge/status", map[string]interface{}{
		"merchantRefNo": "17251234567001",
	})

	err := handler.Status(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestTransactionHandler_Balance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC)

	mockUC.EXPECT().
		Balance(gomock.Any()).
		Return(&models.BalanceInfo{Success: true, Balance: 10543.25}, nil)

	c, recorder := newTestContext(t, http.MethodGet, "/api/balance", nil)

	err := handler.Balance(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, 10543.25, data["balance"])
}

func TestTransactionHandler_VerifyPayment(t *testing.T) {
	tests := []struct {
		name         string
		body         map[string]interface{}
		verified     bool
		expectCall   bool
		expectedCode int
	}{
		{
			name: "valid signature",
			body: map[string]interface{}{
				"razorpay_order_id":   "order_ABC123",
				"razorpay_payment_id": "pay_XYZ789",
				"razorpay_signature":  "deadbeef",
			},
			verified:     true,
			expectCall:   true,
			expectedCode: http.StatusOK,
		},
		{
			name: "invalid signature",
			body: map[string]interface{}{
				"razorpay_order_id":   "order_ABC123",
				"razorpay_payment_id": "pay_XYZ789",
				"razorpay_signature":  "deadbeef",
			},
			verified:     false,
			expectCall:   true,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "missing fields",
			body: map[string]interface{}{
				"razorpay_order_id": "order_ABC123",
			},
			expectCall:   false,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockTransactionUC(ctrl)
			handler := NewTransactionHandler(mockUC)

			if tt.expectCall {
				mockUC.EXPECT().VerifyPayment(gomock.Any()).Return(tt.verified)
			}

			c, recorder := newTestContext(t, http.MethodPost, "/api/payments/verify", tt.body)

			err := handler.VerifyPayment(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCode, recorder.Code)
		})
	}
}

func TestTransactionHandler_InvalidJSONBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC)

	e := echo.New()
	request := httptest.NewRequest(http.MethodPost, "/api/recharge", bytes.NewBufferString("{not json"))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	err := handler.Recharge(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
