package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/adesai/billbridge/internal/pkg/apperrors"
	"github.com/adesai/billbridge/internal/pkg/models"
)

func validBillRequest() *models.BillRequest {
	return &models.BillRequest{
		ConsumerID: "110012345678",
		Opcode:     "MSEB",
		MobileNo:   "9876543210",
		Category:   "electricity",
	}
}

func TestFetchBill_Success(t *testing.T) {
	uc, mockProvider, mockAudit, ctrl := setupUC(t)
	defer ctrl.Finish()

	req := validBillRequest()

	mockProvider.EXPECT().
		FetchBill(gomock.Any(), req, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.BillRequest, ref string) (*models.TransactionResult, error) {
			assert.Len(t, ref, 14)
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

	mockAudit.EXPECT().
		PublishTransactionEvent(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, event *models.TransactionEvent) {
			assert.Equal(t, models.EventBillFetch, event.Type)
		})

	result, err := uc.FetchBill(context.Background(), req)

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.NotNil(t, result.Bill)
	assert.Equal(t, "RAMESH KUMAR", result.Bill.ConsumerName)
	assert.NotEmpty(t, result.MerchantRefNo)
}

func TestBill_SentinelOpcodeRejected(t *testing.T) {
	opcodes := []string{"", "undefined", "UNDEFINED", "Undefined", "none", "NONE", "null", "NULL", "  null  "}

	for _, opcode := range opcodes {
		t.Run("opcode "+opcode, func(t *testing.T) {
			// No EXPECT: the sentinel must be caught before any network call.
			uc, _, _, ctrl := setupUC(t)
			defer ctrl.Finish()

			req := validBillRequest()
			req.Opcode = opcode

			result, err := uc.FetchBill(context.Background(), req)
			assert.Nil(t, result)
			assert.True(t, apperrors.IsValidation(err))

			req = validBillRequest()
			req.Opcode = opcode
			req.Amount = "100"

			result, err = uc.PayBill(context.Background(), req)
			assert.Nil(t, result)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestBill_ValidationRejected(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.BillRequest)
	}{
		{
			name:   "missing consumer number",
			mutate: func(r *models.BillRequest) { r.ConsumerID = "" },
		},
		{
			name:   "short mobile number",
			mutate: func(r *models.BillRequest) { r.MobileNo = "98765" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _, ctrl := setupUC(t)
			defer ctrl.Finish()

			req := validBillRequest()
			tt.mutate(req)

			result, err := uc.FetchBill(context.Background(), req)
			assert.Nil(t, result)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestPayBill_AmountRequired(t *testing.T) {
	uc, _, _, ctrl := setupUC(t)
	defer ctrl.Finish()

	req := validBillRequest()

	result, err := uc.PayBill(context.Background(), req)

	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidation(err))
}

func TestPayBill_GeneratesOrderID(t *testing.T) {
	uc, mockProvider, mockAudit, ctrl := setupUC(t)
	defer ctrl.Finish()

	req := validBillRequest()
	req.Amount = "1540.50"

	mockProvider.EXPECT().
		PayBill(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.BillRequest, ref string) (*models.TransactionResult, error) {
			assert.Equal(t, "ORD"+ref, r.OrderID)
			return &models.TransactionResult{Success: true, Outcome: models.OutcomeSuccess}, nil
		})
	mockAudit.EXPECT().PublishTransactionEvent(gomock.Any(), gomock.Any())

	result, err := uc.PayBill(context.Background(), req)

	assert.NoError(t, err)
	assert.True(t, result.Success)
}

func TestPayBill_KeepsCallerOrderID(t *testing.T) {
	uc, mockProvider, mockAudit, ctrl := setupUC(t)
	defer ctrl.Finish()

	req := validBillRequest()
	req.Amount = "250"
	req.OrderID = "order_HX12ab34cd"

	mockProvider.EXPECT().
		PayBill(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.BillRequest, _ string) (*models.TransactionResult, error) {
			assert.Equal(t, "order_HX12ab34cd", r.OrderID)
			return &models.TransactionResult{
				Success: false,
				Outcome: models.OutcomeAuthRejected,
				Message: "Provider rejected the merchant credentials or source IP.",
			}, nil
		})
	mockAudit.EXPECT().PublishTransactionEvent(gomock.Any(), gomock.Any())

	result, err := uc.PayBill(context.Background(), req)

	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, models.OutcomeAuthRejected, result.Outcome)
}
