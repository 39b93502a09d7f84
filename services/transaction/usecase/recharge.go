package usecase

import (
	"context"
	"time"

	"github.com/adesai/billbridge/internal/pkg/apperrors"
	"github.com/adesai/billbridge/internal/pkg/constants"
	"github.com/adesai/billbridge/internal/pkg/logger"
	"github.com/adesai/billbridge/internal/pkg/models"
	"github.com/adesai/billbridge/internal/utils"
)

// Recharge validates a recharge request, mints a merchant reference, and
// dispatches it to the provider. Dispatch is never retried here: without
// provider-side idempotency a retry risks a duplicate charge, so callers
// recover through Reconcile instead.
func (u *TransactionUC) Recharge(ctx context.Context, req *models.RechargeRequest) (*models.TransactionResult, error) {
	if req.OperatorCode == "" {
		req.OperatorCode = utils.OperatorCode(req.Operator)
	}
	if req.ServiceType == "" {
		req.ServiceType = constants.ServiceTypeRecharge
	}

	if err := validateRecharge(req); err != nil {
		return nil, err
	}

	merchantRefNo := u.rechargeRef.Generate()

	logger.Info("Dispatching recharge",
		logger.String("merchant_ref_no", merchantRefNo),
		logger.String("operator_code", req.OperatorCode),
		logger.Float64("amount", req.Amount))

	result, err := u.providerGW.Recharge(ctx, req, merchantRefNo)
	if err != nil {
		u.publishEvent(ctx, models.EventRecharge, merchantRefNo, nil)
		return nil, err
	}
	result.MerchantRefNo = merchantRefNo

	u.publishEvent(ctx, models.EventRecharge, merchantRefNo, result)
	return result, nil
}

func validateRecharge(req *models.RechargeRequest) error {
	if len(req.MobileNo) < 10 {
		return apperrors.NewValidationError("mobileNo", "valid 10-digit mobile number is required")
	}
	if req.OperatorCode == "" {
		return apperrors.NewValidationError("operator", "operator is required")
	}
	if req.Amount <= 0 {
		return apperrors.NewValidationError("amount", "amount must be greater than zero")
	}
	return nil
}

// publishEvent records the transaction outcome on the audit trail. A nil
// result means the gateway was unreachable and the outcome is unknown until
// reconciled.
func (u *TransactionUC) publishEvent(ctx context.Context, eventType, merchantRefNo string, result *models.TransactionResult) {
	if u.auditGW == nil {
		return
	}

	event := &models.TransactionEvent{
		Type:          eventType,
		MerchantRefNo: merchantRefNo,
		Outcome:       models.OutcomeUnknown,
		Message:       "gateway unreachable",
		Timestamp:     time.Now(),
	}
	if result != nil {
		event.Success = result.Success
		event.Outcome = result.Outcome
		event.Message = result.Message
		event.Amount = result.Amount
	}

	u.auditGW.PublishTransactionEvent(ctx, event)
}
