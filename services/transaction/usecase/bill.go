package usecase

import (
	"context"
	"strings"

	"github.com/adesai/billbridge/internal/pkg/apperrors"
	"github.com/adesai/billbridge/internal/pkg/logger"
	"github.com/adesai/billbridge/internal/pkg/models"
)

// FetchBill validates a bill inquiry and dispatches it over the BBPS surface
func (u *TransactionUC) FetchBill(ctx context.Context, req *models.BillRequest) (*models.TransactionResult, error) {
	if err := validateBill(req, false); err != nil {
		return nil, err
	}

	merchantRefNo := u.billRef.Generate()

	logger.Info("Dispatching bill fetch",
		logger.String("merchant_ref_no", merchantRefNo),
		logger.String("opcode", req.Opcode),
		logger.String("category", req.Category))

	result, err := u.providerGW.FetchBill(ctx, req, merchantRefNo)
	if err != nil {
		u.publishEvent(ctx, models.EventBillFetch, merchantRefNo, nil)
		return nil, err
	}
	result.MerchantRefNo = merchantRefNo

	u.publishEvent(ctx, models.EventBillFetch, merchantRefNo, result)
	return result, nil
}

// PayBill validates a bill payment and dispatches it over the BBPS surface.
// When the caller supplies no order id, one is generated from the merchant
// reference so the provider can still correlate the settlement.
func (u *TransactionUC) PayBill(ctx context.Context, req *models.BillRequest) (*models.TransactionResult, error) {
	if err := validateBill(req, true); err != nil {
		return nil, err
	}

	merchantRefNo := u.billRef.Generate()
	if req.OrderID == "" {
		req.OrderID = "ORD" + merchantRefNo
	}

	logger.Info("Dispatching bill payment",
		logger.String("merchant_ref_no", merchantRefNo),
		logger.String("opcode", req.Opcode),
		logger.String("order_id", req.OrderID),
		logger.String("amount", req.Amount))

	result, err := u.providerGW.PayBill(ctx, req, merchantRefNo)
	if err != nil {
		u.publishEvent(ctx, models.EventBillPay, merchantRefNo, nil)
		return nil, err
	}
	result.MerchantRefNo = merchantRefNo

	u.publishEvent(ctx, models.EventBillPay, merchantRefNo, result)
	return result, nil
}

// sentinel opcodes that mean "no biller selected". Letting one of these
// reach the provider causes unattributable charges, so they are rejected
// before any network call.
var sentinelOpcodes = map[string]struct{}{
	"":          {},
	"UNDEFINED": {},
	"NONE":      {},
	"NULL":      {},
}

func validateBill(req *models.BillRequest, payment bool) error {
	opcode := strings.ToUpper(strings.TrimSpace(req.Opcode))
	if _, bad := sentinelOpcodes[opcode]; bad {
		return apperrors.NewValidationError("opcode", "invalid biller selection, please select the biller again")
	}
	if req.ConsumerID == "" {
		return apperrors.NewValidationError("consumerNo", "consumer number is required")
	}
	if len(req.MobileNo) < 10 {
		return apperrors.NewValidationError("mobile", "valid 10-digit consumer mobile number is required")
	}
	if payment && req.Amount == "" {
		return apperrors.NewValidationError("amount", "amount is required")
	}
	return nil
}
