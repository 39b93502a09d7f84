package usecase

import (
	"context"

	"github.com/adesai/billbridge/internal/pkg/apperrors"
	"github.com/adesai/billbridge/internal/pkg/logger"
	"github.com/adesai/billbridge/internal/pkg/models"
)

// Reconcile polls the provider for the current state of a previously
// dispatched transaction. It is the only recovery path after an
// inconclusive synchronous result; dispatch itself is never retried.
func (u *TransactionUC) Reconcile(ctx context.Context, merchantRefNo string) (*models.TransactionResult, error) {
	if merchantRefNo == "" {
		return nil, apperrors.NewValidationError("merchantRefNo", "merchantRefNo is required")
	}

	logger.Info("Reconciling transaction", logger.String("merchant_ref_no", merchantRefNo))

	result, err := u.providerGW.CheckStatus(ctx, merchantRefNo)
	if err != nil {
		return nil, err
	}
	if result.MerchantRefNo == "" {
		result.MerchantRefNo = merchantRefNo
	}

	u.publishEvent(ctx, models.EventStatus, merchantRefNo, result)
	return result, nil
}

// Balance returns the merchant wallet balance at the provider
func (u *TransactionUC) Balance(ctx context.Context) (*models.BalanceInfo, error) {
	return u.providerGW.Balance(ctx)
}
