package transaction

import (
	"context"

	"github.com/adesai/billbridge/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/adesai/billbridge/services/transaction TransactionUC

// TransactionUC represents the transaction orchestrator interface
type TransactionUC interface {
	// Recharge validates and dispatches a prepaid recharge
	Recharge(ctx context.Context, req *models.RechargeRequest) (*models.TransactionResult, error)

	// FetchBill retrieves the outstanding bill for a consumer
	FetchBill(ctx context.Context, req *models.BillRequest) (*models.TransactionResult, error)

	// PayBill settles a previously fetched bill
	PayBill(ctx context.Context, req *models.BillRequest) (*models.TransactionResult, error)

	// Reconcile polls the provider for the state of a previously dispatched
	// transaction. This is the only recovery path after an inconclusive
	// synchronous result.
	Reconcile(ctx context.Context, merchantRefNo string) (*models.TransactionResult, error)

	// Balance returns the merchant wallet balance at the provider
	Balance(ctx context.Context) (*models.BalanceInfo, error)

	// VerifyPayment authenticates a payment-gateway callback signature
	VerifyPayment(req *models.PaymentVerification) bool
}
