package transaction

import (
	"context"

	"github.com/adesai/billbridge/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/adesai/billbridge/services/transaction ProviderGW,AuditGW

// ProviderGW represents the upstream aggregator gateway interface. Every
// method returns a normalized result; transport failures are the only
// errors.
type ProviderGW interface {
	Recharge(ctx context.Context, req *models.RechargeRequest, merchantRefNo string) (*models.TransactionResult, error)
	FetchBill(ctx context.Context, req *models.BillRequest, merchantRefNo string) (*models.TransactionResult, error)
	PayBill(ctx context.Context, req *models.BillRequest, merchantRefNo string) (*models.TransactionResult, error)
	CheckStatus(ctx context.Context, merchantRefNo string) (*models.TransactionResult, error)
	Balance(ctx context.Context) (*models.BalanceInfo, error)
}

// AuditGW publishes transaction audit events. Publishing is best-effort;
// a failed publish never fails the transaction.
type AuditGW interface {
	PublishTransactionEvent(ctx context.Context, event *models.TransactionEvent)
}
