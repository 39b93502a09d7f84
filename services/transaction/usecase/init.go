package usecase

import (
	"github.com/adesai/billbridge/internal/pkg/models"
	"github.com/adesai/billbridge/internal/pkg/reference"
	"github.com/adesai/billbridge/services/transaction"
)

// TransactionUC orchestrates transaction dispatch against the provider
type TransactionUC struct {
	providerGW  transaction.ProviderGW
	auditGW     transaction.AuditGW
	rechargeRef *reference.Generator
	billRef     *reference.Generator
	cfg         *models.Config
}

// NewTransactionUC creates a new transaction usecase instance
func NewTransactionUC(
	providerGW transaction.ProviderGW,
	auditGW transaction.AuditGW,
	cfg *models.Config,
) *TransactionUC {
	return &TransactionUC{
		providerGW:  providerGW,
		auditGW:     auditGW,
		rechargeRef: reference.NewRechargeGenerator(),
		billRef:     reference.NewBillGenerator(),
		cfg:         cfg,
	}
}
