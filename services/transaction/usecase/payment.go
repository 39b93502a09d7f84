package usecase

import (
	"github.com/adesai/billbridge/internal/pkg/logger"
	"github.com/adesai/billbridge/internal/pkg/models"
	"github.com/adesai/billbridge/internal/pkg/signature"
)

// VerifyPayment authenticates a payment-gateway callback by recomputing the
// order signature under the configured secret
func (u *TransactionUC) VerifyPayment(req *models.PaymentVerification) bool {
	ok := signature.Verify(req.OrderID, req.PaymentID, req.Signature, u.cfg.Payment.KeySecret)
	if !ok {
		logger.Warn("Payment signature verification failed",
			logger.String("order_id", req.OrderID),
			logger.String("payment_id", req.PaymentID))
	}
	return ok
}
