package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adesai/billbridge/internal/pkg/apperrors"
	"github.com/adesai/billbridge/internal/pkg/models"
	"github.com/adesai/billbridge/internal/utils"
	"github.com/adesai/billbridge/services/transaction"
)

// TransactionHandler handles HTTP requests for transaction operations
type TransactionHandler struct {
	transactionUC transaction.TransactionUC
}

// NewTransactionHandler creates a new transaction HTTP handler
func NewTransactionHandler(transactionUC transaction.TransactionUC) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: transactionUC,
	}
}

// RegisterRoutes registers the transaction handler routes
func (h *TransactionHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.POST("/recharge", h.Recharge)
	api.POST("/recharge/status", h.Status)
	api.POST("/bills/fetch", h.FetchBill)
	api.POST("/bills/pay", h.PayBill)
	api.GET("/balance", h.Balance)
	api.POST("/payments/verify", h.VerifyPayment)
}

// Recharge handles a prepaid recharge request
func (h *TransactionHandler) Recharge(c echo.Context) error {
	var req models.RechargeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	result, err := h.transactionUC.Recharge(c.Request().Context(), &req)
	if err != nil {
		return h.dispatchError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Recharge dispatched", result)
}

// FetchBill handles a bill inquiry request
func (h *TransactionHandler) FetchBill(c echo.Context) error {
	var req models.BillRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	result, err := h.transactionUC.FetchBill(c.Request().Context(), &req)
	if err != nil {
		return h.dispatchError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bill fetched", result)
}

// PayBill handles a bill payment request
func (h *TransactionHandler) PayBill(c echo.Context) error {
	var req models.BillRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	result, err := h.transactionUC.PayBill(c.Request().Context(), &req)
	if err != nil {
		return h.dispatchError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bill payment dispatched", result)
}

// Status handles a transaction status reconciliation request
func (h *TransactionHandler) Status(c echo.Context) error {
	var req models.StatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	result, err := h.transactionUC.Reconcile(c.Request().Context(), req.MerchantRefNo)
	if err != nil {
		return h.dispatchError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Status retrieved", result)
}

// Balance returns the merchant wallet balance at the provider
func (h *TransactionHandler) Balance(c echo.Context) error {
	info, err := h.transactionUC.Balance(c.Request().Context())
	if err != nil {
		return h.dispatchError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Balance retrieved", info)
}

// VerifyPayment authenticates a payment-gateway callback signature
func (h *TransactionHandler) VerifyPayment(c echo.Context) error {
	var req models.PaymentVerification
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		return utils.BadRequestResponse(c, "razorpay_order_id, razorpay_payment_id and razorpay_signature are required")
	}

	if !h.transactionUC.VerifyPayment(&req) {
		return utils.ErrorResponseHandler(c, http.StatusBadRequest, "Payment signature verification failed")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment signature verified", echo.Map{
		"orderId":   req.OrderID,
		"paymentId": req.PaymentID,
	})
}

// dispatchError maps usecase errors onto HTTP status codes. Validation
// failures are the caller's fault; an unreachable gateway is the upstream's.
func (h *TransactionHandler) dispatchError(c echo.Context, err error) error {
	if apperrors.IsValidation(err) {
		return utils.BadRequestResponse(c, err.Error())
	}
	if errors.Is(err, apperrors.ErrGatewayUnreachable) {
		return utils.BadGatewayResponse(c, err.Error())
	}
	return utils.InternalServerErrorResponse(c, err.Error())
}
