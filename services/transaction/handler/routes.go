// Package handler combines the transport handlers for the transaction
// service.
package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/adesai/billbridge/services/transaction"
	httpHandler "github.com/adesai/billbridge/services/transaction/handler/http"
)

// Handler combines all handlers for the transaction service
type Handler struct {
	transactionHTTP *httpHandler.TransactionHandler
}

// NewHandler creates a new combined handler
func NewHandler(transactionUC transaction.TransactionUC) *Handler {
	return &Handler{
		transactionHTTP: httpHandler.NewTransactionHandler(transactionUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	h.transactionHTTP.RegisterRoutes(e)
}
