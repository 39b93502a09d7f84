package models

import (
	"encoding/json"
	"time"
)

// Transaction outcome classifications produced by response normalization.
const (
	OutcomeSuccess      = "SUCCESS"
	OutcomeFailed       = "FAILED"
	OutcomeAuthRejected = "AUTH_REJECTED"
	OutcomeUnknown      = "UNKNOWN"
)

// RechargeRequest represents a prepaid recharge request
type RechargeRequest struct {
	MobileNo     string  `json:"mobileNo"`
	Operator     string  `json:"operator"`
	OperatorCode string  `json:"operatorCode"`
	ServiceType  string  `json:"serviceType"`
	Amount       float64 `json:"amount"`
}

// BillRequest represents a bill fetch or bill payment request
type BillRequest struct {
	ConsumerID  string `json:"consumerNo"`
	Opcode      string `json:"opcode"`
	SubDivision string `json:"subDiv,omitempty"`
	MobileNo    string `json:"mobile"`
	DateOfBirth string `json:"dob,omitempty"`
	Category    string `json:"category,omitempty"`
	Amount      string `json:"amount,omitempty"`
	OrderID     string `json:"orderId,omitempty"`
}

// StatusRequest represents a transaction status reconciliation request
type StatusRequest struct {
	MerchantRefNo string `json:"merchantRefNo"`
}

// BillInfo carries the bill details returned by a successful bill fetch
type BillInfo struct {
	ConsumerName string  `json:"custName"`
	DueAmount    float64 `json:"amount"`
	DueDate      string  `json:"dueDate"`
	OrderID      string  `json:"orderId"`
}

// TransactionResult is the canonical outcome every provider call is
// normalized into, regardless of the raw response shape or encoding.
type TransactionResult struct {
	Success       bool            `json:"success"`
	Outcome       string          `json:"outcome"`
	Message       string          `json:"message"`
	MerchantRefNo string          `json:"merchantRefNo,omitempty"`
	OperatorTxnID string          `json:"operatorTxnId,omitempty"`
	OrderNo       string          `json:"orderNo,omitempty"`
	Amount        string          `json:"amount,omitempty"`
	Bill          *BillInfo       `json:"bill,omitempty"`
	Raw           json.RawMessage `json:"raw,omitempty"`
}

// BalanceInfo represents the provider wallet balance
type BalanceInfo struct {
	Success bool            `json:"success"`
	Balance float64         `json:"balance"`
	Raw     json.RawMessage `json:"raw,omitempty"`
}

// TransactionEvent is the audit record published after each provider call
type TransactionEvent struct {
	Type          string    `json:"type"`
	MerchantRefNo string    `json:"merchant_ref_no"`
	Success       bool      `json:"success"`
	Outcome       string    `json:"outcome"`
	Message       string    `json:"message"`
	Amount        string    `json:"amount,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// Audit event types
const (
	EventRecharge  = "recharge"
	EventBillFetch = "bill_fetch"
	EventBillPay   = "bill_pay"
	EventStatus    = "status_check"
)
