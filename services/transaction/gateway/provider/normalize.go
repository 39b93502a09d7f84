package provider

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/adesai/billbridge/internal/pkg/constants"
	"github.com/adesai/billbridge/internal/pkg/models"
)

// XML root element candidates per BBPS call, probed in order before falling
// back to the document root.
var (
	FetchRoots = []string{"Response", "BillFetch"}
	PayRoots   = []string{"Response", "PaymentBill"}
)

// authRejectedMessage tells the operator what an IAC/Unauthorised response
// actually means: the merchant credentials or source IP were refused, so
// retrying the transaction cannot help.
const authRejectedMessage = "Provider rejected the merchant credentials or source IP. " +
	"Verify the configured authkey/authpass and confirm this server's IP is whitelisted with the provider."

// Normalize maps a raw provider response onto the canonical transaction
// result. It is total: every input, including a nil or unparsable response,
// produces a result, and the same input always produces the same result.
// The raw payload is always carried for audit.
func Normalize(rr *RawResponse, merchantRefNo string, roots ...string) *models.TransactionResult {
	result := &models.TransactionResult{
		Outcome:       models.OutcomeUnknown,
		MerchantRefNo: merchantRefNo,
		Raw:           rawJSON(rr),
	}

	if rr == nil || rr.Tree == nil {
		result.Message = "No usable response from provider"
		return result
	}

	root := selectRoot(rr.Tree, roots...)

	status := strings.ToUpper(stringField(root, constants.StatusFieldAliases...))
	desc := stringField(root, constants.DescriptionFieldAliases...)

	switch {
	case classifySuccess(status, desc):
		result.Success = true
		result.Outcome = models.OutcomeSuccess
		result.Message = desc
		if result.Message == "" {
			result.Message = "Transaction successful"
		}
	case status == constants.StatusIAC && strings.Contains(strings.ToUpper(desc), "UNAUTHORISED"):
		result.Outcome = models.OutcomeAuthRejected
		result.Message = authRejectedMessage
	default:
		result.Outcome = models.OutcomeFailed
		result.Message = desc
		if result.Message == "" {
			if status != "" {
				result.Message = "Provider error: " + status
			} else {
				result.Message = "No response status from provider"
			}
		}
	}

	// Identifiers are extracted opportunistically; their absence is normal.
	result.OperatorTxnID = stringField(root, "operatorTxnId", "OperatorTxnId")
	result.OrderNo = stringField(root, "orderNo", "OrderId", "Orderid")
	result.Amount = stringField(root, "amount", "Amount")
	if ref := stringField(root, "merchantRefNo", "Merchantrefno"); ref != "" {
		result.MerchantRefNo = ref
	}

	return result
}

// classifySuccess applies the canonical status table: SUCCESS from the JSON
// surface, the BBPS acknowledgement codes, then the description-substring
// fallback for responses whose status field is absent or unrecognized.
func classifySuccess(status, desc string) bool {
	switch status {
	case constants.StatusSuccess, constants.StatusTxn, constants.StatusSac, constants.StatusRcs:
		return true
	}
	return strings.Contains(strings.ToUpper(desc), constants.StatusSuccess)
}

// ExtractBill pulls the bill details out of a successful fetch response
func ExtractBill(rr *RawResponse, merchantRefNo string) *models.BillInfo {
	if rr == nil || rr.Tree == nil {
		return nil
	}
	root := selectRoot(rr.Tree, FetchRoots...)

	bill := &models.BillInfo{
		ConsumerName: stringField(root, "ConsumerName"),
		DueDate:      stringField(root, "DueDate"),
		OrderID:      stringField(root, "OrderId"),
	}
	if bill.ConsumerName == "" {
		bill.ConsumerName = "Valued Customer"
	}
	if bill.DueDate == "" {
		bill.DueDate = "N/A"
	}
	if bill.OrderID == "" {
		bill.OrderID = merchantRefNo
	}
	if due, err := strconv.ParseFloat(stringField(root, "DueAmount"), 64); err == nil {
		bill.DueAmount = due
	}
	return bill
}

// ExtractBalance pulls the wallet balance out of a balance response
func ExtractBalance(rr *RawResponse) (float64, bool) {
	if rr == nil || rr.Tree == nil {
		return 0, false
	}
	root := selectRoot(rr.Tree, "Response")
	balance, err := strconv.ParseFloat(stringField(root, "Balance"), 64)
	if err != nil {
		return 0, false
	}
	return balance, true
}

// stringField returns the first non-empty field under any of the alias keys,
// rendered as a string. The provider is loosely typed: numbers arrive as
// JSON numbers or XML text interchangeably.
func stringField(tree map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if s := asString(tree[key]); s != "" {
			return s
		}
	}
	return ""
}

func asString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return t.String()
	}
	return ""
}

// rawJSON renders the raw provider payload as JSON for the audit field
func rawJSON(rr *RawResponse) json.RawMessage {
	if rr == nil {
		return nil
	}
	if rr.Tree != nil {
		if data, err := json.Marshal(rr.Tree); err == nil {
			return data
		}
	}
	if len(rr.Body) == 0 {
		return nil
	}
	data, err := json.Marshal(string(rr.Body))
	if err != nil {
		return nil
	}
	return data
}
