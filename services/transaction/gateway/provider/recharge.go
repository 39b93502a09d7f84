package provider

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"

	"github.com/adesai/billbridge/internal/pkg/models"
)

// rechargePayload is the provider's recharge request contract
type rechargePayload struct {
	MobileNo      string  `json:"mobileNo"`
	OperatorCode  string  `json:"operatorCode"`
	ServiceType   string  `json:"serviceType"`
	Amount        float64 `json:"amount"`
	MerchantRefNo string  `json:"merchantRefNo"`
}

// Recharge dispatches a prepaid recharge transaction and returns the
// normalized outcome
func (c *Client) Recharge(ctx context.Context, req *models.RechargeRequest, merchantRefNo string) (*models.TransactionResult, error) {
	payload, err := json.Marshal(rechargePayload{
		MobileNo:      req.MobileNo,
		OperatorCode:  req.OperatorCode,
		ServiceType:   req.ServiceType,
		Amount:        req.Amount,
		MerchantRefNo: merchantRefNo,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recharge payload: %w", err)
	}

	rr, err := c.doJSON(ctx, nethttp.MethodPost, c.cfg.RechargeURL, payload)
	if err != nil {
		return nil, err
	}

	return Normalize(rr, merchantRefNo), nil
}

// CheckStatus queries the provider for a previously dispatched transaction.
// The merchant reference is appended to the status URL path and the body is
// an empty JSON object, per the provider's contract.
func (c *Client) CheckStatus(ctx context.Context, merchantRefNo string) (*models.TransactionResult, error) {
	rr, err := c.doJSON(ctx, nethttp.MethodPost, c.cfg.StatusURL+merchantRefNo, []byte("{}"))
	if err != nil {
		return nil, err
	}

	return Normalize(rr, merchantRefNo), nil
}

// Balance fetches the merchant wallet balance. The response is XML with a
// Balance element under a Response root.
func (c *Client) Balance(ctx context.Context) (*models.BalanceInfo, error) {
	url := fmt.Sprintf("%s/Balance.aspx?authkey=%s&authpass=%s&service=recharge",
		c.cfg.BBPSBaseURL, c.cfg.AuthKey, c.cfg.AuthPass)

	rr, err := c.doXML(ctx, url)
	if err != nil {
		return nil, err
	}

	balance, ok := ExtractBalance(rr)
	return &models.BalanceInfo{
		Success: ok,
		Balance: balance,
		Raw:     rawJSON(rr),
	}, nil
}
