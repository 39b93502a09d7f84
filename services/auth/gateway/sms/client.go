// Package sms delivers OTP codes over the SMS provider's HTTP API.
package sms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/adesai/billbridge/internal/pkg/apperrors"
	"github.com/adesai/billbridge/internal/pkg/logger"
	"github.com/adesai/billbridge/internal/pkg/models"
)

// Client is an HTTP client for the SMS provider's OTP route
type Client struct {
	cfg    models.SMSConfig
	client *http.Client
}

// NewClient creates a new SMS client
func NewClient(cfg models.SMSConfig) *Client {
	return &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SendOTPSMS delivers a code to the given mobile number over the provider's
// OTP route
func (c *Client) SendOTPSMS(ctx context.Context, mobileNo, code string) error {
	params := url.Values{}
	params.Set("authorization", c.cfg.Key)
	params.Set("route", "otp")
	params.Set("variables_values", code)
	params.Set("numbers", mobileNo)

	reqURL := c.cfg.BaseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build SMS request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return apperrors.GatewayUnreachable(err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error("SMS provider rejected OTP delivery",
			logger.Int("status", resp.StatusCode),
			logger.String("body", string(body)))
		return fmt.Errorf("SMS provider returned status %d", resp.StatusCode)
	}

	logger.Debug("SMS OTP delivered", logger.String("mobile_no", mobileNo))
	return nil
}
