// Package provider implements the upstream aggregator client. The provider
// exposes two incompatible surfaces: a JSON recharge API and an XML-over-
// query-string BBPS API. The client reproduces both wire contracts exactly,
// decodes whatever comes back into a generic tree, and leaves success/failure
// classification entirely to the normalizer.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"time"

	"github.com/adesai/billbridge/internal/pkg/apperrors"
	"github.com/adesai/billbridge/internal/pkg/constants"
	"github.com/adesai/billbridge/internal/pkg/logger"
	"github.com/adesai/billbridge/internal/pkg/models"
)

// RawResponse carries a decoded provider payload. Tree is nil when the body
// could not be parsed; Body is always the raw bytes for audit logging.
type RawResponse struct {
	Tree map[string]interface{}
	Body []byte
}

// Client talks to the upstream aggregator
type Client struct {
	cfg    models.ProviderConfig
	client *nethttp.Client
}

// NewClient creates a provider client with the configured per-call timeout
func NewClient(cfg models.ProviderConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		cfg:    cfg,
		client: &nethttp.Client{Timeout: timeout},
	}
}

// doJSON performs an authenticated request expecting a JSON body and decodes
// it into a generic tree. Transport failures surface as GatewayUnreachable;
// an unparsable 2xx body degrades to a raw passthrough response because the
// provider's format is not contractually stable.
func (c *Client) doJSON(ctx context.Context, method, url string, body []byte) (*RawResponse, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, apperrors.GatewayUnreachable(err)
	}
	req.Header.Set(constants.HeaderAuthKey, c.cfg.AuthKey)
	req.Header.Set(constants.HeaderAuthPass, c.cfg.AuthPass)
	req.Header.Set("Content-Type", "application/json")

	raw, status, err := c.send(req)
	if err != nil {
		return nil, err
	}

	var tree map[string]interface{}
	if err := json.Unmarshal(raw, &tree); err != nil {
		if status >= 400 {
			return nil, apperrors.GatewayUnreachable(err)
		}
		logger.Warn("Unparsable provider JSON response",
			logger.String("url", url),
			logger.Int("status", status))
		return &RawResponse{Body: raw}, nil
	}

	return &RawResponse{Tree: tree, Body: raw}, nil
}

// doXML performs a GET expecting an XML body
func (c *Client) doXML(ctx context.Context, url string) (*RawResponse, error) {
	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.GatewayUnreachable(err)
	}

	raw, status, err := c.send(req)
	if err != nil {
		return nil, err
	}

	tree, perr := parseXMLTree(raw)
	if perr != nil {
		if status >= 400 {
			return nil, apperrors.GatewayUnreachable(perr)
		}
		logger.Warn("Unparsable provider XML response",
			logger.String("url", url),
			logger.Int("status", status))
		return &RawResponse{Body: raw}, nil
	}

	return &RawResponse{Tree: tree, Body: raw}, nil
}

// send executes the request and drains the body. The raw payload of every
// provider exchange is logged for audit, success or not.
func (c *Client) send(req *nethttp.Request) ([]byte, int, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		logger.Error("Provider request failed",
			logger.String("method", req.Method),
			logger.String("url", req.URL.String()),
			logger.Err(err))
		return nil, 0, apperrors.GatewayUnreachable(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, apperrors.GatewayUnreachable(err)
	}

	logger.Debug("Provider response received",
		logger.String("url", req.URL.String()),
		logger.Int("status", resp.StatusCode),
		logger.String("body", string(raw)))

	return raw, resp.StatusCode, nil
}
