package sms

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adesai/billbridge/internal/pkg/apperrors"
	"github.com/adesai/billbridge/internal/pkg/models"
)

func TestSendOTPSMS_Success(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"authorization":    q.Get("authorization"),
			"route":            q.Get("route"),
			"variables_values": q.Get("variables_values"),
			"numbers":          q.Get("numbers"),
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(models.SMSConfig{
		Key:     "sms-api-key",
		BaseURL: server.URL,
	})

	err := client.SendOTPSMS(context.Background(), "9876543210", "482913")

	assert.NoError(t, err)
	assert.Equal(t, "sms-api-key", gotQuery["authorization"])
	assert.Equal(t, "otp", gotQuery["route"])
	assert.Equal(t, "482913", gotQuery["variables_values"])
	assert.Equal(t, "9876543210", gotQuery["numbers"])
}

func TestSendOTPSMS_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(models.SMSConfig{Key: "sms-api-key", BaseURL: server.URL})

	err := client.SendOTPSMS(context.Background(), "9876543210", "482913")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestSendOTPSMS_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(models.SMSConfig{Key: "sms-api-key", BaseURL: server.URL})

	err := client.SendOTPSMS(context.Background(), "9876543210", "482913")

	assert.True(t, errors.Is(err, apperrors.ErrGatewayUnreachable))
}
