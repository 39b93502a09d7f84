package auth

import "context"

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/adesai/billbridge/services/auth SMSGW

// SMSGW represents the SMS delivery gateway interface
type SMSGW interface {
	SendOTPSMS(ctx context.Context, mobileNo, code string) error
}
