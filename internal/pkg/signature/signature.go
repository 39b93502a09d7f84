// Package signature validates payment-gateway callback signatures.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Sign computes the hex-encoded HMAC-SHA256 of orderID|paymentID under the
// shared secret. This is the payload format payment gateways sign when
// confirming a captured order.
func Sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether the supplied signature matches the expected
// HMAC for the order/payment pair. The comparison is constant-time.
func Verify(orderID, paymentID, sig, secret string) bool {
	expected := Sign(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(sig))
}
