package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/adesai/billbridge/internal/pkg/constants"
	"github.com/adesai/billbridge/internal/pkg/models"
)

// ttlGrace keeps the Redis key alive slightly past the authoritative
// expires-at instant so an expired challenge is reported as expired rather
// than not found.
const ttlGrace = 30 * time.Second

// verifyScript atomically resolves an OTP challenge. The expires-at instant
// stored on the hash is authoritative; the key TTL is hygiene only. A
// verified or expired challenge is deleted, a mismatched one survives so the
// caller can retry with the remaining attempts.
const verifyScript = `
local code = redis.call('HGET', KEYS[1], 'code')
if not code then
  return 'not_found'
end
local expires = tonumber(redis.call('HGET', KEYS[1], 'expires_at'))
if tonumber(ARGV[2]) > expires then
  redis.call('DEL', KEYS[1])
  return 'expired'
end
if code == ARGV[1] then
  redis.call('DEL', KEYS[1])
  return 'verified'
end
return 'mismatch'
`

// StoreOTP stores an OTP challenge, replacing any live challenge for the
// same identity
func (r *AuthRepo) StoreOTP(ctx context.Context, otp *models.OTP) error {
	key := fmt.Sprintf(constants.KeyOTPChallenge, otp.Identity)

	err := r.redisClient.HSet(ctx, key,
		"code", otp.Code,
		"expires_at", otp.ExpiresAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to store OTP in Redis: %w", err)
	}

	// A non-positive EXPIRE deletes the key, which would turn an
	// already-expired challenge into NotFound instead of Expired. The
	// stored expires-at stays authoritative; the key just has to outlive it.
	ttl := time.Until(otp.ExpiresAt) + ttlGrace
	if ttl < ttlGrace {
		ttl = ttlGrace
	}
	if err := r.redisClient.Expire(ctx, key, ttl); err != nil {
		return fmt.Errorf("failed to set OTP expiry: %w", err)
	}

	return nil
}

// VerifyOTP resolves a challenge in a single atomic round trip
func (r *AuthRepo) VerifyOTP(ctx context.Context, identity, code string) (models.VerifyOutcome, error) {
	key := fmt.Sprintf(constants.KeyOTPChallenge, identity)

	res, err := r.redisClient.Eval(ctx, verifyScript, []string{key}, code, time.Now().Unix())
	if err != nil {
		return models.OTPNotFound, fmt.Errorf("failed to verify OTP in Redis: %w", err)
	}

	switch res {
	case "verified":
		return models.OTPVerified, nil
	case "expired":
		return models.OTPExpired, nil
	case "mismatch":
		return models.OTPMismatch, nil
	default:
		return models.OTPNotFound, nil
	}
}
