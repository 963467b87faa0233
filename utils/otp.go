package utils

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// OTPTTL is how long a code stays valid. Expiry is enforced by the
// Redis TTL deleting the key; absence of the key means "expired".
const OTPTTL = 120 * time.Second

const otpLength = 6

// GenerateNumericOTP generates a secure random numeric OTP of the given length.
func GenerateNumericOTP(length int) (string, error) {
	const digits = "0123456789"
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		code[i] = digits[n.Int64()]
	}
	return string(code), nil
}

// HashOTP bcrypt-hashes a plaintext code for storage.
func HashOTP(code string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash OTP: %w", err)
	}
	return string(hash), nil
}

// CheckOTP compares a stored bcrypt hash against a provided plaintext code.
func CheckOTP(hash, code string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}

func otpKey(role, email string) string {
	return fmt.Sprintf("otp:%s:%s", role, email)
}

// InitiateOTP generates a code, stores its bcrypt hash in Redis with the
// standard TTL, and returns the plaintext for delivery.
func InitiateOTP(role, email string) (string, error) {
	code, err := GenerateNumericOTP(otpLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	hash, err := HashOTP(code)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	client := GetOTPCacheClient()
	if err := client.Set(ctx, otpKey(role, email), hash, OTPTTL).Err(); err != nil {
		GetLogger().Error("Failed to cache OTP", zap.Error(err))
		return "", fmt.Errorf("failed to store OTP")
	}
	return code, nil
}

// VerifyOTPRecord checks a provided code against the stored hash. A missing
// key reports "expired", a hash mismatch reports "invalid"; the two are
// distinct error kinds so callers never have to compare message text.
func VerifyOTPRecord(role, email, providedCode string) error {
	ctx := context.Background()
	client := GetOTPCacheClient()

	key := otpKey(role, email)
	storedHash, err := client.Get(ctx, key).Result()
	if verr := evaluateOTPLookup(storedHash, err, providedCode); verr != nil {
		return verr
	}

	// Delete the OTP after successful verification.
	if err := client.Del(ctx, key).Err(); err != nil {
		GetLogger().Error("Failed to delete OTP after verification", zap.Error(err))
	}
	return nil
}

// evaluateOTPLookup maps the store lookup onto the caller-facing error
// kinds: a missing key (TTL fired) is expired, a hash mismatch is
// invalid. The two must stay distinct kinds.
func evaluateOTPLookup(storedHash string, lookupErr error, providedCode string) error {
	if lookupErr != nil {
		if lookupErr == redis.Nil {
			return NewAppError(KindExpired, "OTP expired")
		}
		return WrapAppError(KindInternal, "failed to retrieve OTP", lookupErr)
	}
	if !CheckOTP(storedHash, providedCode) {
		return NewAppError(KindInvalid, "invalid OTP")
	}
	return nil
}
