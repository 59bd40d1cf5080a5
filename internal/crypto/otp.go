package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// otpRange spans the 6-digit codes 100000..999999.
const (
	otpMin   = 100000
	otpRange = 900000
)

// GenerateOTP returns a 6-digit one-time code drawn uniformly from
// [100000, 999999] using the platform CSPRNG.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpRange))
	if err != nil {
		return "", fmt.Errorf("generating otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+otpMin), nil
}
