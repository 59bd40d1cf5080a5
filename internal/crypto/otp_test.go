package crypto

import (
	"strconv"
	"testing"
)

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := GenerateOTP()
		if err != nil {
			t.Fatalf("GenerateOTP() unexpected error: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("GenerateOTP() length = %d, want 6: %q", len(code), code)
		}
		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("GenerateOTP() produced non-numeric code %q", code)
		}
		if n < otpMin || n > otpMin+otpRange-1 {
			t.Fatalf("GenerateOTP() = %d, outside [100000, 999999]", n)
		}
	}
}
