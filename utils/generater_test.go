package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 50; i++ {
		otp := GenerateOTP()
		assert.Len(t, otp, 4)
		for _, r := range otp {
			assert.True(t, r >= '0' && r <= '9', "OTP must be digits only, got %q", otp)
		}
	}
}
