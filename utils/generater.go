package utils

import (
	"crypto/rand"
	"fmt"
	"time"
)

// OTPTTL is how long a one-time password stays valid.
const OTPTTL = 5 * time.Minute

func GenerateOTP() string {
	// Generate a 4-digit OTP
	var number [2]byte
	rand.Read(number[:])
	n := int(number[0])<<8 | int(number[1])
	return fmt.Sprintf("%04d", n%10000)
}
