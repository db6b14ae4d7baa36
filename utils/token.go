package utils

import (
	"crypto/rand"
	"math/big"
)

const codeDigits = "0123456789"

// GenerateRandomCode returns an n-digit numeric code for password resets.
func GenerateRandomCode(n int) string {
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeDigits))))
		if err != nil {
			out[i] = '0'
			continue
		}
		out[i] = codeDigits[idx.Int64()]
	}
	return string(out)
}
