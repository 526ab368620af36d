package code

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Numeric generates a random numeric code of the given number of digits,
// zero-padded, e.g. Numeric(6) -> "042917".
func Numeric(digits int) (string, error) {
	max := big.NewInt(1)
	for i := 0; i < digits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	return fmt.Sprintf("%0*d", digits, n), nil
}
