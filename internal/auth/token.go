package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const codeMax = 1000000

// GenerateCode returns a random 6-digit numeric confirmation code. The
// generator makes no uniqueness guarantee; the token store's unique index
// is the collision backstop.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
