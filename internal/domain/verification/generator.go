package verification

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// CodeGenerator produces one-time passcodes.
type CodeGenerator interface {
	Generate() (string, error)
}

// RandomCodeGenerator draws uniformly random 6-digit codes from
// crypto/rand. Codes never have a leading zero, matching the
// 100000-999999 range callers expect.
type RandomCodeGenerator struct{}

func NewRandomCodeGenerator() *RandomCodeGenerator {
	return &RandomCodeGenerator{}
}

func (g *RandomCodeGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate otp code: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}
