package provider

import (
	"crypto/rand"
	"math/big"
)

// SafeRand draws from crypto/rand so concurrent booking requests never
// share PRNG state.
type SafeRand struct{}

func NewSafeRand() *SafeRand {
	return &SafeRand{}
}

func (s *SafeRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	max := big.NewInt(int64(n))
	value, err := rand.Int(rand.Reader, max)
	if err != nil {
		return 0
	}
	return int(value.Int64())
}
