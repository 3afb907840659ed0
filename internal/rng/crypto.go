package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto is the Generator used for real shoes, backed by crypto/rand
type Crypto struct{}

// Intn returns a random number from 0 <= x < n
// It panics if the system source of randomness fails.
func (c Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
