package service

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// cryptoSource draws from the operating system CSPRNG. It holds no mutable
// state, so the shared instance is safe for concurrent use.
type cryptoSource struct {
	reader io.Reader
}

// secureSource is the process-wide random source used by every generator.
var secureSource randomSource = &cryptoSource{reader: rand.Reader}

// Intn returns a uniform integer in [0, n). n must be positive.
func (s *cryptoSource) Intn(n int) (int, error) {
	if n <= 0 {
		panic(fmt.Sprintf("passgen: Intn called with non-positive bound %d", n))
	}
	v, err := rand.Int(s.reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to read secure random number: %w", err)
	}
	return int(v.Int64()), nil
}
