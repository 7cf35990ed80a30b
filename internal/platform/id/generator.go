package id

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"sync/atomic"
)

const maxLength = 64

// Generator creates opaque request identifiers.
type Generator interface {
	NewID() string
}

// RandomGenerator returns 24 hex characters of crypto randomness. If the
// entropy source fails it falls back to a process-local sequence.
type RandomGenerator struct {
	seq atomic.Uint64
}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() string {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "seq-" + strconv.FormatUint(g.seq.Add(1), 10)
	}
	return hex.EncodeToString(buf)
}

// Valid reports whether an inbound id is safe to echo into headers and logs.
func Valid(raw string) bool {
	if raw == "" || len(raw) > maxLength {
		return false
	}
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return false
		}
	}
	return true
}
