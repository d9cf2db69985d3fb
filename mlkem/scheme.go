package mlkem

import (
	"crypto/rand"
	"io"
)

// Scheme is a structure that stores a checked Parameters value and the
// entropy source key generation and encapsulation draw from, mirroring the
// teacher's KeyGenerator/Encryptor pattern of bundling parameters with a
// PRNG (core/rlwe/keygenerator.go, core/rlwe/encryptor.go). Scheme is safe
// for concurrent use: it holds no mutable state of its own, only an
// io.Reader, and crypto/rand.Reader is itself safe for concurrent reads.
type Scheme struct {
	params Parameters
	random io.Reader
}

// NewScheme returns a Scheme for the given parameter set, reading entropy
// from crypto/rand.Reader.
func NewScheme(lit ParametersLiteral) (*Scheme, error) {
	return NewSchemeWithRandom(lit, rand.Reader)
}

// NewSchemeWithRandom returns a Scheme that reads entropy from random
// instead of crypto/rand.Reader. Production callers should use NewScheme;
// this constructor exists for deterministic testing against known-answer
// vectors.
func NewSchemeWithRandom(lit ParametersLiteral, random io.Reader) (*Scheme, error) {
	params, err := NewParametersFromLiteral(lit)
	if err != nil {
		return nil, err
	}
	return &Scheme{params: params, random: random}, nil
}

// Parameters returns the scheme's checked parameter set.
func (s *Scheme) Parameters() Parameters { return s.params }

func (s *Scheme) readEntropy(buf []byte) error {
	if _, err := io.ReadFull(s.random, buf); err != nil {
		return ErrEntropyFailure
	}
	return nil
}
