package mlkem

import (
	"github.com/nthroot/mlkem/internal/fips202"
	"github.com/nthroot/mlkem/pke"
)

// Encapsulate runs ML-KEM.Encaps (Algorithm 20): draw fresh randomness
// from the scheme's entropy source, derive a shared secret and its
// ciphertext under ek.
func (s *Scheme) Encapsulate(ek *EncapsulationKey) (ciphertext []byte, sharedSecret [32]byte, err error) {
	if ek.params != s.params {
		return nil, sharedSecret, ErrInvalidParameter
	}
	var m [32]byte
	if err := s.readEntropy(m[:]); err != nil {
		return nil, sharedSecret, err
	}
	ciphertext, sharedSecret = encapsInternal(s.params, ek.bytes, m)
	return ciphertext, sharedSecret, nil
}

// encapsInternal runs ML-KEM.Encaps_internal (Algorithm 17): derive the
// shared secret and encryption coins from m and the encapsulation key's
// hash, then encrypt m under ek to produce the ciphertext.
func encapsInternal(params Parameters, ek []byte, m [32]byte) (ciphertext []byte, sharedSecret [32]byte) {
	h := fips202.H(ek)
	k, r := fips202.G(append(append([]byte(nil), m[:]...), h[:]...))
	ciphertext = pke.Encrypt(params.pkeParams(), ek, m, r)
	return ciphertext, k
}
