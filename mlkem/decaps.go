package mlkem

import (
	"crypto/subtle"

	"github.com/nthroot/mlkem/internal/fips202"
	"github.com/nthroot/mlkem/pke"
)

// Decapsulate runs ML-KEM.Decaps (Algorithm 21): recover the shared secret
// from ciphertext under dk, applying implicit rejection (FO transform) if
// the ciphertext does not re-encrypt to itself.
func (s *Scheme) Decapsulate(dk *DecapsulationKey, ciphertext []byte) ([32]byte, error) {
	if dk.params != s.params {
		return [32]byte{}, ErrInvalidParameter
	}
	if len(ciphertext) != s.params.CiphertextSize() {
		return [32]byte{}, ErrMalformedInput
	}
	return decapsInternal(s.params, dk.bytes, ciphertext), nil
}

// decapsInternal runs ML-KEM.Decaps_internal (Algorithm 18): decrypt the
// ciphertext, re-derive the candidate shared secret and re-encrypt under
// the same coins, and return the candidate secret only if the
// re-encryption matches the input ciphertext byte for byte; otherwise
// return a pseudorandom value derived from z so that rejection is
// indistinguishable from acceptance to a network attacker.
func decapsInternal(params Parameters, dk, ciphertext []byte) [32]byte {
	k := params.k
	dkPKE := dk[:384*k]
	ekPKE := dk[384*k : 384*k+params.EncapsulationKeySize()]
	h := dk[384*k+params.EncapsulationKeySize() : 384*k+params.EncapsulationKeySize()+32]
	z := dk[384*k+params.EncapsulationKeySize()+32 : 384*k+params.EncapsulationKeySize()+64]

	pp := params.pkeParams()
	mPrime := pke.Decrypt(pp, dkPKE, ciphertext)

	kPrime, rPrime := fips202.G(append(append([]byte(nil), mPrime[:]...), h...))
	kBar := fips202.J(append(append([]byte(nil), z...), ciphertext...))

	cPrime := pke.Encrypt(pp, ekPKE, mPrime, rPrime)

	var out [32]byte
	ok := subtle.ConstantTimeCompare(ciphertext, cPrime)
	subtle.ConstantTimeCopy(ok, out[:], kPrime[:])
	subtle.ConstantTimeCopy(1-ok, out[:], kBar[:])
	return out
}
