// Package fips202 adapts golang.org/x/crypto/sha3 to the exact symmetric
// primitives FIPS 203 names: H, G, J, PRF_η and XOF (§4.5). ML-KEM never
// calls SHA-3 or SHAKE directly — every call site goes through one of these
// five functions, so the domain separation and output-length conventions
// FIPS 203 fixes live in one place instead of being re-derived at each
// call site.
package fips202

import (
	"golang.org/x/crypto/sha3"
)

// H is SHA3-256: a 32-byte hash used to derive the encapsulation-key hash
// stored in the decapsulation key and mixed into encapsulation.
func H(s []byte) [32]byte {
	return sha3.Sum256(s)
}

// G is SHA3-512, split into two 32-byte halves (a, b): used by K-PKE
// key generation to derive the seed pair (rho, sigma) and by ML-KEM
// encapsulation and decapsulation to derive the shared secret and the
// encryption coins.
func G(s []byte) (a, b [32]byte) {
	full := sha3.Sum512(s)
	copy(a[:], full[:32])
	copy(b[:], full[32:])
	return a, b
}

// J is SHAKE256 with a 32-byte output, used by ML-KEM decapsulation to
// derive the implicit-rejection shared secret.
func J(s []byte) [32]byte {
	var out [32]byte
	sha3.ShakeSum256(out[:], s)
	return out
}

// PRF evaluates the centered-binomial-distribution noise function PRF_η:
// SHAKE256 over s||b, squeezed to 64·η bytes. The caller feeds the result
// to SamplePolyCBD_η.
func PRF(eta int, s []byte, b byte) []byte {
	h := sha3.NewShake256()
	h.Write(s)
	h.Write([]byte{b})
	out := make([]byte, 64*eta)
	if _, err := h.Read(out); err != nil {
		panic("fips202: SHAKE256 squeeze failed: " + err.Error())
	}
	return out
}

// XOF returns a SHAKE128 instance absorbing ρ||i||j, the extendable output
// function SampleNTT squeezes incrementally during rejection sampling.
// sha3.ShakeHash implements io.Reader once writes are done, so callers
// squeeze it directly in the 3-byte blocks SampleNTT needs.
func XOF(rho []byte, i, j byte) sha3.ShakeHash {
	h := sha3.NewShake128()
	h.Write(rho)
	h.Write([]byte{i, j})
	return h
}
