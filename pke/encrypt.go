package pke

import (
	"github.com/nthroot/mlkem/internal/fips202"
	"github.com/nthroot/mlkem/ring"
)

// Encrypt runs K-PKE.Encrypt (Algorithm 14): deterministically encrypt the
// 32-byte message m under ekPKE using the 32 bytes of randomness coins as
// the sole source of entropy, so the same (ekPKE, m, coins) always yields
// the same ciphertext — the property ML-KEM's re-encryption check in
// decapsulation depends on.
func Encrypt(params Params, ekPKE []byte, m [32]byte, coins [32]byte) []byte {
	tHat := decodeNTTVector(ekPKE[:384*params.K], params.K)
	rho := ekPKE[384*params.K : 384*params.K+32]

	a := sampleMatrix(rho, params.K)

	var n byte
	y := ring.NewVector(params.K)
	for i := range y {
		y[i] = ring.SamplePolyCBD(fips202.PRF(params.Eta1, coins[:], n), params.Eta1)
		n++
	}
	e1 := ring.NewVector(params.K)
	for i := range e1 {
		e1[i] = ring.SamplePolyCBD(fips202.PRF(params.Eta2, coins[:], n), params.Eta2)
		n++
	}
	e2 := ring.SamplePolyCBD(fips202.PRF(params.Eta2, coins[:], n), params.Eta2)

	yHat := y.NTT()

	u := make(ring.Vector, params.K)
	for i := range u {
		u[i] = ring.InvNTT(a.colDot(i, yHat).Add(ring.NTT(e1[i])))
	}

	mu := messageToPoly(m)
	vHat := tHat.Dot(yHat).Add(ring.NTT(e2))
	v := ring.Add(ring.InvNTT(vHat), mu)

	c1 := encodeCompressedVector(u, params.Du)
	c2 := ring.ByteEncode(ring.CompressPoly(v, params.Dv), params.Dv)
	return append(c1, c2...)
}
