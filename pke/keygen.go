package pke

import (
	"github.com/nthroot/mlkem/internal/fips202"
	"github.com/nthroot/mlkem/ring"
)

// KeyGen runs K-PKE.KeyGen (Algorithm 13): expand a 32-byte seed d,
// domain-separated by the module rank k (so the same d never collides
// across ML-KEM-512/768/1024), into a public matrix A, a secret vector s
// and an error vector e, and return the encoded encryption key
// (t_hat || rho) and decryption key (s_hat).
func KeyGen(params Params, d [32]byte) (ekPKE, dkPKE []byte) {
	rho, sigma := fips202.G(append(append([]byte(nil), d[:]...), byte(params.K)))

	var n byte
	s := ring.NewVector(params.K)
	for i := range s {
		s[i] = ring.SamplePolyCBD(fips202.PRF(params.Eta1, sigma[:], n), params.Eta1)
		n++
	}
	e := ring.NewVector(params.K)
	for i := range e {
		e[i] = ring.SamplePolyCBD(fips202.PRF(params.Eta1, sigma[:], n), params.Eta1)
		n++
	}

	a := sampleMatrix(rho[:], params.K)
	sHat := s.NTT()
	eHat := e.NTT()

	tHat := make(ring.NTTVector, params.K)
	for i := range tHat {
		tHat[i] = a.rowDot(i, sHat).Add(eHat[i])
	}

	ekPKE = append(encodeNTTVector(tHat), rho[:]...)
	dkPKE = encodeNTTVector(sHat)
	return ekPKE, dkPKE
}
