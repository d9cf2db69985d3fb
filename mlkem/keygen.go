package mlkem

import (
	"github.com/nthroot/mlkem/internal/fips202"
	"github.com/nthroot/mlkem/pke"
)

func (p Parameters) pkeParams() pke.Params {
	return pke.Params{K: p.k, Eta1: p.eta1, Eta2: p.eta2, Du: p.du, Dv: p.dv}
}

// GenerateKeyPair runs ML-KEM.KeyGen (Algorithm 19): draw fresh randomness
// from the scheme's entropy source and derive an encapsulation/
// decapsulation key pair from it.
func (s *Scheme) GenerateKeyPair() (*EncapsulationKey, *DecapsulationKey, error) {
	var d, z [32]byte
	if err := s.readEntropy(d[:]); err != nil {
		return nil, nil, err
	}
	if err := s.readEntropy(z[:]); err != nil {
		return nil, nil, err
	}
	ekBytes, dkBytes := keyGenInternal(s.params, d, z)
	ek := &EncapsulationKey{params: s.params, bytes: ekBytes}
	dk := &DecapsulationKey{params: s.params, bytes: dkBytes}
	return ek, dk, nil
}

// keyGenInternal runs ML-KEM.KeyGen_internal (Algorithm 16): layer the
// encapsulation-key hash and implicit-rejection value z around a K-PKE key
// pair derived from d.
func keyGenInternal(params Parameters, d, z [32]byte) (ekBytes, dkBytes []byte) {
	ekPKE, dkPKE := pke.KeyGen(params.pkeParams(), d)

	h := fips202.H(ekPKE)

	ekBytes = ekPKE
	dkBytes = make([]byte, 0, params.DecapsulationKeySize())
	dkBytes = append(dkBytes, dkPKE...)
	dkBytes = append(dkBytes, ekPKE...)
	dkBytes = append(dkBytes, h[:]...)
	dkBytes = append(dkBytes, z[:]...)
	return ekBytes, dkBytes
}
