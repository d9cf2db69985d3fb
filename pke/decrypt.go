package pke

import "github.com/nthroot/mlkem/ring"

// Decrypt runs K-PKE.Decrypt (Algorithm 15): recover the 32-byte message
// from a ciphertext under dkPKE. It never fails — an invalid ciphertext
// simply decrypts to noise, which ML-KEM's outer re-encryption check
// catches.
func Decrypt(params Params, dkPKE, ciphertext []byte) [32]byte {
	uLen := 32 * params.Du * params.K
	u := decodeCompressedVector(ciphertext[:uLen], params.K, params.Du)
	v := ring.DecompressPoly(ring.ByteDecode(ciphertext[uLen:], params.Dv), params.Dv)

	sHat := decodeNTTVector(dkPKE, params.K)

	acc := ring.NewNTTPoly()
	for i := range u {
		acc = acc.Add(ring.MultiplyNTTs(sHat[i], ring.NTT(u[i])))
	}
	w := ring.Sub(v, ring.InvNTT(acc))

	return polyToMessage(w)
}
