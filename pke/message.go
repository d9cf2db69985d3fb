package pke

import "github.com/nthroot/mlkem/ring"

// messageToPoly expands a 32-byte message into a polynomial with
// coefficients in {0, (q+1)/2}: each message bit becomes one coefficient,
// decompressed from 1 bit (§4.6, K-PKE.Encrypt).
func messageToPoly(m [32]byte) *ring.Poly {
	return ring.DecompressPoly(ring.ByteDecode(m[:], 1), 1)
}

// polyToMessage compresses a polynomial back to a 32-byte message, the
// inverse of messageToPoly (§4.6, K-PKE.Decrypt).
func polyToMessage(p *ring.Poly) [32]byte {
	var m [32]byte
	copy(m[:], ring.ByteEncode(ring.CompressPoly(p, 1), 1))
	return m
}
