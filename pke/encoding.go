package pke

import "github.com/nthroot/mlkem/ring"

// encodeNTTVector ByteEncode_12-encodes each entry of v in order,
// concatenating the results: the representation K-PKE uses for t_hat and
// s_hat in the encapsulation/decapsulation key (§4.6).
func encodeNTTVector(v ring.NTTVector) []byte {
	out := make([]byte, 0, 384*len(v))
	for _, p := range v {
		out = append(out, ring.ByteEncode(&ring.Poly{Coeffs: p.Coeffs}, 12)...)
	}
	return out
}

// decodeNTTVector is the inverse of encodeNTTVector.
func decodeNTTVector(b []byte, k int) ring.NTTVector {
	v := make(ring.NTTVector, k)
	for i := 0; i < k; i++ {
		p := ring.ByteDecode(b[384*i:384*(i+1)], 12)
		v[i] = &ring.NTTPoly{Coeffs: p.Coeffs}
	}
	return v
}

// encodeCompressedVector compresses every coefficient of each entry of v to
// d bits and ByteEncode_d-encodes the result, the representation used for
// the ciphertext's u component.
func encodeCompressedVector(v ring.Vector, d int) []byte {
	out := make([]byte, 0, 32*d*len(v))
	for _, p := range v {
		out = append(out, ring.ByteEncode(ring.CompressPoly(p, d), d)...)
	}
	return out
}

// decodeCompressedVector is the inverse of encodeCompressedVector.
func decodeCompressedVector(b []byte, k, d int) ring.Vector {
	v := make(ring.Vector, k)
	stride := 32 * d
	for i := 0; i < k; i++ {
		p := ring.ByteDecode(b[stride*i:stride*(i+1)], d)
		v[i] = ring.DecompressPoly(p, d)
	}
	return v
}
