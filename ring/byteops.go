package ring

// BytesToBits unpacks b into a little-endian bit array: bit i of the
// output is bit (i mod 8) of byte b[i/8] (§4.1).
func BytesToBits(b []byte) []byte {
	bits := make([]byte, 8*len(b))
	for i, bb := range b {
		for j := 0; j < 8; j++ {
			bits[8*i+j] = (bb >> j) & 1
		}
	}
	return bits
}

// BitsToBytes packs a little-endian bit array (each entry 0 or 1) into
// bytes, inverse of BytesToBits. len(bits) must be a multiple of 8.
func BitsToBytes(bits []byte) []byte {
	b := make([]byte, len(bits)/8)
	for i := range b {
		var v byte
		for j := 0; j < 8; j++ {
			v |= bits[8*i+j] << j
		}
		b[i] = v
	}
	return b
}

// ByteEncode encodes a polynomial whose coefficients are known to lie in
// [0, 2^d) into 32*d bytes, d bits per coefficient packed little-endian
// (§4.1). Callers choose d = 12 for uncompressed encodings and d < 12 for
// compressed ones.
func ByteEncode(p *Poly, d int) []byte {
	bits := make([]byte, d*N)
	for i, c := range p.Coeffs {
		for j := 0; j < d; j++ {
			bits[i*d+j] = byte((c >> uint(j)) & 1)
		}
	}
	return BitsToBytes(bits)
}

// ByteDecode decodes 32*d bytes into a polynomial with d-bit coefficients,
// the inverse of ByteEncode. For d = 12 coefficients are reduced mod q
// (FIPS 203 requires this for the public-key encoding path); for d < 12
// every value already fits in [0, 2^d) and no reduction is needed.
func ByteDecode(b []byte, d int) *Poly {
	bits := BytesToBits(b)
	p := new(Poly)
	for i := range p.Coeffs {
		var c uint32
		for j := 0; j < d; j++ {
			c |= uint32(bits[i*d+j]) << uint(j)
		}
		if d == 12 {
			c %= Q
		}
		p.Coeffs[i] = uint16(c)
	}
	return p
}
