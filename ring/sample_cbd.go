package ring

// SamplePolyCBD samples a polynomial from the centered binomial
// distribution CBD_η given 64·η bytes of PRF output (§4.4,
// "SamplePolyCBD_η"): each coefficient is the difference of two η-bit
// Hamming weights, which concentrates mass near zero and is cheap to
// sample without rejection.
func SamplePolyCBD(b []byte, eta int) *Poly {
	bits := BytesToBits(b)
	p := new(Poly)
	for i := 0; i < N; i++ {
		var x, y uint16
		base := 2 * i * eta
		for j := 0; j < eta; j++ {
			x += uint16(bits[base+j])
		}
		for j := 0; j < eta; j++ {
			y += uint16(bits[base+eta+j])
		}
		p.Coeffs[i] = SubMod(x, y)
	}
	return p
}
