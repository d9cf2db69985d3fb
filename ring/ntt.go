package ring

// NTT computes the forward number theoretic transform of p, the iterative
// Cooley-Tukey butterfly network FIPS 203 specifies: block size `length`
// halves each round (128, 64, ..., 2) and the zeta table is consumed in
// table order, one entry per block. The structure — precomputed zeta
// table, in-place butterfly passes over halving block sizes — follows the
// teacher's own NTT/InvNTT (ring/ntt.go); what changes is the fixed,
// single modulus and the exact zeta schedule FIPS 203 mandates in place of
// the teacher's per-Ring Montgomery-form Psi table.
func NTT(p *Poly) *NTTPoly {
	f := p.Coeffs

	k := 1
	for length := 128; length >= 2; length >>= 1 {
		for start := 0; start < N; start += 2 * length {
			zeta := zetaNTT[k]
			k++
			for j := start; j < start+length; j++ {
				t := MulMod(zeta, f[j+length])
				f[j+length] = SubMod(f[j], t)
				f[j] = AddMod(f[j], t)
			}
		}
	}

	return &NTTPoly{Coeffs: f}
}

// InvNTT computes the inverse number theoretic transform of p, the same
// butterfly schedule run in reverse (block size doubles, zeta table
// consumed in reverse order), followed by the 128^-1 mod q scaling FIPS
// 203 applies once at the end.
func InvNTT(p *NTTPoly) *Poly {
	f := p.Coeffs

	k := 127
	for length := 2; length <= 128; length <<= 1 {
		for start := 0; start < N; start += 2 * length {
			zeta := zetaNTT[k]
			k--
			for j := start; j < start+length; j++ {
				t := f[j]
				f[j] = AddMod(t, f[j+length])
				f[j+length] = MulMod(zeta, SubMod(f[j+length], t))
			}
		}
	}

	for i := range f {
		f[i] = MulMod(f[i], ninv128)
	}

	return &Poly{Coeffs: f}
}

// MultiplyNTTs computes the pointwise product of two NTT-domain
// polynomials, i.e. the NTT-domain representation of their ring product,
// via 128 independent degree-1 extension-field multiplications (§4.3).
func MultiplyNTTs(a, b *NTTPoly) *NTTPoly {
	r := new(NTTPoly)
	for i := 0; i < 128; i++ {
		a0, a1 := a.Coeffs[2*i], a.Coeffs[2*i+1]
		b0, b1 := b.Coeffs[2*i], b.Coeffs[2*i+1]
		c0, c1 := BaseCaseMultiply(a0, a1, b0, b1, zetaMul[i])
		r.Coeffs[2*i] = c0
		r.Coeffs[2*i+1] = c1
	}
	return r
}

// BaseCaseMultiply multiplies two degree-1 polynomials a0+a1X and b0+b1X in
// the quadratic extension Z_q[X]/(X^2-γ), returning the coefficients
// (c0, c1) of c0+c1X = (a0+a1X)(b0+b1X) mod (X^2-γ) (§4.3).
func BaseCaseMultiply(a0, a1, b0, b1, gamma uint16) (c0, c1 uint16) {
	c0 = AddMod(MulMod(a0, b0), MulMod(MulMod(a1, b1), gamma))
	c1 = AddMod(MulMod(a0, b1), MulMod(a1, b0))
	return
}
