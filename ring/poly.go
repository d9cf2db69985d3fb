package ring

import "fmt"

// Poly holds the N coefficients of a ring element in the standard
// (coefficient) domain, each reduced into [0, Q).
type Poly struct {
	Coeffs [N]uint16
}

// NTTPoly holds the N coefficients of a ring element in the NTT
// (evaluation) domain. It is a distinct type from Poly so that passing a
// standard-domain polynomial where an NTT-domain one is expected — or vice
// versa — is a compile error rather than a silently wrong ciphertext; the
// teacher tracks this distinction only by convention (a bare [][]uint64
// Poly.Coeffs slice used in both domains), which the Design Notes call out
// as a risk worth closing in a systems-language rewrite.
type NTTPoly struct {
	Coeffs [N]uint16
}

// NewPoly returns a zero polynomial.
func NewPoly() *Poly { return &Poly{} }

// NewNTTPoly returns a zero NTT-domain polynomial.
func NewNTTPoly() *NTTPoly { return &NTTPoly{} }

// Zero sets all coefficients to zero.
func (p *Poly) Zero() { *p = Poly{} }

// CopyNew returns a deep copy of p.
func (p *Poly) CopyNew() *Poly {
	q := *p
	return &q
}

// Equal reports whether p and other have identical coefficients.
func (p *Poly) Equal(other *Poly) bool {
	if p == other {
		return true
	}
	return p.Coeffs == other.Coeffs
}

// Add returns p+q, coefficient-wise mod Q.
func Add(p, q *Poly) *Poly {
	r := new(Poly)
	for i := range r.Coeffs {
		r.Coeffs[i] = AddMod(p.Coeffs[i], q.Coeffs[i])
	}
	return r
}

// Sub returns p-q, coefficient-wise mod Q.
func Sub(p, q *Poly) *Poly {
	r := new(Poly)
	for i := range r.Coeffs {
		r.Coeffs[i] = SubMod(p.Coeffs[i], q.Coeffs[i])
	}
	return r
}

// Add returns p+q in the NTT domain, coefficient-wise mod Q.
func (p *NTTPoly) Add(q *NTTPoly) *NTTPoly {
	r := new(NTTPoly)
	for i := range r.Coeffs {
		r.Coeffs[i] = AddMod(p.Coeffs[i], q.Coeffs[i])
	}
	return r
}

// Sub returns p-q in the NTT domain, coefficient-wise mod Q.
func (p *NTTPoly) Sub(q *NTTPoly) *NTTPoly {
	r := new(NTTPoly)
	for i := range r.Coeffs {
		r.Coeffs[i] = SubMod(p.Coeffs[i], q.Coeffs[i])
	}
	return r
}

// CopyNew returns a deep copy of p.
func (p *NTTPoly) CopyNew() *NTTPoly {
	q := *p
	return &q
}

// String renders the first few coefficients, for debugging and test
// failure output only.
func (p *Poly) String() string {
	return fmt.Sprintf("Poly%v...", p.Coeffs[:8])
}

// Vector is a length-k sequence of standard-domain polynomials: the
// representation of s, e, y, e1 and u in K-PKE (§3, "Polynomial
// vector").
type Vector []*Poly

// NTTVector is a length-k sequence of NTT-domain polynomials: the
// representation of ŝ, ê, ŷ, t̂ and of the rows of the matrix Â.
type NTTVector []*NTTPoly

// NewVector returns a length-k vector of zero polynomials.
func NewVector(k int) Vector {
	v := make(Vector, k)
	for i := range v {
		v[i] = NewPoly()
	}
	return v
}

// NewNTTVector returns a length-k vector of zero NTT-domain polynomials.
func NewNTTVector(k int) NTTVector {
	v := make(NTTVector, k)
	for i := range v {
		v[i] = NewNTTPoly()
	}
	return v
}

// NTT transforms every polynomial of v into the NTT domain.
func (v Vector) NTT() NTTVector {
	r := make(NTTVector, len(v))
	for i, p := range v {
		r[i] = NTT(p)
	}
	return r
}

// InvNTT transforms every polynomial of v back to the standard domain.
func (v NTTVector) InvNTT() Vector {
	r := make(Vector, len(v))
	for i, p := range v {
		r[i] = InvNTT(p)
	}
	return r
}

// Add returns the coefficient-wise sum of two equal-length vectors.
func (v Vector) Add(w Vector) Vector {
	r := make(Vector, len(v))
	for i := range v {
		r[i] = Add(v[i], w[i])
	}
	return r
}

// Dot returns the inner product of two equal-length NTT-domain vectors,
// accumulated via MultiplyNTTs (§4.3): sum_i v[i]*w[i].
func (v NTTVector) Dot(w NTTVector) *NTTPoly {
	acc := NewNTTPoly()
	for i := range v {
		acc = acc.Add(MultiplyNTTs(v[i], w[i]))
	}
	return acc
}
