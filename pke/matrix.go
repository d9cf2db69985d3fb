package pke

import (
	"github.com/nthroot/mlkem/internal/fips202"
	"github.com/nthroot/mlkem/ring"
)

// matrix is a k x k array of NTT-domain polynomials: the expansion of the
// public seed rho into the module-LWE matrix A (§4.6, §4.7).
type matrix [][]*ring.NTTPoly

// sampleMatrix expands rho into the k x k matrix A via SampleNTT, entry
// (i, j) drawn from XOF(rho, j, i) — the column-then-row domain-separator
// order FIPS 203 fixes (§4.6 Algorithm 13 step 2). KeyGen dots row i of A
// against the secret to form t; Encrypt dots column i (i.e. the
// transpose) against the ephemeral vector to form u, reusing this same
// matrix for both directions.
func sampleMatrix(rho []byte, k int) matrix {
	a := make(matrix, k)
	for i := range a {
		a[i] = make([]*ring.NTTPoly, k)
		for j := range a[i] {
			a[i][j] = ring.SampleNTT(fips202.XOF(rho, byte(j), byte(i)))
		}
	}
	return a
}

// rowDot returns the inner product of row i of a with v.
func (a matrix) rowDot(i int, v ring.NTTVector) *ring.NTTPoly {
	acc := ring.NewNTTPoly()
	for j := range v {
		acc = acc.Add(ring.MultiplyNTTs(a[i][j], v[j]))
	}
	return acc
}

// colDot returns the inner product of column i of a (i.e. row i of a^T)
// with v.
func (a matrix) colDot(i int, v ring.NTTVector) *ring.NTTPoly {
	acc := ring.NewNTTPoly()
	for j := range v {
		acc = acc.Add(ring.MultiplyNTTs(a[j][i], v[j]))
	}
	return acc
}
