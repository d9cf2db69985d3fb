// Package pke implements K-PKE, the IND-CPA-secure public-key encryption
// scheme that ML-KEM wraps with implicit rejection to reach IND-CCA2
// security (§4.6). K-PKE never touches randomness itself: every call site
// receives its seed or coins from the caller, so ML-KEM's GenerateKeyPair
// and Encapsulate are the only places that read entropy.
package pke

// Params is the subset of an ML-KEM parameter set K-PKE needs: the module
// rank and the two noise and two compression parameters. It is a plain
// struct rather than an import of package mlkem's Parameters to keep pke
// free of a dependency on its own caller.
type Params struct {
	K    int
	Eta1 int
	Eta2 int
	Du   int
	Dv   int
}

// EncryptionKeySize is the encoded size of an ekPKE: k encoded polynomials
// plus the 32-byte seed rho.
func (p Params) EncryptionKeySize() int { return 384*p.K + 32 }

// DecryptionKeySize is the encoded size of a dkPKE: k encoded polynomials.
func (p Params) DecryptionKeySize() int { return 384 * p.K }

// CiphertextSize is the encoded size of a K-PKE ciphertext: the compressed
// u vector plus the compressed v polynomial.
func (p Params) CiphertextSize() int { return 32*p.Du*p.K + 32*p.Dv }
