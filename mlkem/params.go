// Package mlkem implements the ML-KEM key encapsulation mechanism (FIPS
// 203): key generation, encapsulation and decapsulation with implicit
// rejection, layered over the K-PKE public-key encryption scheme in
// package pke.
package mlkem

import "fmt"

// ParametersLiteral is the literal, unchecked representation of an ML-KEM
// parameter set, following the teacher's ParametersLiteral/Parameters split
// (core/rlwe/params.go): public fields for the three FIPS 203-fixed
// variants, checked once into an immutable Parameters at construction
// time so every downstream package works with validated values only.
type ParametersLiteral struct {
	Name string
	// K is the module rank: the dimension of the secret/error vectors and
	// of the public matrix A (k x k).
	K int
	// Eta1 is the noise parameter used for the secret and the first error
	// vector in K-PKE key generation and encryption.
	Eta1 int
	// Eta2 is the noise parameter used for the second error vector and the
	// ciphertext noise term in K-PKE encryption.
	Eta2 int
	// Du is the compression parameter for the ciphertext's u component.
	Du int
	// Dv is the compression parameter for the ciphertext's v component.
	Dv int
}

// Parameters is the checked, immutable form of a ParametersLiteral.
type Parameters struct {
	name string
	k    int
	eta1 int
	eta2 int
	du   int
	dv   int
}

// NewParametersFromLiteral validates lit and returns the checked
// Parameters, or an error describing which field is out of range.
func NewParametersFromLiteral(lit ParametersLiteral) (Parameters, error) {
	if lit.K < 2 || lit.K > 4 {
		return Parameters{}, fmt.Errorf("%w: k = %d is not a valid module rank", ErrInvalidParameter, lit.K)
	}
	if lit.Eta1 != 2 && lit.Eta1 != 3 {
		return Parameters{}, fmt.Errorf("%w: eta1 = %d is not 2 or 3", ErrInvalidParameter, lit.Eta1)
	}
	if lit.Eta2 != 2 {
		return Parameters{}, fmt.Errorf("%w: eta2 = %d is not 2", ErrInvalidParameter, lit.Eta2)
	}
	if lit.Du <= 0 || lit.Du >= 12 || lit.Dv <= 0 || lit.Dv >= 12 {
		return Parameters{}, fmt.Errorf("%w: du/dv out of range (du=%d, dv=%d)", ErrInvalidParameter, lit.Du, lit.Dv)
	}
	return Parameters{
		name: lit.Name,
		k:    lit.K,
		eta1: lit.Eta1,
		eta2: lit.Eta2,
		du:   lit.Du,
		dv:   lit.Dv,
	}, nil
}

// Name returns the variant's canonical name (e.g. "ML-KEM-768").
func (p Parameters) Name() string { return p.name }

// K returns the module rank.
func (p Parameters) K() int { return p.k }

// Eta1 returns the first noise parameter.
func (p Parameters) Eta1() int { return p.eta1 }

// Eta2 returns the second noise parameter.
func (p Parameters) Eta2() int { return p.eta2 }

// Dv returns the ciphertext v-component compression parameter.
func (p Parameters) Dv() int { return p.dv }

// Du returns the ciphertext u-component compression parameter.
func (p Parameters) Du() int { return p.du }

// EncapsulationKeySize returns the byte length of an ML-KEM encapsulation
// (public) key: k encoded degree-256 polynomials (12 bits each) plus the
// 32-byte seed rho.
func (p Parameters) EncapsulationKeySize() int { return 384*p.k + 32 }

// DecapsulationKeySize returns the byte length of an ML-KEM decapsulation
// (private) key: the encoded secret vector, the encapsulation key, its
// hash, and the 32-byte implicit-rejection value z.
func (p Parameters) DecapsulationKeySize() int {
	return 384*p.k + p.EncapsulationKeySize() + 32 + 32
}

// CiphertextSize returns the byte length of an ML-KEM ciphertext: the
// compressed u vector (k polynomials at Du bits) plus the compressed v
// polynomial (at Dv bits).
func (p Parameters) CiphertextSize() int {
	return 32*p.du*p.k + 32*p.dv
}

// SharedSecretSize is the fixed 32-byte shared secret length, identical
// across all three variants.
const SharedSecretSize = 32

// ML-KEM-512, ML-KEM-768 and ML-KEM-1024 are the three parameter sets
// FIPS 203 defines, in increasing order of security strength.
var (
	ML_KEM_512 = ParametersLiteral{
		Name: "ML-KEM-512",
		K:    2, Eta1: 3, Eta2: 2, Du: 10, Dv: 4,
	}
	ML_KEM_768 = ParametersLiteral{
		Name: "ML-KEM-768",
		K:    3, Eta1: 2, Eta2: 2, Du: 10, Dv: 4,
	}
	ML_KEM_1024 = ParametersLiteral{
		Name: "ML-KEM-1024",
		K:    4, Eta1: 2, Eta2: 2, Du: 11, Dv: 5,
	}
)
