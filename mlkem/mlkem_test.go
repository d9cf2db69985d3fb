package mlkem

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nthroot/mlkem/internal/kat"
)

func TestGenerateEncapsulateDecapsulateRoundTrip(t *testing.T) {
	for _, lit := range []ParametersLiteral{ML_KEM_512, ML_KEM_768, ML_KEM_1024} {
		t.Run(lit.Name, func(t *testing.T) {
			scheme, err := NewScheme(lit)
			require.NoError(t, err)

			ek, dk, err := scheme.GenerateKeyPair()
			require.NoError(t, err)
			require.Len(t, ek.Bytes(), scheme.Parameters().EncapsulationKeySize())
			require.Len(t, dk.Bytes(), scheme.Parameters().DecapsulationKeySize())

			ciphertext, secret, err := scheme.Encapsulate(ek)
			require.NoError(t, err)
			require.Len(t, ciphertext, scheme.Parameters().CiphertextSize())

			recovered, err := scheme.Decapsulate(dk, ciphertext)
			require.NoError(t, err)
			require.Equal(t, secret, recovered)
		})
	}
}

func TestDecapsulateRejectsTamperedCiphertext(t *testing.T) {
	scheme, err := NewScheme(ML_KEM_768)
	require.NoError(t, err)

	ek, dk, err := scheme.GenerateKeyPair()
	require.NoError(t, err)

	ciphertext, secret, err := scheme.Encapsulate(ek)
	require.NoError(t, err)

	tampered := append([]byte(nil), ciphertext...)
	tampered[0] ^= 0xFF

	recovered, err := scheme.Decapsulate(dk, tampered)
	require.NoError(t, err)
	require.NotEqual(t, secret, recovered)
}

func TestDecapsulateRejectsMalformedCiphertextLength(t *testing.T) {
	scheme, err := NewScheme(ML_KEM_768)
	require.NoError(t, err)
	_, dk, err := scheme.GenerateKeyPair()
	require.NoError(t, err)

	_, err = scheme.Decapsulate(dk, []byte{1, 2, 3})
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestNewParametersFromLiteralRejectsBadRank(t *testing.T) {
	_, err := NewParametersFromLiteral(ParametersLiteral{K: 1, Eta1: 2, Eta2: 2, Du: 10, Dv: 4})
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestDeterministicReplayIsStable(t *testing.T) {
	seedMaterial := make([]byte, 96)
	for i := range seedMaterial {
		seedMaterial[i] = byte(i)
	}

	scheme1, err := NewSchemeWithRandom(ML_KEM_512, kat.NewFixedReader(seedMaterial))
	require.NoError(t, err)
	ek1, dk1, err := scheme1.GenerateKeyPair()
	require.NoError(t, err)

	scheme2, err := NewSchemeWithRandom(ML_KEM_512, kat.NewFixedReader(seedMaterial))
	require.NoError(t, err)
	ek2, dk2, err := scheme2.GenerateKeyPair()
	require.NoError(t, err)

	require.Equal(t, ek1.Bytes(), ek2.Bytes())
	require.Equal(t, dk1.Bytes(), dk2.Bytes())
}
