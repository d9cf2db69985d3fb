package mlkem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyAndCiphertextSizesMatchFIPS203(t *testing.T) {
	cases := []struct {
		lit                      ParametersLiteral
		ek, dk, ciphertext int
	}{
		{ML_KEM_512, 800, 1632, 768},
		{ML_KEM_768, 1184, 2400, 1088},
		{ML_KEM_1024, 1568, 3168, 1568},
	}
	for _, c := range cases {
		t.Run(c.lit.Name, func(t *testing.T) {
			p, err := NewParametersFromLiteral(c.lit)
			require.NoError(t, err)
			require.Equal(t, c.ek, p.EncapsulationKeySize())
			require.Equal(t, c.dk, p.DecapsulationKeySize())
			require.Equal(t, c.ciphertext, p.CiphertextSize())
		})
	}
}

func TestLiteralByName(t *testing.T) {
	_, err := LiteralByName("ML-KEM-768")
	require.NoError(t, err)

	_, err = LiteralByName("ML-KEM-999")
	require.ErrorIs(t, err, ErrInvalidParameter)
}
