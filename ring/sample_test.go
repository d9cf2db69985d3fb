package ring

import (
	"bytes"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"
)

// deterministicXOF produces a reproducible, non-uniform-looking byte
// stream so SampleNTT's rejection loop is exercised against more than an
// all-zero input; it is not a real XOF, just a convenient pseudo-random
// io.Reader for this test.
type deterministicXOF struct {
	seed    byte
	counter uint32
	buf     bytes.Buffer
}

func (d *deterministicXOF) Read(p []byte) (int, error) {
	for d.buf.Len() < len(p) {
		h := sha256.Sum256([]byte{d.seed, byte(d.counter), byte(d.counter >> 8)})
		d.counter++
		d.buf.Write(h[:])
	}
	return d.buf.Read(p)
}

func TestSampleNTTProducesInRangeCoefficients(t *testing.T) {
	p := SampleNTT(&deterministicXOF{seed: 7})
	for _, c := range p.Coeffs {
		require.Less(t, c, uint16(Q))
	}
}

func TestSamplePolyCBDRangeAndSymmetry(t *testing.T) {
	for _, eta := range []int{2, 3} {
		buf := make([]byte, 64*eta)
		for i := range buf {
			buf[i] = byte(i * 13)
		}
		p := SamplePolyCBD(buf, eta)
		for _, c := range p.Coeffs {
			// CBD_eta coefficients lie in [-eta, eta] before the mod-q
			// reduction; check the reduced representative falls in the
			// corresponding wrapped range [0, eta] union [q-eta, q).
			inLow := c <= uint16(eta)
			inHigh := c >= uint16(Q-eta) && c < uint16(Q)
			require.True(t, inLow || inHigh, "coefficient %d out of CBD_%d range", c, eta)
		}
	}
}
