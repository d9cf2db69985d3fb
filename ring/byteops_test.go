package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytesBitsRoundTrip(t *testing.T) {
	in := []byte{0x12, 0xAB, 0xFF, 0x00, 0x55}
	require.Equal(t, in, BitsToBytes(BytesToBits(in)))
}

func TestByteEncodeDecodeRoundTrip(t *testing.T) {
	for _, d := range []int{1, 4, 10, 11, 12} {
		p := new(Poly)
		limit := uint16(1) << uint(d)
		for i := range p.Coeffs {
			v := uint16(i) % limit
			if d == 12 && v >= Q {
				v %= Q
			}
			p.Coeffs[i] = v
		}
		encoded := ByteEncode(p, d)
		require.Len(t, encoded, 32*d)
		decoded := ByteDecode(encoded, d)
		require.Equal(t, p.Coeffs, decoded.Coeffs)
	}
}

func TestCompressOfDecompressIsExact(t *testing.T) {
	for d := 1; d <= 11; d++ {
		limit := uint16(1) << uint(d)
		for y := uint16(0); y < limit; y++ {
			require.Equal(t, y, Compress(Decompress(y, d), d), "d=%d y=%d", d, y)
		}
	}
}

func TestCompressDecompressIsApproximate(t *testing.T) {
	for d := 1; d < 12; d++ {
		for x := uint16(0); x < Q; x += 97 {
			y := Compress(x, d)
			require.Less(t, y, uint16(1)<<uint(d))
			back := Decompress(y, d)
			// Compress/Decompress is lossy: the round trip must land within
			// one compression bucket's width of the original value, measured
			// on the circle mod q since compression wraps around at 0/q.
			diff := int(back) - int(x)
			if diff < 0 {
				diff = -diff
			}
			if diff > Q/2 {
				diff = Q - diff
			}
			bucket := Q / (1 << uint(d))
			require.LessOrEqual(t, diff, bucket+1)
		}
	}
}
