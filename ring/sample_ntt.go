package ring

import "io"

// sampleChunk is the number of bytes read from the XOF at a time while
// rejection-sampling: one SHAKE128 rate block, giving 112 candidates of
// which about 91 are accepted. A 256-coefficient draw needs about
// 256*1.5/(3329/4096) ≈ 473 bytes on average, so it usually takes three
// refills; unused bytes of the last refill are discarded.
const sampleChunk = 168

// SampleNTT draws a polynomial directly in the NTT domain from an XOF
// stream via rejection sampling (§4.4, "SampleNTT"): each group of 3 bytes
// yields two candidate 12-bit values, each accepted if below q. This is
// the same buffer-refill rejection loop the teacher's UniformSampler uses
// over a PRNG (ring/ring_sampler_uniform.go), adapted from a masked
// modulus-width comparison to FIPS 203's fixed 12-bit/3-byte draw.
func SampleNTT(xof io.Reader) *NTTPoly {
	p := new(NTTPoly)
	buf := make([]byte, sampleChunk)
	j := 0
	for j < N {
		if _, err := io.ReadFull(xof, buf); err != nil {
			panic("ring: XOF squeeze failed: " + err.Error())
		}
		for i := 0; i+3 <= len(buf) && j < N; i += 3 {
			b0, b1, b2 := uint16(buf[i]), uint16(buf[i+1]), uint16(buf[i+2])
			d1 := b0 | (b1&0x0F)<<8
			d2 := (b1>>4)&0x0F | b2<<4
			if d1 < Q {
				p.Coeffs[j] = d1
				j++
			}
			if j < N && d2 < Q {
				p.Coeffs[j] = d2
				j++
			}
		}
	}
	return p
}
