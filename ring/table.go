package ring

// zetaPrimitive is ζ = 17, the primitive 256-th root of unity mod Q that
// FIPS 203 fixes for the NTT and for the pointwise base-case multiplication
// table. Every other table in this file is derived from it.
const zetaPrimitive = 17

// zetaNTT holds ζ^BitRev7(i) mod q for i in [0,128), in the order the
// iterative forward/inverse NTT butterfly network consumes them (§4.3).
// zetaNTT[0] is never read by NTT/InvNTT (the butterfly loops start at
// i=1) but is computed for completeness.
var zetaNTT [128]uint16

// zetaMul holds γ_i = ζ^(2·BitRev7(i)+1) mod q for i in [0,128), the
// per-pair constant MultiplyNTTs/BaseCaseMultiply use (§4.3).
var zetaMul [128]uint16

// ninv128 is 128^-1 mod q = 3303, the scaling factor InvNTT applies after
// its butterfly network (§4.3).
const ninv128 = 3303

// These tables are the FIPS 203 Appendix A constants. Rather than
// transcribe two 128-entry literal arrays by hand — a single mistyped
// digit would silently break every downstream KAT — they are derived once,
// at package load, from the primitive root and FIPS 203's own
// construction (ζ^BitRev7(i) and ζ^(2·BitRev7(i)+1)). This mirrors the
// teacher's own genNTTParams (ring/ring.go), which likewise derives its
// Psi/PsiInv tables from a primitive root at Ring construction rather than
// hard-coding them per modulus; the only difference is that ML-KEM fixes
// its modulus and degree, so the derivation runs once for the package
// instead of once per Ring instance.
func init() {
	for i := 0; i < 128; i++ {
		zetaNTT[i] = ModExp(zetaPrimitive, uint32(BitRev7(uint8(i))))
		zetaMul[i] = ModExp(zetaPrimitive, uint32(2*BitRev7(uint8(i))+1))
	}
}
