// Package kat loads known-answer-test vectors for the ML-KEM internal
// (non-randomized) entry points and supplies a deterministic entropy
// source to drive them, the same role NIST's ACVP/CAVP request/response
// files play for FIPS 203 implementations. Vectors are read from JSON,
// the same encoding the teacher uses for its own parameter literals
// (core/rlwe/params.go).
package kat

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
)

// Vector is one known-answer-test case: the parameter-set name, the seed
// material KeyGen_internal/Encaps_internal consume, and the expected
// outputs, all hex-encoded in the JSON file.
type Vector struct {
	Variant string `json:"variant"`
	D       string `json:"d"`
	Z       string `json:"z"`
	M       string `json:"m"`

	ExpectedEncapsulationKey string `json:"expectedEncapsulationKey,omitempty"`
	ExpectedDecapsulationKey string `json:"expectedDecapsulationKey,omitempty"`
	ExpectedCiphertext       string `json:"expectedCiphertext,omitempty"`
	ExpectedSharedSecret     string `json:"expectedSharedSecret,omitempty"`
}

// DBytes decodes the D seed field.
func (v Vector) DBytes() ([32]byte, error) { return decode32(v.D) }

// ZBytes decodes the Z seed field.
func (v Vector) ZBytes() ([32]byte, error) { return decode32(v.Z) }

// MBytes decodes the M seed field.
func (v Vector) MBytes() ([32]byte, error) { return decode32(v.M) }

func decode32(s string) ([32]byte, error) {
	var out [32]byte
	b, err := hex.DecodeString(s)
	if err != nil {
		return out, fmt.Errorf("kat: invalid hex: %w", err)
	}
	if len(b) != 32 {
		return out, fmt.Errorf("kat: expected 32 bytes, got %d", len(b))
	}
	copy(out[:], b)
	return out, nil
}

// LoadVectors reads a JSON array of Vector from path.
func LoadVectors(path string) ([]Vector, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("kat: read %s: %w", path, err)
	}
	var vectors []Vector
	if err := json.Unmarshal(raw, &vectors); err != nil {
		return nil, fmt.Errorf("kat: parse %s: %w", path, err)
	}
	return vectors, nil
}
