package mlkem

import "fmt"

// EncapsulationKey is an ML-KEM public (encapsulation) key: the encoded
// key bytes, already validated against the parameter set that produced or
// parsed them.
type EncapsulationKey struct {
	params Parameters
	bytes  []byte
}

// DecapsulationKey is an ML-KEM private (decapsulation) key.
type DecapsulationKey struct {
	params Parameters
	bytes  []byte
}

// Bytes returns the encoded key, safe to write to storage or the wire.
func (k *EncapsulationKey) Bytes() []byte { return append([]byte(nil), k.bytes...) }

// Bytes returns the encoded key. Callers that persist this value are
// responsible for keeping it confidential: it is the full decapsulation
// secret.
func (k *DecapsulationKey) Bytes() []byte { return append([]byte(nil), k.bytes...) }

// ParseEncapsulationKey validates b against params' expected length and
// wraps it as an EncapsulationKey, without otherwise inspecting its
// contents (FIPS 203 does not define a public-key validity check beyond
// length for ML-KEM.Encaps).
func ParseEncapsulationKey(params Parameters, b []byte) (*EncapsulationKey, error) {
	if len(b) != params.EncapsulationKeySize() {
		return nil, fmt.Errorf("%w: encapsulation key is %d bytes, want %d", ErrMalformedInput, len(b), params.EncapsulationKeySize())
	}
	return &EncapsulationKey{params: params, bytes: append([]byte(nil), b...)}, nil
}

// ParseDecapsulationKey validates b against params' expected length and
// wraps it as a DecapsulationKey.
func ParseDecapsulationKey(params Parameters, b []byte) (*DecapsulationKey, error) {
	if len(b) != params.DecapsulationKeySize() {
		return nil, fmt.Errorf("%w: decapsulation key is %d bytes, want %d", ErrMalformedInput, len(b), params.DecapsulationKeySize())
	}
	return &DecapsulationKey{params: params, bytes: append([]byte(nil), b...)}, nil
}
