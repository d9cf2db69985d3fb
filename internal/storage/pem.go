// Package storage frames ML-KEM keys, ciphertexts and shared secrets as
// PEM blocks for file storage, following cloudflared's OriginCert
// PEM-encoding convention (credentials/origin_cert.go): a typed PEM block
// with a small header map rather than a bespoke binary container.
package storage

import (
	"bytes"
	"encoding/pem"
	"fmt"
	"os"
)

const (
	// BlockTypeEncapsulationKey is the PEM block type for an ML-KEM
	// encapsulation (public) key.
	BlockTypeEncapsulationKey = "ML-KEM ENCAPSULATION KEY"
	// BlockTypeDecapsulationKey is the PEM block type for an ML-KEM
	// decapsulation (private) key.
	BlockTypeDecapsulationKey = "ML-KEM DECAPSULATION KEY"
	// BlockTypeCiphertext is the PEM block type for an ML-KEM ciphertext.
	BlockTypeCiphertext = "ML-KEM CIPHERTEXT"
	// BlockTypeSharedSecret is the PEM block type for a derived shared
	// secret.
	BlockTypeSharedSecret = "ML-KEM SHARED SECRET"
)

// WritePEM writes b as a PEM block of the given type and variant header to
// path, creating or truncating the file. File permissions are restricted
// to the owner: decapsulation keys and shared secrets are sensitive.
func WritePEM(path, blockType, variant string, b []byte) error {
	block := &pem.Block{
		Type:    blockType,
		Headers: map[string]string{"Variant": variant},
		Bytes:   b,
	}
	var buf bytes.Buffer
	if err := pem.Encode(&buf, block); err != nil {
		return fmt.Errorf("storage: pem encode failed: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("storage: write %s failed: %w", path, err)
	}
	return nil
}

// ReadPEM reads a single PEM block of the expected type from path and
// returns its decoded bytes and variant header.
func ReadPEM(path, wantType string) (data []byte, variant string, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("storage: read %s failed: %w", path, err)
	}
	block, _ := pem.Decode(raw)
	if block == nil {
		return nil, "", fmt.Errorf("storage: %s does not contain a PEM block", path)
	}
	if block.Type != wantType {
		return nil, "", fmt.Errorf("storage: %s holds a %q block, want %q", path, block.Type, wantType)
	}
	return block.Bytes, block.Headers["Variant"], nil
}
