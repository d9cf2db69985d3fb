package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/nthroot/mlkem/internal/storage"
)

func testApp() *cli.App {
	log := zerolog.Nop()
	return &cli.App{
		Name: "mlkem",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "variant", Value: "ML-KEM-768"},
		},
		Commands: []*cli.Command{
			keygenCommand(&log),
			encapCommand(&log),
			decapCommand(&log),
		},
	}
}

func TestKeygenEncapDecapRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ekPath := filepath.Join(dir, "ek.pem")
	dkPath := filepath.Join(dir, "dk.pem")
	ctPath := filepath.Join(dir, "ct.pem")
	secret1Path := filepath.Join(dir, "secret-encap.pem")
	secret2Path := filepath.Join(dir, "secret-decap.pem")

	app := testApp()
	require.NoError(t, app.Run([]string{"mlkem", "keygen", ekPath, dkPath}))
	require.FileExists(t, ekPath)
	require.FileExists(t, dkPath)

	app = testApp()
	require.NoError(t, app.Run([]string{"mlkem", "encap", ekPath, ctPath, secret1Path}))
	require.FileExists(t, ctPath)
	require.FileExists(t, secret1Path)

	app = testApp()
	require.NoError(t, app.Run([]string{"mlkem", "decap", dkPath, ctPath, secret2Path}))

	secret1, _, err := storage.ReadPEM(secret1Path, storage.BlockTypeSharedSecret)
	require.NoError(t, err)
	secret2, _, err := storage.ReadPEM(secret2Path, storage.BlockTypeSharedSecret)
	require.NoError(t, err)
	require.Equal(t, secret1, secret2)
}

func TestKeygenRejectsWrongArgCount(t *testing.T) {
	app := testApp()
	err := app.Run([]string{"mlkem", "keygen", "only-one-path.pem"})
	require.Error(t, err)
}

func TestDecapRejectsVariantMismatch(t *testing.T) {
	dir := t.TempDir()
	ekPath := filepath.Join(dir, "ek.pem")
	dkPath := filepath.Join(dir, "dk.pem")
	ctPath := filepath.Join(dir, "ct.pem")
	secretPath := filepath.Join(dir, "secret.pem")

	app := testApp()
	require.NoError(t, app.Run([]string{"mlkem", "--variant", "ML-KEM-512", "keygen", ekPath, dkPath}))

	app = testApp()
	require.NoError(t, app.Run([]string{"mlkem", "--variant", "ML-KEM-1024", "keygen", ekPath + ".other", dkPath + ".other"}))

	// Fabricate a ciphertext PEM tagged with a different variant header
	// than the decapsulation key, to exercise the variant-mismatch guard
	// in decapCommand without needing a real cross-variant ciphertext.
	require.NoError(t, storage.WritePEM(ctPath, storage.BlockTypeCiphertext, "ML-KEM-1024", []byte{0}))

	app = testApp()
	err := app.Run([]string{"mlkem", "decap", dkPath, ctPath, secretPath})
	require.Error(t, err)
	require.Contains(t, err.Error(), "decapsulation key is")
	require.NoFileExists(t, secretPath)
}

func TestMain(m *testing.M) {
	os.Exit(m.Run())
}
