// Command mlkem is a reference front end for the mlkem package: it drives
// key generation, encapsulation and decapsulation from the shell, framing
// every artifact as a PEM file, in the spirit of cloudflared's
// cmd/cloudflare-warp urfave/cli entrypoint.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/nthroot/mlkem/internal/storage"
	"github.com/nthroot/mlkem/mlkem"
)

func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
}

func main() {
	log := newLogger()

	app := &cli.App{
		Name:  "mlkem",
		Usage: "generate ML-KEM keys and perform encapsulation/decapsulation (FIPS 203)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "variant",
				Usage: "ML-KEM-512, ML-KEM-768 or ML-KEM-1024",
				Value: "ML-KEM-768",
			},
		},
		Commands: []*cli.Command{
			keygenCommand(&log),
			encapCommand(&log),
			decapCommand(&log),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("mlkem command failed")
		os.Exit(1)
	}
}

func schemeFromContext(c *cli.Context) (*mlkem.Scheme, error) {
	lit, err := mlkem.LiteralByName(c.String("variant"))
	if err != nil {
		return nil, err
	}
	return mlkem.NewScheme(lit)
}

func keygenCommand(log *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "keygen",
		Usage:     "generate an encapsulation/decapsulation key pair",
		ArgsUsage: "<encaps-key.pem> <decaps-key.pem>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 2 {
				return fmt.Errorf("keygen requires exactly two paths: <encaps-key.pem> <decaps-key.pem>")
			}
			scheme, err := schemeFromContext(c)
			if err != nil {
				return err
			}
			ek, dk, err := scheme.GenerateKeyPair()
			if err != nil {
				return fmt.Errorf("key generation failed: %w", err)
			}
			variant := scheme.Parameters().Name()
			if err := storage.WritePEM(c.Args().Get(0), storage.BlockTypeEncapsulationKey, variant, ek.Bytes()); err != nil {
				return err
			}
			if err := storage.WritePEM(c.Args().Get(1), storage.BlockTypeDecapsulationKey, variant, dk.Bytes()); err != nil {
				return err
			}
			log.Info().Str("variant", variant).Msg("generated ML-KEM key pair")
			return nil
		},
	}
}

func encapCommand(log *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "encap",
		Usage:     "encapsulate a fresh shared secret under an encapsulation key",
		ArgsUsage: "<encaps-key.pem> <ciphertext.pem> <shared-secret.pem>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 3 {
				return fmt.Errorf("encap requires exactly three paths: <encaps-key.pem> <ciphertext.pem> <shared-secret.pem>")
			}
			ekBytes, variant, err := storage.ReadPEM(c.Args().Get(0), storage.BlockTypeEncapsulationKey)
			if err != nil {
				return err
			}
			lit, err := mlkem.LiteralByName(variant)
			if err != nil {
				return err
			}
			scheme, err := mlkem.NewScheme(lit)
			if err != nil {
				return err
			}
			ek, err := mlkem.ParseEncapsulationKey(scheme.Parameters(), ekBytes)
			if err != nil {
				return err
			}
			ciphertext, secret, err := scheme.Encapsulate(ek)
			if err != nil {
				return fmt.Errorf("encapsulation failed: %w", err)
			}
			if err := storage.WritePEM(c.Args().Get(1), storage.BlockTypeCiphertext, variant, ciphertext); err != nil {
				return err
			}
			if err := storage.WritePEM(c.Args().Get(2), storage.BlockTypeSharedSecret, variant, secret[:]); err != nil {
				return err
			}
			log.Info().Str("variant", variant).Msg("encapsulated shared secret")
			return nil
		},
	}
}

func decapCommand(log *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "decap",
		Usage:     "recover the shared secret from a ciphertext under a decapsulation key",
		ArgsUsage: "<decaps-key.pem> <ciphertext.pem> <shared-secret.pem>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 3 {
				return fmt.Errorf("decap requires exactly three paths: <decaps-key.pem> <ciphertext.pem> <shared-secret.pem>")
			}
			dkBytes, variant, err := storage.ReadPEM(c.Args().Get(0), storage.BlockTypeDecapsulationKey)
			if err != nil {
				return err
			}
			ciphertext, ctVariant, err := storage.ReadPEM(c.Args().Get(1), storage.BlockTypeCiphertext)
			if err != nil {
				return err
			}
			if ctVariant != variant {
				return fmt.Errorf("decapsulation key is %s but ciphertext is %s", variant, ctVariant)
			}
			lit, err := mlkem.LiteralByName(variant)
			if err != nil {
				return err
			}
			scheme, err := mlkem.NewScheme(lit)
			if err != nil {
				return err
			}
			dk, err := mlkem.ParseDecapsulationKey(scheme.Parameters(), dkBytes)
			if err != nil {
				return err
			}
			secret, err := scheme.Decapsulate(dk, ciphertext)
			if err != nil {
				return fmt.Errorf("decapsulation failed: %w", err)
			}
			if err := storage.WritePEM(c.Args().Get(2), storage.BlockTypeSharedSecret, variant, secret[:]); err != nil {
				return err
			}
			log.Info().Str("variant", variant).Msg("recovered shared secret")
			return nil
		},
	}
}
