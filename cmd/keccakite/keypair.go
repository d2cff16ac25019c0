package main

import (
	"crypto/rand"
	"fmt"
	"os"

	"github.com/tidelock/keccakite/keys"
	"github.com/tidelock/keccakite/pbenc"
)

type keypairCmd struct {
	PublicKey  string `arg:"" type:"path" help:"The output path for the public key, or \"-\" for stdout."`
	PrivateKey string `arg:"" optional:"" type:"path" help:"The output path for the passphrase-encrypted private key."`

	Passphrase string `short:"p" help:"The passphrase. Prompted for if absent; empty derives a random key."`
}

func (cmd *keypairCmd) Run() error {
	pw, err := passphrase(cmd.Passphrase)
	if err != nil {
		return err
	}

	kp, err := keys.Derive(rand.Reader, pw)
	if err != nil {
		return err
	}
	defer kp.Wipe()

	pub, err := kp.PublicKey().MarshalBinary()
	if err != nil {
		return err
	}
	if err := writeOutput(cmd.PublicKey, pub, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "public key: %s\n", kp.PublicKey())

	if cmd.PrivateKey == "" {
		return nil
	}

	// Store the private key encrypted under the same passphrase.
	cg, err := pbenc.Encrypt(rand.Reader, kp.PrivateBytes(), pw)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cmd.PrivateKey, cg.Ciphertext, 0o600); err != nil {
		return err
	}
	return os.WriteFile(cmd.PrivateKey+".crypttag", cg.Aux(), 0o600)
}
