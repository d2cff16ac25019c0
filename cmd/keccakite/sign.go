package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidelock/keccakite/sig"
)

type signCmd struct {
	File      string `arg:"" type:"path" help:"The path of the file to sign, or \"-\" for stdin."`
	Signature string `arg:"" optional:"" type:"path" help:"The output path for the signature. Defaults to the file path plus \".sig\", or stdout when reading stdin."`

	Passphrase string `short:"p" help:"The passphrase. Prompted for if absent."`
}

func (cmd *signCmd) Run() error {
	pw, err := passphrase(cmd.Passphrase)
	if err != nil {
		return err
	}

	m, err := readInput(cmd.File)
	if err != nil {
		return err
	}

	out := cmd.Signature
	if out == "" {
		if cmd.File == "-" {
			out = "-"
		} else {
			out = cmd.File + ".sig"
		}
	}
	return writeOutput(out, sig.Sign(m, pw).Bytes(), 0o644)
}

type verifyCmd struct {
	File      string `arg:"" type:"path" help:"The path of the signed file, or \"-\" for stdin."`
	Signature string `arg:"" type:"existingfile" help:"The path of the signature file."`
	PublicKey string `arg:"" help:"The signer's public key, as base58 text or a key file path."`
}

func (cmd *verifyCmd) Run() error {
	pk, err := decodePublicKey(cmd.PublicKey)
	if err != nil {
		return err
	}

	m, err := readInput(cmd.File)
	if err != nil {
		return err
	}
	sb, err := os.ReadFile(cmd.Signature)
	if err != nil {
		return err
	}

	s, err := sig.ParseSignature(sb)
	if err != nil {
		return err
	}

	if !sig.Verify(s, m, pk.Point()) {
		return errors.New("signature verification failed")
	}
	fmt.Println("signature verified")
	return nil
}
