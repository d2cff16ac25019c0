package main

import (
	"os"

	"github.com/tidelock/keccakite/pbenc"
)

type decryptCmd struct {
	Ciphertext string `arg:"" type:"path" help:"The path of the encrypted file, or \"-\" for stdin."`
	Aux        string `arg:"" type:"existingfile" help:"The path of the salt and tag file."`
	Output     string `arg:"" optional:"" type:"path" default:"-" help:"The output path for the plaintext."`

	Passphrase string `short:"p" help:"The passphrase. Prompted for if absent."`
}

func (cmd *decryptCmd) Run() error {
	pw, err := passphrase(cmd.Passphrase)
	if err != nil {
		return err
	}

	c, err := readInput(cmd.Ciphertext)
	if err != nil {
		return err
	}
	aux, err := os.ReadFile(cmd.Aux)
	if err != nil {
		return err
	}

	cg, err := pbenc.FromAux(aux, c)
	if err != nil {
		return err
	}

	m, err := pbenc.Decrypt(cg, pw)
	if err != nil {
		return err
	}
	return writeOutput(cmd.Output, m, 0o644)
}
