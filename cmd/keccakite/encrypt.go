package main

import (
	"crypto/rand"
	"errors"

	"github.com/tidelock/keccakite/pbenc"
)

type encryptCmd struct {
	File string `arg:"" type:"path" help:"The path of the file to encrypt, or \"-\" for stdin."`

	Ciphertext string `short:"o" type:"path" help:"The output path for the ciphertext. Defaults to the file path plus \".crypt\", or stdout when reading stdin."`
	Aux        string `type:"path" help:"The output path for the salt and tag. Defaults to the file path plus \".crypttag\"; required when reading stdin."`
	Passphrase string `short:"p" help:"The passphrase. Prompted for if absent."`
}

func (cmd *encryptCmd) Run() error {
	ctOut, auxOut, err := cryptogramOutputs(cmd.File, cmd.Ciphertext, cmd.Aux)
	if err != nil {
		return err
	}

	pw, err := passphrase(cmd.Passphrase)
	if err != nil {
		return err
	}

	m, err := readInput(cmd.File)
	if err != nil {
		return err
	}

	cg, err := pbenc.Encrypt(rand.Reader, m, pw)
	if err != nil {
		return err
	}

	if err := writeOutput(ctOut, cg.Ciphertext, 0o644); err != nil {
		return err
	}
	return writeOutput(auxOut, cg.Aux(), 0o644)
}

// cryptogramOutputs resolves the ciphertext and auxiliary output paths for
// an encryption command. File-based input defaults to sibling ".crypt" and
// ".crypttag" files; stdin or literal-text input sends the ciphertext to
// stdout and requires an explicit auxiliary path.
func cryptogramOutputs(file, ciphertext, aux string) (ctOut, auxOut string, err error) {
	ctOut, auxOut = ciphertext, aux
	if file == "-" || file == "" {
		if ctOut == "" {
			ctOut = "-"
		}
		if auxOut == "" {
			return "", "", errors.New("--aux is required when not encrypting a file")
		}
		return ctOut, auxOut, nil
	}

	if ctOut == "" {
		ctOut = file + ".crypt"
	}
	if auxOut == "" {
		auxOut = file + ".crypttag"
	}
	return ctOut, auxOut, nil
}
