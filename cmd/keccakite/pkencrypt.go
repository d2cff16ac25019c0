package main

import (
	"crypto/rand"
	"os"

	"github.com/tidelock/keccakite/hpke"
)

type pkEncryptCmd struct {
	Recipient string `arg:"" help:"The recipient's public key, as base58 text or a key file path."`
	File      string `arg:"" optional:"" type:"path" default:"-" help:"The path of the file to encrypt, or \"-\" for stdin."`
	Text      string `short:"s" help:"Encrypt this message instead of a file."`

	Ciphertext string `short:"o" type:"path" help:"The output path for the ciphertext. Defaults to the file path plus \".crypt\", or stdout when not encrypting a file."`
	Aux        string `type:"path" help:"The output path for the nonce point and tag. Defaults to the file path plus \".crypttag\"; required when not encrypting a file."`
}

func (cmd *pkEncryptCmd) Run() error {
	file := cmd.File
	if cmd.Text != "" {
		file = ""
	}
	ctOut, auxOut, err := cryptogramOutputs(file, cmd.Ciphertext, cmd.Aux)
	if err != nil {
		return err
	}

	pk, err := decodePublicKey(cmd.Recipient)
	if err != nil {
		return err
	}

	m, err := message(cmd.Text, cmd.File)
	if err != nil {
		return err
	}

	cg, err := hpke.Encrypt(rand.Reader, m, pk.Point())
	if err != nil {
		return err
	}

	if err := writeOutput(ctOut, cg.Ciphertext, 0o644); err != nil {
		return err
	}
	return writeOutput(auxOut, cg.Aux(), 0o644)
}

type pkDecryptCmd struct {
	Ciphertext string `arg:"" type:"path" help:"The path of the encrypted file, or \"-\" for stdin."`
	Aux        string `arg:"" type:"existingfile" help:"The path of the nonce point and tag file."`
	Output     string `arg:"" optional:"" type:"path" default:"-" help:"The output path for the plaintext."`

	Passphrase string `short:"p" help:"The passphrase. Prompted for if absent."`
}

func (cmd *pkDecryptCmd) Run() error {
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

	cg, err := hpke.FromAux(aux, c)
	if err != nil {
		return err
	}

	m, err := hpke.Decrypt(cg, pw)
	if err != nil {
		return err
	}
	return writeOutput(cmd.Output, m, 0o644)
}
