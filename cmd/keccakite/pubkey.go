package main

import (
	"fmt"
	"os"

	"github.com/tidelock/keccakite/e521"
	"github.com/tidelock/keccakite/keys"
	"github.com/tidelock/keccakite/pbenc"
)

type pubkeyCmd struct {
	PrivateKey string `arg:"" type:"existingfile" help:"The path of the passphrase-encrypted private key."`
	Output     string `arg:"" optional:"" type:"path" default:"-" help:"The output path for the public key. Stdout prints base58 text; files get the raw encoding."`

	Aux        string `type:"path" help:"The path of the private key's salt and tag file. Defaults to the private key path plus \".crypttag\"."`
	Passphrase string `short:"p" help:"The passphrase. Prompted for if absent."`
}

func (cmd *pubkeyCmd) Run() error {
	pw, err := passphrase(cmd.Passphrase)
	if err != nil {
		return err
	}

	c, err := os.ReadFile(cmd.PrivateKey)
	if err != nil {
		return err
	}

	auxPath := cmd.Aux
	if auxPath == "" {
		auxPath = cmd.PrivateKey + ".crypttag"
	}
	aux, err := os.ReadFile(auxPath)
	if err != nil {
		return err
	}

	cg, err := pbenc.FromAux(aux, c)
	if err != nil {
		return err
	}

	priv, err := pbenc.Decrypt(cg, pw)
	if err != nil {
		return err
	}

	d := e521.ParseSigned(priv)
	pk := keys.NewPublicKey(e521.Generator().ScalarMult(d))
	d.SetInt64(0)

	if cmd.Output == "-" {
		fmt.Println(pk)
		return nil
	}

	b, err := pk.MarshalBinary()
	if err != nil {
		return err
	}
	return writeOutput(cmd.Output, b, 0o644)
}
