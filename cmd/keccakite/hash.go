package main

import (
	"fmt"

	"github.com/tidelock/keccakite/digest"
)

type hashCmd struct {
	File string `arg:"" optional:"" type:"path" default:"-" help:"The path of the file to hash, or \"-\" for stdin."`
	Text string `short:"s" help:"Hash this message instead of a file."`
}

func (cmd *hashCmd) Run() error {
	m, err := message(cmd.Text, cmd.File)
	if err != nil {
		return err
	}

	fmt.Printf("%x\n", digest.Sum(m))
	return nil
}

type tagCmd struct {
	File string `arg:"" optional:"" type:"path" default:"-" help:"The path of the file to authenticate, or \"-\" for stdin."`
	Text string `short:"s" help:"Authenticate this message instead of a file."`

	Passphrase string `short:"p" help:"The passphrase. Prompted for if absent."`
}

func (cmd *tagCmd) Run() error {
	pw, err := passphrase(cmd.Passphrase)
	if err != nil {
		return err
	}

	m, err := message(cmd.Text, cmd.File)
	if err != nil {
		return err
	}

	fmt.Printf("%x\n", digest.Tag(pw, m))
	return nil
}

// message returns the literal text if given, and the file or stdin contents
// otherwise.
func message(text, file string) ([]byte, error) {
	if text != "" {
		return []byte(text), nil
	}
	return readInput(file)
}
