// Command keccakite provides hashing, authenticated encryption, key
// generation, and digital signatures over files, built on KMACXOF256 and
// E-521.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"golang.org/x/term"

	"github.com/tidelock/keccakite/keys"
)

type cli struct {
	Hash      hashCmd      `cmd:"" help:"Hash a file or message."`
	Tag       tagCmd       `cmd:"" help:"Compute an authentication tag under a passphrase."`
	Keypair   keypairCmd   `cmd:"" help:"Derive a key pair from a passphrase."`
	Pubkey    pubkeyCmd    `cmd:"" help:"Recover the public key from an encrypted private key."`
	Encrypt   encryptCmd   `cmd:"" help:"Encrypt a file under a passphrase."`
	Decrypt   decryptCmd   `cmd:"" help:"Decrypt a file with a passphrase."`
	PkEncrypt pkEncryptCmd `cmd:"" name:"pk-encrypt" help:"Encrypt a file under a public key."`
	PkDecrypt pkDecryptCmd `cmd:"" name:"pk-decrypt" help:"Decrypt a public-key cryptogram with a passphrase."`
	Sign      signCmd      `cmd:"" help:"Sign a file with a passphrase-derived key."`
	Verify    verifyCmd    `cmd:"" help:"Verify a file's signature against a public key."`
}

func main() {
	var cli cli

	ctx := kong.Parse(&cli)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// passphrase returns the given flag value, or prompts for one on the
// terminal if the flag is empty.
func passphrase(flag string) ([]byte, error) {
	if flag != "" {
		return []byte(flag), nil
	}

	defer func() { _, _ = fmt.Fprintln(os.Stderr) }()
	_, _ = fmt.Fprint(os.Stderr, "Enter passphrase: ")

	return term.ReadPassword(int(os.Stdin.Fd()))
}

// readInput reads the contents of path, or of stdin if path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// writeOutput writes b to path, or to stdout if path is "-".
func writeOutput(path string, b []byte, mode os.FileMode) error {
	if path == "-" {
		_, err := os.Stdout.Write(b)
		return err
	}
	return os.WriteFile(path, b, mode)
}

// decodePublicKey accepts a public key as base58 text or as the path of a
// key file, raw or base58.
func decodePublicKey(pathOrKey string) (*keys.PublicKey, error) {
	var pk keys.PublicKey
	if err := pk.UnmarshalText([]byte(pathOrKey)); err == nil {
		return &pk, nil
	}

	b, err := os.ReadFile(pathOrKey)
	if err != nil {
		return nil, err
	}

	if err := pk.UnmarshalBinary(b); err == nil {
		return &pk, nil
	}
	if err := pk.UnmarshalText(b); err != nil {
		return nil, err
	}
	return &pk, nil
}
