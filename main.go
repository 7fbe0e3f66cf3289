package main

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	aesgo "github.com/mario-areias/aes-ofb/aes-go"
	"github.com/mario-areias/aes-ofb/key"
)

const ruler = "----------------------------------------"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal(err)
	}
}

type options struct {
	text       string
	in         string
	out        string
	save       string
	key        string
	iv         string
	passphrase string
	salt       string
	trace      bool
	verify     bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options

	fs := flag.NewFlagSet("aes-ofb", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.text, "text", "", "text to encrypt")
	fs.StringVar(&o.in, "in", "", "file to encrypt (stdin when neither -text nor -in is set)")
	fs.StringVar(&o.out, "out", "", "write raw ciphertext to this file")
	fs.StringVar(&o.save, "save", "", "write ciphertext to PREFIX.enc and decrypted data to PREFIX.dec")
	fs.StringVar(&o.key, "key", "", "key as 32 hex characters (random when empty)")
	fs.StringVar(&o.iv, "iv", "", "IV as 32 hex characters (random when empty)")
	fs.StringVar(&o.passphrase, "passphrase", "", "derive the key from a passphrase")
	fs.StringVar(&o.salt, "salt", "", "salt for -passphrase as hex")
	fs.BoolVar(&o.trace, "trace", false, "print every intermediate state")
	fs.BoolVar(&o.verify, "verify", false, "decrypt the ciphertext and print the result")

	if err := fs.Parse(args); err != nil {
		return o, err
	}

	if o.text != "" && o.in != "" {
		return o, errors.New("-text and -in are mutually exclusive")
	}
	if o.key != "" && o.passphrase != "" {
		return o, errors.New("-key and -passphrase are mutually exclusive")
	}
	if o.passphrase != "" && o.salt == "" {
		return o, errors.New("-passphrase requires -salt")
	}

	return o, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	k, err := loadKey(o)
	if err != nil {
		return err
	}

	iv, err := loadIV(o)
	if err != nil {
		return err
	}

	input, err := loadInput(o, stdin)
	if err != nil {
		return err
	}

	var opts []aesgo.Option
	if o.trace {
		opts = append(opts, aesgo.WithTracer(&traceWriter{w: stdout}))
	}

	fmt.Fprintf(stdout, "key (hex): % x\n", k.GetBytes())
	fmt.Fprintf(stdout, "iv (hex): % x\n", iv)

	aes, err := aesgo.New(k, opts...)
	if err != nil {
		return err
	}

	if o.trace {
		fmt.Fprintln(stdout, "\nencrypting...")
	}
	encrypted, err := aes.EncryptOFB(input, iv)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "ciphertext (hex): % x\n", encrypted)

	if o.out != "" {
		if err := os.WriteFile(o.out, encrypted, 0o600); err != nil {
			return fmt.Errorf("writing ciphertext: %w", err)
		}
	}

	if !o.verify && o.save == "" {
		return nil
	}

	if o.trace {
		fmt.Fprintln(stdout, "\ndecrypting...")
	}
	decrypted, err := aes.DecryptOFB(encrypted, iv)
	if err != nil {
		return err
	}
	if !bytes.Equal(decrypted, input) {
		return errors.New("decrypted data does not match the input")
	}

	if o.verify {
		fmt.Fprintln(stdout, "decrypted:")
		fmt.Fprintln(stdout, ruler)
		fmt.Fprintln(stdout, string(decrypted))
		fmt.Fprintln(stdout, ruler)
	}

	if o.save != "" {
		if err := saveFiles(o.save, encrypted, decrypted); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "saved %s.enc and %s.dec\n", o.save, o.save)
	}

	return nil
}

func loadKey(o options) (key.Key, error) {
	switch {
	case o.key != "":
		return key.FromHex(o.key)
	case o.passphrase != "":
		salt, err := hex.DecodeString(o.salt)
		if err != nil {
			return nil, fmt.Errorf("decoding salt: %w", err)
		}
		return key.FromPassphrase([]byte(o.passphrase), salt), nil
	default:
		return key.Random(rand.Reader)
	}
}

func loadIV(o options) ([]byte, error) {
	if o.iv == "" {
		return key.IV(rand.Reader)
	}

	iv, err := hex.DecodeString(o.iv)
	if err != nil {
		return nil, fmt.Errorf("decoding iv: %w", err)
	}
	if len(iv) != aesgo.BlockSize {
		return nil, aesgo.ErrInvalidIVSize
	}
	return iv, nil
}

func loadInput(o options, stdin io.Reader) ([]byte, error) {
	switch {
	case o.text != "":
		return []byte(o.text), nil
	case o.in != "":
		b, err := os.ReadFile(o.in)
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
		return b, nil
	default:
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return b, nil
	}
}

func saveFiles(prefix string, encrypted, decrypted []byte) error {
	if err := os.WriteFile(prefix+".enc", encrypted, 0o600); err != nil {
		return fmt.Errorf("saving ciphertext: %w", err)
	}
	if err := os.WriteFile(prefix+".dec", decrypted, 0o600); err != nil {
		return fmt.Errorf("saving decrypted data: %w", err)
	}
	return nil
}
