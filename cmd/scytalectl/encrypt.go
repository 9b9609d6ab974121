package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/RowanDark/Scytale/internal/alphabet"
	"github.com/RowanDark/Scytale/internal/cipher"
	"github.com/RowanDark/Scytale/internal/config"
)

// cipherFlags holds the family/key flags shared by encrypt and decrypt.
type cipherFlags struct {
	family   *string
	shift    *int
	a        *int
	b        *int
	alphabet *string
}

func addCipherFlags(fs *flag.FlagSet, cfg config.Config) cipherFlags {
	return cipherFlags{
		family:   fs.String("cipher", "shift", "cipher family (shift, affine, atbash)"),
		shift:    fs.Int("shift", 3, "shift amount for the shift cipher"),
		a:        fs.Int("a", 5, "a-coefficient for the affine cipher (must be coprime with the alphabet length)"),
		b:        fs.Int("b", 8, "b-offset for the affine cipher"),
		alphabet: fs.String("alphabet", cfg.Alphabet, "cipher alphabet"),
	}
}

// mapping resolves the flags into a concrete substitution mapping.
func (cf cipherFlags) mapping() (cipher.Mapping, error) {
	a, err := alphabet.New(*cf.alphabet)
	if err != nil {
		return nil, fmt.Errorf("invalid alphabet: %w", err)
	}

	switch *cf.family {
	case "shift":
		return cipher.ShiftMapping(*cf.shift, a), nil
	case "affine":
		return cipher.AffineMapping(*cf.a, *cf.b, a)
	case "atbash":
		return cipher.AtbashMapping(a), nil
	default:
		return nil, fmt.Errorf("unknown cipher family %q (expected shift, affine, or atbash)", *cf.family)
	}
}

func runEncrypt(args []string, cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := newFlagSet("encrypt", stderr)
	cf := addCipherFlags(fs, cfg)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	m, err := cf.mapping()
	if err != nil {
		fmt.Fprintf(stderr, "encrypt: %v\n", err)
		return 2
	}

	text, err := readText(fs.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "encrypt: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, m.Encrypt(text))
	return 0
}
