package main

import (
	"fmt"
	"io"

	"github.com/RowanDark/Scytale/internal/config"
)

func runDecrypt(args []string, cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := newFlagSet("decrypt", stderr)
	cf := addCipherFlags(fs, cfg)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	m, err := cf.mapping()
	if err != nil {
		fmt.Fprintf(stderr, "decrypt: %v\n", err)
		return 2
	}

	text, err := readText(fs.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "decrypt: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, m.Decrypt(text))
	return 0
}
