package main

import (
	"fmt"
	"io"

	"github.com/RowanDark/Scytale/internal/cipher"
)

func runOps(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("ops", stderr)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintln(stderr, "ops takes no arguments")
		return 2
	}

	for _, op := range cipher.ListOperations() {
		fmt.Fprintf(stdout, "%-16s %-8s %s\n", op.Name(), op.Type(), op.Description())
	}
	return 0
}
