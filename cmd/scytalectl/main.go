// Command scytalectl encrypts, decrypts, and cracks classical monoalphabetic
// ciphers from the command line.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/RowanDark/Scytale/internal/config"
)

const productName = "scytale"
const cliBanner = productName + " CLI (scytalectl)"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	switch args[0] {
	case "encrypt", "decrypt", "crack", "config":
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(stderr, "load config: %v\n", err)
			return 1
		}
		switch args[0] {
		case "encrypt":
			return runEncrypt(args[1:], cfg, stdin, stdout, stderr)
		case "decrypt":
			return runDecrypt(args[1:], cfg, stdin, stdout, stderr)
		case "crack":
			return runCrack(args[1:], cfg, stdin, stdout, stderr)
		default:
			return runConfig(args[1:], cfg, stdout, stderr)
		}
	case "ops":
		return runOps(args[1:], stdout, stderr)
	case "version":
		return runVersion(args[1:], stdout, stderr)
	case "help", "-h", "--help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown subcommand: %s\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, cliBanner)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: scytalectl <subcommand> [flags] [text]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Subcommands:")
	fmt.Fprintln(w, "  encrypt   encrypt text with a cipher family and key")
	fmt.Fprintln(w, "  decrypt   decrypt text with a cipher family and key")
	fmt.Fprintln(w, "  crack     recover the key and plaintext of a ciphertext")
	fmt.Fprintln(w, "  ops       list registered cipher operations")
	fmt.Fprintln(w, "  config    print the resolved configuration")
	fmt.Fprintln(w, "  version   print the version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Text is taken from the remaining arguments, or from stdin when absent.")
}

// readText returns the remaining positional arguments joined, or the whole
// of stdin when no arguments are given.
func readText(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// newFlagSet builds a flag set wired to the command's error writer.
func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}
