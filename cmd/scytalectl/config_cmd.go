package main

import (
	"fmt"
	"io"

	"github.com/RowanDark/Scytale/internal/config"
)

func runConfig(args []string, cfg config.Config, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "config subcommand required")
		return 2
	}

	switch args[0] {
	case "print":
		printResolvedConfig(stdout, cfg)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown config subcommand: %s\n", args[0])
		return 2
	}
}

func printResolvedConfig(out io.Writer, cfg config.Config) {
	fmt.Fprintf(out, "alphabet: %s\n", cfg.Alphabet)
	fmt.Fprintf(out, "freq_table: %s\n", cfg.FreqTable)
	fmt.Fprintf(out, "workers: %d\n", cfg.Workers)
}
