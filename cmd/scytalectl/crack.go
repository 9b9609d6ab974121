package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/RowanDark/Scytale/internal/alphabet"
	"github.com/RowanDark/Scytale/internal/config"
	"github.com/RowanDark/Scytale/internal/cracker"
	"github.com/RowanDark/Scytale/internal/freq"
)

func runCrack(args []string, cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := newFlagSet("crack", stderr)
	family := fs.String("cipher", "auto", "cipher family to crack (shift, affine, auto)")
	alphabetFlag := fs.String("alphabet", cfg.Alphabet, "cipher alphabet")
	freqTable := fs.String("freq-table", cfg.FreqTable, "path to a YAML symbol-frequency table (defaults to English letter frequencies)")
	workers := fs.Int("workers", cfg.Workers, "number of scoring workers (0 = number of CPUs)")
	verbose := fs.Bool("verbose", false, "log search diagnostics to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	a, err := alphabet.New(*alphabetFlag)
	if err != nil {
		fmt.Fprintf(stderr, "crack: invalid alphabet: %v\n", err)
		return 2
	}

	target := freq.English
	if *freqTable != "" {
		target, err = freq.LoadDistribution(*freqTable, a)
		if err != nil {
			fmt.Fprintf(stderr, "crack: %v\n", err)
			return 2
		}
	} else if a.Len() != len(freq.English) {
		fmt.Fprintln(stderr, "crack: --freq-table is required for non-English alphabets")
		return 2
	}

	ciphertext, err := readText(fs.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "crack: %v\n", err)
		return 1
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	if !*verbose {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	engine := cracker.New(cracker.WithWorkers(*workers), cracker.WithLogger(logger))
	ctx := context.Background()

	switch *family {
	case "shift":
		shift, plaintext, err := engine.CrackShift(ctx, ciphertext, a, target)
		if err != nil {
			fmt.Fprintf(stderr, "crack: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "shift: %d\n%s\n", shift, plaintext)
		return 0

	case "affine":
		result, err := engine.CrackAffine(ctx, ciphertext, a, target)
		if err != nil {
			fmt.Fprintf(stderr, "crack: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "key: a=%d b=%d\n%s\n", result.A, result.B, result.Plaintext)
		return 0

	case "auto":
		detector := cracker.NewDetector(engine, a, target)
		results, err := detector.Detect(ctx, ciphertext)
		if err != nil {
			fmt.Fprintf(stderr, "crack: %v\n", err)
			return 1
		}
		if len(results) == 0 {
			fmt.Fprintln(stderr, "crack: no cipher family matched with enough confidence")
			return 1
		}
		for _, r := range results {
			fmt.Fprintf(stdout, "%s (%.0f%% confidence", r.Family, r.Confidence*100)
			if r.Key != "" {
				fmt.Fprintf(stdout, ", %s", r.Key)
			}
			fmt.Fprintf(stdout, "): %s\n", r.Plaintext)
		}
		return 0

	default:
		fmt.Fprintf(stderr, "unknown cipher family %q (expected shift, affine, or auto)\n", *family)
		return 2
	}
}
