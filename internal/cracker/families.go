package cracker

import (
	"context"
	"fmt"

	"github.com/RowanDark/Scytale/internal/alphabet"
	"github.com/RowanDark/Scytale/internal/cipher"
	"github.com/RowanDark/Scytale/internal/freq"
)

// AffineResult is the recovered key and plaintext of an affine search.
type AffineResult struct {
	A         int
	B         int
	Plaintext string
}

// CrackShift searches the full shift key space and returns the recovered
// shift amount together with the plaintext. The shift is derived from the
// winning mapping by locating the symbol that maps to the first alphabet
// symbol; a failure there means the key space itself was malformed.
func (e *Engine) CrackShift(ctx context.Context, ciphertext string, a alphabet.Alphabet, target freq.Distribution) (int, string, error) {
	result, err := e.Crack(ctx, ciphertext, cipher.ShiftKeySpace(a), target, a)
	if err != nil {
		return 0, "", fmt.Errorf("crack shift: %w", err)
	}

	shift, err := cipher.RecoverShift(result.Mapping, a)
	if err != nil {
		return 0, "", fmt.Errorf("crack shift: %w", err)
	}

	e.logger.Info("shift cipher cracked", "shift", shift, "distance", result.Distance)
	return shift, result.Plaintext, nil
}

// CrackAffine searches the full affine key space and returns the recovered
// encryption key (a, b) together with the plaintext. The winning candidate
// is the mapping that decrypts the ciphertext, so the original key is read
// off its inverse, mirroring how CrackShift reports the encryption shift.
func (e *Engine) CrackAffine(ctx context.Context, ciphertext string, a alphabet.Alphabet, target freq.Distribution) (AffineResult, error) {
	result, err := e.Crack(ctx, ciphertext, cipher.AffineKeySpace(a), target, a)
	if err != nil {
		return AffineResult{}, fmt.Errorf("crack affine: %w", err)
	}

	aCoeff, b, err := cipher.RecoverAffineKey(result.Mapping.Inverse(), a)
	if err != nil {
		return AffineResult{}, fmt.Errorf("crack affine: %w", err)
	}

	e.logger.Info("affine cipher cracked", "a", aCoeff, "b", b, "distance", result.Distance)
	return AffineResult{A: aCoeff, B: b, Plaintext: result.Plaintext}, nil
}

// CrackSubstitution is the reserved entry point for a general (non-parametric)
// substitution cracker over the full permutation space. The hill-climbing
// search it needs is not implemented; the call always fails with
// ErrUnsupported.
func (e *Engine) CrackSubstitution(ctx context.Context, ciphertext string, target freq.Distribution) (cipher.Mapping, error) {
	return nil, ErrUnsupported
}
