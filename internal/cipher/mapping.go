package cipher

import (
	"errors"
	"fmt"
	"strings"

	"github.com/RowanDark/Scytale/internal/alphabet"
)

var (
	// ErrInvalidKey is returned for affine keys whose a-coefficient has no
	// multiplicative inverse mod the alphabet length.
	ErrInvalidKey = errors.New("invalid cipher key")
	// ErrKeyNotFound is returned when a numeric key cannot be recovered from
	// a mapping. It indicates a malformed or corrupted key space.
	ErrKeyNotFound = errors.New("key not recoverable from mapping")
)

// Mapping is a symbol-to-symbol substitution table, stored as key/value
// pairs. Family constructors produce total permutations of their alphabet;
// the engine itself only requires a total function over the symbols of
// interest.
type Mapping map[rune]rune

// Encrypt replaces every symbol of text that appears in the mapping and
// passes all other symbols through verbatim. Length and symbol order are
// preserved.
func (m Mapping) Encrypt(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if out, ok := m[r]; ok {
			b.WriteRune(out)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Inverse returns the value-to-key inversion of the mapping. If the mapping
// is not injective, colliding entries collapse and only one key survives,
// chosen by map iteration order. Callers that need a guarantee should check
// Bijective first.
func (m Mapping) Inverse() Mapping {
	inv := make(Mapping, len(m))
	for k, v := range m {
		inv[v] = k
	}
	return inv
}

// Decrypt inverts the mapping and applies it. The contract
// Decrypt(Encrypt(t)) == t holds whenever the mapping is injective over the
// symbols present in t.
func (m Mapping) Decrypt(text string) string {
	return m.Inverse().Encrypt(text)
}

// Bijective reports whether the mapping is one-to-one, i.e. no two keys share
// a value.
func (m Mapping) Bijective() bool {
	seen := make(map[rune]struct{}, len(m))
	for _, v := range m {
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}

// ShiftMapping builds the shift-cipher mapping alphabet[i] ->
// alphabet[(i+shift) mod n]. Shift 0 is the identity. Negative shifts and
// shifts beyond n wrap around.
func ShiftMapping(shift int, a alphabet.Alphabet) Mapping {
	n := a.Len()
	shift = ((shift % n) + n) % n
	m, _ := AffineMapping(1, shift, a)
	return m
}

// AffineMapping builds the affine-cipher mapping alphabet[i] ->
// alphabet[(aCoeff*i + b) mod n]. It fails with ErrInvalidKey when aCoeff is
// not invertible mod n, since the mapping would not be a bijection.
func AffineMapping(aCoeff, b int, a alphabet.Alphabet) (Mapping, error) {
	n := a.Len()
	if gcd(aCoeff, n) != 1 {
		return nil, fmt.Errorf("%w: a=%d is not invertible mod %d", ErrInvalidKey, aCoeff, n)
	}

	aCoeff = ((aCoeff % n) + n) % n
	b = ((b % n) + n) % n

	m := make(Mapping, n)
	for i := 0; i < n; i++ {
		m[a.At(i)] = a.At((aCoeff*i + b) % n)
	}
	return m, nil
}

// AtbashMapping builds the alphabet-reversal mapping, the affine cipher with
// a = b = n-1. It is self-inverse.
func AtbashMapping(a alphabet.Alphabet) Mapping {
	n := a.Len()
	m, _ := AffineMapping(n-1, n-1, a)
	return m
}

// RecoverShift derives the encryption shift that a search-winning mapping
// undoes, by locating the key that maps to the first alphabet symbol: that
// key sits exactly the original shift amount into the alphabet. For a
// mapping built with ShiftMapping(s) this is (n-s) mod n, the shift the
// mapping decrypts. Fails with ErrKeyNotFound when no entry maps to
// alphabet[0], which means the mapping did not come from a well-formed shift
// key space.
func RecoverShift(m Mapping, a alphabet.Alphabet) (int, error) {
	first := a.At(0)
	for k, v := range m {
		if v != first {
			continue
		}
		if i := a.Index(k); i >= 0 {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: no symbol maps to %q", ErrKeyNotFound, first)
}

// RecoverAffineKey derives the (a, b) pair from an affine-family mapping.
// The image of alphabet[0] gives b directly; the image of alphabet[1] gives
// a+b, and a follows mod n. Fails with ErrKeyNotFound when the mapping does
// not cover the first two alphabet symbols or the derived coefficient is not
// invertible.
func RecoverAffineKey(m Mapping, a alphabet.Alphabet) (int, int, error) {
	n := a.Len()
	if n < 2 {
		return 0, 0, fmt.Errorf("%w: alphabet too short", ErrKeyNotFound)
	}

	y0, ok := m[a.At(0)]
	if !ok {
		return 0, 0, fmt.Errorf("%w: mapping has no entry for %q", ErrKeyNotFound, a.At(0))
	}
	y1, ok := m[a.At(1)]
	if !ok {
		return 0, 0, fmt.Errorf("%w: mapping has no entry for %q", ErrKeyNotFound, a.At(1))
	}

	b := a.Index(y0)
	ab := a.Index(y1)
	if b < 0 || ab < 0 {
		return 0, 0, fmt.Errorf("%w: mapping leaves the alphabet", ErrKeyNotFound)
	}

	aCoeff := ((ab - b) + n) % n
	if gcd(aCoeff, n) != 1 {
		return 0, 0, fmt.Errorf("%w: derived a=%d is not invertible mod %d", ErrKeyNotFound, aCoeff, n)
	}
	return aCoeff, b, nil
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
