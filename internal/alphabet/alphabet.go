// Package alphabet defines the ordered symbol sets that classical ciphers
// operate over. An alphabet fixes both the domain of a substitution and the
// index arithmetic (position mod length) used by the shift and affine families.
package alphabet

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when constructing an alphabet with no symbols.
	ErrEmpty = errors.New("alphabet cannot be empty")
	// ErrDuplicateSymbol is returned when a symbol appears more than once.
	ErrDuplicateSymbol = errors.New("alphabet contains a duplicate symbol")
)

// Alphabet is an ordered, duplicate-free sequence of symbols. The zero value
// is not usable; construct one with New or MustNew.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// Upper is the default uppercase English alphabet.
var Upper = MustNew("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// New builds an alphabet from the symbols of s, preserving their order.
func New(s string) (Alphabet, error) {
	symbols := []rune(s)
	if len(symbols) == 0 {
		return Alphabet{}, ErrEmpty
	}

	index := make(map[rune]int, len(symbols))
	for i, r := range symbols {
		if _, seen := index[r]; seen {
			return Alphabet{}, fmt.Errorf("%w: %q at position %d", ErrDuplicateSymbol, r, i)
		}
		index[r] = i
	}

	return Alphabet{symbols: symbols, index: index}, nil
}

// MustNew is like New but panics on invalid input. Intended for package-level
// constants.
func MustNew(s string) Alphabet {
	a, err := New(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Len returns the number of symbols in the alphabet.
func (a Alphabet) Len() int {
	return len(a.symbols)
}

// At returns the symbol at position i.
func (a Alphabet) At(i int) rune {
	return a.symbols[i]
}

// Index returns the position of r, or -1 if r is not in the alphabet.
func (a Alphabet) Index(r rune) int {
	i, ok := a.index[r]
	if !ok {
		return -1
	}
	return i
}

// Contains reports whether r is a symbol of the alphabet.
func (a Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// Symbols returns a copy of the alphabet's symbols in order.
func (a Alphabet) Symbols() []rune {
	out := make([]rune, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// String returns the alphabet's symbols as a string.
func (a Alphabet) String() string {
	return string(a.symbols)
}
