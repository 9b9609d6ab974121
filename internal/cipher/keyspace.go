package cipher

import (
	"github.com/RowanDark/Scytale/internal/alphabet"
)

// ShiftKeySpace materializes one mapping per shift value 0..n-1, in shift
// order. The result covers the whole family: exactly n candidates.
func ShiftKeySpace(a alphabet.Alphabet) []Mapping {
	n := a.Len()
	space := make([]Mapping, 0, n)
	for s := 0; s < n; s++ {
		space = append(space, ShiftMapping(s, a))
	}
	return space
}

// AffineKeySpace materializes one mapping per valid (a, b) pair: a over the
// residues coprime with n in ascending order, b over 0..n-1. The result has
// exactly phi(n)*n candidates; for the 26-letter alphabet that is 12*26=312.
func AffineKeySpace(a alphabet.Alphabet) []Mapping {
	n := a.Len()
	coprime := invertibleResidues(n)

	space := make([]Mapping, 0, len(coprime)*n)
	for _, ac := range coprime {
		for b := 0; b < n; b++ {
			m, err := AffineMapping(ac, b, a)
			if err != nil {
				// Unreachable: ac is coprime with n by construction.
				continue
			}
			space = append(space, m)
		}
	}
	return space
}

// invertibleResidues returns the residues in [0, n) that are invertible
// mod n, ascending.
func invertibleResidues(n int) []int {
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if gcd(i, n) == 1 {
			out = append(out, i)
		}
	}
	return out
}
