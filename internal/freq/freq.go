// Package freq computes and compares letter-frequency distributions, the
// statistical backbone of the cryptanalysis engine.
package freq

import (
	"github.com/RowanDark/Scytale/internal/alphabet"
)

// Distribution holds one relative frequency per alphabet position. Two
// distributions are comparable only when built over the same alphabet in the
// same order.
type Distribution []float64

// Text computes the empirical distribution of text over the given alphabet.
// Symbols outside the alphabet are ignored. When the text contains no alphabet
// symbols at all, the result is all zeros.
func Text(text string, a alphabet.Alphabet) Distribution {
	counts := make([]int, a.Len())
	total := 0
	for _, r := range text {
		if i := a.Index(r); i >= 0 {
			counts[i]++
			total++
		}
	}

	dist := make(Distribution, a.Len())
	if total == 0 {
		return dist
	}
	for i, c := range counts {
		dist[i] = float64(c) / float64(total)
	}
	return dist
}
