package freq

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch is returned when comparing distributions of different
// lengths, which means they were not built over the same alphabet.
var ErrLengthMismatch = errors.New("frequency distributions have different lengths")

// SquaredDistance returns the sum of squared differences between two
// distributions. Identical distributions score 0; the score grows as they
// diverge.
func SquaredDistance(p, q Distribution) (float64, error) {
	if len(p) != len(q) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(p), len(q))
	}

	sum := 0.0
	for i := range p {
		d := p[i] - q[i]
		sum += d * d
	}
	return sum, nil
}

// ChiSquared returns the chi-squared statistic of observed against expected.
// Positions with zero expected frequency are skipped to avoid division by
// zero.
func ChiSquared(observed, expected Distribution) (float64, error) {
	if len(observed) != len(expected) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(observed), len(expected))
	}

	sum := 0.0
	for i := range observed {
		if expected[i] == 0 {
			continue
		}
		d := observed[i] - expected[i]
		sum += d * d / expected[i]
	}
	return sum, nil
}
