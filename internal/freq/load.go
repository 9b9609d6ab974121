package freq

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/RowanDark/Scytale/internal/alphabet"
)

// LoadDistribution reads a symbol-to-frequency table from a YAML file and
// arranges it onto the given alphabet. Missing symbols default to zero. The
// values are normalized so the result sums to 1.
//
// Example file:
//
//	A: 8.167
//	B: 1.492
//	E: 12.702
func LoadDistribution(path string, a alphabet.Alphabet) (Distribution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read frequency table: %w", err)
	}
	return ParseDistribution(data, a)
}

// ParseDistribution builds a distribution from YAML table data. Symbols
// outside the alphabet and negative values are rejected.
func ParseDistribution(data []byte, a alphabet.Alphabet) (Distribution, error) {
	var table map[string]float64
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse frequency table: %w", err)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("frequency table is empty")
	}

	dist := make(Distribution, a.Len())
	total := 0.0
	for key, value := range table {
		symbols := []rune(key)
		if len(symbols) != 1 {
			return nil, fmt.Errorf("frequency table key %q is not a single symbol", key)
		}
		i := a.Index(symbols[0])
		if i < 0 {
			return nil, fmt.Errorf("frequency table symbol %q is not in alphabet %q", key, a)
		}
		if value < 0 {
			return nil, fmt.Errorf("frequency table symbol %q has negative value %v", key, value)
		}
		dist[i] = value
		total += value
	}

	if total == 0 {
		return nil, fmt.Errorf("frequency table values sum to zero")
	}
	for i := range dist {
		dist[i] /= total
	}
	return dist, nil
}
