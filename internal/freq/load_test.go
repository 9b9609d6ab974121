package freq

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/RowanDark/Scytale/internal/alphabet"
)

func TestParseDistribution(t *testing.T) {
	a := alphabet.MustNew("ABC")

	dist, err := ParseDistribution([]byte("A: 2\nB: 1\nC: 1\n"), a)
	if err != nil {
		t.Fatalf("ParseDistribution failed: %v", err)
	}

	expected := Distribution{0.5, 0.25, 0.25}
	for i := range expected {
		if math.Abs(dist[i]-expected[i]) > epsilon {
			t.Errorf("position %d: expected %v, got %v", i, expected[i], dist[i])
		}
	}
}

func TestParseDistributionMissingSymbolsAreZero(t *testing.T) {
	a := alphabet.MustNew("ABC")

	dist, err := ParseDistribution([]byte("A: 1\n"), a)
	if err != nil {
		t.Fatalf("ParseDistribution failed: %v", err)
	}
	if dist[0] != 1 || dist[1] != 0 || dist[2] != 0 {
		t.Errorf("unexpected distribution: %v", dist)
	}
}

func TestParseDistributionErrors(t *testing.T) {
	a := alphabet.MustNew("ABC")

	tests := []struct {
		name    string
		data    string
		wantMsg string
	}{
		{"unknown symbol", "Z: 1\n", "not in alphabet"},
		{"multi-rune key", "AB: 1\n", "not a single symbol"},
		{"negative value", "A: -1\n", "negative value"},
		{"all zero", "A: 0\nB: 0\n", "sum to zero"},
		{"empty", "", "empty"},
		{"malformed yaml", "A: [1, 2\n", "parse frequency table"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDistribution([]byte(tt.data), a)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected error containing %q, got %v", tt.wantMsg, err)
			}
		})
	}
}

func TestLoadDistribution(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "english.yaml")
	if err := os.WriteFile(path, []byte("E: 12.7\nT: 9.1\nA: 8.2\n"), 0644); err != nil {
		t.Fatalf("write table: %v", err)
	}

	dist, err := LoadDistribution(path, alphabet.Upper)
	if err != nil {
		t.Fatalf("LoadDistribution failed: %v", err)
	}

	sum := 0.0
	for _, v := range dist {
		sum += v
	}
	if math.Abs(sum-1.0) > epsilon {
		t.Errorf("loaded distribution should be normalized, sum = %v", sum)
	}
	if dist[alphabet.Upper.Index('E')] <= dist[alphabet.Upper.Index('T')] {
		t.Error("E should outweigh T after normalization")
	}
}

func TestLoadDistributionMissingFile(t *testing.T) {
	_, err := LoadDistribution(filepath.Join(t.TempDir(), "nope.yaml"), alphabet.Upper)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
