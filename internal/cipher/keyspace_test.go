package cipher

import (
	"testing"

	"github.com/RowanDark/Scytale/internal/alphabet"
)

func mappingKey(m Mapping, a alphabet.Alphabet) string {
	out := make([]rune, 0, a.Len())
	for i := 0; i < a.Len(); i++ {
		out = append(out, m[a.At(i)])
	}
	return string(out)
}

func TestShiftKeySpaceCompleteness(t *testing.T) {
	space := ShiftKeySpace(alphabet.Upper)

	if len(space) != 26 {
		t.Fatalf("expected 26 candidates, got %d", len(space))
	}

	seen := make(map[string]int)
	for i, m := range space {
		// Candidate i applies shift i, so it undoes encryption shift (26-i)%26.
		shift, err := RecoverShift(m, alphabet.Upper)
		if err != nil {
			t.Fatalf("candidate %d: %v", i, err)
		}
		if want := (26 - i) % 26; shift != want {
			t.Errorf("candidate %d: RecoverShift = %d, expected %d", i, shift, want)
		}
		key := mappingKey(m, alphabet.Upper)
		if prev, dup := seen[key]; dup {
			t.Errorf("candidates %d and %d are identical", prev, i)
		}
		seen[key] = i
	}
}

func TestAffineKeySpaceCompleteness(t *testing.T) {
	space := AffineKeySpace(alphabet.Upper)

	// phi(26) * 26 = 12 * 26
	if len(space) != 312 {
		t.Fatalf("expected 312 candidates, got %d", len(space))
	}

	seen := make(map[string]int)
	for i, m := range space {
		if !m.Bijective() {
			t.Errorf("candidate %d is not a permutation", i)
		}
		key := mappingKey(m, alphabet.Upper)
		if prev, dup := seen[key]; dup {
			t.Errorf("candidates %d and %d are identical", prev, i)
		}
		seen[key] = i
	}
}

func TestAffineKeySpaceOrder(t *testing.T) {
	// First block is a=1 (shift family), b ascending.
	space := AffineKeySpace(alphabet.Upper)

	for b := 0; b < 26; b++ {
		a, gotB, err := RecoverAffineKey(space[b], alphabet.Upper)
		if err != nil {
			t.Fatalf("candidate %d: %v", b, err)
		}
		if a != 1 || gotB != b {
			t.Errorf("candidate %d: expected key (1, %d), got (%d, %d)", b, b, a, gotB)
		}
	}
}

func TestKeySpaceSmallAlphabet(t *testing.T) {
	a := alphabet.MustNew("ABCDE")

	if got := len(ShiftKeySpace(a)); got != 5 {
		t.Errorf("expected 5 shift candidates, got %d", got)
	}
	// phi(5) * 5 = 4 * 5
	if got := len(AffineKeySpace(a)); got != 20 {
		t.Errorf("expected 20 affine candidates, got %d", got)
	}
}

func TestInvertibleResidues(t *testing.T) {
	tests := []struct {
		n        int
		expected []int
	}{
		{26, []int{1, 3, 5, 7, 9, 11, 15, 17, 19, 21, 23, 25}},
		{5, []int{1, 2, 3, 4}},
		{1, []int{0}},
	}

	for _, tt := range tests {
		got := invertibleResidues(tt.n)
		if len(got) != len(tt.expected) {
			t.Fatalf("n=%d: expected %v, got %v", tt.n, tt.expected, got)
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("n=%d: expected %v, got %v", tt.n, tt.expected, got)
				break
			}
		}
	}
}
