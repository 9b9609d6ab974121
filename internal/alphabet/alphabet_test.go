package alphabet

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"uppercase english", "ABCDEFGHIJKLMNOPQRSTUVWXYZ", nil},
		{"short", "ABC", nil},
		{"unicode", "АБВГД", nil},
		{"empty", "", ErrEmpty},
		{"duplicate", "ABCA", ErrDuplicateSymbol},
		{"adjacent duplicate", "AABC", ErrDuplicateSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if a.Len() != len([]rune(tt.input)) {
				t.Errorf("expected length %d, got %d", len([]rune(tt.input)), a.Len())
			}
			if a.String() != tt.input {
				t.Errorf("expected %q, got %q", tt.input, a.String())
			}
		})
	}
}

func TestIndexRoundTrip(t *testing.T) {
	a := MustNew("XYZ")

	for i := 0; i < a.Len(); i++ {
		r := a.At(i)
		if got := a.Index(r); got != i {
			t.Errorf("Index(%q) = %d, expected %d", r, got, i)
		}
	}
}

func TestIndexMissing(t *testing.T) {
	a := MustNew("ABC")

	if got := a.Index('Z'); got != -1 {
		t.Errorf("Index of missing symbol = %d, expected -1", got)
	}
	if a.Contains('Z') {
		t.Error("Contains should be false for missing symbol")
	}
	if !a.Contains('B') {
		t.Error("Contains should be true for present symbol")
	}
}

func TestUpperDefault(t *testing.T) {
	if Upper.Len() != 26 {
		t.Fatalf("expected 26 symbols, got %d", Upper.Len())
	}
	if Upper.At(0) != 'A' || Upper.At(25) != 'Z' {
		t.Errorf("unexpected boundary symbols: %q, %q", Upper.At(0), Upper.At(25))
	}
}

func TestSymbolsIsCopy(t *testing.T) {
	a := MustNew("ABC")
	s := a.Symbols()
	s[0] = 'Z'

	if a.At(0) != 'A' {
		t.Error("mutating Symbols() result must not affect the alphabet")
	}
}
