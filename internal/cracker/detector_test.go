package cracker

import (
	"context"
	"strings"
	"testing"

	"github.com/RowanDark/Scytale/internal/alphabet"
	"github.com/RowanDark/Scytale/internal/cipher"
	"github.com/RowanDark/Scytale/internal/freq"
)

func newTestDetector() *Detector {
	return NewDetector(New(), alphabet.Upper, freq.English)
}

func TestDetectShiftCiphertext(t *testing.T) {
	ciphertext := cipher.ShiftMapping(7, alphabet.Upper).Encrypt(plaintext)

	results, err := newTestDetector().Detect(context.Background(), ciphertext)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected at least one detection result")
	}

	top := results[0]
	if top.Family != FamilyShift {
		t.Errorf("expected shift family on top, got %s", top.Family)
	}
	if top.Key != "shift=7" {
		t.Errorf("expected key %q, got %q", "shift=7", top.Key)
	}
	if top.Plaintext != plaintext {
		t.Errorf("top result should carry the recovered plaintext")
	}

	for i := 1; i < len(results); i++ {
		if results[i-1].Confidence < results[i].Confidence {
			t.Errorf("results not sorted by confidence: %v before %v",
				results[i-1].Confidence, results[i].Confidence)
		}
	}
}

func TestDetectAffineCiphertext(t *testing.T) {
	m, err := cipher.AffineMapping(11, 4, alphabet.Upper)
	if err != nil {
		t.Fatalf("AffineMapping failed: %v", err)
	}
	ciphertext := m.Encrypt(plaintext)

	results, err := newTestDetector().Detect(context.Background(), ciphertext)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected at least one detection result")
	}

	top := results[0]
	if top.Family != FamilyAffine {
		t.Errorf("expected affine family on top, got %s", top.Family)
	}
	if top.Key != "a=11 b=4" {
		t.Errorf("expected key %q, got %q", "a=11 b=4", top.Key)
	}
	if top.Plaintext != plaintext {
		t.Errorf("top result should carry the recovered plaintext")
	}
}

func TestDetectAtbashCiphertext(t *testing.T) {
	ciphertext := cipher.AtbashMapping(alphabet.Upper).Encrypt(plaintext)

	results, err := newTestDetector().Detect(context.Background(), ciphertext)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	// Atbash is inside the affine family too; both entries must recover the
	// plaintext with equal confidence.
	var atbash *DetectionResult
	for i := range results {
		if results[i].Family == FamilyAtbash {
			atbash = &results[i]
			break
		}
	}
	if atbash == nil {
		t.Fatal("expected an atbash detection result")
	}
	if atbash.Plaintext != plaintext {
		t.Errorf("atbash result should recover the plaintext")
	}
	if results[0].Plaintext != plaintext {
		t.Errorf("top result should recover the plaintext")
	}
}

func TestDetectEmptyInput(t *testing.T) {
	if _, err := newTestDetector().Detect(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestDetectFiltersNoise(t *testing.T) {
	// A long non-alphabet string decrypts to itself under every family and
	// scores the worst possible distance against English; everything should
	// fall below the confidence floor.
	noise := strings.Repeat("0123456789 #!?", 20)

	results, err := newTestDetector().Detect(context.Background(), noise)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no confident results for noise, got %d", len(results))
	}
}

func TestSupportedFamilies(t *testing.T) {
	families := newTestDetector().SupportedFamilies()
	if len(families) != 3 {
		t.Fatalf("expected 3 families, got %d", len(families))
	}
}

func TestConfidenceMonotonic(t *testing.T) {
	if confidence(0) != 1 {
		t.Errorf("zero distance should give full confidence, got %v", confidence(0))
	}
	if confidence(0.01) <= confidence(0.1) {
		t.Error("confidence should decrease with distance")
	}
	if confidence(10) <= 0 {
		t.Error("confidence should stay positive")
	}
}
