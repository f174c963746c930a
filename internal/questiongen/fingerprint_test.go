package questiongen

import (
	"strings"
	"testing"
)

func TestFingerprint_CaseAndWhitespaceFolding(t *testing.T) {
	a := Fingerprint("  What is a B-Tree index?  ")
	b := Fingerprint("what is a b-tree index?")
	if a != b {
		t.Fatalf("expected equal fingerprints, got %q vs %q", a, b)
	}
}

func TestFingerprint_TruncatesLongQuestions(t *testing.T) {
	long := strings.Repeat("a", 300)
	fp := Fingerprint(long)
	if len([]rune(fp)) != FingerprintLength {
		t.Fatalf("expected %d runes, got %d", FingerprintLength, len([]rune(fp)))
	}

	// Two questions diverging only past the truncation point collide.
	other := strings.Repeat("a", 150) + "different tail"
	if Fingerprint(other) != fp {
		t.Fatalf("expected prefix collision for questions diverging after %d chars", FingerprintLength)
	}
}

func TestFingerprint_MultibyteSafe(t *testing.T) {
	// Truncation must not split a multibyte rune.
	long := strings.Repeat("é", 200)
	fp := Fingerprint(long)
	if len([]rune(fp)) != FingerprintLength {
		t.Fatalf("expected %d runes, got %d", FingerprintLength, len([]rune(fp)))
	}
	if strings.Contains(fp, "�") {
		t.Fatal("fingerprint contains a broken rune")
	}
}

func TestFingerprint_ShortQuestionUnchanged(t *testing.T) {
	if got := Fingerprint("Explain ACID."); got != "explain acid." {
		t.Fatalf("unexpected fingerprint %q", got)
	}
}

func TestEnsureUnique(t *testing.T) {
	asked := []string{Fingerprint("What is a goroutine?")}

	fp, dup := EnsureUnique("WHAT IS A GOROUTINE?", asked)
	if !dup {
		t.Fatal("expected paraphrase-identical question to be flagged as duplicate")
	}
	if fp != Fingerprint("What is a goroutine?") {
		t.Fatalf("unexpected fingerprint %q", fp)
	}

	_, dup = EnsureUnique("How does the Go scheduler work?", asked)
	if dup {
		t.Fatal("fresh question flagged as duplicate")
	}
}
