package questiongen

import "strings"

// FingerprintLength is the number of leading runes kept by Fingerprint.
// Deliberately coarse: two questions whose case-folded openings match
// are treated as duplicates, which also catches near-paraphrases that
// share a long common opening phrase.
const FingerprintLength = 120

// Fingerprint normalizes question text to a stable dedup key:
// trimmed, case-folded, truncated to FingerprintLength runes.
func Fingerprint(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	runes := []rune(s)
	if len(runes) > FingerprintLength {
		return string(runes[:FingerprintLength])
	}
	return s
}

// EnsureUnique fingerprints a candidate question and reports whether it
// collides with a fingerprint already asked in the session.
func EnsureUnique(candidateText string, asked []string) (fingerprint string, isDuplicate bool) {
	fingerprint = Fingerprint(candidateText)
	for _, a := range asked {
		if a == fingerprint {
			return fingerprint, true
		}
	}
	return fingerprint, false
}
