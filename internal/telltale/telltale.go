// Package telltale derives degeneration markers from raw generated text.
// Allocation-light, character-based heuristics: no tokenizer, no model.
package telltale

import "strings"

// #region flags
// Flags are the detector outputs for one text payload.
type Flags struct {
	Repeated bool // high character 3-gram repetition rate
	Stalled  bool // very low byte diversity (or empty text)
	AITell   bool // "as an AI..." boilerplate
}

// #endregion flags

// #region thresholds
const (
	// repRatio is the fraction of adjacent 3-gram matches above which the
	// text counts as a duplicate generation.
	repRatio = 0.30

	// diversityFloor is the unique-byte ratio below which the text counts
	// as stalled output.
	diversityFloor = 0.12
)

// #endregion thresholds

// #region scan

// Scan computes detector flags for one text payload. Empty (or
// whitespace-only) text reports Stalled.
func Scan(text string) Flags {
	var f Flags
	s := strings.TrimSpace(text)
	if s == "" {
		f.Stalled = true
		return f
	}

	// Adjacent character 3-gram repetition.
	b := []byte(s)
	total := 0
	reps := 0
	for i := 0; i+6 <= len(b); i += 3 {
		total++
		if b[i] == b[i+3] && b[i+1] == b[i+4] && b[i+2] == b[i+5] {
			reps++
		}
	}
	if total > 0 && float32(reps)/float32(total) > repRatio {
		f.Repeated = true
	}

	// Unique-byte diversity.
	var seen [256]bool
	uniq := 0
	for _, ch := range b {
		if !seen[ch] {
			seen[ch] = true
			uniq++
		}
	}
	if float32(uniq)/float32(len(b)) < diversityFloor {
		f.Stalled = true
	}

	lo := strings.ToLower(s)
	if strings.Contains(lo, "as an ai") || strings.Contains(lo, "as a language model") {
		f.AITell = true
	}
	return f
}

// #endregion scan
