package sandhika

import "strings"

// DerivationMatch is one pratyaya (derivational suffix) recognized on a
// word, with a confidence derived from the pattern's priority.
type DerivationMatch struct {
	Word       string
	Stem       string
	Pattern    DerivationPattern
	Confidence float64
}

// AnalyzeDerivation finds every registered pratyaya suffix that matches a
// suffix of word, longest suffix first, mirroring AnalyzeInflection's
// policy (and pratyaya_analyzer.py's analyze()).
func AnalyzeDerivation(kb *KB, word string) []DerivationMatch {
	if kb == nil || word == "" {
		return nil
	}

	var matches []DerivationMatch
	for _, suffix := range kb.DerivationSuffixes() {
		if !strings.HasSuffix(word, suffix) {
			continue
		}
		stem := strings.TrimSuffix(word, suffix)
		if len([]rune(stem)) < 2 {
			// pratyaya_analyzer.py's analyze() discards a match whose base
			// is shorter than two code points: too little of the word
			// survives the suffix for the base to be a plausible root.
			continue
		}
		for _, pattern := range kb.DerivationsForSuffix(suffix) {
			matches = append(matches, DerivationMatch{
				Word:       word,
				Stem:       stem,
				Pattern:    pattern,
				Confidence: float64(pattern.Priority) / 10.0,
			})
		}
	}
	return matches
}
