package sandhika

import "strings"

// InflectionMatch is one vibhakti ending recognized on a word, together
// with the pattern it matched and a confidence derived from the pattern's
// priority (SUPPLEMENTED FEATURES #3 in SPEC_FULL.md).
type InflectionMatch struct {
	Word       string
	Stem       string
	Pattern    InflectionPattern
	Confidence float64
}

// AnalyzeInflection finds every registered vibhakti ending that matches a
// suffix of word, longest ending first (spec.md's longest-match-first
// policy). All matches are returned, not just the longest: a shorter
// ending occasionally also legitimately applies to the same stem under a
// different case/gender/number combination, and callers (the Scorer's
// grammar_score) only need presence, not a single winner.
func AnalyzeInflection(kb *KB, word string) []InflectionMatch {
	if kb == nil || word == "" {
		return nil
	}

	var matches []InflectionMatch
	for _, ending := range kb.InflectionEndings() {
		if !strings.HasSuffix(word, ending) {
			continue
		}
		raw := strings.TrimSuffix(word, ending)
		for _, pattern := range kb.InflectionsForEnding(ending) {
			stem := raw
			if ending != "" {
				// A zero ending means the case form already equals the bare
				// stem (extract_stem's own special case): there is nothing
				// trimmed to grow back.
				stem = raw + stemVowelSuffix(pattern.StemClass)
			}
			matches = append(matches, InflectionMatch{
				Word:       word,
				Stem:       stem,
				Pattern:    pattern,
				Confidence: float64(pattern.Priority) / 10.0,
			})
		}
	}
	return matches
}

// stemVowelSuffix is the inherent stem vowel a trimmed ending leaves
// behind, re-appended so Stem names the actual nominal stem rather than a
// bare consonant cluster. Ports VibhaktiPattern.extract_stem's stem_type
// switch from vibhakti_analyzer.py: a-stems end in the inherent "अ" a
// consonant-final trim already drops, ā/i/ī/u/ū/ṛ-stems likewise lose
// their final long/short vowel when an ending beginning with that vowel
// is trimmed, and consonant stems (and StemUnspecified) get nothing back.
func stemVowelSuffix(sc StemClass) string {
	switch sc {
	case StemA:
		return "अ"
	case StemAA:
		return "आ"
	case StemI:
		return "इ"
	case StemII:
		return "ई"
	case StemU:
		return "उ"
	case StemUU:
		return "ऊ"
	case StemR:
		return "ऋ"
	default:
		return ""
	}
}
