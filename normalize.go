package sandhika

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Normalize applies Unicode canonical composition (NFC) to text, mirroring
// the teacher's Atone/Deramise normalizers but targeting Devanagari rather
// than Latin: this is the only content transformation the engine performs
// before segmentation, and all subsequent byte offsets are measured against
// its output. Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	return norm.NFC.String(text)
}

// RawToken is a half-open span [Start, End) over a normalized input string,
// tagged with the coarse class used to decide whether sandhi splitting
// applies. Spans returned by SegmentRaw partition the input exactly: no
// gaps, no overlap, and their Text fields concatenate back to the input.
type RawToken struct {
	Start, End int
	Kind       RawTokenKind
	Text       string
}

// SegmentRaw walks normalized (already-NFC) text and produces the sequence
// of RawTokens used by the tokenizer orchestrator (spec §4.1's
// "Whitespace/punctuation segmentation"). Runs of code points mapping to
// the same RawTokenKind are coalesced into a single RawToken; whitespace,
// daṇḍa/double-daṇḍa, digits, and "other" code points are never coalesced
// with word-class runs.
func SegmentRaw(normalized string, preserveVedicAccents bool) []RawToken {
	if normalized == "" {
		return nil
	}

	var tokens []RawToken
	runStart := -1
	runKind := KindOther

	flush := func(end int) {
		if runStart < 0 {
			return
		}
		tokens = append(tokens, RawToken{
			Start: runStart,
			End:   end,
			Kind:  runKind,
			Text:  normalized[runStart:end],
		})
		runStart = -1
	}

	i := 0
	for i < len(normalized) {
		r, size := utf8.DecodeRuneInString(normalized[i:])
		kind := tokenKind(ClassifyRune(r), preserveVedicAccents)

		if runStart >= 0 && kind != runKind {
			flush(i)
		}
		if runStart < 0 {
			runStart = i
			runKind = kind
		}
		i += size
	}
	flush(len(normalized))

	return tokens
}
