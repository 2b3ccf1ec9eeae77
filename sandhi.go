package sandhika

import (
	"fmt"
	"sort"
	"strings"
)

// maxSplitDepth bounds how many nested rule-driven boundaries the splitter
// will chase down one side of a word. Real compounds rarely stack more
// than two or three sandhi junctions; without a cap, recursive candidate
// generation on a long compound grows combinatorially for no benefit the
// Scorer would ever surface.
const maxSplitDepth = 3

// maxLexicalParts bounds how many parts a lexical-scan strategy will
// produce before giving up, so an empty or sparse lexicon degrades to
// short candidate lists instead of a run of single-rune fragments.
const maxLexicalParts = 6

// SplitCandidate is one proposed decomposition of a word into parts, each
// adjacent pair optionally attributed to the sandhi rule that licensed it.
// RuleIDs has len(Parts)-1 entries; an empty string means the boundary was
// proposed by a lexical scan rather than a specific rule.
type SplitCandidate struct {
	Parts    []string
	RuleIDs  []string
	Strategy string
}

func (c SplitCandidate) key() string {
	return strings.Join(c.Parts, "+") + "|" + strings.Join(c.RuleIDs, ",")
}

// GenerateCandidates runs the four strategies of spec §4.5 over word and
// returns the deduplicated, re-joinability-checked candidate pool, scored
// and capped at maxCandidates by composite score (highest first), per
// §4.5's "sort by composite score and keep the top N". The no-split
// candidate always enters the pool before capping, but a cap below the
// pool size can drop it like any other low-scoring candidate: totality
// does not depend on it surviving here, since the Verifier falls back to
// SafeSplit independently of what the Splitter proposed.
func GenerateCandidates(kb *KB, lex *Lexicon, word string, maxCandidates int, vedicMode bool, weights ScoreWeights, freqReference float64, enableDerivation bool) []SplitCandidate {
	seen := make(map[string]bool)
	var out []SplitCandidate

	add := func(c SplitCandidate) {
		k := c.key()
		if seen[k] {
			return
		}
		seen[k] = true
		out = append(out, c)
	}

	add(SplitCandidate{Parts: []string{word}, Strategy: "no-split"})

	for _, c := range ruleDrivenCandidates(kb, word, vedicMode) {
		add(c)
	}
	if c, ok := lexicalGreedy(lex, word, true); ok {
		add(c)
	}
	if c, ok := lexicalGreedy(lex, word, false); ok {
		add(c)
	}

	type scored struct {
		candidate SplitCandidate
		composite float64
	}
	ranked := make([]scored, len(out))
	for i, c := range out {
		ranked[i] = scored{candidate: c, composite: ScoreCandidate(kb, lex, c, weights, freqReference, enableDerivation).Composite}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].composite != ranked[j].composite {
			return ranked[i].composite > ranked[j].composite
		}
		return ranked[i].candidate.key() < ranked[j].candidate.key()
	})
	for i, r := range ranked {
		out[i] = r.candidate
	}

	if maxCandidates > 0 && len(out) > maxCandidates {
		out = out[:maxCandidates]
	}
	return out
}

func hasNoSplitIn(cands []SplitCandidate) bool {
	for _, c := range cands {
		if c.Strategy == "no-split" {
			return true
		}
	}
	return false
}

// ruleDrivenCandidates applies reverse sandhi rules to word, recursively
// re-splitting the left part up to maxSplitDepth, and verifies every
// proposed boundary via sandhiApplyForward before accepting it (the
// re-joinability constraint of spec §4.5).
func ruleDrivenCandidates(kb *KB, word string, vedicMode bool) []SplitCandidate {
	if kb == nil {
		return nil
	}
	return splitOnce(kb, word, vedicMode, maxSplitDepth)
}

func splitOnce(kb *KB, word string, vedicMode bool, depth int) []SplitCandidate {
	var out []SplitCandidate
	if depth <= 0 {
		return out
	}

	for _, length := range kb.ResultLengths() {
		runes := []rune(word)
		if length <= 0 || length > len(runes) {
			continue
		}
		for start := 0; start+length <= len(runes); start++ {
			sub := string(runes[start : start+length])
			candidates := kb.RulesForResult(sub)
			if len(candidates) == 0 {
				continue
			}
			byteStart := len(string(runes[:start]))
			byteEnd := len(string(runes[:start+length]))

			for _, rule := range candidates {
				if rule.VedicOnly && !vedicMode {
					continue
				}
				if !rule.HasDirection(DirReverse) {
					continue
				}
				for _, pair := range sandhiReverseSplitsAt(rule, word, byteStart, byteEnd) {
					if pair.Left == "" || pair.Right == "" {
						continue
					}
					rejoined, ok := sandhiApplyForward(rule, pair.Left, pair.Right)
					if !ok || rejoined != word {
						continue
					}
					out = append(out, SplitCandidate{
						Parts:    []string{pair.Left, pair.Right},
						RuleIDs:  []string{rule.ID},
						Strategy: "rule-reverse",
					})

					for _, sub := range splitOnce(kb, pair.Left, vedicMode, depth-1) {
						parts := append(append([]string{}, sub.Parts...), pair.Right)
						ruleIDs := append(append([]string{}, sub.RuleIDs...), rule.ID)
						out = append(out, SplitCandidate{Parts: parts, RuleIDs: ruleIDs, Strategy: "rule-reverse"})
					}
				}
			}
		}
	}
	return out
}

// sandhiReverseSplitsAt reconstructs the (left, right) pair for a match of
// rule's result known to sit at byte range [byteStart, byteEnd) in word,
// rather than rescanning the whole string as sandhiReverseSplits does.
func sandhiReverseSplitsAt(rule SandhiRule, word string, byteStart, byteEnd int) []splitPair {
	prefix := word[:byteStart]
	suffix := word[byteEnd:]

	var left string
	switch {
	case rule.LeftPattern == "अ":
		left = prefix
	case vowelLeftPatterns[rule.LeftPattern]:
		if matra, ok := vowelToMatra[rule.LeftPattern]; ok {
			left = prefix + matra
		} else {
			left = prefix + rule.LeftPattern
		}
	default:
		left = prefix + rule.LeftPattern
	}
	right := rule.RightPattern + suffix
	return []splitPair{{Left: left, Right: right}}
}

// lexicalGreedy implements the left-greedy (fromLeft=true) or right-greedy
// lexical scan strategy: repeatedly consume the longest lexicon-attested
// substring from one end, recursing on the remainder; after the first part,
// a single rune is consumed where no attested substring starts at that end.
// Returns ok=false if the lexicon is empty, no attested prefix/suffix
// exists at all, the word is not used up within maxLexicalParts parts, or
// fewer than two parts result.
func lexicalGreedy(lex *Lexicon, word string, fromLeft bool) (SplitCandidate, bool) {
	if lex == nil || lex.Len() == 0 {
		return SplitCandidate{}, false
	}

	runes := []rune(word)
	var parts []string
	remaining := runes

	for len(remaining) > 0 && len(parts) < maxLexicalParts {
		matched := false
		for length := len(remaining); length >= 1; length-- {
			var candidate string
			if fromLeft {
				candidate = string(remaining[:length])
			} else {
				candidate = string(remaining[len(remaining)-length:])
			}
			attested := lex.Contains(candidate)
			if attested || length == 1 {
				if !attested && len(parts) == 0 {
					// No prefix (or suffix) of word is attested at all.
					return SplitCandidate{}, false
				}
				parts = append(parts, candidate)
				if fromLeft {
					remaining = remaining[length:]
				} else {
					remaining = remaining[:len(remaining)-length]
				}
				matched = true
				break
			}
		}
		if !matched {
			break
		}
	}

	if len(remaining) > 0 || len(parts) < 2 {
		return SplitCandidate{}, false
	}

	if !fromLeft {
		for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
			parts[i], parts[j] = parts[j], parts[i]
		}
	}

	strategy := "lexical-left"
	if !fromLeft {
		strategy = "lexical-right"
	}
	return SplitCandidate{Parts: parts, RuleIDs: make([]string, len(parts)-1), Strategy: strategy}, true
}

// String renders a candidate for logging.
func (c SplitCandidate) String() string {
	return fmt.Sprintf("%s(%s)", c.Strategy, strings.Join(c.Parts, "+"))
}
