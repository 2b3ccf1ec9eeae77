package sandhika

import "math"

// Score is the breakdown the Scorer produces for one SplitCandidate, per
// §4.6: three components plus the weighted composite.
type Score struct {
	RuleScore    float64
	FreqScore    float64
	GrammarScore float64
	Composite    float64
}

// ScoreCandidate computes the composite score of §4.6 for candidate,
// weighted by weights. lex may be nil (freq_score then degrades to 0);
// enableDerivation gates whether a derivation match contributes to
// grammar_score, mirroring Config.EnableDerivationAnalysis.
func ScoreCandidate(kb *KB, lex *Lexicon, candidate SplitCandidate, weights ScoreWeights, freqReference float64, enableDerivation bool) Score {
	rule := ruleScore(kb, candidate)
	freq := freqScore(lex, candidate, freqReference)
	grammar := grammarScore(kb, candidate, enableDerivation)

	composite := weights.Rule*rule + weights.Freq*freq + weights.Grammar*grammar
	return Score{RuleScore: rule, FreqScore: freq, GrammarScore: grammar, Composite: composite}
}

// ruleScore averages the priority (scaled to [0,1]) of every sandhi rule
// used by candidate's boundaries. A candidate with no rule-attributed
// boundary falls back to a fixed baseline: 0.5 for the no-split candidate
// (the documented penalty for proposing no sandhi rule at all), 0.4 for a
// lexical-scan candidate (plausible but unconfirmed by the grammar).
func ruleScore(kb *KB, candidate SplitCandidate) float64 {
	var priorities []int
	for _, id := range candidate.RuleIDs {
		if id == "" {
			continue
		}
		if rule, ok := kb.RuleByID(id); ok {
			priorities = append(priorities, rule.Priority)
		}
	}
	if len(priorities) == 0 {
		if candidate.Strategy == "no-split" {
			return 0.5
		}
		return 0.4
	}
	sum := 0
	for _, p := range priorities {
		sum += p
	}
	return float64(sum) / float64(len(priorities)) / 10.0
}

// freqScore is the geometric mean, over candidate's parts, of each part's
// lexicon frequency normalized against freqReference (or the lexicon's own
// max frequency when freqReference is 0). Any part with zero attested
// frequency collapses the geometric mean to 0: an unattested fragment
// should not be rescued by its attested neighbors.
func freqScore(lex *Lexicon, candidate SplitCandidate, freqReference float64) float64 {
	if lex == nil || lex.Len() == 0 {
		return 0
	}
	reference := freqReference
	if reference <= 0 {
		reference = float64(lex.MaxFrequency())
	}
	if reference <= 0 {
		return 0
	}

	logSum := 0.0
	for _, part := range candidate.Parts {
		f := float64(lex.Frequency(part))
		if f <= 0 {
			return 0
		}
		normalized := f / reference
		if normalized > 1 {
			normalized = 1
		}
		logSum += math.Log(normalized)
	}
	n := float64(len(candidate.Parts))
	return math.Exp(logSum / n)
}

// grammarScore adds the five 0.2 contributions of spec §4.6 (mirroring the
// original's _calculate_grammar_score): an inflection match on the left
// part, an inflection match on the right part, a derivation match on the
// left part, a derivation match on the right part (when derivation
// analysis is enabled), and a bonus if both sides carry at least one
// grammar match of either kind. A candidate's "sides" are its first and
// last parts; for a no-split candidate (one part) left and right are the
// same word. Capped at 1.0, though the five contributions already sum to
// at most 1.0 by construction.
func grammarScore(kb *KB, candidate SplitCandidate, enableDerivation bool) float64 {
	if kb == nil || len(candidate.Parts) == 0 {
		return 0
	}
	left := candidate.Parts[0]
	right := candidate.Parts[len(candidate.Parts)-1]

	leftInflection := len(AnalyzeInflection(kb, left)) > 0
	rightInflection := len(AnalyzeInflection(kb, right)) > 0

	var leftDerivation, rightDerivation bool
	if enableDerivation {
		leftDerivation = len(AnalyzeDerivation(kb, left)) > 0
		rightDerivation = len(AnalyzeDerivation(kb, right)) > 0
	}

	sum := 0.0
	if leftInflection {
		sum += 0.2
	}
	if rightInflection {
		sum += 0.2
	}
	if leftDerivation {
		sum += 0.2
	}
	if rightDerivation {
		sum += 0.2
	}
	if (leftInflection || leftDerivation) && (rightInflection || rightDerivation) {
		sum += 0.2
	}
	return math.Min(sum, 1.0)
}

// Best returns the highest-scoring candidate among candidates, breaking
// ties deterministically per spec §4.6: fewer parts first, then higher
// rule_score, then lexicographically smaller join of parts.
func Best(kb *KB, lex *Lexicon, candidates []SplitCandidate, weights ScoreWeights, freqReference float64, enableDerivation bool) (SplitCandidate, Score) {
	var bestCandidate SplitCandidate
	var bestScore Score
	haveBest := false

	for _, c := range candidates {
		s := ScoreCandidate(kb, lex, c, weights, freqReference, enableDerivation)
		if !haveBest || better(c, s, bestCandidate, bestScore) {
			bestCandidate, bestScore, haveBest = c, s, true
		}
	}
	return bestCandidate, bestScore
}

func better(c SplitCandidate, s Score, best SplitCandidate, bestScore Score) bool {
	if s.Composite != bestScore.Composite {
		return s.Composite > bestScore.Composite
	}
	if len(c.Parts) != len(best.Parts) {
		return len(c.Parts) < len(best.Parts)
	}
	if s.RuleScore != bestScore.RuleScore {
		return s.RuleScore > bestScore.RuleScore
	}
	return c.key() < best.key()
}
