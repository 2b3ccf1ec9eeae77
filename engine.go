package sandhika

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Token is one unit of a tokenized text: a word (possibly sandhi-split
// into Parts), or a preserved whitespace/punctuation/digit/other span.
// With Config.PreserveWhitespace set, concatenating every Token.Text in
// order reproduces Normalize(input) exactly (spec §4.1/§4.9's
// reversibility invariant), independent of how Parts subdivides a word
// token; with it unset, each whitespace run becomes a single space.
type Token struct {
	Kind    RawTokenKind
	Text    string
	Parts   []string
	RuleIDs []string
	Score   Score
}

// WordAnalysis is AnalyzeWord's report on a single word: its winning
// split plus every inflection/derivation match found on its last part,
// exposed for diagnostics even though the Scorer only consults match
// presence, not this full detail (SUPPLEMENTED FEATURES #3).
type WordAnalysis struct {
	Word        string
	Candidates  []SplitCandidate
	Chosen      SplitCandidate
	Score       Score
	Inflections []InflectionMatch
	Derivations []DerivationMatch
}

// Statistics is a point-in-time snapshot of engine activity, per §7.
type Statistics struct {
	TotalCalls        int64
	FallbackCount     int64
	AverageCandidates float64
	RuleMatchCounts   map[string]int64
	DictionarySize    int
	SandhiRulesCount  int
}

// Engine is the tokenizer orchestrator of spec §4.7: it wires the
// Normalizer, KB, Lexicon, Splitter, Scorer and Verifier into the public
// Tokenize/Detokenize/AnalyzeWord/Statistics API of §6.
type Engine struct {
	config   Config
	kb       *KB
	lex      *Lexicon
	verifier *Verifier
}

// NewEngine constructs an Engine. kb must be non-nil (built via NewKB);
// lex may be nil, in which case freq_score and lexical-scan candidates
// degrade gracefully per §4.9. Returns a *ConfigError if config is
// invalid.
func NewEngine(config Config, kb *KB, lex *Lexicon) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if kb == nil {
		return nil, &ConfigError{Field: "KB", Msg: "must not be nil"}
	}

	reg := config.Registerer
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	return &Engine{
		config:   config,
		kb:       kb,
		lex:      lex,
		verifier: NewVerifier(config.Logger, reg),
	}, nil
}

// Tokenize normalizes text and splits it into Tokens, applying sandhi
// splitting to word spans when Config.EnableSandhiSplitting is set.
func (e *Engine) Tokenize(text string) []Token {
	normalized := Normalize(text)
	raw := SegmentRaw(normalized, e.config.PreserveVedicAccents)

	tokens := make([]Token, 0, len(raw))
	for _, span := range raw {
		if span.Kind != KindWord {
			tokens = append(tokens, e.nonWordToken(span))
			continue
		}
		tokens = append(tokens, e.tokenizeWord(span.Text))
	}
	return tokens
}

func (e *Engine) nonWordToken(span RawToken) Token {
	text := span.Text
	if span.Kind == KindWhitespace && !e.config.PreserveWhitespace {
		text = " "
	}
	return Token{Kind: span.Kind, Text: text, Parts: []string{text}}
}

func (e *Engine) tokenizeWord(word string) Token {
	analysis := e.analyze(word)
	e.verifier.recordCandidateCount(len(analysis.Candidates))

	verified := e.verifier.Verify(e.kb, word, analysis.Chosen)
	return Token{
		Kind:    KindWord,
		Text:    word,
		Parts:   verified.Parts,
		RuleIDs: verified.RuleIDs,
		Score:   analysis.Score,
	}
}

// analyze runs candidate generation and scoring for word without the
// Verifier's round-trip enforcement, shared by Tokenize and AnalyzeWord.
func (e *Engine) analyze(word string) WordAnalysis {
	var candidates []SplitCandidate
	if e.config.EnableSandhiSplitting {
		candidates = GenerateCandidates(e.kb, e.lex, word, e.config.MaxCandidates, e.config.VedicMode, e.config.Weights, e.config.FrequencyReference, e.config.EnableDerivationAnalysis)
	} else {
		candidates = []SplitCandidate{SafeSplit(word)}
	}

	chosen, score := Best(e.kb, e.lex, candidates, e.config.Weights, e.config.FrequencyReference, e.config.EnableDerivationAnalysis)

	last := chosen.Parts[len(chosen.Parts)-1]
	inflections := AnalyzeInflection(e.kb, last)
	var derivations []DerivationMatch
	if e.config.EnableDerivationAnalysis {
		derivations = AnalyzeDerivation(e.kb, last)
	}

	return WordAnalysis{
		Word:        word,
		Candidates:  candidates,
		Chosen:      chosen,
		Score:       score,
		Inflections: inflections,
		Derivations: derivations,
	}
}

// AnalyzeWord exposes the full candidate/scoring/analysis detail for a
// single word, for diagnostics and testing (spec §6's introspection
// surface). Unlike Tokenize, it does not run the Verifier: callers get the
// raw Scorer output, including candidates that would have been rejected.
func (e *Engine) AnalyzeWord(word string) WordAnalysis {
	return e.analyze(word)
}

// Detokenize reconstructs the original normalized text from tokens
// produced by Tokenize. It is a plain concatenation of each token's Text:
// the reversibility invariant lives in how Tokenize populates Text, not in
// Detokenize itself.
func Detokenize(tokens []Token) string {
	out := ""
	for _, t := range tokens {
		out += t.Text
	}
	return out
}

// Statistics returns a snapshot of engine activity since construction.
func (e *Engine) Statistics() Statistics {
	totalCalls, fallbackCount, avgCandidates, ruleMatches := e.verifier.snapshot()
	return Statistics{
		TotalCalls:        totalCalls,
		FallbackCount:     fallbackCount,
		AverageCandidates: avgCandidates,
		RuleMatchCounts:   ruleMatches,
		DictionarySize:    e.lex.Len(),
		SandhiRulesCount:  len(e.kb.SandhiRules),
	}
}
