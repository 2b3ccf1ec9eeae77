package sandhika

import (
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// ScoreWeights are the composite scorer's weights over rule_score,
// freq_score and grammar_score (§4.6). They must sum to 1 within 1e-9.
type ScoreWeights struct {
	Rule    float64
	Freq    float64
	Grammar float64
}

// Config configures an Engine. Zero-value Config is not usable directly;
// call DefaultConfig and override what's needed, mirroring the teacher's
// constructor-argument list but as a struct since SPEC_FULL carries more
// knobs than collatinus.New(dataDir) does.
type Config struct {
	// PreserveWhitespace keeps original whitespace runs verbatim in
	// Detokenize output instead of normalizing runs to a single space.
	PreserveWhitespace bool

	// PreserveVedicAccents treats Vedic accent marks as word-internal
	// characters instead of stripping them from the word class.
	PreserveVedicAccents bool

	// EnableSandhiSplitting turns on the Sandhi Splitter (§4.5). When
	// false, each word token is emitted unsplit.
	EnableSandhiSplitting bool

	// EnableDerivationAnalysis turns on the Derivation Analyzer's
	// contribution to grammar_score and to AnalyzeWord's report.
	EnableDerivationAnalysis bool

	// VedicMode admits VedicOnly sandhi rules into candidate generation.
	VedicMode bool

	// MaxCandidates caps the number of split candidates considered per
	// word before scoring picks a winner. Must be >= 1.
	MaxCandidates int

	// Weights configures the composite scorer. Defaults to 0.40/0.30/0.30.
	Weights ScoreWeights

	// FrequencyReference is the corpus size used to scale freq_score;
	// see §4.6. Zero uses the Lexicon's own max frequency.
	FrequencyReference float64

	// Logger receives structured diagnostic events. Defaults to a
	// disabled logger so library consumers opt in explicitly.
	Logger zerolog.Logger

	// Registerer receives the Verifier's Prometheus collectors. Nil (the
	// default) makes NewEngine create a fresh, private registry so
	// multiple Engines in the same process never collide on duplicate
	// metric registration.
	Registerer prometheus.Registerer
}

// DefaultConfig returns the §6 default configuration.
func DefaultConfig() Config {
	return Config{
		PreserveWhitespace:       true,
		PreserveVedicAccents:     true,
		EnableSandhiSplitting:    true,
		EnableDerivationAnalysis: true,
		VedicMode:                false,
		MaxCandidates:            8,
		Weights: ScoreWeights{
			Rule:    0.40,
			Freq:    0.30,
			Grammar: 0.30,
		},
		FrequencyReference: 0,
		Logger:             zerolog.Nop(),
	}
}

// Validate checks Config for internal consistency, returning a
// *ConfigError describing the first problem found.
func (c Config) Validate() error {
	if c.MaxCandidates < 1 {
		return &ConfigError{Field: "MaxCandidates", Msg: "must be at least 1"}
	}
	sum := c.Weights.Rule + c.Weights.Freq + c.Weights.Grammar
	if math.Abs(sum-1.0) > 1e-9 {
		return &ConfigError{Field: "Weights", Msg: "rule+freq+grammar weights must sum to 1.0"}
	}
	if c.Weights.Rule < 0 || c.Weights.Freq < 0 || c.Weights.Grammar < 0 {
		return &ConfigError{Field: "Weights", Msg: "weights must be non-negative"}
	}
	if c.FrequencyReference < 0 {
		return &ConfigError{Field: "FrequencyReference", Msg: "must be non-negative"}
	}
	return nil
}
