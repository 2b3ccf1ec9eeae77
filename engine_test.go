package sandhika

import "testing"

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	kb := newTestKB(t)
	lex := NewLexicon(map[string]int64{"राम": 100, "अत्र": 80, "गुरुः": 50, "गच्छति": 60})
	e, err := NewEngine(DefaultConfig(), kb, lex)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestTokenizeDetokenizeRoundTrips(t *testing.T) {
	e := newTestEngine(t)
	inputs := []string{
		"रामात्र",
		"रामः आगच्छति।",
		"",
		"गुरुः  शिष्यं  वदति॥",
		"2026 साल",
	}
	for _, in := range inputs {
		tokens := e.Tokenize(in)
		got := Detokenize(tokens)
		want := Normalize(in)
		if got != want {
			t.Errorf("Tokenize/Detokenize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTokenizeEmptyInputProducesNoTokens(t *testing.T) {
	e := newTestEngine(t)
	if tokens := e.Tokenize(""); len(tokens) != 0 {
		t.Errorf("Tokenize(\"\") = %v, want empty", tokens)
	}
}

func TestTokenizeWordTokenCarriesParts(t *testing.T) {
	e := newTestEngine(t)
	tokens := e.Tokenize("रामात्र")
	if len(tokens) != 1 {
		t.Fatalf("Tokenize(रामात्र) produced %d tokens, want 1", len(tokens))
	}
	tok := tokens[0]
	if tok.Kind != KindWord {
		t.Errorf("token Kind = %v, want KindWord", tok.Kind)
	}
	if len(tok.Parts) == 0 {
		t.Error("word token has no Parts")
	}
}

func TestAnalyzeWordDoesNotRunVerifier(t *testing.T) {
	e := newTestEngine(t)
	analysis := e.AnalyzeWord("रामात्र")
	if analysis.Word != "रामात्र" {
		t.Errorf("AnalyzeWord.Word = %q, want रामात्र", analysis.Word)
	}
	if len(analysis.Candidates) == 0 {
		t.Error("AnalyzeWord produced no candidates")
	}
	if len(analysis.Chosen.Parts) == 0 {
		t.Error("AnalyzeWord.Chosen has no parts")
	}
}

func TestStatisticsReflectsTokenizeCalls(t *testing.T) {
	e := newTestEngine(t)
	e.Tokenize("रामात्र गुरुः")

	stats := e.Statistics()
	if stats.TotalCalls == 0 {
		t.Error("Statistics().TotalCalls = 0 after tokenizing word tokens")
	}
	if stats.SandhiRulesCount != 130 {
		t.Errorf("Statistics().SandhiRulesCount = %d, want 130", stats.SandhiRulesCount)
	}
	if stats.DictionarySize != 4 {
		t.Errorf("Statistics().DictionarySize = %d, want 4", stats.DictionarySize)
	}
}

func TestNewEngineRejectsNilKB(t *testing.T) {
	if _, err := NewEngine(DefaultConfig(), nil, nil); err == nil {
		t.Fatal("expected error for nil KB, got nil")
	}
}

func TestNewEngineRejectsInvalidConfig(t *testing.T) {
	kb := newTestKB(t)
	bad := DefaultConfig()
	bad.MaxCandidates = 0
	if _, err := NewEngine(bad, kb, nil); err == nil {
		t.Fatal("expected error for invalid config, got nil")
	}
}

func TestEngineWithNilLexiconStillTokenizes(t *testing.T) {
	kb := newTestKB(t)
	e, err := NewEngine(DefaultConfig(), kb, nil)
	if err != nil {
		t.Fatalf("NewEngine with nil lexicon: %v", err)
	}
	tokens := e.Tokenize("रामात्र")
	if Detokenize(tokens) != Normalize("रामात्र") {
		t.Error("Tokenize/Detokenize with a nil lexicon did not round-trip")
	}
}
