package sandhika

import "testing"

// Exercises the property-based invariants and end-to-end seed scenarios
// the tokenizer is required to satisfy, independent of the unit tests
// covering each component in isolation.

func TestPropertyReversibility(t *testing.T) {
	e := newTestEngine(t)
	inputs := []string{
		"राम सीता", "रामः अत्र", "रामोऽत्र", "",
		"धर्मक्षेत्रे कुरुक्षेत्रे।", "अ॒", "सुरोत्तमः",
		"2026", "mixed देवनागरी script",
	}
	for _, in := range inputs {
		got := Detokenize(e.Tokenize(in))
		want := Normalize(in)
		if got != want {
			t.Errorf("reversibility failed for %q: got %q, want %q", in, got, want)
		}
	}
}

func TestPropertyPartition(t *testing.T) {
	e := newTestEngine(t)
	input := "धर्मक्षेत्रे कुरुक्षेत्रे।"
	normalized := Normalize(input)
	tokens := e.Tokenize(input)

	var concatenated string
	for _, tok := range tokens {
		concatenated += tok.Text
	}
	if concatenated != normalized {
		t.Errorf("tokens do not partition the input: got %q, want %q", concatenated, normalized)
	}
}

func TestPropertyIdempotence(t *testing.T) {
	for _, s := range []string{"रामः अत्र", "", "abc123"} {
		if Normalize(Normalize(s)) != Normalize(s) {
			t.Errorf("Normalize is not idempotent for %q", s)
		}
	}
}

func TestPropertyDeterminism(t *testing.T) {
	e := newTestEngine(t)
	input := "रामात्र गुरुः सुरोत्तमः"

	first := e.Tokenize(input)
	second := e.Tokenize(input)

	if len(first) != len(second) {
		t.Fatalf("Tokenize is non-deterministic: got %d and %d tokens", len(first), len(second))
	}
	for i := range first {
		if first[i].Text != second[i].Text || len(first[i].Parts) != len(second[i].Parts) {
			t.Errorf("Tokenize is non-deterministic at token %d: %+v vs %+v", i, first[i], second[i])
		}
		for j := range first[i].Parts {
			if first[i].Parts[j] != second[i].Parts[j] {
				t.Errorf("Tokenize is non-deterministic at token %d part %d", i, j)
			}
		}
	}
}

func TestPropertySafeModeTotality(t *testing.T) {
	kb := newTestKB(t)
	lex := NewLexicon(map[string]int64{"राम": 100})
	config := DefaultConfig()
	config.EnableSandhiSplitting = false

	e, err := NewEngine(config, kb, lex)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	inputs := []string{"रामात्र", "सुरोत्तमः", "अज्ञातशब्दः", ""}
	for _, in := range inputs {
		e.Tokenize(in)
	}

	stats := e.Statistics()
	if stats.FallbackCount != 0 {
		t.Errorf("safe-mode (EnableSandhiSplitting=false) produced %d verifier fallbacks, want 0", stats.FallbackCount)
	}
}

func TestPropertyScoreMonotonicity(t *testing.T) {
	kb := newTestKB(t)
	lex := NewLexicon(map[string]int64{"राम": 100, "अत्र": 100})
	weights := ScoreWeights{Rule: 0.4, Freq: 0.3, Grammar: 0.3}

	a := SplitCandidate{Parts: []string{"राम", "अत्र"}, RuleIDs: []string{"VS01"}, Strategy: "rule-reverse"}
	b := SplitCandidate{Parts: []string{"राXम", "अZत्र"}, RuleIDs: []string{""}, Strategy: "lexical-left"}

	scoreA := ScoreCandidate(kb, lex, a, weights, 0, true)
	scoreB := ScoreCandidate(kb, lex, b, weights, 0, true)

	if scoreA.RuleScore < scoreB.RuleScore || scoreA.FreqScore < scoreB.FreqScore || scoreA.GrammarScore < scoreB.GrammarScore {
		t.Skip("candidate A does not dominate candidate B on every component; monotonicity premise not met for this pair")
	}
	if scoreA.Composite <= scoreB.Composite {
		t.Errorf("composite(A)=%v is not > composite(B)=%v despite A dominating on every component", scoreA.Composite, scoreB.Composite)
	}
}

func TestPropertyReJoinability(t *testing.T) {
	kb := newTestKB(t)
	words := []string{"रामात्र", "रामोऽत्र", "सुरोत्तमः"}
	for _, word := range words {
		for _, c := range GenerateCandidates(kb, nil, word, 20, false, testWeights, 0, true) {
			if c.Strategy == "no-split" {
				continue
			}
			joined, ok := JoinCandidate(kb, c)
			if !ok || joined != word {
				t.Errorf("candidate %v for %q does not re-join: got (%q, %v)", c, word, joined, ok)
			}
		}
	}
}

func TestPropertyKBIntegrityAllSandhiRules(t *testing.T) {
	kb := newTestKB(t)
	for _, rule := range kb.SandhiRules {
		if !rule.HasDirection(DirForward) {
			continue
		}
		if _, ok := sandhiApplyForward(rule, representativeLeftWord(rule.LeftPattern), rule.RightPattern); !ok {
			t.Errorf("rule %s fails forward self-application (checked again outside NewKB)", rule.ID)
		}
	}
}

func TestEndToEndE1SimpleSpaceSeparated(t *testing.T) {
	e := newTestEngine(t)
	tokens := e.Tokenize("राम सीता")
	var texts []string
	for _, tok := range tokens {
		texts = append(texts, tok.Text)
	}
	want := []string{"राम", " ", "सीता"}
	if len(texts) != len(want) {
		t.Fatalf("E1: got %v, want %v", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("E1: token %d = %q, want %q", i, texts[i], want[i])
		}
	}
}

func TestEndToEndE4EmptyInput(t *testing.T) {
	e := newTestEngine(t)
	tokens := e.Tokenize("")
	if len(tokens) != 0 {
		t.Errorf("E4: Tokenize(\"\") = %v, want []", tokens)
	}
	if Detokenize(tokens) != "" {
		t.Errorf("E4: Detokenize(Tokenize(\"\")) = %q, want \"\"", Detokenize(tokens))
	}
}

func TestEndToEndE5DandaIsOwnToken(t *testing.T) {
	e := newTestEngine(t)
	tokens := e.Tokenize("धर्मक्षेत्रे कुरुक्षेत्रे।")

	var dandaSeen bool
	var concatenated string
	for _, tok := range tokens {
		concatenated += tok.Text
		if tok.Kind == KindPunctuation && tok.Text == "।" {
			dandaSeen = true
		}
	}
	if !dandaSeen {
		t.Error("E5: daṇḍa did not appear as its own punctuation token")
	}
	if concatenated != Normalize("धर्मक्षेत्रे कुरुक्षेत्रे।") {
		t.Errorf("E5: concatenated tokens = %q, want exact input", concatenated)
	}
}

func TestEndToEndE6VedicAccentPreserved(t *testing.T) {
	e := newTestEngine(t)
	tokens := e.Tokenize("अ॒")
	if len(tokens) != 1 {
		t.Fatalf("E6: got %d tokens, want 1", len(tokens))
	}
	if tokens[0].Kind != KindWord {
		t.Errorf("E6: token Kind = %v, want KindWord", tokens[0].Kind)
	}
	if tokens[0].Text != "अ॒" {
		t.Errorf("E6: token Text = %q, want अ॒", tokens[0].Text)
	}
}
