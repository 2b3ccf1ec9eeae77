package sandhika

import "testing"

var testWeights = ScoreWeights{Rule: 0.40, Freq: 0.30, Grammar: 0.30}

func TestGenerateCandidatesAlwaysIncludesNoSplit(t *testing.T) {
	// Uncapped (maxCandidates 0): the no-split candidate always enters the
	// pool, but a cap may drop it by composite score like any other
	// candidate (see TestGenerateCandidatesCapKeepsHighestComposite).
	kb := newTestKB(t)
	cands := GenerateCandidates(kb, nil, "रामात्र", 0, false, testWeights, 0, true)
	if !hasNoSplitIn(cands) {
		t.Fatal("GenerateCandidates did not include the no-split candidate")
	}
}

func TestGenerateCandidatesDeduplicates(t *testing.T) {
	kb := newTestKB(t)
	cands := GenerateCandidates(kb, nil, "रामात्र", 0, false, testWeights, 0, true)
	seen := make(map[string]bool)
	for _, c := range cands {
		k := c.key()
		if seen[k] {
			t.Fatalf("duplicate candidate key %q in GenerateCandidates output", k)
		}
		seen[k] = true
	}
}

func TestGenerateCandidatesRespectsCap(t *testing.T) {
	kb := newTestKB(t)
	cands := GenerateCandidates(kb, nil, "रामात्र", 1, false, testWeights, 0, true)
	if len(cands) != 1 {
		t.Fatalf("len(cands) = %d, want 1", len(cands))
	}
}

func TestGenerateCandidatesFindsRuleReverseSplit(t *testing.T) {
	kb := newTestKB(t)
	cands := GenerateCandidates(kb, nil, "रामात्र", 20, false, testWeights, 0, true)

	var found bool
	for _, c := range cands {
		if c.Strategy == "rule-reverse" && len(c.Parts) == 2 && c.Parts[0] == "राम" && c.Parts[1] == "अत्र" {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("GenerateCandidates(रामात्र) did not surface the राम+अत्र rule-reverse split; got %v", cands)
	}
}

func TestGenerateCandidatesVedicOnlyRuleGatedByMode(t *testing.T) {
	kb := newTestKB(t)
	withoutVedic := GenerateCandidates(kb, nil, "रामात्र", 50, false, testWeights, 0, true)
	withVedic := GenerateCandidates(kb, nil, "रामात्र", 50, true, testWeights, 0, true)
	if len(withVedic) < len(withoutVedic) {
		t.Errorf("enabling vedicMode produced fewer candidates (%d) than disabling it (%d)", len(withVedic), len(withoutVedic))
	}
}

func TestGenerateCandidatesCapKeepsHighestComposite(t *testing.T) {
	// रामात्र yields the no-split candidate plus the rule-reverse राम+अत्र
	// split (licensed by VS01, priority 10), among other rule-driven splits.
	// With a cap of 1 and no-split scoring below the rule-driven split on
	// every weighting that favors rule_score, truncating in insertion order
	// would have kept the no-split candidate and truncating in key order a
	// visarga-initial split such as "ः+रामात्र|VIS14"; composite-order
	// truncation must keep the rule-driven split.
	kb := newTestKB(t)
	lex := NewLexicon(map[string]int64{"राम": 100, "अत्र": 100})
	cands := GenerateCandidates(kb, lex, "रामात्र", 1, false, testWeights, 0, true)
	if len(cands) != 1 {
		t.Fatalf("len(cands) = %d, want 1", len(cands))
	}
	if cands[0].Strategy != "rule-reverse" {
		t.Errorf("GenerateCandidates capped to 1 kept %v, want the higher-scoring rule-reverse split", cands[0])
	}
}

func TestLexicalGreedyEmptyLexiconFails(t *testing.T) {
	if _, ok := lexicalGreedy(nil, "रामात्र", true); ok {
		t.Error("lexicalGreedy(nil lexicon) unexpectedly succeeded")
	}
	empty := NewLexicon(nil)
	if _, ok := lexicalGreedy(empty, "रामात्र", true); ok {
		t.Error("lexicalGreedy(empty lexicon) unexpectedly succeeded")
	}
}

func TestLexicalGreedyLeftPrefersAttestedPrefix(t *testing.T) {
	lex := NewLexicon(map[string]int64{"राम": 10, "अत्र": 10})
	c, ok := lexicalGreedy(lex, "रामअत्र", true)
	if !ok {
		t.Fatal("lexicalGreedy(left) failed on a fully attested concatenation")
	}
	if len(c.Parts) != 2 || c.Parts[0] != "राम" || c.Parts[1] != "अत्र" {
		t.Errorf("lexicalGreedy(left) = %v, want [राम अत्र]", c.Parts)
	}
}
