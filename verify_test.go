package sandhika

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

func TestJoinCandidateNoSplitIsIdentity(t *testing.T) {
	kb := newTestKB(t)
	c := SafeSplit("रामात्र")
	got, ok := JoinCandidate(kb, c)
	if !ok || got != "रामात्र" {
		t.Errorf("JoinCandidate(no-split) = (%q, %v), want (रामात्र, true)", got, ok)
	}
}

func TestJoinCandidateAppliesRuleBoundary(t *testing.T) {
	kb := newTestKB(t)
	c := SplitCandidate{Parts: []string{"राम", "अत्र"}, RuleIDs: []string{"VS01"}}
	got, ok := JoinCandidate(kb, c)
	if !ok {
		t.Fatal("JoinCandidate did not apply VS01")
	}
	if want := "रामात्र"; got != want {
		t.Errorf("JoinCandidate = %q, want %q", got, want)
	}
}

func TestJoinCandidateUnknownRuleIDFails(t *testing.T) {
	kb := newTestKB(t)
	c := SplitCandidate{Parts: []string{"राम", "अत्र"}, RuleIDs: []string{"NO-SUCH-RULE"}}
	if _, ok := JoinCandidate(kb, c); ok {
		t.Error("JoinCandidate with an unknown rule id unexpectedly succeeded")
	}
}

func TestJoinCandidateEmptyPartsFails(t *testing.T) {
	kb := newTestKB(t)
	if _, ok := JoinCandidate(kb, SplitCandidate{}); ok {
		t.Error("JoinCandidate on an empty candidate unexpectedly succeeded")
	}
}

func TestVerifyAcceptsRoundTrippingCandidate(t *testing.T) {
	kb := newTestKB(t)
	v := NewVerifier(zerolog.Nop(), prometheus.NewRegistry())

	c := SplitCandidate{Parts: []string{"राम", "अत्र"}, RuleIDs: []string{"VS01"}}
	got := v.Verify(kb, "रामात्र", c)
	if len(got.Parts) != 2 {
		t.Errorf("Verify accepted candidate has %d parts, want 2", len(got.Parts))
	}

	totalCalls, fallbackCount, _, _ := v.snapshot()
	if totalCalls != 1 || fallbackCount != 0 {
		t.Errorf("snapshot = (totalCalls=%d, fallbackCount=%d), want (1, 0)", totalCalls, fallbackCount)
	}
}

func TestVerifyFallsBackOnBadRoundTrip(t *testing.T) {
	kb := newTestKB(t)
	v := NewVerifier(zerolog.Nop(), prometheus.NewRegistry())

	bogus := SplitCandidate{Parts: []string{"राम", "XYZ"}, RuleIDs: []string{""}}
	got := v.Verify(kb, "रामात्र", bogus)
	if got.Strategy != "no-split" || len(got.Parts) != 1 || got.Parts[0] != "रामात्र" {
		t.Errorf("Verify on a bad candidate = %v, want SafeSplit(रामात्र)", got)
	}

	totalCalls, fallbackCount, _, _ := v.snapshot()
	if totalCalls != 1 || fallbackCount != 1 {
		t.Errorf("snapshot = (totalCalls=%d, fallbackCount=%d), want (1, 1)", totalCalls, fallbackCount)
	}
}

func TestVerifyRecordsRuleMatchCounts(t *testing.T) {
	kb := newTestKB(t)
	v := NewVerifier(zerolog.Nop(), prometheus.NewRegistry())

	c := SplitCandidate{Parts: []string{"राम", "अत्र"}, RuleIDs: []string{"VS01"}}
	v.Verify(kb, "रामात्र", c)

	_, _, _, ruleMatches := v.snapshot()
	if ruleMatches["VS01"] != 1 {
		t.Errorf("ruleMatches[VS01] = %d, want 1", ruleMatches["VS01"])
	}
}

func TestSafeSplitAlwaysJoinsToOriginal(t *testing.T) {
	kb := newTestKB(t)
	for _, word := range []string{"रामात्र", "", "गुरुः"} {
		c := SafeSplit(word)
		got, ok := JoinCandidate(kb, c)
		if !ok || got != word {
			t.Errorf("SafeSplit(%q) did not round-trip: got=(%q,%v)", word, got, ok)
		}
	}
}
