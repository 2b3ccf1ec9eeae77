package sandhika

import "testing"

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"रामः आगच्छति", "गुरुः", "", "hello world"}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}

func TestSegmentRawPartitionsExactly(t *testing.T) {
	input := Normalize("रामः  आगच्छति।")
	tokens := SegmentRaw(input, false)

	var reassembled string
	for i, tok := range tokens {
		if tok.Text != input[tok.Start:tok.End] {
			t.Errorf("token %d: Text %q does not match span [%d:%d) = %q", i, tok.Text, tok.Start, tok.End, input[tok.Start:tok.End])
		}
		reassembled += tok.Text
	}
	if reassembled != input {
		t.Errorf("reassembled tokens = %q, want %q", reassembled, input)
	}

	if len(tokens) == 0 {
		t.Fatal("expected at least one token")
	}
	if tokens[0].Start != 0 {
		t.Errorf("first token Start = %d, want 0", tokens[0].Start)
	}
	if tokens[len(tokens)-1].End != len(input) {
		t.Errorf("last token End = %d, want %d", tokens[len(tokens)-1].End, len(input))
	}
}

func TestSegmentRawEmptyInput(t *testing.T) {
	if toks := SegmentRaw("", false); toks != nil {
		t.Errorf("SegmentRaw(\"\") = %v, want nil", toks)
	}
}

func TestSegmentRawClassifiesDanda(t *testing.T) {
	tokens := SegmentRaw("राम।", false)
	var sawDanda bool
	for _, tok := range tokens {
		if tok.Kind == KindPunctuation {
			sawDanda = true
		}
	}
	if !sawDanda {
		t.Error("expected a punctuation token for the daṇḍa")
	}
}
