package sandhika

import "testing"

func TestClassifyRune(t *testing.T) {
	cases := []struct {
		r    rune
		want CharClass
	}{
		{'अ', ClassVowel},
		{'ा', ClassMatra},
		{'क', ClassConsonant},
		{'्', ClassVirama},
		{'ं', ClassAnusvara},
		{'ः', ClassVisarga},
		{'ऽ', ClassAvagraha},
		{'॑', ClassVedicAccent},
		{'।', ClassDanda},
		{'०', ClassDigit},
		{' ', ClassWhitespace},
		{'a', ClassOther},
	}
	for _, c := range cases {
		if got := ClassifyRune(c.r); got != c.want {
			t.Errorf("ClassifyRune(%q) = %s, want %s", c.r, got, c.want)
		}
	}
}

func TestTokenKindWordClassMembership(t *testing.T) {
	word := []CharClass{ClassConsonant, ClassVowel, ClassMatra, ClassVirama, ClassAnusvara, ClassVisarga, ClassAvagraha}
	for _, c := range word {
		if got := tokenKind(c, false); got != KindWord {
			t.Errorf("tokenKind(%s, false) = %s, want word", c, got)
		}
	}
}

func TestTokenKindVedicAccentGated(t *testing.T) {
	if got := tokenKind(ClassVedicAccent, true); got != KindWord {
		t.Errorf("tokenKind(vedic-accent, preserve=true) = %s, want word", got)
	}
	if got := tokenKind(ClassVedicAccent, false); got == KindWord {
		t.Errorf("tokenKind(vedic-accent, preserve=false) = %s, want non-word", got)
	}
}

func TestTokenKindDandaAndDigit(t *testing.T) {
	if got := tokenKind(ClassDanda, false); got != KindPunctuation {
		t.Errorf("tokenKind(danda) = %s, want punctuation", got)
	}
	if got := tokenKind(ClassDigit, false); got != KindDigit {
		t.Errorf("tokenKind(digit) = %s, want digit", got)
	}
	if got := tokenKind(ClassWhitespace, false); got != KindWhitespace {
		t.Errorf("tokenKind(whitespace) = %s, want whitespace", got)
	}
}
