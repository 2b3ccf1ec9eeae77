package sandhika

import "testing"

func TestAnalyzeInflectionReappendsStemVowel(t *testing.T) {
	kb := newTestKB(t)
	// रामस्य (genitive singular of राम, A-stem masculine, ending स्य) should
	// report a stem of रामअ: the trimmed base "राम" plus the A-stem's
	// inherent अ, per stemVowelSuffix.
	matches := AnalyzeInflection(kb, "रामस्य")
	if len(matches) == 0 {
		t.Fatal("AnalyzeInflection(रामस्य) found no matches")
	}
	var found bool
	for _, m := range matches {
		if m.Pattern.StemClass == StemA && m.Stem == "रामअ" {
			found = true
		}
	}
	if !found {
		t.Errorf("AnalyzeInflection(रामस्य) = %+v, want an A-stem match with Stem=रामअ", matches)
	}
}

func TestAnalyzeInflectionZeroEndingVocativeKeepsBareStem(t *testing.T) {
	kb := newTestKB(t)
	matches := AnalyzeInflection(kb, "राम")
	var found bool
	for _, m := range matches {
		if m.Pattern.Ending == "" && m.Pattern.Case == CaseVocative {
			if m.Stem != "राम" {
				t.Errorf("zero-ending vocative Stem = %q, want राम (no vowel re-append)", m.Stem)
			}
			found = true
		}
	}
	if !found {
		t.Error("AnalyzeInflection(राम) did not surface the zero-ending vocative singular pattern")
	}
}

func TestAnalyzeInflectionNilKBIsNil(t *testing.T) {
	if got := AnalyzeInflection(nil, "राम"); got != nil {
		t.Errorf("AnalyzeInflection(nil kb) = %v, want nil", got)
	}
}

func TestAnalyzeInflectionEmptyWordIsNil(t *testing.T) {
	kb := newTestKB(t)
	if got := AnalyzeInflection(kb, ""); got != nil {
		t.Errorf("AnalyzeInflection(empty word) = %v, want nil", got)
	}
}

func TestStemVowelSuffixTable(t *testing.T) {
	cases := map[StemClass]string{
		StemA:           "अ",
		StemAA:          "आ",
		StemI:           "इ",
		StemII:          "ई",
		StemU:           "उ",
		StemUU:          "ऊ",
		StemR:           "ऋ",
		StemConsonant:   "",
		StemUnspecified: "",
	}
	for sc, want := range cases {
		if got := stemVowelSuffix(sc); got != want {
			t.Errorf("stemVowelSuffix(%v) = %q, want %q", sc, got, want)
		}
	}
}
