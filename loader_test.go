package sandhika

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
	return path
}

func TestLoadSandhiRulesCSVRoundTrip(t *testing.T) {
	content := "id,category,left_pattern,right_pattern,result,priority,directions,citation,vedic_only\n" +
		"X1,vowel,अ,अ,आ,10,both,6.1.101,false\n"
	path := writeTempCSV(t, "rules.csv", content)

	rules, err := LoadSandhiRulesCSV(path)
	if err != nil {
		t.Fatalf("LoadSandhiRulesCSV: %v", err)
	}
	if len(rules) != 1 {
		t.Fatalf("len(rules) = %d, want 1", len(rules))
	}
	r := rules[0]
	if r.ID != "X1" || r.Category != CategoryVowel || r.LeftPattern != "अ" || r.Result != "आ" || r.Priority != 10 {
		t.Errorf("parsed rule = %+v, unexpected", r)
	}
	if !r.HasDirection(DirForward) || !r.HasDirection(DirReverse) {
		t.Error("directions=both did not set both DirForward and DirReverse")
	}
	if r.Citation != "6.1.101" {
		t.Errorf("Citation = %q, want 6.1.101", r.Citation)
	}
}

func TestLoadSandhiRulesCSVMissingFileErrors(t *testing.T) {
	if _, err := LoadSandhiRulesCSV(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestLoadInflectionPatternsCSVRoundTrip(t *testing.T) {
	content := "ending,case,number,gender,stem_class,priority\n" +
		"स्य,genitive,singular,masculine,a_stem,10\n" +
		",vocative,singular,masculine,a_stem,9\n"
	path := writeTempCSV(t, "inflections.csv", content)

	patterns, err := LoadInflectionPatternsCSV(path)
	if err != nil {
		t.Fatalf("LoadInflectionPatternsCSV: %v", err)
	}
	if len(patterns) != 2 {
		t.Fatalf("len(patterns) = %d, want 2", len(patterns))
	}
	if patterns[0].Ending != "स्य" || patterns[0].Case != CaseGenitive || patterns[0].StemClass != StemA {
		t.Errorf("patterns[0] = %+v, unexpected", patterns[0])
	}
	if patterns[1].Ending != "" || patterns[1].Case != CaseVocative {
		t.Errorf("patterns[1] = %+v, unexpected", patterns[1])
	}
}

func TestLoadDerivationPatternsCSVRoundTrip(t *testing.T) {
	content := "suffix,kind,category,priority\n" +
		"त्वा,krt,absolutive,8\n" +
		"त्व,taddhita,abstract,7\n"
	path := writeTempCSV(t, "derivations.csv", content)

	patterns, err := LoadDerivationPatternsCSV(path)
	if err != nil {
		t.Fatalf("LoadDerivationPatternsCSV: %v", err)
	}
	if len(patterns) != 2 {
		t.Fatalf("len(patterns) = %d, want 2", len(patterns))
	}
	if patterns[0].Kind != DerivKrt || patterns[1].Kind != DerivTaddhita {
		t.Errorf("patterns = %+v, unexpected kinds", patterns)
	}
}

func TestLoadLexiconCSVSkipsMalformedFrequency(t *testing.T) {
	content := "word,frequency\n" +
		"राम,100\n" +
		"गुरु,not-a-number\n" +
		"अत्र,50\n"
	path := writeTempCSV(t, "lexicon.csv", content)

	lex, err := LoadLexiconCSV(path)
	if err != nil {
		t.Fatalf("LoadLexiconCSV: %v", err)
	}
	if lex.Len() != 2 {
		t.Fatalf("lex.Len() = %d, want 2 (malformed row skipped)", lex.Len())
	}
	if lex.Frequency("राम") != 100 {
		t.Errorf("Frequency(राम) = %d, want 100", lex.Frequency("राम"))
	}
	if lex.Contains("गुरु") {
		t.Error("malformed-frequency row was not skipped")
	}
}

func TestLoadLexiconCSVMissingFileErrors(t *testing.T) {
	if _, err := LoadLexiconCSV(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}
