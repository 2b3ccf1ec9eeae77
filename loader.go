package sandhika

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadSandhiRulesCSV reads a columnar sandhi-rule table from path and
// returns it as []SandhiRule, ready to feed NewKB alongside the other two
// loaders below. Mirrors the teacher's loadLexicon/loadModels open-then-
// fmt.Errorf-wrap style (loader.go in collatinus), reading encoding/csv
// records instead of collatinus's colon-delimited lines since §6 names
// the on-disk format as columnar.
//
// Columns: id,category,left_pattern,right_pattern,result,priority,
// directions,citation,vedic_only. category is one of vowel/consonant/
// visarga/special; directions is "forward", "reverse" or "both".
func LoadSandhiRulesCSV(path string) ([]SandhiRule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.Comment = '!'

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	rules := make([]SandhiRule, 0, len(records))
	for i, rec := range records {
		if i == 0 && looksLikeHeader(rec) {
			continue
		}
		rule, err := parseSandhiRuleRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", path, i+1, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func parseSandhiRuleRecord(rec []string) (SandhiRule, error) {
	if len(rec) < 7 {
		return SandhiRule{}, fmt.Errorf("expected at least 7 columns, got %d", len(rec))
	}
	priority, err := strconv.Atoi(strings.TrimSpace(rec[5]))
	if err != nil {
		return SandhiRule{}, fmt.Errorf("priority %q: %w", rec[5], err)
	}

	rule := SandhiRule{
		ID:           strings.TrimSpace(rec[0]),
		Category:     parseSandhiCategory(rec[1]),
		LeftPattern:  Normalize(rec[2]),
		RightPattern: Normalize(rec[3]),
		Result:       Normalize(rec[4]),
		Priority:     priority,
		Directions:   parseDirections(rec[6]),
	}
	if len(rec) > 7 {
		rule.Citation = strings.TrimSpace(rec[7])
	}
	if len(rec) > 8 {
		rule.VedicOnly = strings.TrimSpace(rec[8]) == "true"
	}
	return rule, nil
}

func parseSandhiCategory(s string) SandhiCategory {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "consonant":
		return CategoryConsonant
	case "visarga":
		return CategoryVisarga
	case "special":
		return CategorySpecial
	default:
		return CategoryVowel
	}
}

func parseDirections(s string) Direction {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "forward":
		return DirForward
	case "reverse":
		return DirReverse
	default:
		return DirForward | DirReverse
	}
}

// LoadInflectionPatternsCSV reads a columnar vibhakti table: ending,case,
// number,gender,stem_class,priority. case/number/gender/stem_class are the
// lowercase English names (nominative, singular, masculine, a_stem, ...).
func LoadInflectionPatternsCSV(path string) ([]InflectionPattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.Comment = '!'

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	patterns := make([]InflectionPattern, 0, len(records))
	for i, rec := range records {
		if i == 0 && looksLikeHeader(rec) {
			continue
		}
		if len(rec) < 6 {
			return nil, fmt.Errorf("%s: row %d: expected 6 columns, got %d", path, i+1, len(rec))
		}
		priority, err := strconv.Atoi(strings.TrimSpace(rec[5]))
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: priority %q: %w", path, i+1, rec[5], err)
		}
		patterns = append(patterns, InflectionPattern{
			Ending:    Normalize(rec[0]),
			Case:      parseCase(rec[1]),
			Number:    parseNumber(rec[2]),
			Gender:    parseGender(rec[3]),
			StemClass: parseStemClass(rec[4]),
			Priority:  priority,
		})
	}
	return patterns, nil
}

func parseCase(s string) Case {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "accusative":
		return CaseAccusative
	case "instrumental":
		return CaseInstrumental
	case "dative":
		return CaseDative
	case "ablative":
		return CaseAblative
	case "genitive":
		return CaseGenitive
	case "locative":
		return CaseLocative
	case "vocative":
		return CaseVocative
	default:
		return CaseNominative
	}
}

func parseNumber(s string) Number {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "dual":
		return NumberDual
	case "plural":
		return NumberPlural
	default:
		return NumberSingular
	}
}

func parseGender(s string) Gender {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "feminine":
		return GenderFeminine
	case "neuter":
		return GenderNeuter
	case "any":
		return GenderAny
	default:
		return GenderMasculine
	}
}

func parseStemClass(s string) StemClass {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "a_stem":
		return StemA
	case "aa_stem":
		return StemAA
	case "i_stem":
		return StemI
	case "ii_stem":
		return StemII
	case "u_stem":
		return StemU
	case "uu_stem":
		return StemUU
	case "r_stem":
		return StemR
	case "consonant":
		return StemConsonant
	default:
		return StemUnspecified
	}
}

// LoadDerivationPatternsCSV reads a columnar pratyaya table: suffix,kind,
// category,priority. kind is one of krt/taddhita/stri.
func LoadDerivationPatternsCSV(path string) ([]DerivationPattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.Comment = '!'

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	patterns := make([]DerivationPattern, 0, len(records))
	for i, rec := range records {
		if i == 0 && looksLikeHeader(rec) {
			continue
		}
		if len(rec) < 4 {
			return nil, fmt.Errorf("%s: row %d: expected 4 columns, got %d", path, i+1, len(rec))
		}
		priority, err := strconv.Atoi(strings.TrimSpace(rec[3]))
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: priority %q: %w", path, i+1, rec[3], err)
		}
		patterns = append(patterns, DerivationPattern{
			Suffix:   Normalize(rec[0]),
			Kind:     parseDerivKind(rec[1]),
			Category: strings.TrimSpace(rec[2]),
			Priority: priority,
		})
	}
	return patterns, nil
}

func parseDerivKind(s string) DerivKind {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "taddhita":
		return DerivTaddhita
	case "stri":
		return DerivStri
	default:
		return DerivKrt
	}
}

// LoadLexiconCSV reads a columnar word,frequency table into a *Lexicon.
// A malformed frequency column is skipped rather than failing the whole
// load, matching §4.9's non-fatal load-failure semantics for the Lexicon
// (an empty or partial Lexicon degrades freq_score and lexical-scan
// candidates gracefully rather than preventing the engine from starting).
func LoadLexiconCSV(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.Comment = '!'

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	freq := make(map[string]int64, len(records))
	for i, rec := range records {
		if i == 0 && looksLikeHeader(rec) {
			continue
		}
		if len(rec) < 2 {
			continue
		}
		n, err := strconv.ParseInt(strings.TrimSpace(rec[1]), 10, 64)
		if err != nil {
			continue
		}
		freq[Normalize(rec[0])] = n
	}
	return NewLexicon(freq), nil
}

// looksLikeHeader reports whether rec is a column-name header row rather
// than data, so CSV files exported with a header line load without the
// caller having to strip it first.
func looksLikeHeader(rec []string) bool {
	if len(rec) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(rec[0]))
	return first == "id" || first == "ending" || first == "suffix" || first == "word"
}
