package sandhika

import (
	"fmt"
	"sort"
)

// SandhiCategory groups sandhi rules the way the Paninian tradition (and
// the original rule table) does: by which kind of boundary they resolve.
type SandhiCategory int

const (
	CategoryVowel SandhiCategory = iota
	CategoryConsonant
	CategoryVisarga
	CategorySpecial
)

func (c SandhiCategory) String() string {
	switch c {
	case CategoryVowel:
		return "vowel"
	case CategoryConsonant:
		return "consonant"
	case CategoryVisarga:
		return "visarga"
	default:
		return "special"
	}
}

// Direction flags which way a SandhiRule may be used: DirForward to join
// two words, DirReverse to propose a split when scanning a combined word.
// Every rule in the packaged table carries both; a table loaded from a
// file may restrict a rule to one direction.
type Direction int

const (
	DirForward Direction = 1 << iota
	DirReverse
)

// HasDirection reports whether r is usable in direction d.
func (r SandhiRule) HasDirection(d Direction) bool {
	return r.Directions&d != 0
}

// SandhiRule is a single Paninian sandhi transformation: a left-word
// ending pattern and a right-word starting pattern combine to the given
// result. Mirrors sandhi_rules.py's SandhiRule dataclass.
type SandhiRule struct {
	ID           string
	Category     SandhiCategory
	LeftPattern  string
	RightPattern string
	Result       string
	Priority     int
	Directions   Direction
	Citation     string
	VedicOnly    bool
}

// Case follows the traditional eight-way vibhakti numbering (1st/nominative
// through 7th/locative, 8th/vocative); Number and Gender are the usual
// three-way splits.
type Case int

const (
	CaseNominative Case = 1 + iota
	CaseAccusative
	CaseInstrumental
	CaseDative
	CaseAblative
	CaseGenitive
	CaseLocative
	CaseVocative
)

type Number int

const (
	NumberSingular Number = iota
	NumberDual
	NumberPlural
)

type Gender int

const (
	GenderMasculine Gender = iota
	GenderFeminine
	GenderNeuter
	// GenderAny marks a pattern (the simplified consonant-stem set) that is
	// attested across genders rather than one specific gender.
	GenderAny
)

// StemClass is the nominal stem category a vibhakti ending is attested
// for (a-stem, ā-stem, i-stem, ...), following vibhakti_analyzer.py's
// stem-class grouping.
type StemClass int

const (
	StemUnspecified StemClass = iota
	StemA
	StemAA
	StemI
	StemII
	StemU
	StemUU
	StemR
	StemConsonant
)

// InflectionPattern is a single vibhakti (case-ending) attested for a
// stem class, gender and number. Mirrors VibhaktiPattern in
// vibhakti_analyzer.py.
type InflectionPattern struct {
	Ending    string
	Case      Case
	Number    Number
	Gender    Gender
	StemClass StemClass
	Priority  int
}

// DerivKind distinguishes the three pratyaya families the original
// analyzer recognizes.
type DerivKind int

const (
	DerivKrt DerivKind = iota
	DerivTaddhita
	DerivStri
)

// DerivationPattern is a single pratyaya (derivational suffix). Mirrors
// PratyayaPattern in pratyaya_analyzer.py.
type DerivationPattern struct {
	Suffix   string
	Kind     DerivKind
	Category string
	Priority int
}

// KB is the Grammar Knowledge Base: the immutable set of sandhi rules,
// inflection patterns and derivation patterns the rest of the engine
// consults. Tables are indexed at construction time so lookups during
// splitting/analysis don't rescan the full rule set.
type KB struct {
	SandhiRules        []SandhiRule
	InflectionPatterns []InflectionPattern
	DerivationPatterns []DerivationPattern

	sandhiByResult map[string][]SandhiRule
	sandhiByID     map[string]SandhiRule
	resultLengths  []int

	inflectionByEnding map[string][]InflectionPattern
	inflectionEndings  []string // sorted longest-first

	derivationBySuffix map[string][]DerivationPattern
	derivationSuffixes []string // sorted longest-first
}

// NewKB builds a KB from the given tables, indexing them and running the
// startup self-consistency validation: unique rule IDs, priorities in
// [1,10], NFC-normalized patterns, and (for every forward-usable rule)
// that forward application fires on the rule's own left_pattern and
// right_pattern. It does not check that the joined output equals result.
// Returns a *KBError rather than panicking, per §7.
func NewKB(rules []SandhiRule, inflections []InflectionPattern, derivations []DerivationPattern) (*KB, error) {
	kb := &KB{
		SandhiRules:        rules,
		InflectionPatterns: inflections,
		DerivationPatterns: derivations,
		sandhiByResult:     make(map[string][]SandhiRule),
		sandhiByID:         make(map[string]SandhiRule),
		inflectionByEnding: make(map[string][]InflectionPattern),
		derivationBySuffix: make(map[string][]DerivationPattern),
	}

	if err := kb.validateAndIndex(); err != nil {
		return nil, err
	}
	return kb, nil
}

func (kb *KB) validateAndIndex() error {
	seenIDs := make(map[string]bool, len(kb.SandhiRules))
	resultLens := make(map[int]bool)

	for _, rule := range kb.SandhiRules {
		if rule.ID == "" {
			return &KBError{Op: "validate", Msg: "sandhi rule with empty id"}
		}
		if seenIDs[rule.ID] {
			return &KBError{Op: "validate", Msg: fmt.Sprintf("duplicate sandhi rule id %q", rule.ID)}
		}
		seenIDs[rule.ID] = true
		kb.sandhiByID[rule.ID] = rule

		if rule.Priority < 1 || rule.Priority > 10 {
			return &KBError{Op: "validate", Msg: fmt.Sprintf("rule %s: priority %d out of range [1,10]", rule.ID, rule.Priority)}
		}
		if rule.LeftPattern == "" {
			return &KBError{Op: "validate", Msg: fmt.Sprintf("rule %s: empty left_pattern", rule.ID)}
		}
		for name, pattern := range map[string]string{
			"left_pattern": rule.LeftPattern, "right_pattern": rule.RightPattern, "result": rule.Result,
		} {
			if pattern != "" && Normalize(pattern) != pattern {
				return &KBError{Op: "validate", Msg: fmt.Sprintf("rule %s: %s %q is not NFC-normalized", rule.ID, name, pattern)}
			}
		}

		if rule.HasDirection(DirForward) {
			// A literal left_pattern is not always a realistic "word": the
			// "अ"/"अः" patterns mark a bare trailing consonant or
			// consonant+visarga, not the vowel अ standing alone, so the
			// self-check substitutes a representative consonant-ending
			// probe word rather than the pattern itself (which would make
			// a vowel letter masquerade as a consonant base and corrupt
			// the mātrā-attachment logic). The check only requires that
			// the rule actually fires on its own patterns, not that it
			// reproduces result verbatim: result is the isolated phonetic
			// substitution, while forward application yields a full
			// (probe-word-shaped) string that embeds it.
			if _, ok := sandhiApplyForward(rule, representativeLeftWord(rule.LeftPattern), rule.RightPattern); !ok {
				return &KBError{Op: "validate", Msg: fmt.Sprintf("rule %s: does not apply to its own left_pattern/right_pattern", rule.ID)}
			}
		}

		if rule.Result != "" {
			kb.sandhiByResult[rule.Result] = append(kb.sandhiByResult[rule.Result], rule)
			resultLens[len([]rune(rule.Result))] = true
			if matra, ok := vowelToMatra[rule.Result]; ok {
				kb.sandhiByResult[matra] = append(kb.sandhiByResult[matra], rule)
				resultLens[len([]rune(matra))] = true
			}
		}
	}
	kb.resultLengths = make([]int, 0, len(resultLens))
	for l := range resultLens {
		kb.resultLengths = append(kb.resultLengths, l)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(kb.resultLengths)))

	seenInflection := make(map[string]bool)
	for _, p := range kb.InflectionPatterns {
		// An empty Ending is legitimate: it is how the zero-ending vocative
		// singular (where the case form equals the bare stem) is recorded,
		// matching vibhakti_analyzer.py's own zero-suffix patterns. Go's
		// strings.HasSuffix(word, "") is unconditionally true, so it is
		// tried last among InflectionEndings (length 0 sorts behind every
		// real ending) and never shadows a more specific match.
		if p.Priority < 1 || p.Priority > 10 {
			return &KBError{Op: "validate", Msg: fmt.Sprintf("inflection pattern %q: priority %d out of range [1,10]", p.Ending, p.Priority)}
		}
		key := fmt.Sprintf("%s|%d|%d|%d|%d", p.Ending, p.Case, p.Number, p.Gender, p.StemClass)
		if seenInflection[key] {
			return &KBError{Op: "validate", Msg: fmt.Sprintf("duplicate inflection pattern %s", key)}
		}
		seenInflection[key] = true
		kb.inflectionByEnding[p.Ending] = append(kb.inflectionByEnding[p.Ending], p)
	}
	kb.inflectionEndings = sortedKeysByRuneLenDesc(kb.inflectionByEnding)

	seenDerivation := make(map[string]bool)
	for _, p := range kb.DerivationPatterns {
		if p.Suffix == "" {
			return &KBError{Op: "validate", Msg: "derivation pattern with empty suffix"}
		}
		if p.Priority < 1 || p.Priority > 10 {
			return &KBError{Op: "validate", Msg: fmt.Sprintf("derivation pattern %q: priority %d out of range [1,10]", p.Suffix, p.Priority)}
		}
		key := fmt.Sprintf("%s|%d|%s", p.Suffix, p.Kind, p.Category)
		if seenDerivation[key] {
			return &KBError{Op: "validate", Msg: fmt.Sprintf("duplicate derivation pattern %s", key)}
		}
		seenDerivation[key] = true
		kb.derivationBySuffix[p.Suffix] = append(kb.derivationBySuffix[p.Suffix], p)
	}
	kb.derivationSuffixes = sortedKeysByRuneLenDesc(kb.derivationBySuffix)

	return nil
}

// representativeLeftWord returns a plausible word ending for pattern,
// used only by NewKB's self-consistency check. "अ" and "अः" are markers
// for "ends in a bare consonant (with inherent vowel)" and "ends in a bare
// consonant plus visarga" respectively, not literal substrings of real
// words, so a stand-in consonant base is substituted. Every other pattern
// is already a literal ending (an explicit vowel or a consonant cluster
// with virāma) and stands for itself.
func representativeLeftWord(pattern string) string {
	switch pattern {
	case "अ":
		return "क"
	case "अः":
		return "कः"
	default:
		return pattern
	}
}

func sortedKeysByRuneLenDesc[T any](m map[string][]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		li, lj := len([]rune(keys[i])), len([]rune(keys[j]))
		if li != lj {
			return li > lj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// RuleByID returns the rule with the given ID, if any.
func (kb *KB) RuleByID(id string) (SandhiRule, bool) {
	r, ok := kb.sandhiByID[id]
	return r, ok
}

// RulesForResult returns the sandhi rules whose Result (or its mātrā form)
// equals s, used by the splitter when scanning a word for reverse matches.
func (kb *KB) RulesForResult(s string) []SandhiRule {
	return kb.sandhiByResult[s]
}

// ResultLengths returns the distinct rune-lengths among all rule results,
// longest first, so the splitter can test each internal position against
// only the substring lengths that could possibly match.
func (kb *KB) ResultLengths() []int {
	return kb.resultLengths
}

// InflectionEndings returns known endings longest-first, enforcing the
// longest-match-first policy spec.md requires of the inflection analyzer.
func (kb *KB) InflectionEndings() []string {
	return kb.inflectionEndings
}

// InflectionsForEnding returns the patterns registered for an exact ending.
func (kb *KB) InflectionsForEnding(ending string) []InflectionPattern {
	return kb.inflectionByEnding[ending]
}

// DerivationSuffixes returns known suffixes longest-first.
func (kb *KB) DerivationSuffixes() []string {
	return kb.derivationSuffixes
}

// DerivationsForSuffix returns the patterns registered for an exact suffix.
func (kb *KB) DerivationsForSuffix(suffix string) []DerivationPattern {
	return kb.derivationBySuffix[suffix]
}
