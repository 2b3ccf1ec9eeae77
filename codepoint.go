package sandhika

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// CharClass classifies a single Devanagari (or non-Devanagari) code point
// for the purposes of word/separator segmentation and sandhi pattern
// matching. Mirrors the character-class predicates of spec §3.
type CharClass int

const (
	ClassOther CharClass = iota
	ClassVowel
	ClassMatra
	ClassConsonant
	ClassVirama
	ClassAnusvara
	ClassVisarga
	ClassAvagraha
	ClassVedicAccent
	ClassDanda
	ClassDigit
	ClassWhitespace
)

// String returns a human-readable name, used in log fields and diagnostics.
func (c CharClass) String() string {
	switch c {
	case ClassVowel:
		return "vowel"
	case ClassMatra:
		return "matra"
	case ClassConsonant:
		return "consonant"
	case ClassVirama:
		return "virama"
	case ClassAnusvara:
		return "anusvara"
	case ClassVisarga:
		return "visarga"
	case ClassAvagraha:
		return "avagraha"
	case ClassVedicAccent:
		return "vedic-accent"
	case ClassDanda:
		return "danda"
	case ClassDigit:
		return "digit"
	case ClassWhitespace:
		return "whitespace"
	default:
		return "other"
	}
}

// independentVowels lists the Devanagari independent vowel letters
// (अ आ इ ई उ ऊ ऋ ऌ ऍ ऎ ए ऐ ऑ ऒ ओ औ) plus ऄ, the vocalic ॠ ॡ, and the
// additional vowels ॲ..ॷ.
var independentVowels = rangetable.New(
	'ऄ', 'अ', 'आ', 'इ', 'ई', 'उ', 'ऊ',
	'ऋ', 'ऌ', 'ऍ', 'ऎ', 'ए', 'ऐ', 'ऑ',
	'ऒ', 'ओ', 'औ', 'ॠ', 'ॡ', 'ॲ', 'ॳ',
	'ॴ', 'ॵ', 'ॶ', 'ॷ',
)

// dependentVowelSigns lists the mātrā (vowel sign) code points.
var dependentVowelSigns = rangetable.New(
	'ऺ', 'ऻ', 'ा', 'ि', 'ी', 'ु', 'ू',
	'ृ', 'ॄ', 'ॅ', 'ॆ', 'े', 'ै', 'ॉ',
	'ॊ', 'ो', 'ौ', 'ॎ', 'ॏ', 'ॕ', 'ॖ',
	'ॗ',
)

// consonants covers the core consonant block (क..ह), the nukta-formed
// consonants (क़..य़), and U+A8F2..U+A8F7 from the Devanagari Extended
// range.
var consonants = rangetable.Merge(
	rangetable.New('क', 'ख', 'ग', 'घ', 'ङ',
		'च', 'छ', 'ज', 'झ', 'ञ',
		'ट', 'ठ', 'ड', 'ढ', 'ण',
		'त', 'थ', 'द', 'ध', 'न', 'ऩ',
		'प', 'फ', 'ब', 'भ', 'म',
		'य', 'र', 'ऱ', 'ल', 'ळ', 'ऴ',
		'व', 'श', 'ष', 'स', 'ह'),
	rangetable.New('क़', 'ख़', 'ग़', 'ज़', 'ड़',
		'ढ़', 'फ़', 'य़'),
	rangetable.New('ꣲ', 'ꣳ', 'ꣴ', 'ꣵ', 'ꣶ', 'ꣷ'),
)

// virama is the halant/virāma sign (्).
var virama = rangetable.New('्')

// anusvaraMarks groups anusvāra (ं) with the related candrabindu (ँ) and
// the abbreviation sign (॰, U+0970).
var anusvaraMarks = rangetable.New('ँ', 'ं', '॰')

// visargaMark is the visarga sign (ः).
var visargaMark = rangetable.New('ः')

// avagrahaMark is the elision sign (ऽ).
var avagrahaMark = rangetable.New('ऽ')

// vedicAccents covers udātta/anudātta (U+0951/U+0952), the combining tone
// marks U+0953/U+0954, and the Vedic Extensions block (U+1CD0-U+1CFF)
// used for svarita and related recitation marks.
var vedicAccents = rangetable.Merge(
	rangetable.New('॑', '॒', '॓', '॔'),
	&unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x1CD0, Hi: 0x1CFF, Stride: 1}}},
)

// dandaMarks covers the single and double daṇḍa (। ॥).
var dandaMarks = rangetable.New('।', '॥')

// devanagariDigits covers ०-९.
var devanagariDigits = &unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x0966, Hi: 0x096F, Stride: 1}}}

// ClassifyRune returns the CharClass for a single normalized code point.
func ClassifyRune(r rune) CharClass {
	switch {
	case unicode.Is(vedicAccents, r):
		return ClassVedicAccent
	case unicode.Is(independentVowels, r):
		return ClassVowel
	case unicode.Is(dependentVowelSigns, r):
		return ClassMatra
	case unicode.Is(consonants, r):
		return ClassConsonant
	case unicode.Is(virama, r):
		return ClassVirama
	case unicode.Is(anusvaraMarks, r):
		return ClassAnusvara
	case unicode.Is(visargaMark, r):
		return ClassVisarga
	case unicode.Is(avagrahaMark, r):
		return ClassAvagraha
	case unicode.Is(dandaMarks, r):
		return ClassDanda
	case unicode.Is(devanagariDigits, r):
		return ClassDigit
	case unicode.IsSpace(r):
		return ClassWhitespace
	default:
		return ClassOther
	}
}

// RawTokenKind is the coarse grouping RawTokens carry, collapsing the
// fine-grained CharClass into the word/whitespace/punctuation/digit/other
// partition of spec §3.
type RawTokenKind int

const (
	KindWord RawTokenKind = iota
	KindWhitespace
	KindPunctuation
	KindDigit
	KindOther
)

func (k RawTokenKind) String() string {
	switch k {
	case KindWord:
		return "word"
	case KindWhitespace:
		return "whitespace"
	case KindPunctuation:
		return "punctuation"
	case KindDigit:
		return "digit"
	default:
		return "other"
	}
}

// isWordClass reports whether c belongs to a word-internal character class:
// consonants, vowels, mātrās, virāma, anusvāra, visarga, avagraha, and
// (when preserveVedicAccents is set) Vedic accent marks.
func isWordClass(c CharClass, preserveVedicAccents bool) bool {
	switch c {
	case ClassConsonant, ClassVowel, ClassMatra, ClassVirama,
		ClassAnusvara, ClassVisarga, ClassAvagraha:
		return true
	case ClassVedicAccent:
		return preserveVedicAccents
	default:
		return false
	}
}

// tokenKind maps a CharClass to its RawTokenKind given the current
// configuration (Vedic-accent handling only affects word-class membership,
// not the CharClass itself).
func tokenKind(c CharClass, preserveVedicAccents bool) RawTokenKind {
	if isWordClass(c, preserveVedicAccents) {
		return KindWord
	}
	switch c {
	case ClassWhitespace:
		return KindWhitespace
	case ClassDanda:
		return KindPunctuation
	case ClassDigit:
		return KindDigit
	case ClassVedicAccent:
		// Accent mark with preservation disabled: an "other" span, not a
		// class of its own in the RawToken partition.
		return KindOther
	default:
		return KindOther
	}
}
