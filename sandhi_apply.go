package sandhika

import "strings"

// vowelToMatra maps an independent vowel letter to its dependent vowel
// sign (mātrā) form, used when a sandhi result beginning with a vowel
// attaches to a consonant base instead of standing alone.
// Grounded on vowel_to_matra in
// _examples/original_source/vedic_tokenizer/sandhi_rules.py.
var vowelToMatra = map[string]string{
	"आ": "ा", "इ": "ि", "ई": "ी", "उ": "ु", "ऊ": "ू",
	"ऋ": "ृ", "ए": "े", "ऐ": "ै", "ओ": "ो", "औ": "ौ",
}

// vowelLeftPatterns are the LeftPattern values that denote an explicit
// independent vowel (as opposed to the special "अ" inherent-vowel pattern
// or a literal consonant cluster).
var vowelLeftPatterns = map[string]bool{
	"आ": true, "इ": true, "ई": true, "उ": true, "ऊ": true,
	"ऋ": true, "ए": true, "ऐ": true, "ओ": true, "औ": true,
}

const (
	matraSet     = "ािीुूृॄेैोौँंः"
	visargaMatra = "ािीुूृॄेैोौँं"
	shortVowels  = "अआइईउऊऋएऐओऔ"
)

func lastRune(s string) rune {
	if s == "" {
		return 0
	}
	runes := []rune(s)
	return runes[len(runes)-1]
}

func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}

func splitFirstRune(s string) (string, string) {
	if s == "" {
		return "", ""
	}
	runes := []rune(s)
	return string(runes[0]), string(runes[1:])
}

// sandhiApplies reports whether rule is positionally eligible to combine
// left and right, porting SandhiRule.applies from the original Python
// reference (sandhi_rules.py) into Go. Devanagari has no single uniform
// "ends with pattern" test across vowel/consonant/visarga rules because a
// trailing inherent vowel is invisible in the script, so each left-pattern
// family gets its own boundary test exactly as the original does.
func sandhiApplies(rule SandhiRule, left, right string) bool {
	rightOK := strings.HasPrefix(right, rule.RightPattern)
	if !rightOK && strings.HasSuffix(rule.RightPattern, "्") {
		rightOK = strings.HasPrefix(right, strings.TrimSuffix(rule.RightPattern, "्"))
	}
	if !rightOK {
		return false
	}

	switch rule.LeftPattern {
	case "अ":
		if left == "" {
			return false
		}
		last := lastRune(left)
		isHalanta := last == '्'
		isMatra := strings.ContainsRune(matraSet, last)
		return !(isHalanta || isMatra)

	case "अः":
		if strings.HasSuffix(left, "अः") {
			return true
		}
		if !strings.HasSuffix(left, "ः") {
			return false
		}
		runes := []rune(left)
		if len(runes) < 2 {
			return false
		}
		prev := runes[len(runes)-2]
		isHalanta := prev == '्'
		isMatra := strings.ContainsRune(visargaMatra, prev)
		isVowel := strings.ContainsRune(shortVowels, prev)
		return !(isHalanta || isMatra || isVowel)

	case "आ":
		return strings.HasSuffix(left, "ा") || strings.HasSuffix(left, "आ")
	case "इ":
		return strings.HasSuffix(left, "ि") || strings.HasSuffix(left, "इ")
	case "ई":
		return strings.HasSuffix(left, "ी") || strings.HasSuffix(left, "ई")
	case "उ":
		return strings.HasSuffix(left, "ु") || strings.HasSuffix(left, "उ")
	case "ऊ":
		return strings.HasSuffix(left, "ू") || strings.HasSuffix(left, "ऊ")
	case "ऋ":
		return strings.HasSuffix(left, "ृ") || strings.HasSuffix(left, "ऋ")
	case "इः":
		return strings.HasSuffix(left, "िः") || strings.HasSuffix(left, "इः")
	case "उः":
		return strings.HasSuffix(left, "ुः") || strings.HasSuffix(left, "उः")
	default:
		return strings.HasSuffix(left, rule.LeftPattern)
	}
}

// sandhiApplyForward combines left and right under rule, returning the
// joined surface form. Ports SandhiRule.apply_forward: a consonant base
// that matched via the inherent-vowel "अ" pattern is reconstructed with a
// trailing virāma, a sandhi result beginning with a vowel is converted to
// its mātrā form when attaching to a non-empty consonant base, and a
// result beginning with the inherent vowel अ drops both the virāma and the
// 'अ' (since an unmarked consonant already carries it).
func sandhiApplyForward(rule SandhiRule, left, right string) (string, bool) {
	if !sandhiApplies(rule, left, right) {
		return "", false
	}

	var leftBase string
	switch {
	case rule.LeftPattern == "अ":
		leftBase = left + "्"

	case rule.LeftPattern == "अः":
		if strings.HasSuffix(left, "अः") {
			leftBase = strings.TrimSuffix(left, "अः") + "्"
		} else {
			leftBase = trimLastRune(left) + "्"
		}

	case vowelLeftPatterns[rule.LeftPattern]:
		if strings.HasSuffix(left, rule.LeftPattern) {
			leftBase = strings.TrimSuffix(left, rule.LeftPattern)
			if leftBase != "" && !strings.HasSuffix(leftBase, "्") {
				leftBase += "्"
			}
		} else {
			leftBase = trimLastRune(left) + "्"
		}

	default:
		if rule.LeftPattern != "" && strings.HasSuffix(left, rule.LeftPattern) {
			leftBase = strings.TrimSuffix(left, rule.LeftPattern)
		} else {
			leftBase = left
		}
	}

	rightBase := right
	if rule.RightPattern != "" && strings.HasPrefix(right, rule.RightPattern) {
		rightBase = strings.TrimPrefix(right, rule.RightPattern)
	}

	finalResult := rule.Result
	firstChar, rest := splitFirstRune(finalResult)

	switch {
	case firstChar != "" && vowelToMatra[firstChar] != "":
		if leftBase != "" {
			trimmed := strings.TrimSuffix(leftBase, "्")
			if trimmed == "" {
				// No consonant base survives the trim (the left word was
				// nothing but the matched pattern itself): the vowel
				// stands alone, so keep its independent form rather than
				// attaching a mātrā to nothing.
				leftBase = trimmed
			} else {
				finalResult = vowelToMatra[firstChar] + rest
				leftBase = trimmed
			}
		}
	case firstChar == "अ":
		if strings.HasSuffix(leftBase, "्") {
			leftBase = strings.TrimSuffix(leftBase, "्")
			finalResult = rest
		}
	}

	return leftBase + finalResult + rightBase, true
}

// splitPair is a candidate (left, right) reconstruction proposed by
// reversing a sandhi rule's result at a position inside a combined word.
type splitPair struct {
	Left, Right string
}

// sandhiReverseSplits finds every occurrence of rule.Result (and, when the
// result is a vowel, its mātrā form) inside combined and proposes the
// (left, right) reconstruction at that boundary. Ports
// SandhiRule.apply_reverse. Candidates are speculative: the splitter
// re-validates each one with sandhiApplyForward before accepting it, so a
// spurious reverse match never survives into an emitted token.
func sandhiReverseSplits(rule SandhiRule, combined string) []splitPair {
	if !rule.HasDirection(DirReverse) {
		return nil
	}

	patterns := []string{rule.Result}
	if matra, ok := vowelToMatra[rule.Result]; ok {
		patterns = append(patterns, matra)
	}

	var out []splitPair
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		start := 0
		for {
			idx := strings.Index(combined[start:], pattern)
			if idx < 0 {
				break
			}
			idx += start

			prefix := combined[:idx]
			suffix := combined[idx+len(pattern):]

			var left string
			switch {
			case rule.LeftPattern == "अ":
				left = prefix
			case vowelLeftPatterns[rule.LeftPattern]:
				if matra, ok := vowelToMatra[rule.LeftPattern]; ok {
					left = prefix + matra
				} else {
					left = prefix + rule.LeftPattern
				}
			default:
				left = prefix + rule.LeftPattern
			}
			right := rule.RightPattern + suffix

			out = append(out, splitPair{Left: left, Right: right})
			start = idx + 1
			if start > len(combined) {
				break
			}
		}
	}
	return out
}
