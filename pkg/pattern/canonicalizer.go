// pkg/pattern/canonicalizer.go
package pattern

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Canonicalize produces the standardized textual form of a value for the
// given family. When no rule applies, or a family-specific parse fails, the
// original value is returned unchanged. Canonicalization is idempotent:
// re-canonicalizing an already-canonical value returns it as is.
func Canonicalize(value string, family Family) string {
	switch family {
	case FamilyPhone:
		return canonicalPhone(value)
	case FamilyEmail:
		return strings.ToLower(value)
	case FamilyDate:
		return canonicalDate(value)
	case FamilyCurrency:
		return canonicalCurrency(value)
	case FamilyNumeric:
		return canonicalNumeric(value)
	case FamilyCode:
		return canonicalCode(value)
	case FamilyName:
		return canonicalName(value)
	case FamilyBoolean:
		return canonicalBoolean(value)
	case FamilyURL:
		return canonicalURL(value)
	case FamilyText:
		return collapseWhitespace(value)
	default:
		return value
	}
}

// canonicalPhone strips formatting and re-emits US-style phone numbers.
// Numbers that are neither 10 digits nor 11 digits with a leading 1 are
// returned digit-stripped.
func canonicalPhone(value string) string {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	d := digits.String()
	switch {
	case len(d) == 10:
		return fmt.Sprintf("(%s) %s-%s", d[0:3], d[3:6], d[6:10])
	case len(d) == 11 && d[0] == '1':
		return fmt.Sprintf("+1 (%s) %s-%s", d[1:4], d[4:7], d[7:11])
	default:
		return d
	}
}

// canonicalDate re-emits a three-group date as YYYY-MM-DD. The 4-digit group
// is taken as the year, leading or trailing. When the year is trailing and
// both remaining groups could be the month, the value is ambiguous and
// returned unchanged rather than guessed at.
func canonicalDate(value string) string {
	parts := splitDateGroups(value)
	if len(parts) != 3 {
		return value
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return value
		}
		nums[i] = n
	}

	var year, month, day int
	switch {
	case len(parts[0]) == 4 && len(parts[2]) != 4:
		// ISO-style: year leading
		year, month, day = nums[0], nums[1], nums[2]
	case len(parts[2]) == 4 && len(parts[0]) != 4:
		// Year trailing: decide which of the first two groups is the month
		year = nums[2]
		a, b := nums[0], nums[1]
		switch {
		case a > 12 && b <= 12:
			month, day = b, a
		case b > 12 && a <= 12:
			month, day = a, b
		case a == b:
			month, day = a, b
		default:
			// Both groups could be the month: ambiguous
			return value
		}
	default:
		return value
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return value
	}

	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

func splitDateGroups(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return r == '/' || r == '-' || r == '.'
	})
}

// canonicalCurrency strips everything but digits and the decimal point and
// re-emits as $X.XX
func canonicalCurrency(value string) string {
	var cleaned strings.Builder
	for _, r := range value {
		if (r >= '0' && r <= '9') || r == '.' {
			cleaned.WriteRune(r)
		}
	}

	amount, err := strconv.ParseFloat(cleaned.String(), 64)
	if err != nil {
		return value
	}

	return fmt.Sprintf("$%.2f", amount)
}

// canonicalNumeric strips thousands separators and embedded spaces and
// re-emits the number without separators
func canonicalNumeric(value string) string {
	cleaned := strings.NewReplacer(",", "", " ", "").Replace(value)

	number, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return value
	}

	return strconv.FormatFloat(number, 'f', -1, 64)
}

// canonicalCode uppercases and joins whitespace-separated segments with a
// single hyphen
func canonicalCode(value string) string {
	return strings.Join(strings.Fields(strings.ToUpper(value)), "-")
}

// canonicalName title-cases each whitespace-delimited token. Tokens with an
// apostrophe title-case each apostrophe-delimited segment independently, so
// o'brien becomes O'Brien.
func canonicalName(value string) string {
	words := strings.Fields(strings.ToLower(value))
	for i, word := range words {
		words[i] = titleCaseWord(word)
	}
	return strings.Join(words, " ")
}

func titleCaseWord(word string) string {
	segments := strings.Split(word, "'")
	for i, seg := range segments {
		if seg == "" {
			continue
		}
		runes := []rune(seg)
		runes[0] = unicode.ToUpper(runes[0])
		segments[i] = string(runes)
	}
	return strings.Join(segments, "'")
}

// canonicalBoolean maps affirmative tokens to "true" and negative tokens to
// "false". Unknown tokens are returned unchanged.
func canonicalBoolean(value string) string {
	token := strings.ToLower(value)
	if trueTokens[token] {
		return "true"
	}
	if falseTokens[token] {
		return "false"
	}
	return value
}

// canonicalURL lowercases and ensures a scheme is present
func canonicalURL(value string) string {
	lowered := strings.ToLower(value)
	if !strings.Contains(lowered, "://") {
		return "https://" + lowered
	}
	return lowered
}

// collapseWhitespace reduces internal whitespace runs to single spaces. This
// is the only normalization applied to the fallback Text family.
func collapseWhitespace(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
