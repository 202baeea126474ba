// pkg/pattern/classifier.go
package pattern

import (
	"regexp"
	"strings"
)

// Base confidences per family. Anything at or below the caller's confidence
// cutoff (0.3 by default) is not canonicalized downstream.
const (
	confidenceBoolean  = 0.9
	confidenceEmail    = 0.9
	confidenceDate     = 0.85
	confidencePhone    = 0.8
	confidenceURL      = 0.8
	confidenceCurrency = 0.7
	confidenceNumeric  = 0.6
	confidenceCode     = 0.5
	confidenceName     = 0.4
	confidenceText     = 0.1
)

var (
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	datePattern     = regexp.MustCompile(`^\d{1,4}[/\-.]\d{1,2}[/\-.]\d{1,4}$`)
	phonePattern    = regexp.MustCompile(`^[\d\s\-().+]{7,}$`)
	digitRunPattern = regexp.MustCompile(`\d{3}`)
	urlPattern      = regexp.MustCompile(`^(?:https?://)?[A-Za-z0-9][A-Za-z0-9.-]*\.[A-Za-z]{2,}(?:/\S*)?$`)
	currencyPattern = regexp.MustCompile(`^[$€£¥₹]\s*\d[\d,\s]*(?:\.\d+)?$|^\d[\d,\s]*(?:\.\d+)?\s*[$€£¥₹]$`)
	numericPattern  = regexp.MustCompile(`^\d{1,3}(?:[,\s]\d{3})+(?:\.\d+)?$`)
	codePattern     = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_\-./\s]{2,}$`)
	letterPattern   = regexp.MustCompile(`[A-Za-z]`)
	digitPattern    = regexp.MustCompile(`\d`)
	namePattern     = regexp.MustCompile(`^[A-Za-z][A-Za-z\s'.\-]{2,}$`)
)

// Boolean token sets, shared with the canonicalizer
var (
	trueTokens  = map[string]bool{"yes": true, "y": true, "true": true, "1": true, "on": true, "enabled": true}
	falseTokens = map[string]bool{"no": true, "n": true, "false": true, "0": true, "off": true, "disabled": true}
)

// classifierEntry pairs a family predicate with its base confidence
type classifierEntry struct {
	family     Family
	confidence float64
	matches    func(string) bool
}

// classifiers is evaluated top to bottom until one predicate matches.
// Most distinctive shapes come first so that, e.g., an ISO date is claimed by
// the Date family before the Phone family can see its digits and dashes.
var classifiers = []classifierEntry{
	{FamilyBoolean, confidenceBoolean, isBooleanLike},
	{FamilyEmail, confidenceEmail, isEmailLike},
	{FamilyDate, confidenceDate, isDateLike},
	{FamilyPhone, confidencePhone, isPhoneLike},
	{FamilyURL, confidenceURL, isURLLike},
	{FamilyCurrency, confidenceCurrency, isCurrencyLike},
	{FamilyNumeric, confidenceNumeric, isNumericLike},
	{FamilyCode, confidenceCode, isCodeLike},
	{FamilyName, confidenceName, isNameLike},
}

// Classify determines the most likely pattern family for a trimmed value.
// Classification never fails: values no predicate claims fall through to the
// Text family with a low confidence.
func Classify(value string) Match {
	for _, entry := range classifiers {
		if entry.matches(value) {
			return Match{Family: entry.family, Confidence: entry.confidence}
		}
	}
	return Match{Family: FamilyText, Confidence: confidenceText}
}

func isBooleanLike(value string) bool {
	token := strings.ToLower(value)
	return trueTokens[token] || falseTokens[token]
}

func isEmailLike(value string) bool {
	return emailPattern.MatchString(value)
}

func isDateLike(value string) bool {
	return datePattern.MatchString(value)
}

func isPhoneLike(value string) bool {
	// Space-grouped thousands like "1 234 567" fit the phone charset too;
	// those belong to the Numeric family
	return phonePattern.MatchString(value) &&
		digitRunPattern.MatchString(value) &&
		!numericPattern.MatchString(value)
}

func isURLLike(value string) bool {
	return urlPattern.MatchString(value)
}

func isCurrencyLike(value string) bool {
	return currencyPattern.MatchString(value)
}

func isNumericLike(value string) bool {
	return numericPattern.MatchString(value)
}

func isCodeLike(value string) bool {
	return codePattern.MatchString(value) &&
		letterPattern.MatchString(value) &&
		digitPattern.MatchString(value)
}

func isNameLike(value string) bool {
	return namePattern.MatchString(value)
}
