// pkg/pattern/canonicalizer_test.go
package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizePhone(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"(555) 123 4567", "(555) 123-4567"},
		{"5551234567", "(555) 123-4567"},
		{"555.123.4567", "(555) 123-4567"},
		{"15551234567", "+1 (555) 123-4567"},
		{"+1 (555) 123-4567", "+1 (555) 123-4567"},
		// Neither 10 nor 1+10 digits: digit-stripped only
		{"123 456", "123456"},
		{"(555) 123-4567", "(555) 123-4567"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Canonicalize(tt.value, FamilyPhone), "value %q", tt.value)
	}
}

func TestCanonicalizeEmail(t *testing.T) {
	assert.Equal(t, "john.doe@example.com", Canonicalize("John.Doe@Example.COM", FamilyEmail))
}

func TestCanonicalizeDate(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"01/15/2023", "2023-01-15"},
		{"1/15/2023", "2023-01-15"},
		{"2023-01-20", "2023-01-20"},
		{"2023/1/5", "2023-01-05"},
		// Day-first is unambiguous when the first group exceeds 12
		{"15-01-2023", "2023-01-15"},
		// Equal groups cannot be misread
		{"05/05/2023", "2023-05-05"},
		// Ambiguous month/day: returned unchanged, never guessed
		{"03/04/2023", "03/04/2023"},
		// No 4-digit year group
		{"1/2/3", "1/2/3"},
		{"13/13/2023", "13/13/2023"},
		{"00/10/2023", "00/10/2023"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Canonicalize(tt.value, FamilyDate), "value %q", tt.value)
	}
}

func TestCanonicalizeCurrency(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"$5", "$5.00"},
		{"$1,234.5", "$1234.50"},
		{"1234.56$", "$1234.56"},
		{"$5.00", "$5.00"},
		// Unparsable after stripping: unchanged
		{"$1.2.3", "$1.2.3"},
		{"$", "$"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Canonicalize(tt.value, FamilyCurrency), "value %q", tt.value)
	}
}

func TestCanonicalizeNumeric(t *testing.T) {
	assert.Equal(t, "1234567.89", Canonicalize("1,234,567.89", FamilyNumeric))
	assert.Equal(t, "12345", Canonicalize("12 345", FamilyNumeric))
	assert.Equal(t, "1234.56", Canonicalize("1234.56", FamilyNumeric))
}

func TestCanonicalizeCode(t *testing.T) {
	assert.Equal(t, "AB-12", Canonicalize("ab 12", FamilyCode))
	assert.Equal(t, "SKU-1234", Canonicalize("sku  1234", FamilyCode))
	assert.Equal(t, "AB-12", Canonicalize("AB-12", FamilyCode))
}

func TestCanonicalizeName(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"john smith", "John Smith"},
		{"JOHN  SMITH", "John Smith"},
		{"o'brien", "O'Brien"},
		{"shaun o'malley", "Shaun O'Malley"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Canonicalize(tt.value, FamilyName), "value %q", tt.value)
	}
}

func TestCanonicalizeBoolean(t *testing.T) {
	for _, v := range []string{"yes", "Y", "TRUE", "1", "on", "Enabled"} {
		assert.Equal(t, "true", Canonicalize(v, FamilyBoolean), "value %q", v)
	}
	for _, v := range []string{"no", "N", "FALSE", "0", "off", "Disabled"} {
		assert.Equal(t, "false", Canonicalize(v, FamilyBoolean), "value %q", v)
	}
	// Unknown tokens are returned unchanged
	assert.Equal(t, "maybe", Canonicalize("maybe", FamilyBoolean))
}

func TestCanonicalizeURL(t *testing.T) {
	assert.Equal(t, "https://example.com", Canonicalize("Example.COM", FamilyURL))
	assert.Equal(t, "https://example.com/page", Canonicalize("https://Example.com/Page", FamilyURL))
	assert.Equal(t, "http://example.com", Canonicalize("http://example.com", FamilyURL))
}

func TestCanonicalizeText(t *testing.T) {
	assert.Equal(t, "a b c", Canonicalize("a  b\tc", FamilyText))
	assert.Equal(t, "already clean", Canonicalize("already clean", FamilyText))
}

// Re-canonicalizing an already-canonical value with the same family must
// return it unchanged
func TestCanonicalizeIdempotent(t *testing.T) {
	samples := map[Family][]string{
		FamilyPhone:    {"(555) 123 4567", "15551234567", "123456"},
		FamilyEmail:    {"John.Doe@Example.COM"},
		FamilyDate:     {"01/15/2023", "15-01-2023", "03/04/2023", "2023-01-20"},
		FamilyCurrency: {"$1,234.5", "$1.2.3"},
		FamilyNumeric:  {"1,234,567.89", "12 345"},
		FamilyCode:     {"ab 12", "sku  1234"},
		FamilyName:     {"JOHN  SMITH", "o'brien"},
		FamilyBoolean:  {"YES", "Disabled", "maybe"},
		FamilyURL:      {"Example.COM", "https://example.com/page"},
		FamilyText:     {"a  b\tc", "plain"},
	}

	for family, values := range samples {
		for _, v := range values {
			once := Canonicalize(v, family)
			twice := Canonicalize(once, family)
			assert.Equal(t, once, twice, "family %s value %q", family, v)
		}
	}
}
