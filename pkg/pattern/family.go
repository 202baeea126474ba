// pkg/pattern/family.go
package pattern

import "fmt"

// Family identifies the semantic shape of a column value
type Family int

const (
	FamilyPhone Family = iota
	FamilyEmail
	FamilyDate
	FamilyCurrency
	FamilyNumeric
	FamilyCode
	FamilyName
	FamilyBoolean
	FamilyURL
	FamilyText
)

// String returns a string representation of the pattern family
func (f Family) String() string {
	switch f {
	case FamilyPhone:
		return "Phone"
	case FamilyEmail:
		return "Email"
	case FamilyDate:
		return "Date"
	case FamilyCurrency:
		return "Currency"
	case FamilyNumeric:
		return "NumericFormatted"
	case FamilyCode:
		return "Code"
	case FamilyName:
		return "Name"
	case FamilyBoolean:
		return "Boolean"
	case FamilyURL:
		return "URL"
	case FamilyText:
		return "Text"
	default:
		return fmt.Sprintf("Unknown(%d)", f)
	}
}

// Match pairs a family with the classifier's confidence in it
type Match struct {
	Family     Family
	Confidence float64
}
