//go:generate go run github.com/dmarkham/enumer -type=NumberType -trimprefix=NumberType -transform=lower
package ns

import (
	"fmt"
	"strings"
)

// Alg is the option bitmask shared by number extraction and sorting.
type Alg uint

const (
	// Float searches for floating point numbers instead of integers.
	Float Alg = 1 << iota
	// Signed treats a leading '+' or '-' as part of a number.
	Signed
	// NoExp stops an exponent ("1e4") from being part of a float.
	NoExp
	// Path splits entries into path components before comparing them.
	Path
	// Locale compares text with a locale-aware collator.
	Locale
)

const (
	// Int is the zero mask: unsigned integers, exponents allowed.
	Int Alg = 0
	// Real is a shortcut for Float | Signed.
	Real = Float | Signed
)

var algNames = []struct {
	bit  Alg
	name string
}{
	{Float, "FLOAT"},
	{Signed, "SIGNED"},
	{NoExp, "NOEXP"},
	{Path, "PATH"},
	{Locale, "LOCALE"},
}

func (a Alg) String() string {
	if a == Int {
		return "INT"
	}
	var parts []string
	for _, n := range algNames {
		if a&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	if rest := a &^ (Float | Signed | NoExp | Path | Locale); rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint(rest)))
	}
	return strings.Join(parts, "|")
}

// NumberType is the kind of number searched for in entries.
type NumberType int

const (
	NumberTypeInt NumberType = iota
	NumberTypeFloat
	NumberTypeReal
)

// ParseNumberType accepts the enum names and their single letter synonyms
// (i, f, r), case-insensitively.
func ParseNumberType(s string) (NumberType, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "i":
		return NumberTypeInt, nil
	case "f":
		return NumberTypeFloat, nil
	case "r":
		return NumberTypeReal, nil
	default:
		if t, err := NumberTypeString(v); err == nil {
			return t, nil
		}
	}
	return NumberTypeInt, fmt.Errorf("invalid number type %q (choose from %s, i, f, r)", s, strings.Join(NumberTypeStrings(), ", "))
}
