package ns

import "regexp"

const (
	unsignedInt = `\p{Nd}+`
	mantissa    = `(?:\p{Nd}+\.?\p{Nd}*|\.\p{Nd}+)`
	exponent    = `(?:[eE][-+]?\p{Nd}+)?`
	sign        = `[-+]?`
)

// patterns is keyed by the number-shape bits only, see numberKey.
var patterns = map[Alg]*regexp.Regexp{
	Int:                    regexp.MustCompile(unsignedInt),
	Signed:                 regexp.MustCompile(sign + unsignedInt),
	Float:                  regexp.MustCompile(mantissa + exponent),
	Float | Signed:         regexp.MustCompile(sign + mantissa + exponent),
	Float | NoExp:          regexp.MustCompile(mantissa),
	Float | Signed | NoExp: regexp.MustCompile(sign + mantissa),
}

// numberKey drops every bit that does not change the number grammar.
// NoExp only matters for floats.
func numberKey(alg Alg) Alg {
	if alg&Float != 0 {
		return alg & (Float | Signed | NoExp)
	}
	return alg & Signed
}

// Pattern returns the regular expression that locates numbers for alg.
// Digits are any Unicode decimal digits; see ASCIIDigits.
// Filtering and sorting both go through here, so they always agree on what
// a number is. The returned value is shared and must not be modified.
func Pattern(alg Alg) *regexp.Regexp {
	return patterns[numberKey(alg)]
}

// Pattern is shorthand for Pattern(o.Alg()).
func (o Options) Pattern() *regexp.Regexp {
	return Pattern(o.alg)
}
