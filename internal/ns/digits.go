package ns

import (
	"strings"
	"unicode"
)

// ASCIIDigits rewrites every Unicode decimal digit in s as its ASCII
// counterpart, so "٥٣" becomes "53". Other runes are kept. Matches of
// Pattern go through here before they are converted to numbers.
func ASCIIDigits(s string) string {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r <= unicode.MaxASCII || !unicode.Is(unicode.Nd, r) {
			return r
		}
		return '0' + digitValue(r)
	}, s)
}

// digitValue returns the value of the Nd rune r. Nd runes come in
// contiguous runs of whole 0..9 blocks, so the offset from the start of
// the run gives the value.
func digitValue(r rune) rune {
	start := r
	for unicode.Is(unicode.Nd, start-1) {
		start--
	}
	return (r - start) % 10
}
