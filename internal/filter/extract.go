// Package filter drops entries from the input by the numbers they contain.
//
// Numbers are located with the same pattern the sort engine uses (see
// ns.Pattern), so an entry is filtered on exactly the numbers it is sorted
// on.
package filter

import (
	"errors"
	"fmt"
	"iter"
	"regexp"
	"strconv"

	"github.com/vipcxj/natsort/internal/ns"
	"github.com/vipcxj/natsort/internal/numrange"
)

// Converter turns a matched number substring into N.
type Converter[N numrange.Number] func(string) (N, error)

// ParseFloat converts with strconv.ParseFloat. Values too large for a
// float64 become ±Inf instead of failing.
func ParseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && errors.Is(err, strconv.ErrRange) {
		return f, nil
	}
	return f, err
}

// ParseInt converts a base 10 integer, sign allowed.
func ParseInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// Extract yields every number re finds in entry, left to right.
//
// Substrings are converted one at a time as the sequence is consumed, with
// non-ASCII decimal digits rewritten as ASCII first (ns.ASCIIDigits). A
// conversion failure is yielded once, wrapped with the offending text, and
// ends the sequence; it means re and conv do not fit together.
func Extract[N numrange.Number](entry string, re *regexp.Regexp, conv Converter[N]) iter.Seq2[N, error] {
	return func(yield func(N, error) bool) {
		for _, loc := range re.FindAllStringIndex(entry, -1) {
			raw := entry[loc[0]:loc[1]]
			n, err := conv(ns.ASCIIDigits(raw))
			if err != nil {
				var zero N
				yield(zero, fmt.Errorf("convert %q: %w", raw, err))
				return
			}
			if !yield(n, nil) {
				return
			}
		}
	}
}
