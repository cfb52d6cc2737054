package filter

import (
	"regexp"

	"github.com/vipcxj/natsort/internal/numrange"
)

// ValueSet is a set of numbers matched by exact equality.
type ValueSet[N numrange.Number] map[N]struct{}

// NewValueSet builds a set from values; duplicates collapse.
func NewValueSet[N numrange.Number](values ...N) ValueSet[N] {
	if len(values) == 0 {
		return nil
	}
	s := make(ValueSet[N], len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

func (s ValueSet[N]) Contains(v N) bool {
	_, ok := s[v]
	return ok
}

// KeepByRange reports whether any number in entry falls in any range of set.
//
// Every extracted number is tried against every range; the first hit wins.
// An entry without numbers never matches, and neither does a nil set.
func KeepByRange[N numrange.Number](entry string, set *numrange.FilterSet[N], re *regexp.Regexp, conv Converter[N]) (bool, error) {
	if set.Len() == 0 {
		return false, nil
	}
	for n, err := range Extract(entry, re, conv) {
		if err != nil {
			return false, err
		}
		if set.Matches(n) {
			return true, nil
		}
	}
	return false, nil
}

// KeepByValue reports whether entry contains none of values.
func KeepByValue[N numrange.Number](entry string, values ValueSet[N], re *regexp.Regexp, conv Converter[N]) (bool, error) {
	if len(values) == 0 {
		return true, nil
	}
	for n, err := range Extract(entry, re, conv) {
		if err != nil {
			return false, err
		}
		if values.Contains(n) {
			return false, nil
		}
	}
	return true, nil
}
