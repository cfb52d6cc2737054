package numrange

import "strings"

// FilterSet is an ordered collection of ranges combined with logical OR.
//
// A nil *FilterSet means no filtering was requested. Callers that hold one
// should treat nil as "keep everything" rather than calling Matches, which
// reports false for a nil or empty set.
type FilterSet[N Number] struct {
	ranges []Range[N]
}

// NewFilterSet wraps already validated ranges.
func NewFilterSet[N Number](ranges ...Range[N]) *FilterSet[N] {
	return &FilterSet[N]{ranges: append([]Range[N](nil), ranges...)}
}

// ValidateFilters checks every (low, high) pair with NewRange.
//
// An empty or nil pairs returns a nil set and no error. The first invalid
// pair stops validation; the returned *InvalidRangeError carries group so the
// message identifies which option failed.
func ValidateFilters[N Number](group string, pairs [][2]N) (*FilterSet[N], error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	set := &FilterSet[N]{ranges: make([]Range[N], 0, len(pairs))}
	for _, p := range pairs {
		r, err := NewRange(p[0], p[1])
		if err != nil {
			rangeErr := err.(*InvalidRangeError)
			rangeErr.Group = group
			return nil, rangeErr
		}
		set.ranges = append(set.ranges, r)
	}
	return set, nil
}

// Matches reports whether v falls in any of the ranges.
func (f *FilterSet[N]) Matches(v N) bool {
	if f == nil {
		return false
	}
	for _, r := range f.ranges {
		if r.Contains(v) {
			return true
		}
	}
	return false
}

// Len returns the number of ranges; zero for a nil set.
func (f *FilterSet[N]) Len() int {
	if f == nil {
		return 0
	}
	return len(f.ranges)
}

// Ranges returns a copy of the ranges in insertion order.
func (f *FilterSet[N]) Ranges() []Range[N] {
	if f == nil {
		return nil
	}
	return append([]Range[N](nil), f.ranges...)
}

// Pairs returns the ranges as raw (low, high) pairs.
func (f *FilterSet[N]) Pairs() [][2]N {
	if f == nil {
		return nil
	}
	out := make([][2]N, len(f.ranges))
	for i, r := range f.ranges {
		out[i] = r.Pair()
	}
	return out
}

func (f *FilterSet[N]) String() string {
	if f == nil {
		return "<none>"
	}
	parts := make([]string, len(f.ranges))
	for i, r := range f.ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, "_")
}
