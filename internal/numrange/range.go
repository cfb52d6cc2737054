// Package numrange holds the validated numeric ranges used by the entry
// filters.
package numrange

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number limits ranges and filters to integer and float types, including
// named types defined on them.
type Number interface {
	constraints.Integer | constraints.Float
}

// Range is the closed interval [Low, High] with Low < High.
//
// The zero value is not a valid range; build one with NewRange so an
// unchecked pair can never reach a filter.
type Range[N Number] struct {
	low  N
	high N
}

// NewRange returns the range [low, high] or an *InvalidRangeError.
//
// Equal bounds are rejected, and so is NaN on either side, since the only
// accepted relation is low < high.
func NewRange[N Number](low, high N) (Range[N], error) {
	if !(low < high) {
		return Range[N]{}, &InvalidRangeError{
			Low:  fmt.Sprint(low),
			High: fmt.Sprint(high),
		}
	}
	return Range[N]{low: low, high: high}, nil
}

func (r Range[N]) Low() N  { return r.low }
func (r Range[N]) High() N { return r.high }

// Pair returns the bounds as they were given to NewRange.
func (r Range[N]) Pair() [2]N { return [2]N{r.low, r.high} }

// Contains reports whether v lies in [Low, High]. Both ends are inclusive.
func (r Range[N]) Contains(v N) bool {
	return r.low <= v && v <= r.high
}

// String implements fmt.Stringer using interval notation, e.g. "[20,100]".
func (r Range[N]) String() string {
	return fmt.Sprintf("[%v,%v]", r.low, r.high)
}
