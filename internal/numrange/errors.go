package numrange

import "fmt"

// InvalidRangeError reports a (low, high) pair with low >= high.
//
// Group names the option the pair came from ("--filter",
// "--reverse-filter") so the message points at the offending flag. It is
// empty when the range was checked on its own.
type InvalidRangeError struct {
	Group string
	Low   string
	High  string
}

func (e *InvalidRangeError) Error() string {
	msg := fmt.Sprintf("low >= high (%s >= %s)", e.Low, e.High)
	if e.Group == "" {
		return msg
	}
	return fmt.Sprintf("Error in %s: %s", e.Group, msg)
}
