package filter

import (
	"errors"
	"regexp"

	"github.com/vipcxj/natsort/internal/numrange"
)

// Stage names passed to Pipeline.Trace.
const (
	StageInclude = "include"
	StageExclude = "exclude"
	StageValues  = "values"
)

var errNoPattern = errors.New("filter: pipeline needs a pattern and a converter")

// Pipeline applies the three entry filters in a fixed order: keep entries in
// Include, drop entries in Exclude, drop entries holding one of Values.
//
// A nil Include or Exclude, or an empty Values, skips that stage and leaves
// the list untouched.
type Pipeline[N numrange.Number] struct {
	Include *numrange.FilterSet[N]
	Exclude *numrange.FilterSet[N]
	Values  ValueSet[N]

	Pattern *regexp.Regexp
	Convert Converter[N]

	// Trace, when set, is called after each stage that ran with the number
	// of entries it kept.
	Trace func(stage string, kept int)
}

// Active reports whether at least one stage would run.
func (p Pipeline[N]) Active() bool {
	return p.Include != nil || p.Exclude != nil || len(p.Values) > 0
}

// Apply runs the stages over entries. The input slice is never modified.
func (p Pipeline[N]) Apply(entries []string) ([]string, error) {
	if !p.Active() {
		return entries, nil
	}
	if p.Pattern == nil || p.Convert == nil {
		return nil, errNoPattern
	}

	var err error
	if p.Include != nil {
		if entries, err = KeepInRange(entries, p.Include, p.Pattern, p.Convert); err != nil {
			return nil, err
		}
		p.trace(StageInclude, len(entries))
	}
	if p.Exclude != nil {
		if entries, err = DropInRange(entries, p.Exclude, p.Pattern, p.Convert); err != nil {
			return nil, err
		}
		p.trace(StageExclude, len(entries))
	}
	if len(p.Values) > 0 {
		if entries, err = DropValues(entries, p.Values, p.Pattern, p.Convert); err != nil {
			return nil, err
		}
		p.trace(StageValues, len(entries))
	}
	return entries, nil
}

func (p Pipeline[N]) trace(stage string, kept int) {
	if p.Trace != nil {
		p.Trace(stage, kept)
	}
}

// KeepInRange returns the entries for which KeepByRange holds.
func KeepInRange[N numrange.Number](entries []string, set *numrange.FilterSet[N], re *regexp.Regexp, conv Converter[N]) ([]string, error) {
	return keepIf(entries, func(e string) (bool, error) {
		return KeepByRange(e, set, re, conv)
	})
}

// DropInRange returns the entries for which KeepByRange does not hold.
// Entries without numbers are kept.
func DropInRange[N numrange.Number](entries []string, set *numrange.FilterSet[N], re *regexp.Regexp, conv Converter[N]) ([]string, error) {
	return keepIf(entries, func(e string) (bool, error) {
		in, err := KeepByRange(e, set, re, conv)
		return !in, err
	})
}

// DropValues returns the entries for which KeepByValue holds.
func DropValues[N numrange.Number](entries []string, values ValueSet[N], re *regexp.Regexp, conv Converter[N]) ([]string, error) {
	return keepIf(entries, func(e string) (bool, error) {
		return KeepByValue(e, values, re, conv)
	})
}

func keepIf(entries []string, keep func(string) (bool, error)) ([]string, error) {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		ok, err := keep(e)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, e)
		}
	}
	return out, nil
}
