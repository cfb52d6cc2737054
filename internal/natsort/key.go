// Package natsort orders strings so that embedded numbers compare by value.
//
// A string is cut into alternating text and number parts with the pattern
// from ns.Pattern, the same one the entry filters use. Text parts compare by
// code point, or with a collator in locale mode; number parts compare
// numerically. In path mode every path component gets its own key.
package natsort

import (
	"cmp"
	"regexp"
	"strings"

	"golang.org/x/text/collate"

	"github.com/vipcxj/natsort/internal/filter"
	"github.com/vipcxj/natsort/internal/ns"
)

type number struct {
	float bool
	f     float64

	// Integer mode keeps the magnitude as a digit string without leading
	// zeros, so digit runs of any length compare exactly.
	neg    bool
	digits string
}

func (n number) compare(m number) int {
	if n.float || m.float {
		return cmp.Compare(n.f, m.f)
	}
	nNeg := n.neg && n.digits != ""
	mNeg := m.neg && m.digits != ""
	switch {
	case nNeg && !mNeg:
		return -1
	case !nNeg && mNeg:
		return 1
	case nNeg:
		return -compareDigits(n.digits, m.digits)
	}
	return compareDigits(n.digits, m.digits)
}

func compareDigits(a, b string) int {
	if len(a) != len(b) {
		return cmp.Compare(len(a), len(b))
	}
	return strings.Compare(a, b)
}

type part struct {
	isNum bool
	text  string
	num   number
}

// Key is the comparable form of one entry: one segment per path component,
// or a single segment outside path mode. Every segment alternates text and
// number parts and starts with a text part, possibly empty.
type Key struct {
	segments [][]part
}

// NewKey builds the key of s under alg.
func NewKey(s string, alg ns.Alg) Key {
	re := ns.Pattern(alg)
	float := alg&ns.Float != 0
	if alg&ns.Path == 0 {
		return Key{segments: [][]part{splitParts(s, re, float)}}
	}
	comps := splitPath(s)
	segs := make([][]part, len(comps))
	for i, c := range comps {
		segs[i] = splitParts(c, re, float)
	}
	return Key{segments: segs}
}

func splitParts(s string, re *regexp.Regexp, float bool) []part {
	var parts []part
	prev := 0
	for _, loc := range re.FindAllStringIndex(s, -1) {
		parts = append(parts, part{text: s[prev:loc[0]]})
		parts = append(parts, part{isNum: true, num: parseNumber(s[loc[0]:loc[1]], float)})
		prev = loc[1]
	}
	if prev < len(s) {
		parts = append(parts, part{text: s[prev:]})
	}
	return parts
}

func parseNumber(raw string, float bool) number {
	raw = ns.ASCIIDigits(raw)
	if float {
		// Every float pattern match is valid ParseFloat syntax.
		f, _ := filter.ParseFloat(raw)
		return number{float: true, f: f}
	}
	n := number{}
	switch raw[0] {
	case '-':
		n.neg = true
		raw = raw[1:]
	case '+':
		raw = raw[1:]
	}
	n.digits = strings.TrimLeft(raw, "0")
	return n
}

// Compare orders two keys. coll may be nil, in which case text compares by
// code point.
func Compare(a, b Key, coll *collate.Collator) int {
	for i := 0; i < len(a.segments) && i < len(b.segments); i++ {
		if c := compareParts(a.segments[i], b.segments[i], coll); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.segments), len(b.segments))
}

func compareParts(a, b []part, coll *collate.Collator) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		pa, pb := a[i], b[i]
		var c int
		if pa.isNum && pb.isNum {
			c = pa.num.compare(pb.num)
		} else if coll != nil {
			c = coll.CompareString(pa.text, pb.text)
		} else {
			c = strings.Compare(pa.text, pb.text)
		}
		if c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}
