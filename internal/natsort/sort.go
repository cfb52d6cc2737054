package natsort

import (
	"os"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/vipcxj/natsort/internal/ns"
)

// Sorter sorts entries. Tag selects the collation used in locale mode and is
// ignored otherwise.
type Sorter struct {
	Tag language.Tag
}

// Sorted returns a sorted copy of entries. The sort is stable, and reversing
// flips the comparison so that equal keys keep their input order.
func (s Sorter) Sorted(entries []string, opts ns.Options) []string {
	alg := opts.Alg()
	keys := make([]Key, len(entries))
	for i, e := range entries {
		keys[i] = NewKey(e, alg)
	}

	var coll *collate.Collator
	if opts.Locale() {
		coll = collate.New(s.Tag)
	}
	sign := 1
	if opts.Reverse() {
		sign = -1
	}

	idx := make([]int, len(entries))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(i, j int) int {
		return sign * Compare(keys[i], keys[j], coll)
	})

	out := make([]string, len(entries))
	for i, j := range idx {
		out[i] = entries[j]
	}
	return out
}

// Sorted sorts entries using the collation named by the process environment.
func Sorted(entries []string, opts ns.Options) []string {
	return Sorter{Tag: EnvTag(os.Getenv)}.Sorted(entries, opts)
}

// EnvTag reads the collation locale from LC_ALL, LC_COLLATE and LANG, first
// non-empty wins. Encodings and modifiers such as ".UTF-8" or "@euro" are
// dropped. C, POSIX and unparsable values fall back to the root locale.
func EnvTag(getenv func(string) string) language.Tag {
	for _, name := range []string{"LC_ALL", "LC_COLLATE", "LANG"} {
		v := getenv(name)
		if v == "" {
			continue
		}
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		if v == "C" || v == "POSIX" {
			return language.Und
		}
		tag, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
		if err != nil {
			return language.Und
		}
		return tag
	}
	return language.Und
}
