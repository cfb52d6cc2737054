package natsort

import (
	"os"
	"regexp"
	"strings"
)

var digitSuffix = regexp.MustCompile(`^\.[0-9]`)

// splitPath cuts s into its path components and splits the trailing
// extensions off the last one, so "dir/file.tar.gz" becomes
// ["dir", "file", ".tar", ".gz"]. Only extensions after the last one that
// starts with a digit are split, which keeps "v1.5.txt" as ["v1.5", ".txt"].
func splitPath(s string) []string {
	isSep := func(r rune) bool { return r == '/' || r == os.PathSeparator }
	comps := strings.FieldsFunc(s, isSep)
	if strings.HasPrefix(s, "/") || strings.HasPrefix(s, string(os.PathSeparator)) {
		comps = append([]string{string(s[0])}, comps...)
	}
	if len(comps) == 0 {
		return nil
	}

	last := comps[len(comps)-1]
	suffixes := extensions(last)
	for i := len(suffixes) - 1; i >= 0; i-- {
		if digitSuffix.MatchString(suffixes[i]) {
			suffixes = suffixes[i+1:]
			break
		}
	}
	base := strings.TrimSuffix(last, strings.Join(suffixes, ""))

	out := append(comps[:len(comps)-1:len(comps)-1], base)
	out = append(out, suffixes...)
	return slicesDeleteEmpty(out)
}

// extensions returns the dotted suffixes of name: "a.tar.gz" gives
// [".tar", ".gz"]. Leading dots do not start a suffix and a name ending in a
// dot has none.
func extensions(name string) []string {
	if strings.HasSuffix(name, ".") {
		return nil
	}
	fields := strings.Split(strings.TrimLeft(name, "."), ".")
	out := make([]string, 0, len(fields)-1)
	for _, f := range fields[1:] {
		out = append(out, "."+f)
	}
	return out
}

func slicesDeleteEmpty(list []string) []string {
	out := list[:0]
	for _, s := range list {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
