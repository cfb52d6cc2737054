package natsort

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"

	"github.com/vipcxj/natsort/internal/ns"
)

var pathEntries = []string{
	"tmp/a57/path2",
	"tmp/a23/path1",
	"tmp/a1/path1",
	"tmp/a1 (1)/path1",
	"tmp/a130/path1",
	"tmp/a64/path1",
	"tmp/a64/path2",
}

func pick(list []string, idx ...int) []string {
	out := make([]string, len(idx))
	for i, j := range idx {
		out[i] = list[j]
	}
	return out
}

func opts(f ns.Flags) ns.Options {
	return ns.Resolve(f)
}

func TestSorted(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		flags   ns.Flags
		want    []string
	}{
		{
			name:    "default",
			entries: pathEntries,
			flags:   ns.Flags{Exp: true},
			want:    pick(pathEntries, 3, 2, 1, 0, 5, 6, 4),
		},
		{
			name:    "paths",
			entries: pathEntries,
			flags:   ns.Flags{Exp: true, Paths: true},
			want:    pick(pathEntries, 2, 3, 1, 0, 5, 6, 4),
		},
		{
			name:    "paths reversed",
			entries: pathEntries,
			flags:   ns.Flags{Exp: true, Paths: true, Reverse: true},
			want:    pick(pathEntries, 4, 6, 5, 0, 1, 3, 2),
		},
		{
			name:    "numbers by value",
			entries: []string{"num-10", "num-2", "num-1"},
			flags:   ns.Flags{Exp: true},
			want:    []string{"num-1", "num-2", "num-10"},
		},
		{
			name:    "signed integers",
			entries: []string{"a-5", "a3", "a-10"},
			flags:   ns.Flags{Exp: true, Signed: true},
			want:    []string{"a-10", "a-5", "a3"},
		},
		{
			name:    "unsigned treats dash as text",
			entries: []string{"a-5", "a3", "a-10"},
			flags:   ns.Flags{Exp: true},
			want:    []string{"a3", "a-5", "a-10"},
		},
		{
			name:    "int splits on the dot",
			entries: []string{"x1.10", "x1.5"},
			flags:   ns.Flags{Exp: true},
			want:    []string{"x1.5", "x1.10"},
		},
		{
			name:    "float reads decimals",
			entries: []string{"x1.5", "x1.10"},
			flags:   ns.Flags{NumberType: ns.NumberTypeFloat, Exp: true},
			want:    []string{"x1.10", "x1.5"},
		},
		{
			name:    "float with exponent",
			entries: []string{"1e3", "5"},
			flags:   ns.Flags{NumberType: ns.NumberTypeFloat, Exp: true},
			want:    []string{"5", "1e3"},
		},
		{
			name:    "float without exponent",
			entries: []string{"5", "1e3"},
			flags:   ns.Flags{NumberType: ns.NumberTypeFloat},
			want:    []string{"1e3", "5"},
		},
		{
			name:    "real is signed float",
			entries: []string{"t+1.5", "t-0.5", "t-2"},
			flags:   ns.Flags{NumberType: ns.NumberTypeReal, Exp: true},
			want:    []string{"t-2", "t-0.5", "t+1.5"},
		},
		{
			name:    "long digit runs",
			entries: []string{"x100000000000000000000000", "x99999999999999999999999"},
			flags:   ns.Flags{Exp: true},
			want:    []string{"x99999999999999999999999", "x100000000000000000000000"},
		},
		{
			name:    "ties keep input order",
			entries: []string{"a01", "a1", "a001", "a0"},
			flags:   ns.Flags{Exp: true},
			want:    []string{"a0", "a01", "a1", "a001"},
		},
		{
			name:    "reversed ties keep input order",
			entries: []string{"a01", "a2", "a1"},
			flags:   ns.Flags{Exp: true, Reverse: true},
			want:    []string{"a2", "a01", "a1"},
		},
		{
			name:    "negative zero equals zero",
			entries: []string{"v-0", "v0", "v-1"},
			flags:   ns.Flags{Exp: true, Signed: true},
			want:    []string{"v-1", "v-0", "v0"},
		},
		{
			name:    "bare name before numbered name in path mode",
			entries: []string{"a1.txt", "a.txt"},
			flags:   ns.Flags{Exp: true, Paths: true},
			want:    []string{"a.txt", "a1.txt"},
		},
		{
			name:    "non-ASCII digits by value",
			entries: []string{"a١٠", "a٩", "a2"},
			flags:   ns.Flags{Exp: true},
			want:    []string{"a2", "a٩", "a١٠"},
		},
		{
			name:    "non-ASCII float digits",
			entries: []string{"v٣.٥", "v3.25"},
			flags:   ns.Flags{NumberType: ns.NumberTypeFloat, Exp: true},
			want:    []string{"v3.25", "v٣.٥"},
		},
		{
			name:    "code point order without locale",
			entries: []string{"apple", "Banana"},
			flags:   ns.Flags{Exp: true},
			want:    []string{"Banana", "apple"},
		},
		{
			name:    "collated with locale",
			entries: []string{"Banana", "apple"},
			flags:   ns.Flags{Exp: true, Locale: true},
			want:    []string{"apple", "Banana"},
		},
		{
			name:    "empty",
			entries: nil,
			flags:   ns.Flags{Exp: true},
			want:    []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sorter{Tag: language.Und}.Sorted(tt.entries, opts(tt.flags))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Sorted() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortedLeavesInputAlone(t *testing.T) {
	in := []string{"b2", "b1"}
	_ = Sorter{}.Sorted(in, opts(ns.Flags{Exp: true}))
	if diff := cmp.Diff([]string{"b2", "b1"}, in); diff != "" {
		t.Errorf("input modified (-want +got):\n%s", diff)
	}
}

func TestSortedReadsLocaleFromEnv(t *testing.T) {
	t.Setenv("LC_ALL", "C")
	got := Sorted([]string{"Banana", "apple", "b10", "b9"}, opts(ns.Flags{Exp: true, Locale: true}))
	if diff := cmp.Diff([]string{"apple", "b9", "b10", "Banana"}, got); diff != "" {
		t.Errorf("Sorted() mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"tmp/a1 (1)/path1", []string{"tmp", "a1 (1)", "path1"}},
		{"/usr/lib/x.tar.gz", []string{"/", "usr", "lib", "x", ".tar", ".gz"}},
		{"v1.5.txt", []string{"v1.5", ".txt"}},
		{"dir/archive.2.tar.gz", []string{"dir", "archive.2", ".tar", ".gz"}},
		{".bashrc", []string{".bashrc"}},
		{"name.", []string{"name."}},
		{"dir//sub/", []string{"dir", "sub"}},
		{"", nil},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, splitPath(tt.in)); diff != "" {
			t.Errorf("splitPath(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestEnvTag(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want language.Tag
	}{
		{"unset", nil, language.Und},
		{"lang with encoding", map[string]string{"LANG": "en_US.UTF-8"}, language.MustParse("en-US")},
		{"modifier", map[string]string{"LANG": "de_DE@euro"}, language.MustParse("de-DE")},
		{"lc_all wins", map[string]string{"LC_ALL": "sv_SE", "LANG": "en_US"}, language.MustParse("sv-SE")},
		{"lc_collate before lang", map[string]string{"LC_COLLATE": "fr_FR", "LANG": "en_US"}, language.MustParse("fr-FR")},
		{"posix", map[string]string{"LC_ALL": "C"}, language.Und},
		{"garbage", map[string]string{"LANG": "!!"}, language.Und},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnvTag(func(k string) string { return tt.env[k] })
			if got != tt.want {
				t.Errorf("EnvTag() = %v, want %v", got, tt.want)
			}
		})
	}
}
