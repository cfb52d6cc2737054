package cmd

import (
	"fmt"
	"strings"

	"github.com/vipcxj/natsort/internal/filter"
)

// rangeList collects repeated LOW,HIGH flag values. Order is kept and the
// pairs are not validated here.
type rangeList struct {
	pairs [][2]float64
}

func (r *rangeList) String() string {
	parts := make([]string, len(r.pairs))
	for i, p := range r.pairs {
		parts[i] = fmt.Sprintf("%g,%g", p[0], p[1])
	}
	return strings.Join(parts, " ")
}

func (r *rangeList) Set(s string) error {
	fields := strings.Split(s, ",")
	if len(fields) != 2 {
		return fmt.Errorf("want LOW,HIGH, got %q", s)
	}
	var pair [2]float64
	for i, f := range fields {
		v, err := filter.ParseFloat(strings.TrimSpace(f))
		if err != nil {
			return fmt.Errorf("invalid number %q", f)
		}
		pair[i] = v
	}
	r.pairs = append(r.pairs, pair)
	return nil
}

func (r *rangeList) Type() string { return "low,high" }

// pairFlags maps every spelling of a two-value flag to its long name.
var pairFlags = map[string]string{
	"-f":               "--filter",
	"--filter":         "--filter",
	"-F":               "--reverse-filter",
	"--reverse-filter": "--reverse-filter",
}

// boolShorthands are the short flags that take no value and so may lead a
// cluster such as "-rf".
const boolShorthands = "rsplz"

// splitCluster splits a short-flag cluster ending in a two-value flag, such
// as "-rf", into the leading flags ("-r") and the pair flag ("-f").
func splitCluster(arg string) (lead, pair string, ok bool) {
	if len(arg) < 3 || arg[0] != '-' || arg[1] == '-' {
		return "", "", false
	}
	last := arg[len(arg)-1:]
	if _, isPair := pairFlags["-"+last]; !isPair {
		return "", "", false
	}
	for _, r := range arg[1 : len(arg)-1] {
		if !strings.ContainsRune(boolShorthands, r) {
			return "", "", false
		}
	}
	return arg[:len(arg)-1], "-" + last, true
}

// foldPairFlags rewrites "--filter LOW HIGH" as "--filter=LOW,HIGH" so that
// the flag parser sees a single value and negative bounds are not mistaken
// for flags. A cluster like "-rf LOW HIGH" becomes "-r --filter=LOW,HIGH".
// Everything after "--" is left alone.
func foldPairFlags(args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if lead, pair, ok := splitCluster(arg); ok {
			out = append(out, lead)
			arg = pair
		}
		name, ok := pairFlags[arg]
		if !ok {
			out = append(out, arg)
			continue
		}
		if i+2 >= len(args) {
			return nil, fmt.Errorf("flag needs two arguments: %s LOW HIGH", arg)
		}
		out = append(out, name+"="+args[i+1]+","+args[i+2])
		i += 2
	}
	return out, nil
}
