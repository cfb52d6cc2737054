package filter

import (
	"math"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vipcxj/natsort/internal/ns"
)

func collect[N int64 | float64](t *testing.T, entry string, re *regexp.Regexp, conv Converter[N]) []N {
	t.Helper()
	var out []N
	for n, err := range Extract(entry, re, conv) {
		require.NoError(t, err)
		out = append(out, n)
	}
	return out
}

func TestExtract_LeftToRight(t *testing.T) {
	assert.Equal(t, []int64{56, 23, 89}, collect(t, "a56b23c89", digits, ParseInt))
	assert.Empty(t, collect(t, "nothing", digits, ParseInt))
}

func TestExtract_FollowsNumberMode(t *testing.T) {
	const entry = "x-1.5e2y+3z"
	cases := []struct {
		name  string
		flags ns.Flags
		want  []float64
	}{
		{"int", ns.Flags{NumberType: ns.NumberTypeInt, Exp: true}, []float64{1, 5, 2, 3}},
		{"int_signed", ns.Flags{NumberType: ns.NumberTypeInt, Signed: true, Exp: true}, []float64{-1, 5, 2, 3}},
		{"float", ns.Flags{NumberType: ns.NumberTypeFloat, Exp: true}, []float64{150, 3}},
		{"float_noexp", ns.Flags{NumberType: ns.NumberTypeFloat}, []float64{1.5, 2, 3}},
		{"real", ns.Flags{NumberType: ns.NumberTypeReal, Exp: true}, []float64{-150, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			re := ns.Resolve(tc.flags).Pattern()
			assert.Equal(t, tc.want, collect(t, entry, re, ParseFloat))
		})
	}
}

func TestExtract_IsLazy(t *testing.T) {
	calls := 0
	conv := func(s string) (int64, error) {
		calls++
		return ParseInt(s)
	}
	for n, err := range Extract("1 2 3 4", digits, conv) {
		require.NoError(t, err)
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, calls)
}

func TestExtract_ConversionErrorPropagates(t *testing.T) {
	var errs []error
	for _, err := range Extract("a99999999999999999999b1", digits, ParseInt) {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], strconv.ErrRange)
	assert.Contains(t, errs[0].Error(), `"99999999999999999999"`)
}

func TestParseFloat_OverflowIsInfinite(t *testing.T) {
	f, err := ParseFloat("1e999")
	require.NoError(t, err)
	assert.True(t, math.IsInf(f, 1))

	_, err = ParseFloat("abc")
	assert.Error(t, err)
}
