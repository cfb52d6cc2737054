package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vipcxj/natsort/internal/ns"
	"github.com/vipcxj/natsort/internal/numrange"
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

func floatPipeline(t *testing.T, include, exclude [][2]float64, values ...float64) Pipeline[float64] {
	t.Helper()
	inc, err := numrange.ValidateFilters("--filter", include)
	require.NoError(t, err)
	exc, err := numrange.ValidateFilters("--reverse-filter", exclude)
	require.NoError(t, err)
	return Pipeline[float64]{
		Include: inc,
		Exclude: exc,
		Values:  NewValueSet(values...),
		Pattern: ns.Resolve(ns.Flags{Exp: true}).Pattern(),
		Convert: ParseFloat,
	}
}

func TestPipeline_Include(t *testing.T) {
	p := floatPipeline(t, [][2]float64{{20, 100}}, nil)
	got, err := p.Apply(pathEntries)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"tmp/a23/path1", "tmp/a57/path2", "tmp/a64/path1", "tmp/a64/path2"}, got)
}

func TestPipeline_ReverseFilter(t *testing.T) {
	p := floatPipeline(t, nil, [][2]float64{{20, 100}})
	got, err := p.Apply(pathEntries)
	require.NoError(t, err)
	assert.Equal(t, []string{"tmp/a1/path1", "tmp/a1 (1)/path1", "tmp/a130/path1"}, got)
}

func TestPipeline_ExcludeValues(t *testing.T) {
	p := floatPipeline(t, nil, nil, 23, 130)
	got, err := p.Apply(pathEntries)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"tmp/a57/path2",
		"tmp/a1/path1",
		"tmp/a1 (1)/path1",
		"tmp/a64/path1",
		"tmp/a64/path2",
	}, got)
}

func TestPipeline_StagesRunInOrder(t *testing.T) {
	p := floatPipeline(t, [][2]float64{{1, 64}}, [][2]float64{{50, 60}}, 2)
	var stages []string
	p.Trace = func(stage string, kept int) {
		stages = append(stages, stage)
	}
	got, err := p.Apply(pathEntries)
	require.NoError(t, err)
	assert.Equal(t, []string{StageInclude, StageExclude, StageValues}, stages)
	assert.Equal(t, []string{"tmp/a23/path1", "tmp/a1/path1", "tmp/a1 (1)/path1", "tmp/a130/path1", "tmp/a64/path1"}, got)
}

func TestPipeline_AbsentIsIdentity(t *testing.T) {
	p := floatPipeline(t, nil, nil)
	assert.False(t, p.Active())
	got, err := p.Apply(pathEntries)
	require.NoError(t, err)
	assert.Equal(t, pathEntries, got)

	// No pattern is needed when nothing runs.
	got, err = Pipeline[float64]{}.Apply(pathEntries)
	require.NoError(t, err)
	assert.Equal(t, pathEntries, got)
}

func TestPipeline_IsIdempotent(t *testing.T) {
	p := floatPipeline(t, [][2]float64{{20, 100}}, [][2]float64{{60, 70}}, 23)
	once, err := p.Apply(pathEntries)
	require.NoError(t, err)
	twice, err := p.Apply(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestPipeline_DoesNotModifyInput(t *testing.T) {
	in := append([]string(nil), pathEntries...)
	p := floatPipeline(t, [][2]float64{{20, 100}}, nil)
	_, err := p.Apply(in)
	require.NoError(t, err)
	assert.Equal(t, pathEntries, in)
}

func TestPipeline_MissingPattern(t *testing.T) {
	p := floatPipeline(t, [][2]float64{{20, 100}}, nil)
	p.Pattern = nil
	_, err := p.Apply(pathEntries)
	assert.ErrorIs(t, err, errNoPattern)
}

func TestPipeline_ConversionErrorStops(t *testing.T) {
	set, err := numrange.ValidateFilters("--filter", [][2]int64{{0, 10}})
	require.NoError(t, err)
	p := Pipeline[int64]{
		Include: set,
		Pattern: digits,
		Convert: ParseInt,
	}
	_, err = p.Apply([]string{"a1", "b123456789012345678901234567890"})
	assert.Error(t, err)
}
