package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestRangeFilterCopyIsIndependent(t *testing.T) {
	original := &LongFilter{
		Filter:      Filter[int64]{Equals: ptr(int64(5)), In: []int64{1, 2}},
		GreaterThan: ptr(int64(3)),
	}

	copied := original.Copy()
	require.Equal(t, original, copied)

	*copied.Equals = 6
	copied.In[0] = 9
	*copied.GreaterThan = 4

	assert.Equal(t, int64(5), *original.Equals)
	assert.Equal(t, []int64{1, 2}, original.In)
	assert.Equal(t, int64(3), *original.GreaterThan)
}

func TestCopyPreservesNilAndEmpty(t *testing.T) {
	var nilFilter *StringFilter
	assert.Nil(t, nilFilter.Copy())

	f := &StringFilter{Filter: Filter[string]{In: []string{}}}
	c := f.Copy()
	assert.NotNil(t, c.In)
	assert.Nil(t, c.NotIn)
}

func TestStringListsOnlySetPredicates(t *testing.T) {
	f := &LongFilter{Filter: Filter[int64]{Equals: ptr(int64(5))}}
	assert.Equal(t, "LongFilter [equals=5]", f.String())

	s := &StringFilter{DoesNotContain: ptr("AAAAAAAAAA")}
	assert.Equal(t, "StringFilter [doesNotContain=AAAAAAAAAA]", s.String())

	ts := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
	i := &InstantFilter{Filter: Filter[time.Time]{In: []time.Time{ts, ts.Add(time.Hour)}}}
	assert.Equal(t, "InstantFilter [in=[2021-03-04T05:06:07Z, 2021-03-04T06:06:07Z]]", i.String())

	b := &BooleanFilter{Specified: ptr(false)}
	assert.Equal(t, "BooleanFilter [specified=false]", b.String())
}

func TestIsEmpty(t *testing.T) {
	var nilFilter *LongFilter
	assert.True(t, nilFilter.IsEmpty())
	assert.True(t, (&LongFilter{}).IsEmpty())
	assert.False(t, (&LongFilter{LessThan: ptr(int64(1))}).IsEmpty())
	assert.False(t, (&StringFilter{Contains: ptr("x")}).IsEmpty())
}

type color string

func TestMapConvertsValues(t *testing.T) {
	f := &Filter[color]{Equals: ptr(color("red")), NotIn: []color{"blue"}, Specified: ptr(true)}

	m := Map(f, func(c color) string { return string(c) })

	assert.Equal(t, "red", *m.Equals)
	assert.Equal(t, []string{"blue"}, m.NotIn)
	assert.Nil(t, m.In)
	assert.True(t, *m.Specified)
	assert.Equal(t, "colorFilter [equals=red, specified=true, notIn=[blue]]", f.String())
}
