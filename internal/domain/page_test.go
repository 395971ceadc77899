package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageDefaults(t *testing.T) {
	p, err := ParsePage("", "", nil)
	require.NoError(t, err)
	assert.Equal(t, Page{Number: 0, Size: DefaultPageSize}, p)
}

func TestParsePageSortAndClamp(t *testing.T) {
	p, err := ParsePage("2", "5000", []string{"id,desc", "startDate"})
	require.NoError(t, err)

	assert.Equal(t, 2, p.Number)
	assert.Equal(t, MaxPageSize, p.Size)
	assert.Equal(t, 2*MaxPageSize, p.Offset())
	assert.Equal(t, []Sort{
		{Field: "id", Direction: SortDirectionDesc},
		{Field: "startDate", Direction: SortDirectionAsc},
	}, p.Sort)
}

func TestParsePageRejectsInvalid(t *testing.T) {
	for _, tc := range []struct{ page, size, sort string }{
		{"-1", "", ""},
		{"9223372036854775807", "2000", ""},
		{"9223372036854775807", "", ""},
		{"", "0", ""},
		{"", "abc", ""},
		{"", "", "id,sideways"},
		{"", "", ",desc"},
	} {
		var sorts []string
		if tc.sort != "" {
			sorts = []string{tc.sort}
		}
		_, err := ParsePage(tc.page, tc.size, sorts)
		assert.ErrorIs(t, err, ErrInvalidPage, "page=%q size=%q sort=%q", tc.page, tc.size, tc.sort)
	}
}

func TestParsePageLargestOffset(t *testing.T) {
	last := strconv.Itoa(math.MaxInt / MaxPageSize)
	p, err := ParsePage(last, "5000", nil)
	require.NoError(t, err)
	assert.Positive(t, p.Offset())
}

func TestParseLanguage(t *testing.T) {
	l, err := ParseLanguage(" french ")
	require.NoError(t, err)
	assert.Equal(t, LanguageFrench, l)

	_, err = ParseLanguage("KLINGON")
	assert.Error(t, err)
}

func TestLanguageJSON(t *testing.T) {
	var l Language
	require.NoError(t, json.Unmarshal([]byte(`"spanish"`), &l))
	assert.Equal(t, LanguageSpanish, l)

	assert.Error(t, json.Unmarshal([]byte(`"KLINGON"`), &l))

	out, err := json.Marshal(LanguageEnglish)
	require.NoError(t, err)
	assert.JSONEq(t, `"ENGLISH"`, string(out))
}
