package criteria

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpattn/hrapi/internal/domain"
	"github.com/rpattn/hrapi/internal/filter"
)

func ptr[T any](v T) *T { return &v }

func sampleJobHistoryCriteria() *JobHistoryCriteria {
	t0 := time.Unix(0, 0).UTC()
	c := &JobHistoryCriteria{}
	c.IDFilter().GreaterThanOrEqual = ptr(int64(1))
	c.StartDateFilter().In = []time.Time{t0, t0.Add(time.Hour)}
	c.LanguageFilter().Equals = ptr(domain.LanguageFrench)
	c.JobIDFilter().Equals = ptr(int64(5))
	c.Distinct = ptr(true)
	return c
}

func TestCopyEqualsOriginal(t *testing.T) {
	c := sampleJobHistoryCriteria()
	copied := c.Copy()

	assert.True(t, copied.Equal(c))
	assert.True(t, c.Equal(copied))
	assert.NotSame(t, c, copied)
	assert.NotSame(t, c.StartDate, copied.StartDate)
}

func TestCopyIsIndependent(t *testing.T) {
	c := sampleJobHistoryCriteria()
	copied := c.Copy()

	copied.StartDate.In[0] = time.Now()
	*copied.JobID.Equals = 6
	*copied.Distinct = false
	copied.EndDateFilter().Specified = ptr(true)

	assert.Equal(t, time.Unix(0, 0).UTC(), c.StartDate.In[0])
	assert.Equal(t, int64(5), *c.JobID.Equals)
	assert.True(t, *c.Distinct)
	assert.Nil(t, c.EndDate)
	assert.False(t, copied.Equal(c))
}

func TestEmptyCriteriaCopy(t *testing.T) {
	c := &EmployeeCriteria{}
	copied := c.Copy()
	assert.True(t, c.Equal(copied))
	assert.Equal(t, "EmployeeCriteria{}", copied.String())
}

func TestEqualComparesEveryField(t *testing.T) {
	a := &LocationCriteria{}
	b := &LocationCriteria{}
	assert.True(t, a.Equal(b))

	a.CityFilter().Contains = ptr("ber")
	assert.False(t, a.Equal(b))

	b.CityFilter().Contains = ptr("ber")
	assert.True(t, a.Equal(b))

	b.Distinct = ptr(false)
	assert.False(t, a.Equal(b), "distinct set vs unset must differ")

	a.Distinct = ptr(false)
	assert.True(t, a.Equal(b))

	// An allocated but empty filter is not the same as an absent one.
	a.CountryIDFilter()
	assert.False(t, a.Equal(b))

	var nilCriteria *LocationCriteria
	assert.False(t, nilCriteria.Equal(a))
	assert.True(t, nilCriteria.Equal(nil))
}

func TestEqualInstantsUseTimeEquality(t *testing.T) {
	ts := time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)
	a := &EmployeeCriteria{}
	a.HireDateFilter().Equals = ptr(ts)
	b := &EmployeeCriteria{}
	b.HireDateFilter().Equals = ptr(ts.In(time.FixedZone("CET", 3600)))

	assert.True(t, a.Equal(b))
}

func TestStringListsOnlySetFilters(t *testing.T) {
	c := &LocationCriteria{}
	c.StreetAddressFilter().DoesNotContain = ptr("AAAAAAAAAA")

	assert.Equal(t, "LocationCriteria{streetAddress=StringFilter [doesNotContain=AAAAAAAAAA]}", c.String())

	j := &JobCriteria{Distinct: ptr(true)}
	j.IDFilter().Equals = ptr(int64(5))
	assert.Equal(t, "JobCriteria{id=LongFilter [equals=5], distinct=true}", j.String())
}

func TestStringIsDeterministic(t *testing.T) {
	c := sampleJobHistoryCriteria()
	assert.Equal(t, c.String(), c.Copy().String())
	assert.Equal(t,
		"JobHistoryCriteria{id=LongFilter [greaterThanOrEqual=1], "+
			"startDate=InstantFilter [in=[1970-01-01T00:00:00Z, 1970-01-01T01:00:00Z]], "+
			"language=LanguageFilter [equals=FRENCH], jobId=LongFilter [equals=5], distinct=true}",
		c.String())
}

func TestBindersDecodeQueryString(t *testing.T) {
	values, err := url.ParseQuery("startDate.equals=1970-01-01T00:00:00Z&language.in=FRENCH,ENGLISH&jobId.equals=5&sort=id,desc")
	require.NoError(t, err)

	c := &JobHistoryCriteria{}
	require.NoError(t, filter.Decode(values, c.Binders()))

	assert.Equal(t, time.Unix(0, 0).UTC(), *c.StartDate.Equals)
	assert.Equal(t, []domain.Language{domain.LanguageFrench, domain.LanguageEnglish}, c.Language.In)
	assert.Equal(t, int64(5), *c.JobID.Equals)
	assert.Nil(t, c.EndDate)
	assert.Nil(t, c.EmployeeID)
	assert.False(t, c.IsDistinct())
}

func TestBindersRejectUnknownLanguage(t *testing.T) {
	values := url.Values{"language.equals": {"KLINGON"}}
	c := &JobHistoryCriteria{}
	assert.Error(t, filter.Decode(values, c.Binders()))
	assert.Nil(t, c.Language)
}

func TestEveryCriteriaImplementsInterface(t *testing.T) {
	all := []Criteria{
		&RegionCriteria{}, &CountryCriteria{}, &LocationCriteria{}, &DepartmentCriteria{},
		&TaskCriteria{}, &EmployeeCriteria{}, &JobCriteria{}, &JobHistoryCriteria{},
	}
	for _, c := range all {
		binders := c.Binders()
		assert.Contains(t, binders, "id", "%T", c)
		assert.Contains(t, binders, "distinct", "%T", c)
		require.NoError(t, filter.Decode(url.Values{"distinct": {"true"}}, binders))
		assert.True(t, c.IsDistinct(), "%T", c)
	}
}
