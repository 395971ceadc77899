//go:build integration

package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpattn/hrapi/internal/criteria"
	"github.com/rpattn/hrapi/internal/db"
	"github.com/rpattn/hrapi/internal/domain"
)

// openTestDB connects to HRAPI_TEST_DATABASE_URL, migrates and empties every
// table.
func openTestDB(t *testing.T) *db.Connection {
	t.Helper()
	url := os.Getenv("HRAPI_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("HRAPI_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	conn, err := db.NewConnection(ctx, db.Config{URL: url})
	require.NoError(t, err)
	t.Cleanup(conn.Close)

	_, err = db.RunMigrations(conn.Pool, db.Up)
	require.NoError(t, err)
	_, err = conn.Pool.Exec(ctx, `TRUNCATE job_history, rel_job__task, job, employee, task,
		department, location, country, region RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return conn
}

func TestJobHistoryFiltering(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()

	jobs := NewJobRepository(conn.Pool)
	histories := NewJobHistoryRepository(conn.Pool)

	job, err := jobs.Create(ctx, domain.Job{JobTitle: ptr("Engineer")})
	require.NoError(t, err)

	t0 := time.Unix(0, 0).UTC()
	t1 := time.Now().UTC().Truncate(time.Microsecond)
	french := domain.LanguageFrench
	h0, err := histories.Create(ctx, domain.JobHistory{StartDate: &t0, Language: &french, Job: &domain.Job{ID: job.ID}})
	require.NoError(t, err)
	_, err = histories.Create(ctx, domain.JobHistory{StartDate: &t1})
	require.NoError(t, err)

	c := &criteria.JobHistoryCriteria{}
	c.StartDateFilter().Equals = &t0
	found, total, err := histories.FindByCriteria(ctx, c, domain.Page{Size: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, h0.ID, found[0].ID)

	c = &criteria.JobHistoryCriteria{}
	c.StartDateFilter().In = []time.Time{t0, t1}
	n, err := histories.CountByCriteria(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	c = &criteria.JobHistoryCriteria{}
	c.JobIDFilter().Equals = &job.ID
	found, _, err = histories.FindByCriteria(ctx, c, domain.Page{Size: 20})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, domain.LanguageFrench, *found[0].Language)

	c.JobIDFilter().Equals = ptr(job.ID + 1)
	n, err = histories.CountByCriteria(ctx, c)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLocationDoesNotContain(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	locations := NewLocationRepository(conn.Pool)

	_, err := locations.Create(ctx, domain.Location{StreetAddress: ptr("AAAAAAAAAA street")})
	require.NoError(t, err)
	other, err := locations.Create(ctx, domain.Location{StreetAddress: ptr("BBBBBBBBBB road")})
	require.NoError(t, err)

	c := &criteria.LocationCriteria{}
	c.StreetAddressFilter().DoesNotContain = ptr("aaaaaaaaaa")
	found, _, err := locations.FindByCriteria(ctx, c, domain.Page{Size: 20})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, other.ID, found[0].ID)
}

func TestJobTasksRelation(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	tasks := NewTaskRepository(conn.Pool)
	jobs := NewJobRepository(conn.Pool)

	review, err := tasks.Create(ctx, domain.Task{Title: ptr("review")})
	require.NoError(t, err)
	deploy, err := tasks.Create(ctx, domain.Task{Title: ptr("deploy")})
	require.NoError(t, err)

	withTasks, err := jobs.Create(ctx, domain.Job{JobTitle: ptr("Lead"), Tasks: []domain.Task{{ID: review.ID}, {ID: deploy.ID}}})
	require.NoError(t, err)
	assert.Equal(t, []int64{review.ID, deploy.ID}, withTasks.TaskIDs())
	assert.Equal(t, "review", *withTasks.Tasks[0].Title)
	bare, err := jobs.Create(ctx, domain.Job{JobTitle: ptr("Intern")})
	require.NoError(t, err)

	c := &criteria.JobCriteria{}
	c.TaskIDFilter().Equals = &deploy.ID
	found, _, err := jobs.FindByCriteria(ctx, c, domain.Page{Size: 20})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, withTasks.ID, found[0].ID)

	c = &criteria.JobCriteria{}
	c.TaskIDFilter().Specified = ptr(false)
	found, _, err = jobs.FindByCriteria(ctx, c, domain.Page{Size: 20})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, bare.ID, found[0].ID)

	tc := &criteria.TaskCriteria{}
	tc.JobIDFilter().Equals = &withTasks.ID
	n, err := tasks.CountByCriteria(ctx, tc)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	withTasks.Tasks = []domain.Task{{ID: deploy.ID}}
	updated, err := jobs.Update(ctx, withTasks)
	require.NoError(t, err)
	assert.Equal(t, []int64{deploy.ID}, updated.TaskIDs())

	byJob, err := jobs.TasksByJobIDs(ctx, []int64{withTasks.ID, bare.ID})
	require.NoError(t, err)
	assert.Len(t, byJob[withTasks.ID], 1)
	assert.Empty(t, byJob[bare.ID])

	_, err = jobs.Create(ctx, domain.Job{Tasks: []domain.Task{{ID: 9999}}})
	assert.ErrorIs(t, err, ErrConstraint)
}

func TestCrudAndPaging(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	regions := NewRegionRepository(conn.Pool)

	for _, name := range []string{"Europe", "Asia", "Americas"} {
		_, err := regions.Create(ctx, domain.Region{RegionName: ptr(name)})
		require.NoError(t, err)
	}

	page := domain.Page{Number: 0, Size: 2, Sort: []domain.Sort{{Field: "regionName", Direction: domain.SortDirectionAsc}}}
	found, total, err := regions.FindByCriteria(ctx, &criteria.RegionCriteria{Distinct: ptr(true)}, page)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, found, 2)
	assert.Equal(t, "Americas", *found[0].RegionName)
	assert.Equal(t, "Asia", *found[1].RegionName)

	r, err := regions.GetByID(ctx, found[0].ID)
	require.NoError(t, err)
	r.RegionName = ptr("The Americas")
	_, err = regions.Update(ctx, r)
	require.NoError(t, err)

	require.NoError(t, regions.Delete(ctx, r.ID))
	_, err = regions.GetByID(ctx, r.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, regions.Delete(ctx, r.ID), ErrNotFound)
	_, err = regions.Update(ctx, r)
	assert.ErrorIs(t, err, ErrNotFound)

	ok, err := regions.Exists(ctx, found[1].ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDepartmentEmployeeRelation(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	departments := NewDepartmentRepository(conn.Pool)
	employees := NewEmployeeRepository(conn.Pool)

	sales, err := departments.Create(ctx, domain.Department{DepartmentName: "Sales"})
	require.NoError(t, err)
	_, err = departments.Create(ctx, domain.Department{DepartmentName: "Empty"})
	require.NoError(t, err)

	hired := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	boss, err := employees.Create(ctx, domain.Employee{FirstName: ptr("Grace"), HireDate: &hired, Department: &domain.Department{ID: sales.ID}})
	require.NoError(t, err)
	_, err = employees.Create(ctx, domain.Employee{FirstName: ptr("Alan"), Manager: &domain.Employee{ID: boss.ID}})
	require.NoError(t, err)

	c := &criteria.DepartmentCriteria{}
	c.EmployeeIDFilter().Equals = &boss.ID
	found, _, err := departments.FindByCriteria(ctx, c, domain.Page{Size: 20})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Sales", found[0].DepartmentName)

	ec := &criteria.EmployeeCriteria{}
	ec.ManagerIDFilter().Equals = &boss.ID
	ec.HireDateFilter().Specified = ptr(false)
	found2, _, err := employees.FindByCriteria(ctx, ec, domain.Page{Size: 20})
	require.NoError(t, err)
	require.Len(t, found2, 1)
	assert.Equal(t, "Alan", *found2[0].FirstName)
}
