package criteria

import "github.com/rpattn/hrapi/internal/filter"

// TaskCriteria filters tasks.
type TaskCriteria struct {
	ID          *filter.LongFilter
	Title       *filter.StringFilter
	Description *filter.StringFilter
	JobID       *filter.LongFilter
	Distinct    *bool
}

// Copy returns a deep copy of c.
func (c *TaskCriteria) Copy() *TaskCriteria {
	return &TaskCriteria{
		ID:          c.ID.Copy(),
		Title:       c.Title.Copy(),
		Description: c.Description.Copy(),
		JobID:       c.JobID.Copy(),
		Distinct:    copyFlag(c.Distinct),
	}
}

// Equal compares every filter and the distinct flag.
func (c *TaskCriteria) Equal(other *TaskCriteria) bool {
	return equal(c, other)
}

func (c *TaskCriteria) IDFilter() *filter.LongFilter            { return ensure(&c.ID) }
func (c *TaskCriteria) TitleFilter() *filter.StringFilter       { return ensure(&c.Title) }
func (c *TaskCriteria) DescriptionFilter() *filter.StringFilter { return ensure(&c.Description) }
func (c *TaskCriteria) JobIDFilter() *filter.LongFilter         { return ensure(&c.JobID) }
func (c *TaskCriteria) IsDistinct() bool                        { return isDistinct(c.Distinct) }

func (c *TaskCriteria) Binders() map[string]filter.Binder {
	return map[string]filter.Binder{
		"id":          filter.BindRange(&c.ID, filter.ParseInt64),
		"title":       filter.BindString(&c.Title),
		"description": filter.BindString(&c.Description),
		"jobId":       filter.BindRange(&c.JobID, filter.ParseInt64),
		"distinct":    filter.BindFlag(&c.Distinct),
	}
}

func (c *TaskCriteria) String() string {
	var p []string
	p = set(p, "id", c.ID)
	p = set(p, "title", c.Title)
	p = set(p, "description", c.Description)
	p = set(p, "jobId", c.JobID)
	return render("TaskCriteria", p, c.Distinct)
}
