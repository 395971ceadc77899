package domain

// Job is a position held by an employee. Tasks is a many-to-many relation
// whose members carry only their id and title when loaded.
type Job struct {
	ID        int64
	JobTitle  *string
	MinSalary *int64
	MaxSalary *int64
	Tasks     []Task
	Employee  *Employee
}

// TaskIDs returns the ids of the attached tasks in order.
func (j Job) TaskIDs() []int64 {
	ids := make([]int64, len(j.Tasks))
	for i, t := range j.Tasks {
		ids[i] = t.ID
	}
	return ids
}
