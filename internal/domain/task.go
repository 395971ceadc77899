package domain

// Task is a unit of work that can be attached to many jobs.
type Task struct {
	ID          int64
	Title       *string
	Description *string
}
