package domain

import "time"

// JobHistory records a period an employee held a job in a department.
type JobHistory struct {
	ID         int64
	StartDate  *time.Time
	EndDate    *time.Time
	Language   *Language
	Job        *Job
	Department *Department
	Employee   *Employee
}
