package domain

import (
	"time"
)

type TaskStatus string

const (
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskDone       TaskStatus = "DONE"
	TaskCancelled  TaskStatus = "CANCELLED"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskInProgress, TaskDone, TaskCancelled:
		return true
	}
	return false
}

type Task struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	Status    TaskStatus `json:"status"`
	Project   *Project   `json:"-"`
	Staff     *Employee  `json:"staff"`
	CreatedAt time.Time  `json:"createdAt"`
}

// IsManager delegates ownership to the owning project.
func (t *Task) IsManager(emp *Employee) bool {
	return t.Project.IsManager(emp)
}
