package domain

import (
	"time"
)

type UpdateType string

const (
	UpdateProgress UpdateType = "PROGRESS"
	UpdateBlocker  UpdateType = "BLOCKER"
	UpdateInfo     UpdateType = "INFO"
)

func (t UpdateType) Valid() bool {
	switch t {
	case UpdateProgress, UpdateBlocker, UpdateInfo:
		return true
	}
	return false
}

// Update is a progress note on a task.
type Update struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	Type      UpdateType `json:"type"`
	Task      *Task      `json:"-"`
	CreatedAt time.Time  `json:"createdAt"`
}
