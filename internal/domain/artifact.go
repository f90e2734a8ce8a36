package domain

import (
	"time"
)

// Artifact is a deliverable of a task. At most one update may be assigned
// to it as proof, and that update must belong to the artifact's own task.
type Artifact struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Task        *Task     `json:"-"`
	Update      *Update   `json:"update"`
	CreatedAt   time.Time `json:"createdAt"`
}
