package domain

import (
	"time"
)

type ProjectStatus string

const (
	ProjectInProgress ProjectStatus = "IN_PROGRESS"
	ProjectDone       ProjectStatus = "DONE"
	ProjectCancelled  ProjectStatus = "CANCELLED"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectInProgress, ProjectDone, ProjectCancelled:
		return true
	}
	return false
}

type Project struct {
	ID        int64         `json:"id"`
	Title     string        `json:"title"`
	Body      string        `json:"body"`
	Status    ProjectStatus `json:"status"`
	Manager   *Employee     `json:"manager"`
	CreatedAt time.Time     `json:"createdAt"`
}

// IsManager reports whether emp owns this project. Admins own everything.
func (p *Project) IsManager(emp *Employee) bool {
	return emp.Role == RoleAdmin || emp.ID == p.Manager.ID
}
