package permission

import (
	"github.com/protrack-dev/protrack/backend/internal/domain"
)

// TaskPolicy governs a project's tasks: anyone may look, only the
// project's manager may touch. Update and Delete go through the task's
// own project, so they hold even if a caller were handed a task from a
// different parent; the repository makes that unreachable anyway by
// resolving tasks strictly through their project.
type TaskPolicy struct{}

func (TaskPolicy) Create(parent *domain.Project, actor *domain.Employee) bool {
	return parent.IsManager(actor)
}

func (TaskPolicy) ReadAll(parent *domain.Project, actor *domain.Employee) bool {
	return true
}

func (TaskPolicy) Read(entity *domain.Task, actor *domain.Employee) bool {
	return true
}

func (TaskPolicy) Update(entity *domain.Task, actor *domain.Employee) bool {
	return entity.IsManager(actor)
}

func (TaskPolicy) Delete(entity *domain.Task, actor *domain.Employee) bool {
	return entity.IsManager(actor)
}
