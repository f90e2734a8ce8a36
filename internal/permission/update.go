package permission

import (
	"github.com/protrack-dev/protrack/backend/internal/domain"
)

// isParticipant reports whether actor takes part in the task: its
// assignee, its project's manager, or an admin.
func isParticipant(task *domain.Task, actor *domain.Employee) bool {
	return task.IsManager(actor) || task.Staff.ID == actor.ID
}

// UpdatePolicy governs a task's progress notes. Reading is open to the
// task's participants; writing is restricted to the assignee (the author
// of a task's updates) or the manager.
type UpdatePolicy struct{}

func (UpdatePolicy) Create(parent *domain.Task, actor *domain.Employee) bool {
	return isParticipant(parent, actor)
}

func (UpdatePolicy) ReadAll(parent *domain.Task, actor *domain.Employee) bool {
	return isParticipant(parent, actor)
}

func (UpdatePolicy) Read(entity *domain.Update, actor *domain.Employee) bool {
	return isParticipant(entity.Task, actor)
}

func (UpdatePolicy) Update(entity *domain.Update, actor *domain.Employee) bool {
	return isParticipant(entity.Task, actor)
}

func (UpdatePolicy) Delete(entity *domain.Update, actor *domain.Employee) bool {
	return isParticipant(entity.Task, actor)
}
