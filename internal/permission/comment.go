package permission

import (
	"github.com/protrack-dev/protrack/backend/internal/domain"
)

// CommentPolicy governs comments on a task's updates. Reading is open to
// the task's participants; mutating an existing comment is restricted to
// its author or the task's manager.
type CommentPolicy struct{}

func (CommentPolicy) Create(parent *domain.Update, actor *domain.Employee) bool {
	return isParticipant(parent.Task, actor)
}

func (CommentPolicy) ReadAll(parent *domain.Update, actor *domain.Employee) bool {
	return isParticipant(parent.Task, actor)
}

func (CommentPolicy) Read(entity *domain.Comment, actor *domain.Employee) bool {
	return isParticipant(entity.Update.Task, actor)
}

func (CommentPolicy) Update(entity *domain.Comment, actor *domain.Employee) bool {
	return entity.Author.ID == actor.ID || entity.Update.Task.IsManager(actor)
}

func (CommentPolicy) Delete(entity *domain.Comment, actor *domain.Employee) bool {
	return entity.Author.ID == actor.ID || entity.Update.Task.IsManager(actor)
}
