package permission

import (
	"github.com/protrack-dev/protrack/backend/internal/domain"
)

// ProjectPolicy governs a manager's projects. The parent is the owning
// manager resolved from the route; the route-level role gate already
// restricts who may attempt a create, so Create itself is unconditional.
type ProjectPolicy struct{}

func (ProjectPolicy) Create(parent *domain.Employee, actor *domain.Employee) bool {
	return true
}

func (ProjectPolicy) ReadAll(parent *domain.Employee, actor *domain.Employee) bool {
	return actor.Role == domain.RoleAdmin || actor.ID == parent.ID
}

func (ProjectPolicy) Read(entity *domain.Project, actor *domain.Employee) bool {
	return true
}

func (ProjectPolicy) Update(entity *domain.Project, actor *domain.Employee) bool {
	return entity.IsManager(actor)
}

func (ProjectPolicy) Delete(entity *domain.Project, actor *domain.Employee) bool {
	return entity.IsManager(actor)
}
