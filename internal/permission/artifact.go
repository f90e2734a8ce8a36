package permission

import (
	"github.com/protrack-dev/protrack/backend/internal/domain"
)

// ArtifactPolicy mirrors TaskPolicy's asymmetry: read is open, write is
// manager-only. Assigning or revoking a proof update counts as Update.
type ArtifactPolicy struct{}

func (ArtifactPolicy) Create(parent *domain.Task, actor *domain.Employee) bool {
	return parent.IsManager(actor)
}

func (ArtifactPolicy) ReadAll(parent *domain.Task, actor *domain.Employee) bool {
	return true
}

func (ArtifactPolicy) Read(entity *domain.Artifact, actor *domain.Employee) bool {
	return true
}

func (ArtifactPolicy) Update(entity *domain.Artifact, actor *domain.Employee) bool {
	return entity.Task.IsManager(actor)
}

func (ArtifactPolicy) Delete(entity *domain.Artifact, actor *domain.Employee) bool {
	return entity.Task.IsManager(actor)
}
