package permission

import (
	"github.com/protrack-dev/protrack/backend/internal/domain"
)

// Policy is the five-operation capability contract every entity kind
// implements over its (entity, parent) pair. All checks are pure: they
// compute a decision from already-loaded entities and never touch storage.
// Existence of the entity and its parent chain is the caller's problem and
// is always settled (as a not-found) before any of these run.
type Policy[E any, P any] interface {
	// Create reports whether actor may create a child under parent.
	Create(parent P, actor *domain.Employee) bool
	// ReadAll reports whether actor may list the children of parent.
	ReadAll(parent P, actor *domain.Employee) bool
	// Read reports whether actor may view entity.
	Read(entity E, actor *domain.Employee) bool
	// Update reports whether actor may mutate entity.
	Update(entity E, actor *domain.Employee) bool
	// Delete reports whether actor may remove entity.
	Delete(entity E, actor *domain.Employee) bool
}

// ListPermission is the capability summary attached to list responses.
// Only create is ever surfaced for lists.
type ListPermission struct {
	Create bool `json:"create"`
}

// EntityPermission is the capability summary attached to single-entity
// responses. Read is enforced, never reported.
type EntityPermission struct {
	Update bool `json:"update"`
	Delete bool `json:"delete"`
}

// ListSummary computes the capability summary for a list of parent's
// children, fresh per request.
func ListSummary[E, P any](p Policy[E, P], parent P, actor *domain.Employee) ListPermission {
	return ListPermission{Create: p.Create(parent, actor)}
}

// EntitySummary computes the capability summary for a single entity,
// fresh per request.
func EntitySummary[E, P any](p Policy[E, P], entity E, actor *domain.Employee) EntityPermission {
	return EntityPermission{
		Update: p.Update(entity, actor),
		Delete: p.Delete(entity, actor),
	}
}
