package permission_test

import (
	"testing"

	"github.com/protrack-dev/protrack/backend/internal/domain"
	"github.com/protrack-dev/protrack/backend/internal/permission"
)

var (
	admin    = &domain.Employee{ID: 1, Username: "admin", Role: domain.RoleAdmin}
	managerA = &domain.Employee{ID: 2, Username: "alice", Role: domain.RoleManager}
	managerB = &domain.Employee{ID: 3, Username: "bob", Role: domain.RoleManager}
	staff    = &domain.Employee{ID: 4, Username: "carol", Role: domain.RoleStaff}
	outsider = &domain.Employee{ID: 5, Username: "dave", Role: domain.RoleStaff}
)

func newProject(manager *domain.Employee) *domain.Project {
	return &domain.Project{ID: 10, Title: "p", Status: domain.ProjectInProgress, Manager: manager}
}

func newTask(project *domain.Project, assignee *domain.Employee) *domain.Task {
	return &domain.Task{ID: 20, Title: "t", Status: domain.TaskInProgress, Project: project, Staff: assignee}
}

func TestProjectOwnership(t *testing.T) {
	project := newProject(managerA)

	tests := []struct {
		name  string
		actor *domain.Employee
		want  bool
	}{
		{"owning manager", managerA, true},
		{"admin", admin, true},
		{"other manager", managerB, false},
		{"staff", staff, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := project.IsManager(tt.actor); got != tt.want {
				t.Fatalf("IsManager(%s) = %v, want %v", tt.actor.Username, got, tt.want)
			}
		})
	}
}

// Update must be granted exactly to the admin or the owning manager.
func TestProjectPolicyUpdate(t *testing.T) {
	var p permission.ProjectPolicy
	project := newProject(managerA)

	for _, actor := range []*domain.Employee{admin, managerA, managerB, staff} {
		want := actor.Role == domain.RoleAdmin || actor.ID == project.Manager.ID
		if got := p.Update(project, actor); got != want {
			t.Fatalf("Update(project, %s) = %v, want %v", actor.Username, got, want)
		}
		if p.Update(project, actor) != p.Delete(project, actor) {
			t.Fatalf("update/delete diverge for %s", actor.Username)
		}
	}
}

func TestProjectPolicyReadAll(t *testing.T) {
	var p permission.ProjectPolicy

	tests := []struct {
		name  string
		actor *domain.Employee
		want  bool
	}{
		{"the manager in question", managerA, true},
		{"admin", admin, true},
		{"other manager", managerB, false},
		{"staff", staff, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.ReadAll(managerA, tt.actor); got != tt.want {
				t.Fatalf("ReadAll = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProjectPolicyReadIsOpen(t *testing.T) {
	var p permission.ProjectPolicy
	project := newProject(managerA)

	for _, actor := range []*domain.Employee{admin, managerA, managerB, staff} {
		if !p.Read(project, actor) {
			t.Fatalf("Read(project, %s) = false, want true", actor.Username)
		}
	}
}

func TestTaskPolicy(t *testing.T) {
	var p permission.TaskPolicy
	project := newProject(managerA)
	task := newTask(project, staff)

	for _, actor := range []*domain.Employee{admin, managerA, managerB, staff} {
		want := project.IsManager(actor)
		if got := p.Create(project, actor); got != want {
			t.Fatalf("Create(%s) = %v, want %v", actor.Username, got, want)
		}
		if got := p.Update(task, actor); got != want {
			t.Fatalf("Update(%s) = %v, want %v", actor.Username, got, want)
		}
		// The same predicate governs update and delete.
		if p.Update(task, actor) != p.Delete(task, actor) {
			t.Fatalf("update/delete diverge for %s", actor.Username)
		}
		if !p.Read(task, actor) || !p.ReadAll(project, actor) {
			t.Fatalf("read should be unrestricted for %s", actor.Username)
		}
	}
}

// Update/delete consult the task's own project, not the parent handed in.
func TestTaskPolicyUsesOwnProject(t *testing.T) {
	var p permission.TaskPolicy
	task := newTask(newProject(managerA), staff)

	if !p.Update(task, managerA) {
		t.Fatal("owning manager should be allowed")
	}
	if p.Update(task, managerB) {
		t.Fatal("foreign manager should be denied")
	}
}

func TestUpdatePolicy(t *testing.T) {
	var p permission.UpdatePolicy
	task := newTask(newProject(managerA), staff)
	update := &domain.Update{ID: 30, Title: "u", Type: domain.UpdateProgress, Task: task}

	tests := []struct {
		name  string
		actor *domain.Employee
		want  bool
	}{
		{"admin", admin, true},
		{"project manager", managerA, true},
		{"assignee", staff, true},
		{"other manager", managerB, false},
		{"unrelated staff", outsider, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Create(task, tt.actor); got != tt.want {
				t.Fatalf("Create = %v, want %v", got, tt.want)
			}
			if got := p.ReadAll(task, tt.actor); got != tt.want {
				t.Fatalf("ReadAll = %v, want %v", got, tt.want)
			}
			if got := p.Read(update, tt.actor); got != tt.want {
				t.Fatalf("Read = %v, want %v", got, tt.want)
			}
			if got := p.Update(update, tt.actor); got != tt.want {
				t.Fatalf("Update = %v, want %v", got, tt.want)
			}
			if got := p.Delete(update, tt.actor); got != tt.want {
				t.Fatalf("Delete = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestArtifactPolicy(t *testing.T) {
	var p permission.ArtifactPolicy
	task := newTask(newProject(managerA), staff)
	artifact := &domain.Artifact{ID: 40, Description: "a", Task: task}

	for _, actor := range []*domain.Employee{admin, managerA, managerB, staff} {
		want := task.IsManager(actor)
		if got := p.Create(task, actor); got != want {
			t.Fatalf("Create(%s) = %v, want %v", actor.Username, got, want)
		}
		if got := p.Update(artifact, actor); got != want {
			t.Fatalf("Update(%s) = %v, want %v", actor.Username, got, want)
		}
		if got := p.Delete(artifact, actor); got != want {
			t.Fatalf("Delete(%s) = %v, want %v", actor.Username, got, want)
		}
		if !p.Read(artifact, actor) || !p.ReadAll(task, actor) {
			t.Fatalf("read should be unrestricted for %s", actor.Username)
		}
	}
}

func TestCommentPolicy(t *testing.T) {
	var p permission.CommentPolicy
	task := newTask(newProject(managerA), staff)
	update := &domain.Update{ID: 30, Task: task}
	comment := &domain.Comment{ID: 50, Body: "c", Update: update, Author: staff}

	tests := []struct {
		name      string
		actor     *domain.Employee
		canWrite  bool
		canCreate bool
	}{
		{"author", staff, true, true},
		{"project manager", managerA, true, true},
		{"admin", admin, true, true},
		{"other manager", managerB, false, false},
		{"unrelated staff", outsider, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Create(update, tt.actor); got != tt.canCreate {
				t.Fatalf("Create = %v, want %v", got, tt.canCreate)
			}
			if got := p.Update(comment, tt.actor); got != tt.canWrite {
				t.Fatalf("Update = %v, want %v", got, tt.canWrite)
			}
			if got := p.Delete(comment, tt.actor); got != tt.canWrite {
				t.Fatalf("Delete = %v, want %v", got, tt.canWrite)
			}
		})
	}
}

// A comment's author keeps write access even on somebody else's task.
func TestCommentAuthorOverride(t *testing.T) {
	var p permission.CommentPolicy
	task := newTask(newProject(managerA), staff)
	update := &domain.Update{ID: 30, Task: task}
	comment := &domain.Comment{ID: 50, Update: update, Author: outsider}

	if !p.Update(comment, outsider) {
		t.Fatal("author should keep write access to their own comment")
	}
	if p.Read(comment, outsider) {
		t.Fatal("non-participant should not read the thread")
	}
}

func TestListSummary(t *testing.T) {
	project := newProject(managerA)

	tests := []struct {
		name       string
		actor      *domain.Employee
		wantCreate bool
	}{
		{"owning manager", managerA, true},
		{"admin", admin, true},
		{"other manager", managerB, false},
		{"staff", staff, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := permission.ListSummary[*domain.Task](permission.TaskPolicy{}, project, tt.actor)
			if got.Create != tt.wantCreate {
				t.Fatalf("ListSummary.Create = %v, want %v", got.Create, tt.wantCreate)
			}
		})
	}
}

func TestEntitySummary(t *testing.T) {
	project := newProject(managerA)

	got := permission.EntitySummary[*domain.Project, *domain.Employee](permission.ProjectPolicy{}, project, managerA)
	if !got.Update || !got.Delete {
		t.Fatalf("owner summary = %+v, want update and delete", got)
	}

	got = permission.EntitySummary[*domain.Project, *domain.Employee](permission.ProjectPolicy{}, project, staff)
	if got.Update || got.Delete {
		t.Fatalf("staff summary = %+v, want neither", got)
	}
}
