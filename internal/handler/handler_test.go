package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/protrack-dev/protrack/backend/internal/config"
	"github.com/protrack-dev/protrack/backend/internal/domain"
	"github.com/protrack-dev/protrack/backend/internal/permission"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	h, err := NewHandler(&config.Config{}, nil, nil)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	return h
}

func requestAs(actor *domain.Employee) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	return r.WithContext(context.WithValue(r.Context(), EmployeeCtx, actor))
}

func TestRequireRoleAllows(t *testing.T) {
	h := newTestHandler(t)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	rec := httptest.NewRecorder()
	actor := &domain.Employee{ID: 1, Role: domain.RoleManager}
	h.requireRole(domain.RoleManager, domain.RoleAdmin)(next).ServeHTTP(rec, requestAs(actor))

	if !called {
		t.Fatal("next handler not reached")
	}
}

func TestRequireRoleDenies(t *testing.T) {
	h := newTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run")
	})

	rec := httptest.NewRecorder()
	actor := &domain.Employee{ID: 1, Role: domain.RoleStaff}
	h.requireRole(domain.RoleManager, domain.RoleAdmin)(next).ServeHTTP(rec, requestAs(actor))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}

	var resp Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success {
		t.Fatal("response should not be a success")
	}
}

// Lists expose only create; single entities expose only update and delete.
func TestPayloadShapes(t *testing.T) {
	h := newTestHandler(t)

	manager := &domain.Employee{ID: 2, Role: domain.RoleManager}
	project := &domain.Project{ID: 10, Manager: manager}

	rec := httptest.NewRecorder()
	h.successResponse(rec, httptest.NewRequest(http.MethodGet, "/", nil), "ok", ListPayload{
		Permission: permission.ListSummary[*domain.Task](h.taskPermission, project, manager),
		Data:       []*domain.Task{},
	})

	var body struct {
		Data struct {
			Permission map[string]bool `json:"permission"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := body.Data.Permission["create"]; !ok {
		t.Fatal("list permission should expose create")
	}
	if _, ok := body.Data.Permission["update"]; ok {
		t.Fatal("list permission should not expose update")
	}
}

// An update may only prove an artifact of its own task.
func TestCanProve(t *testing.T) {
	manager := &domain.Employee{ID: 3, Role: domain.RoleManager}
	taskA := &domain.Task{ID: 1, Project: &domain.Project{ID: 2, Manager: manager}}
	taskB := &domain.Task{ID: 7, Project: &domain.Project{ID: 8, Manager: manager}}
	artifact := &domain.Artifact{ID: 40, Description: "design doc", Task: taskA}

	if err := canProve(artifact, &domain.Update{ID: 30, Task: taskA}); err != nil {
		t.Fatalf("same-task update rejected: %v", err)
	}
	if err := canProve(artifact, &domain.Update{ID: 31, Task: taskB}); err == nil {
		t.Fatal("cross-task update should be rejected")
	}
}

func TestProofConflict(t *testing.T) {
	conflict := &pgconn.PgError{Code: "23505", ConstraintName: "artifacts_update_id_key"}
	if !proofConflict(conflict) {
		t.Fatal("unique violation on the proof link not recognized")
	}
	if !proofConflict(fmt.Errorf("assign: %w", conflict)) {
		t.Fatal("wrapped unique violation not recognized")
	}
	if proofConflict(&pgconn.PgError{Code: "23505", ConstraintName: "employees_username_key"}) {
		t.Fatal("unrelated constraint misclassified")
	}
	if proofConflict(sql.ErrNoRows) || proofConflict(errors.New("boom")) {
		t.Fatal("non-constraint errors misclassified")
	}
}

func TestArtifactResponseShaping(t *testing.T) {
	task := &domain.Task{ID: 1, Project: &domain.Project{ID: 2, Manager: &domain.Employee{ID: 3}}}
	artifact := &domain.Artifact{ID: 40, Description: "design doc", Task: task}

	resp := newArtifactResponse(artifact)
	if resp.Update != nil {
		t.Fatal("unassigned artifact should serialize update as null")
	}

	artifact.Update = &domain.Update{ID: 30, Title: "final review", Task: task}
	resp = newArtifactResponse(artifact)
	if resp.Update == nil || resp.Update.ID != 30 || resp.Update.Title != "final review" {
		t.Fatalf("assigned artifact update = %+v, want {30 final review}", resp.Update)
	}

	// only id and title ever leak out of the proof update
	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	update, ok := decoded["update"].(map[string]any)
	if !ok {
		t.Fatalf("update field = %v", decoded["update"])
	}
	if len(update) != 2 {
		t.Fatalf("update fields = %v, want exactly id and title", update)
	}
}
