package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/protrack-dev/protrack/backend/internal/domain"
	"github.com/protrack-dev/protrack/backend/internal/permission"
)

// artifactUpdateRef is the only shape the proof update is ever exposed in.
type artifactUpdateRef struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type artifactResponse struct {
	ID          int64              `json:"id"`
	Description string             `json:"description"`
	Update      *artifactUpdateRef `json:"update"`
	CreatedAt   time.Time          `json:"createdAt"`
}

func newArtifactResponse(artifact *domain.Artifact) artifactResponse {
	resp := artifactResponse{
		ID:          artifact.ID,
		Description: artifact.Description,
		CreatedAt:   artifact.CreatedAt,
	}
	if artifact.Update != nil {
		resp.Update = &artifactUpdateRef{ID: artifact.Update.ID, Title: artifact.Update.Title}
	}
	return resp
}

func (h *Handler) GetTaskArtifacts(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(EmployeeCtx).(*domain.Employee)
	task := r.Context().Value(TaskCtx).(*domain.Task)

	if err := permission.CanView(h.artifactPermission.ReadAll(task, actor), "Task's Artifact"); err != nil {
		h.forbidden(w, r, err)
		return
	}

	artifacts, err := h.repository.GetArtifactsByTask(task)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	data := make([]artifactResponse, 0, len(artifacts))
	for _, artifact := range artifacts {
		data = append(data, newArtifactResponse(artifact))
	}

	h.successResponse(w, r, "artifacts listed", ListPayload{
		Permission: permission.ListSummary[*domain.Artifact](h.artifactPermission, task, actor),
		Data:       data,
	})
}

func (h *Handler) CreateArtifact(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(EmployeeCtx).(*domain.Employee)
	task := r.Context().Value(TaskCtx).(*domain.Task)

	if err := permission.CanManage(h.artifactPermission.Create(task, actor), "Task's Artifact"); err != nil {
		h.forbidden(w, r, err)
		return
	}

	var req struct {
		Description string `json:"description" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	artifact := &domain.Artifact{
		Description: req.Description,
		Task:        task,
	}

	if err := h.repository.CreateArtifact(artifact); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.createdResponse(w, r, "artifact created", newArtifactResponse(artifact))
}

func (h *Handler) GetArtifact(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(EmployeeCtx).(*domain.Employee)
	artifact := r.Context().Value(ArtifactCtx).(*domain.Artifact)

	if err := permission.CanView(h.artifactPermission.Read(artifact, actor), "Task's Artifact"); err != nil {
		h.forbidden(w, r, err)
		return
	}

	h.successResponse(w, r, "artifact found", EntityPayload{
		Permission: permission.EntitySummary[*domain.Artifact, *domain.Task](h.artifactPermission, artifact, actor),
		Data:       newArtifactResponse(artifact),
	})
}

func (h *Handler) UpdateArtifact(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(EmployeeCtx).(*domain.Employee)
	artifact := r.Context().Value(ArtifactCtx).(*domain.Artifact)

	if err := permission.CanManage(h.artifactPermission.Update(artifact, actor), "Task's Artifact"); err != nil {
		h.forbidden(w, r, err)
		return
	}

	var req struct {
		Description string `json:"description" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	artifact.Description = req.Description

	if err := h.repository.UpdateArtifact(artifact); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "artifact updated", newArtifactResponse(artifact))
}

func (h *Handler) DeleteArtifact(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(EmployeeCtx).(*domain.Employee)
	artifact := r.Context().Value(ArtifactCtx).(*domain.Artifact)

	if err := permission.CanManage(h.artifactPermission.Delete(artifact, actor), "Task's Artifact"); err != nil {
		h.forbidden(w, r, err)
		return
	}

	if err := h.repository.DeleteArtifact(artifact.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "artifact deleted", nil)
}

var errProofCrossTask = errors.New("update does not belong to the artifact's task")

// canProve reports whether update may be assigned to artifact as proof.
// The update must belong to the artifact's own task.
func canProve(artifact *domain.Artifact, update *domain.Update) error {
	if update.Task.ID != artifact.Task.ID {
		return errProofCrossTask
	}
	return nil
}

// proofConflict matches the unique violation raised when the update
// already proves another artifact (artifacts_update_id_key).
func proofConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.ConstraintName == "artifacts_update_id_key"
}

// AssignArtifactUpdate links a task update to the artifact as proof. The
// update must belong to the artifact's own task; linking across tasks is
// rejected outright.
func (h *Handler) AssignArtifactUpdate(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(EmployeeCtx).(*domain.Employee)
	artifact := r.Context().Value(ArtifactCtx).(*domain.Artifact)

	if err := permission.CanManage(h.artifactPermission.Update(artifact, actor), "Task's Artifact"); err != nil {
		h.forbidden(w, r, err)
		return
	}

	var req struct {
		UpdateID int64 `json:"updateId" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	update, err := h.repository.GetUpdateByID(req.UpdateID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Update")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := canProve(artifact, update); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.AssignArtifactUpdate(artifact.ID, update.ID); err != nil {
		switch {
		case proofConflict(err):
			h.badRequest(w, r, errors.New("update already proves another artifact"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	artifact.Update = update

	h.successResponse(w, r, "update assigned", newArtifactResponse(artifact))
}

// UnassignArtifactUpdate clears the proof link. Unassigning an artifact
// that has no update is not an error.
func (h *Handler) UnassignArtifactUpdate(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(EmployeeCtx).(*domain.Employee)
	artifact := r.Context().Value(ArtifactCtx).(*domain.Artifact)

	if err := permission.CanManage(h.artifactPermission.Update(artifact, actor), "Task's Artifact"); err != nil {
		h.forbidden(w, r, err)
		return
	}

	if err := h.repository.UnassignArtifactUpdate(artifact.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	artifact.Update = nil

	h.successResponse(w, r, "update unassigned", newArtifactResponse(artifact))
}
