package handler

import (
	"errors"
	"net/http"

	"github.com/protrack-dev/protrack/backend/internal/domain"
	"github.com/protrack-dev/protrack/backend/internal/permission"
)

func (h *Handler) GetTaskUpdates(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(EmployeeCtx).(*domain.Employee)
	task := r.Context().Value(TaskCtx).(*domain.Task)

	if err := permission.CanView(h.updatePermission.ReadAll(task, actor), "Task's Update"); err != nil {
		h.forbidden(w, r, err)
		return
	}

	updates, err := h.repository.GetUpdatesByTask(task)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "updates listed", ListPayload{
		Permission: permission.ListSummary[*domain.Update](h.updatePermission, task, actor),
		Data:       updates,
	})
}

func (h *Handler) CreateUpdate(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(EmployeeCtx).(*domain.Employee)
	task := r.Context().Value(TaskCtx).(*domain.Task)

	if err := permission.CanManage(h.updatePermission.Create(task, actor), "Task's Update"); err != nil {
		h.forbidden(w, r, err)
		return
	}

	var req struct {
		Title string `json:"title" validate:"required"`
		Body  string `json:"body" validate:"required"`
		Type  string `json:"type" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	updateType := domain.UpdateType(req.Type)
	if !updateType.Valid() {
		h.badRequest(w, r, errors.New("invalid update type"))
		return
	}

	update := &domain.Update{
		Title: req.Title,
		Body:  req.Body,
		Type:  updateType,
		Task:  task,
	}

	if err := h.repository.CreateUpdate(update); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.createdResponse(w, r, "update created", update)
}

func (h *Handler) GetUpdate(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(EmployeeCtx).(*domain.Employee)
	update := r.Context().Value(UpdateCtx).(*domain.Update)

	if err := permission.CanView(h.updatePermission.Read(update, actor), "Task's Update"); err != nil {
		h.forbidden(w, r, err)
		return
	}

	h.successResponse(w, r, "update found", EntityPayload{
		Permission: permission.EntitySummary[*domain.Update, *domain.Task](h.updatePermission, update, actor),
		Data:       update,
	})
}

func (h *Handler) UpdateUpdate(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(EmployeeCtx).(*domain.Employee)
	update := r.Context().Value(UpdateCtx).(*domain.Update)

	if err := permission.CanManage(h.updatePermission.Update(update, actor), "Task's Update"); err != nil {
		h.forbidden(w, r, err)
		return
	}

	var req struct {
		Title string `json:"title" validate:"required"`
		Body  string `json:"body" validate:"required"`
		Type  string `json:"type" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	updateType := domain.UpdateType(req.Type)
	if !updateType.Valid() {
		h.badRequest(w, r, errors.New("invalid update type"))
		return
	}

	update.Title = req.Title
	update.Body = req.Body
	update.Type = updateType

	if err := h.repository.SaveUpdate(update); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "update updated", update)
}

func (h *Handler) DeleteUpdate(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(EmployeeCtx).(*domain.Employee)
	update := r.Context().Value(UpdateCtx).(*domain.Update)

	if err := permission.CanManage(h.updatePermission.Delete(update, actor), "Task's Update"); err != nil {
		h.forbidden(w, r, err)
		return
	}

	if err := h.repository.DeleteUpdate(update.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "update deleted", nil)
}
