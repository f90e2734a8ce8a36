package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/protrack-dev/protrack/backend/internal/domain"
	"github.com/protrack-dev/protrack/backend/internal/permission"
)

func (h *Handler) GetProjectTasks(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(EmployeeCtx).(*domain.Employee)
	project := r.Context().Value(ProjectCtx).(*domain.Project)

	if err := permission.CanView(h.taskPermission.ReadAll(project, actor), "Project's Task"); err != nil {
		h.forbidden(w, r, err)
		return
	}

	tasks, err := h.repository.GetTasksByProject(project)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "tasks listed", ListPayload{
		Permission: permission.ListSummary[*domain.Task](h.taskPermission, project, actor),
		Data:       tasks,
	})
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(EmployeeCtx).(*domain.Employee)
	project := r.Context().Value(ProjectCtx).(*domain.Project)

	if err := permission.CanManage(h.taskPermission.Create(project, actor), "Project's Task"); err != nil {
		h.forbidden(w, r, err)
		return
	}

	var req struct {
		Title   string `json:"title" validate:"required"`
		Body    string `json:"body" validate:"required"`
		StaffID int64  `json:"staffId" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	staff, err := h.repository.GetEmployeeByID(req.StaffID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Employee")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	task := &domain.Task{
		Title:   req.Title,
		Body:    req.Body,
		Status:  domain.TaskInProgress,
		Project: project,
		Staff:   staff,
	}

	if err := h.repository.CreateTask(task); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.createdResponse(w, r, "task created", task)
}

func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(EmployeeCtx).(*domain.Employee)
	task := r.Context().Value(TaskCtx).(*domain.Task)

	if err := permission.CanView(h.taskPermission.Read(task, actor), "Project's Task"); err != nil {
		h.forbidden(w, r, err)
		return
	}

	h.successResponse(w, r, "task found", EntityPayload{
		Permission: permission.EntitySummary[*domain.Task, *domain.Project](h.taskPermission, task, actor),
		Data:       task,
	})
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(EmployeeCtx).(*domain.Employee)
	task := r.Context().Value(TaskCtx).(*domain.Task)

	if err := permission.CanManage(h.taskPermission.Update(task, actor), "Project's Task"); err != nil {
		h.forbidden(w, r, err)
		return
	}

	var req struct {
		Title  string `json:"title" validate:"required"`
		Body   string `json:"body" validate:"required"`
		Status string `json:"status" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	status := domain.TaskStatus(req.Status)
	if !status.Valid() {
		h.badRequest(w, r, errors.New("invalid task status"))
		return
	}

	task.Title = req.Title
	task.Body = req.Body
	task.Status = status

	if err := h.repository.UpdateTask(task); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "task updated", task)
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(EmployeeCtx).(*domain.Employee)
	task := r.Context().Value(TaskCtx).(*domain.Task)

	if err := permission.CanManage(h.taskPermission.Delete(task, actor), "Project's Task"); err != nil {
		h.forbidden(w, r, err)
		return
	}

	if err := h.repository.DeleteTask(task.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "task deleted", nil)
}
