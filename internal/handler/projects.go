package handler

import (
	"errors"
	"net/http"

	"github.com/protrack-dev/protrack/backend/internal/domain"
	"github.com/protrack-dev/protrack/backend/internal/permission"
)

func (h *Handler) GetManagerProjects(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(EmployeeCtx).(*domain.Employee)
	manager := r.Context().Value(ManagerCtx).(*domain.Employee)

	if err := permission.CanView(h.projectPermission.ReadAll(manager, actor), "Manager's Project"); err != nil {
		h.forbidden(w, r, err)
		return
	}

	projects, err := h.repository.GetProjectsByManager(manager)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "projects listed", ListPayload{
		Permission: permission.ListSummary[*domain.Project](h.projectPermission, manager, actor),
		Data:       projects,
	})
}

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(EmployeeCtx).(*domain.Employee)
	manager := r.Context().Value(ManagerCtx).(*domain.Employee)

	if err := permission.CanManage(h.projectPermission.Create(manager, actor), "Manager's Project"); err != nil {
		h.forbidden(w, r, err)
		return
	}

	var req struct {
		Title string `json:"title" validate:"required"`
		Body  string `json:"body" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	project := &domain.Project{
		Title:   req.Title,
		Body:    req.Body,
		Status:  domain.ProjectInProgress,
		Manager: manager,
	}

	if err := h.repository.CreateProject(project); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.createdResponse(w, r, "project created", project)
}

func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(EmployeeCtx).(*domain.Employee)
	project := r.Context().Value(ProjectCtx).(*domain.Project)

	if err := permission.CanView(h.projectPermission.Read(project, actor), "Manager's Project"); err != nil {
		h.forbidden(w, r, err)
		return
	}

	h.successResponse(w, r, "project found", EntityPayload{
		Permission: permission.EntitySummary[*domain.Project, *domain.Employee](h.projectPermission, project, actor),
		Data:       project,
	})
}

func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(EmployeeCtx).(*domain.Employee)
	project := r.Context().Value(ProjectCtx).(*domain.Project)

	if err := permission.CanManage(h.projectPermission.Update(project, actor), "Manager's Project"); err != nil {
		h.forbidden(w, r, err)
		return
	}

	var req struct {
		Title string `json:"title" validate:"required"`
		Body  string `json:"body" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	project.Title = req.Title
	project.Body = req.Body

	if err := h.repository.UpdateProject(project); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "project updated", project)
}

// UpdateProjectStatus changes only the status field. Any member of the
// enum may follow any other; there is no transition table.
func (h *Handler) UpdateProjectStatus(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(EmployeeCtx).(*domain.Employee)
	project := r.Context().Value(ProjectCtx).(*domain.Project)

	if err := permission.CanManage(h.projectPermission.Update(project, actor), "Manager's Project"); err != nil {
		h.forbidden(w, r, err)
		return
	}

	var req struct {
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

	status := domain.ProjectStatus(req.Status)
	if !status.Valid() {
		h.badRequest(w, r, errors.New("invalid project status"))
		return
	}

	project.Status = status

	if err := h.repository.UpdateProject(project); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "project status updated", project)
}

func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(EmployeeCtx).(*domain.Employee)
	project := r.Context().Value(ProjectCtx).(*domain.Project)

	if err := permission.CanManage(h.projectPermission.Delete(project, actor), "Manager's Project"); err != nil {
		h.forbidden(w, r, err)
		return
	}

	if err := h.repository.DeleteProject(project.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "project deleted", nil)
}
