package handler

import (
	"net/http"

	"github.com/protrack-dev/protrack/backend/internal/domain"
	"github.com/protrack-dev/protrack/backend/internal/permission"
)

func (h *Handler) GetUpdateComments(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(EmployeeCtx).(*domain.Employee)
	update := r.Context().Value(UpdateCtx).(*domain.Update)

	if err := permission.CanView(h.commentPermission.ReadAll(update, actor), "Update's Comment"); err != nil {
		h.forbidden(w, r, err)
		return
	}

	comments, err := h.repository.GetCommentsByUpdate(update)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "comments listed", ListPayload{
		Permission: permission.ListSummary[*domain.Comment](h.commentPermission, update, actor),
		Data:       comments,
	})
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(EmployeeCtx).(*domain.Employee)
	update := r.Context().Value(UpdateCtx).(*domain.Update)

	if err := permission.CanManage(h.commentPermission.Create(update, actor), "Update's Comment"); err != nil {
		h.forbidden(w, r, err)
		return
	}

	var req struct {
		Body string `json:"body" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	comment := &domain.Comment{
		Body:   req.Body,
		Update: update,
		Author: actor,
	}

	if err := h.repository.CreateComment(comment); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.createdResponse(w, r, "comment created", comment)
}

func (h *Handler) GetComment(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(EmployeeCtx).(*domain.Employee)
	comment := r.Context().Value(CommentCtx).(*domain.Comment)

	if err := permission.CanView(h.commentPermission.Read(comment, actor), "Update's Comment"); err != nil {
		h.forbidden(w, r, err)
		return
	}

	h.successResponse(w, r, "comment found", EntityPayload{
		Permission: permission.EntitySummary[*domain.Comment, *domain.Update](h.commentPermission, comment, actor),
		Data:       comment,
	})
}

func (h *Handler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(EmployeeCtx).(*domain.Employee)
	comment := r.Context().Value(CommentCtx).(*domain.Comment)

	if err := permission.CanManage(h.commentPermission.Update(comment, actor), "Update's Comment"); err != nil {
		h.forbidden(w, r, err)
		return
	}

	var req struct {
		Body string `json:"body" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	comment.Body = req.Body

	if err := h.repository.SaveComment(comment); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "comment updated", comment)
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(EmployeeCtx).(*domain.Employee)
	comment := r.Context().Value(CommentCtx).(*domain.Comment)

	if err := permission.CanManage(h.commentPermission.Delete(comment, actor), "Update's Comment"); err != nil {
		h.forbidden(w, r, err)
		return
	}

	if err := h.repository.DeleteComment(comment.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "comment deleted", nil)
}
