package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/protrack-dev/protrack/backend/internal/permission"
)

func (h *Handler) logInternalServerError(r *http.Request, err error) {
	slog.Error("internal server error", "method", r.Method, "path", r.URL.Path, "error", err)
}

func (h *Handler) readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logInternalServerError(r, err)
	}
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ListPayload wraps a list of children together with the capability
// summary for the current actor. Lists expose only create.
type ListPayload struct {
	Permission permission.ListPermission `json:"permission"`
	Data       any                       `json:"data"`
}

// EntityPayload wraps a single entity with its capability summary.
type EntityPayload struct {
	Permission permission.EntityPermission `json:"permission"`
	Data       any                         `json:"data"`
}

func (h *Handler) successResponse(w http.ResponseWriter, r *http.Request, msg string, data any) {
	h.writeJSON(w, r, http.StatusOK, Response{
		Success: true,
		Message: msg,
		Data:    data,
	})
}

func (h *Handler) createdResponse(w http.ResponseWriter, r *http.Request, msg string, data any) {
	h.writeJSON(w, r, http.StatusCreated, Response{
		Success: true,
		Message: msg,
		Data:    data,
	})
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	msg := err.Error()
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		msg = validationErrors[0].Translate(h.translator)
	}

	h.writeJSON(w, r, http.StatusBadRequest, Response{
		Success: false,
		Message: msg,
	})
}

func (h *Handler) unauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	h.writeJSON(w, r, http.StatusUnauthorized, Response{
		Success: false,
		Message: msg,
	})
}

func (h *Handler) forbidden(w http.ResponseWriter, r *http.Request, err error) {
	h.writeJSON(w, r, http.StatusForbidden, Response{
		Success: false,
		Message: err.Error(),
	})
}

// notFound reports an absent resource. The message never hints whether
// the resource exists under a different parent.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request, resource string) {
	h.writeJSON(w, r, http.StatusNotFound, Response{
		Success: false,
		Message: fmt.Sprintf("%s not found", resource),
	})
}

func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logInternalServerError(r, err)
	h.writeJSON(w, r, http.StatusInternalServerError, Response{
		Success: false,
		Message: "internal server error",
	})
}
