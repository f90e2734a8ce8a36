package handler

import (
	"net/http"

	"github.com/protrack-dev/protrack/backend/internal/domain"
)

func (h *Handler) GetManager(w http.ResponseWriter, r *http.Request) {
	manager := r.Context().Value(ManagerCtx).(*domain.Employee)
	h.successResponse(w, r, "manager found", manager)
}
