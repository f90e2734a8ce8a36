package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/protrack-dev/protrack/backend/internal/domain"
	"github.com/protrack-dev/protrack/backend/internal/utils"
)

func (h *Handler) GetAllEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.repository.GetAllEmployees()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "employees listed", employees)
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username" validate:"required,min=4,max=20"`
		Password string `json:"password" validate:"omitempty,min=8,max=20"`
		Role     string `json:"role" validate:"required,oneof=ADMIN MANAGER STAFF"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// admin may omit the password; a generated one is returned exactly once
	password := req.Password
	generated := false
	if password == "" {
		password = utils.GenerateRandomPassword(h.config.NewEmployee.PasswordLength)
		generated = true
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	employee := &domain.Employee{
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		Role:         domain.Role(req.Role),
	}

	if err := h.repository.CreateEmployee(employee); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "employees_username_key":
			h.badRequest(w, r, errors.New("username already exists"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	data := map[string]any{"employee": employee}
	if generated {
		data["password"] = password
	}

	h.createdResponse(w, r, "employee created", data)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username *string `json:"username" validate:"omitempty,min=4,max=20"`
		Password *string `json:"password" validate:"omitempty,min=8,max=20"`
		Role     *string `json:"role" validate:"omitempty,oneof=ADMIN MANAGER STAFF"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	employee := r.Context().Value(TargetEmployeeCtx).(*domain.Employee)

	if req.Username != nil {
		employee.Username = *req.Username
	}
	if req.Role != nil {
		employee.Role = domain.Role(*req.Role)
	}
	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		employee.PasswordHash = string(hashedPassword)
	}

	if err := h.repository.UpdateEmployee(employee); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "employees_username_key":
			h.badRequest(w, r, errors.New("username already exists"))
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Employee")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "employee updated", employee)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(TargetEmployeeCtx).(*domain.Employee)

	if err := h.repository.DeleteEmployee(employee.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "employee deleted", nil)
}
