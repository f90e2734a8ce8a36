package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"

	"github.com/protrack-dev/protrack/backend/internal/domain"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("request handled", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // slog would mangle the multi-line trace
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// auth resolves the actor: cookie token, denylist check, then the employee
// itself. Everything downstream can assume a fully loaded actor in context.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(tokenCookieName)
		if err != nil {
			switch {
			case errors.Is(err, http.ErrNoCookie):
				h.unauthorized(w, r, "not signed in")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		tokenString := cookie.Value
		claims := &AuthClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(h.config.JWT.Secret), nil
		}); err != nil {
			h.unauthorized(w, r, "invalid token")
			return
		}

		// tokens revoked by sign-out live in redis until they expire
		ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
		defer cancel()

		if _, err := h.redisClient.Get(ctx, denylistKey(tokenString)).Result(); err == nil {
			h.unauthorized(w, r, "invalid token")
			return
		} else if !errors.Is(err, redis.Nil) {
			h.internalServerError(w, r, err)
			return
		}

		sub, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil {
			h.unauthorized(w, r, "invalid token")
			return
		}

		employee, err := h.repository.GetEmployeeByID(sub)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.unauthorized(w, r, "invalid token")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), EmployeeCtx, employee)))
	})
}

// requireRole is the coarse route-level gate: it decides whether this role
// class ever gets to attempt the operation. The fine-grained policy check
// still runs afterwards on the resolved entities.
func (h *Handler) requireRole(roles ...domain.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor := r.Context().Value(EmployeeCtx).(*domain.Employee)
			if !slices.Contains(roles, actor.Role) {
				h.forbidden(w, r, errors.New("insufficient role"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (h *Handler) employee(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			h.badRequest(w, r, errors.New("invalid employee id"))
			return
		}

		employee, err := h.repository.GetEmployeeByID(id)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.notFound(w, r, "Employee")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), TargetEmployeeCtx, employee)))
	})
}

// manager resolves the {managerId} route segment. An id that belongs to a
// non-manager is a not-found, never a forbidden.
func (h *Handler) manager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		managerID, err := strconv.ParseInt(chi.URLParam(r, "managerId"), 10, 64)
		if err != nil {
			h.badRequest(w, r, errors.New("invalid manager id"))
			return
		}

		manager, err := h.repository.GetManagerByID(managerID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.notFound(w, r, "Manager")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ManagerCtx, manager)))
	})
}

// managerProject resolves {projectId} strictly under the already resolved
// manager, so a mismatched manager/project pair never reaches a policy.
func (h *Handler) managerProject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		manager := r.Context().Value(ManagerCtx).(*domain.Employee)

		projectID, err := strconv.ParseInt(chi.URLParam(r, "projectId"), 10, 64)
		if err != nil {
			h.badRequest(w, r, errors.New("invalid project id"))
			return
		}

		project, err := h.repository.GetManagerProject(manager, projectID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.notFound(w, r, "Project")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ProjectCtx, project)))
	})
}

func (h *Handler) project(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		projectID, err := strconv.ParseInt(chi.URLParam(r, "projectId"), 10, 64)
		if err != nil {
			h.badRequest(w, r, errors.New("invalid project id"))
			return
		}

		project, err := h.repository.GetProjectByID(projectID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.notFound(w, r, "Project")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ProjectCtx, project)))
	})
}

func (h *Handler) task(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		project := r.Context().Value(ProjectCtx).(*domain.Project)

		taskID, err := strconv.ParseInt(chi.URLParam(r, "taskId"), 10, 64)
		if err != nil {
			h.badRequest(w, r, errors.New("invalid task id"))
			return
		}

		task, err := h.repository.GetTaskInProject(project, taskID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.notFound(w, r, "Task")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), TaskCtx, task)))
	})
}

func (h *Handler) taskUpdate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		task := r.Context().Value(TaskCtx).(*domain.Task)

		updateID, err := strconv.ParseInt(chi.URLParam(r, "updateId"), 10, 64)
		if err != nil {
			h.badRequest(w, r, errors.New("invalid update id"))
			return
		}

		update, err := h.repository.GetUpdateInTask(task, updateID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.notFound(w, r, "Update")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), UpdateCtx, update)))
	})
}

func (h *Handler) artifact(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		task := r.Context().Value(TaskCtx).(*domain.Task)

		artifactID, err := strconv.ParseInt(chi.URLParam(r, "artifactId"), 10, 64)
		if err != nil {
			h.badRequest(w, r, errors.New("invalid artifact id"))
			return
		}

		artifact, err := h.repository.GetArtifactInTask(task, artifactID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.notFound(w, r, "Artifact")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ArtifactCtx, artifact)))
	})
}

func (h *Handler) updateComment(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		update := r.Context().Value(UpdateCtx).(*domain.Update)

		commentID, err := strconv.ParseInt(chi.URLParam(r, "commentId"), 10, 64)
		if err != nil {
			h.badRequest(w, r, errors.New("invalid comment id"))
			return
		}

		comment, err := h.repository.GetCommentInUpdate(update, commentID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.notFound(w, r, "Comment")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), CommentCtx, comment)))
	})
}
