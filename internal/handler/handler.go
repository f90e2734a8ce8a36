package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/redis/go-redis/v9"

	"github.com/protrack-dev/protrack/backend/internal/config"
	"github.com/protrack-dev/protrack/backend/internal/domain"
	"github.com/protrack-dev/protrack/backend/internal/permission"
	"github.com/protrack-dev/protrack/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	redisClient *redis.Client

	projectPermission  permission.ProjectPolicy
	taskPermission     permission.TaskPolicy
	updatePermission   permission.UpdatePolicy
	artifactPermission permission.ArtifactPolicy
	commentPermission  permission.CommentPolicy

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/sign-in", h.SignIn)
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/sign-out", h.SignOut)
			r.Get("/current", h.CurrentEmployee)
		})
	})

	// everything below requires an authenticated employee
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/employee", func(r chi.Router) {
			r.Use(h.requireRole(domain.RoleAdmin))
			r.Get("/", h.GetAllEmployees)
			r.Post("/", h.CreateEmployee)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.employee)
				r.Put("/", h.UpdateEmployee)
				r.Delete("/", h.DeleteEmployee)
			})
		})

		// Resolvers run before any role gate below: an absent resource
		// answers 404 for every role, a present one may still answer 403.
		r.Route("/manager/{managerId}", func(r chi.Router) {
			r.Use(h.manager)
			r.Get("/", h.GetManager)

			r.Route("/project", func(r chi.Router) {
				r.Get("/", h.GetManagerProjects)
				r.With(h.requireRole(domain.RoleManager, domain.RoleAdmin)).Post("/", h.CreateProject)
				r.Route("/{projectId}", func(r chi.Router) {
					r.Use(h.managerProject)
					r.Get("/", h.GetProject)
					r.Group(func(r chi.Router) {
						r.Use(h.requireRole(domain.RoleManager, domain.RoleAdmin))
						r.Put("/", h.UpdateProject)
						r.Put("/status", h.UpdateProjectStatus)
						r.Delete("/", h.DeleteProject)
					})
				})
			})
		})

		r.Route("/project/{projectId}/task", func(r chi.Router) {
			r.Use(h.project)
			r.Get("/", h.GetProjectTasks)
			r.With(h.requireRole(domain.RoleManager, domain.RoleAdmin)).Post("/", h.CreateTask)
			r.Route("/{taskId}", func(r chi.Router) {
				r.Use(h.task)
				r.Get("/", h.GetTask)
				r.Group(func(r chi.Router) {
					r.Use(h.requireRole(domain.RoleManager, domain.RoleAdmin))
					r.Put("/", h.UpdateTask)
					r.Delete("/", h.DeleteTask)
				})

				r.Route("/update", func(r chi.Router) {
					r.Get("/", h.GetTaskUpdates)
					r.Post("/", h.CreateUpdate)
					r.Route("/{updateId}", func(r chi.Router) {
						r.Use(h.taskUpdate)
						r.Get("/", h.GetUpdate)
						r.Put("/", h.UpdateUpdate)
						r.Delete("/", h.DeleteUpdate)

						r.Route("/comment", func(r chi.Router) {
							r.Get("/", h.GetUpdateComments)
							r.Post("/", h.CreateComment)
							r.Route("/{commentId}", func(r chi.Router) {
								r.Use(h.updateComment)
								r.Get("/", h.GetComment)
								r.Put("/", h.UpdateComment)
								r.Delete("/", h.DeleteComment)
							})
						})
					})
				})

				r.Route("/artifact", func(r chi.Router) {
					r.Get("/", h.GetTaskArtifacts)
					r.With(h.requireRole(domain.RoleManager, domain.RoleAdmin)).Post("/", h.CreateArtifact)
					r.Route("/{artifactId}", func(r chi.Router) {
						r.Use(h.artifact)
						r.Get("/", h.GetArtifact)
						r.Group(func(r chi.Router) {
							r.Use(h.requireRole(domain.RoleManager, domain.RoleAdmin))
							r.Put("/", h.UpdateArtifact)
							r.Delete("/", h.DeleteArtifact)
							r.Put("/update", h.AssignArtifactUpdate)
							r.Delete("/update", h.UnassignArtifactUpdate)
						})
					})
				})
			})
		})
	})
}
