package repository

import (
	"context"
	"time"

	"github.com/protrack-dev/protrack/backend/internal/domain"
)

func (r *Repository) GetProjectsByManager(manager *domain.Employee) ([]*domain.Project, error) {
	query := `
		SELECT id, title, body, status, created_at
		FROM projects WHERE manager_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, manager.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]*domain.Project, 0)
	for rows.Next() {
		project := &domain.Project{Manager: manager}
		dst := []any{&project.ID, &project.Title, &project.Body, &project.Status, &project.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

// GetManagerProject resolves a project strictly under its manager, so a
// project living under a different manager is sql.ErrNoRows.
func (r *Repository) GetManagerProject(manager *domain.Employee, projectID int64) (*domain.Project, error) {
	query := `
		SELECT title, body, status, created_at
		FROM projects WHERE id = $1 AND manager_id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	project := &domain.Project{
		ID:      projectID,
		Manager: manager,
	}

	dst := []any{&project.Title, &project.Body, &project.Status, &project.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, projectID, manager.ID).Scan(dst...); err != nil {
		return nil, err
	}

	return project, nil
}

// GetProjectByID loads a project with its manager relation populated,
// as the permission checks downstream require.
func (r *Repository) GetProjectByID(projectID int64) (*domain.Project, error) {
	query := `
		SELECT p.title, p.body, p.status, p.created_at,
			e.id, e.username, e.role, e.created_at
		FROM projects p
		JOIN employees e ON e.id = p.manager_id
		WHERE p.id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	project := &domain.Project{
		ID:      projectID,
		Manager: &domain.Employee{},
	}

	dst := []any{
		&project.Title, &project.Body, &project.Status, &project.CreatedAt,
		&project.Manager.ID, &project.Manager.Username, &project.Manager.Role, &project.Manager.CreatedAt,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, projectID).Scan(dst...); err != nil {
		return nil, err
	}

	return project, nil
}

func (r *Repository) CreateProject(project *domain.Project) error {
	query := `
		INSERT INTO projects (title, body, status, manager_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{project.Title, project.Body, project.Status, project.Manager.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&project.ID, &project.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateProject(project *domain.Project) error {
	query := `
		UPDATE projects
		SET
			title = $1,
			body = $2,
			status = $3
		WHERE id = $4
		RETURNING created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{project.Title, project.Body, project.Status, project.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&project.CreatedAt); err != nil {
		return err
	}

	return nil
}

// DeleteProject removes the project; tasks and their updates, comments
// and artifacts go with it through the schema's ON DELETE CASCADE.
func (r *Repository) DeleteProject(id int64) error {
	query := `
		DELETE FROM projects WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
