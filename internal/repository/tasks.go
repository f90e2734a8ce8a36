package repository

import (
	"context"
	"time"

	"github.com/protrack-dev/protrack/backend/internal/domain"
)

func (r *Repository) GetTasksByProject(project *domain.Project) ([]*domain.Task, error) {
	query := `
		SELECT t.id, t.title, t.body, t.status, t.created_at,
			e.id, e.username, e.role, e.created_at
		FROM tasks t
		JOIN employees e ON e.id = t.staff_id
		WHERE t.project_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, project.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task := &domain.Task{Project: project, Staff: &domain.Employee{}}
		dst := []any{
			&task.ID, &task.Title, &task.Body, &task.Status, &task.CreatedAt,
			&task.Staff.ID, &task.Staff.Username, &task.Staff.Role, &task.Staff.CreatedAt,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// GetTaskInProject resolves a task strictly through its project. A task
// that exists under a different project is sql.ErrNoRows, never a
// permission question.
func (r *Repository) GetTaskInProject(project *domain.Project, taskID int64) (*domain.Task, error) {
	query := `
		SELECT t.title, t.body, t.status, t.created_at,
			e.id, e.username, e.role, e.created_at
		FROM tasks t
		JOIN employees e ON e.id = t.staff_id
		WHERE t.id = $1 AND t.project_id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	task := &domain.Task{
		ID:      taskID,
		Project: project,
		Staff:   &domain.Employee{},
	}

	dst := []any{
		&task.Title, &task.Body, &task.Status, &task.CreatedAt,
		&task.Staff.ID, &task.Staff.Username, &task.Staff.Role, &task.Staff.CreatedAt,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, taskID, project.ID).Scan(dst...); err != nil {
		return nil, err
	}

	return task, nil
}

func (r *Repository) CreateTask(task *domain.Task) error {
	query := `
		INSERT INTO tasks (title, body, status, project_id, staff_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{task.Title, task.Body, task.Status, task.Project.ID, task.Staff.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&task.ID, &task.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateTask(task *domain.Task) error {
	query := `
		UPDATE tasks
		SET
			title = $1,
			body = $2,
			status = $3
		WHERE id = $4
		RETURNING created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{task.Title, task.Body, task.Status, task.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&task.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteTask(id int64) error {
	query := `
		DELETE FROM tasks WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
