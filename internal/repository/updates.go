package repository

import (
	"context"
	"time"

	"github.com/protrack-dev/protrack/backend/internal/domain"
)

func (r *Repository) GetUpdatesByTask(task *domain.Task) ([]*domain.Update, error) {
	query := `
		SELECT id, title, body, type, created_at
		FROM updates WHERE task_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, task.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	updates := make([]*domain.Update, 0)
	for rows.Next() {
		update := &domain.Update{Task: task}
		dst := []any{&update.ID, &update.Title, &update.Body, &update.Type, &update.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		updates = append(updates, update)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return updates, nil
}

// GetUpdateInTask resolves an update strictly through its task.
func (r *Repository) GetUpdateInTask(task *domain.Task, updateID int64) (*domain.Update, error) {
	query := `
		SELECT title, body, type, created_at
		FROM updates WHERE id = $1 AND task_id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	update := &domain.Update{
		ID:   updateID,
		Task: task,
	}

	dst := []any{&update.Title, &update.Body, &update.Type, &update.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, updateID, task.ID).Scan(dst...); err != nil {
		return nil, err
	}

	return update, nil
}

// GetUpdateByID loads an update with its owning task id populated. Used
// by artifact assignment, which must compare tasks across the link.
func (r *Repository) GetUpdateByID(updateID int64) (*domain.Update, error) {
	query := `
		SELECT title, body, type, task_id, created_at
		FROM updates WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	update := &domain.Update{
		ID:   updateID,
		Task: &domain.Task{},
	}

	dst := []any{&update.Title, &update.Body, &update.Type, &update.Task.ID, &update.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, updateID).Scan(dst...); err != nil {
		return nil, err
	}

	return update, nil
}

func (r *Repository) CreateUpdate(update *domain.Update) error {
	query := `
		INSERT INTO updates (title, body, type, task_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{update.Title, update.Body, update.Type, update.Task.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&update.ID, &update.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) SaveUpdate(update *domain.Update) error {
	query := `
		UPDATE updates
		SET
			title = $1,
			body = $2,
			type = $3
		WHERE id = $4
		RETURNING created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{update.Title, update.Body, update.Type, update.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&update.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteUpdate(id int64) error {
	query := `
		DELETE FROM updates WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
