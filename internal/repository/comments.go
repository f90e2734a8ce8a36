package repository

import (
	"context"
	"time"

	"github.com/protrack-dev/protrack/backend/internal/domain"
)

func (r *Repository) GetCommentsByUpdate(update *domain.Update) ([]*domain.Comment, error) {
	query := `
		SELECT c.id, c.body, c.created_at,
			e.id, e.username, e.role, e.created_at
		FROM comments c
		JOIN employees e ON e.id = c.author_id
		WHERE c.update_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, update.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]*domain.Comment, 0)
	for rows.Next() {
		comment := &domain.Comment{Update: update, Author: &domain.Employee{}}
		dst := []any{
			&comment.ID, &comment.Body, &comment.CreatedAt,
			&comment.Author.ID, &comment.Author.Username, &comment.Author.Role, &comment.Author.CreatedAt,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

// GetCommentInUpdate resolves a comment strictly through its update, with
// the author relation populated for the permission check.
func (r *Repository) GetCommentInUpdate(update *domain.Update, commentID int64) (*domain.Comment, error) {
	query := `
		SELECT c.body, c.created_at,
			e.id, e.username, e.role, e.created_at
		FROM comments c
		JOIN employees e ON e.id = c.author_id
		WHERE c.id = $1 AND c.update_id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	comment := &domain.Comment{
		ID:     commentID,
		Update: update,
		Author: &domain.Employee{},
	}

	dst := []any{
		&comment.Body, &comment.CreatedAt,
		&comment.Author.ID, &comment.Author.Username, &comment.Author.Role, &comment.Author.CreatedAt,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, commentID, update.ID).Scan(dst...); err != nil {
		return nil, err
	}

	return comment, nil
}

func (r *Repository) CreateComment(comment *domain.Comment) error {
	query := `
		INSERT INTO comments (body, update_id, author_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{comment.Body, comment.Update.ID, comment.Author.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&comment.ID, &comment.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) SaveComment(comment *domain.Comment) error {
	query := `
		UPDATE comments
		SET body = $1
		WHERE id = $2
		RETURNING created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, comment.Body, comment.ID).Scan(&comment.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteComment(id int64) error {
	query := `
		DELETE FROM comments WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
