package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/protrack-dev/protrack/backend/internal/domain"
)

func (r *Repository) GetArtifactsByTask(task *domain.Task) ([]*domain.Artifact, error) {
	query := `
		SELECT a.id, a.description, a.created_at, u.id, u.title
		FROM artifacts a
		LEFT JOIN updates u ON u.id = a.update_id
		WHERE a.task_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, task.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	artifacts := make([]*domain.Artifact, 0)
	for rows.Next() {
		artifact := &domain.Artifact{Task: task}
		var updateID sql.NullInt64
		var updateTitle sql.NullString
		dst := []any{&artifact.ID, &artifact.Description, &artifact.CreatedAt, &updateID, &updateTitle}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		if updateID.Valid {
			artifact.Update = &domain.Update{ID: updateID.Int64, Title: updateTitle.String, Task: task}
		}
		artifacts = append(artifacts, artifact)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return artifacts, nil
}

// GetArtifactInTask resolves an artifact strictly through its task, with
// the assigned proof update (if any) preloaded.
func (r *Repository) GetArtifactInTask(task *domain.Task, artifactID int64) (*domain.Artifact, error) {
	query := `
		SELECT a.description, a.created_at, u.id, u.title
		FROM artifacts a
		LEFT JOIN updates u ON u.id = a.update_id
		WHERE a.id = $1 AND a.task_id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	artifact := &domain.Artifact{
		ID:   artifactID,
		Task: task,
	}

	var updateID sql.NullInt64
	var updateTitle sql.NullString
	dst := []any{&artifact.Description, &artifact.CreatedAt, &updateID, &updateTitle}
	if err := r.dbpool.QueryRowContext(ctx, query, artifactID, task.ID).Scan(dst...); err != nil {
		return nil, err
	}
	if updateID.Valid {
		artifact.Update = &domain.Update{ID: updateID.Int64, Title: updateTitle.String, Task: task}
	}

	return artifact, nil
}

func (r *Repository) CreateArtifact(artifact *domain.Artifact) error {
	query := `
		INSERT INTO artifacts (description, task_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{artifact.Description, artifact.Task.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&artifact.ID, &artifact.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateArtifact(artifact *domain.Artifact) error {
	query := `
		UPDATE artifacts
		SET description = $1
		WHERE id = $2
		RETURNING created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, artifact.Description, artifact.ID).Scan(&artifact.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteArtifact(id int64) error {
	query := `
		DELETE FROM artifacts WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

// AssignArtifactUpdate sets the artifact's proof update foreign key.
func (r *Repository) AssignArtifactUpdate(artifactID, updateID int64) error {
	query := `
		UPDATE artifacts SET update_id = $1 WHERE id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, updateID, artifactID)
	if err != nil {
		return err
	}

	return nil
}

// UnassignArtifactUpdate clears the proof link. Clearing an already
// cleared link is a no-op, which keeps the operation idempotent.
func (r *Repository) UnassignArtifactUpdate(artifactID int64) error {
	query := `
		UPDATE artifacts SET update_id = NULL WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, artifactID)
	if err != nil {
		return err
	}

	return nil
}
