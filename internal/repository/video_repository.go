package repository

import (
	"context"
	"errors"
	"fmt"

	"glowkart/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const videoColumns = `id, title, description, url, thumbnail, category, sort_order, is_active,
	created_at, updated_at`

// videoRepository implements the VideoRepository interface using PostgreSQL.
type videoRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewVideoRepository creates a new PostgreSQL-backed video repository.
func NewVideoRepository(pool *pgxpool.Pool, logger zerolog.Logger) VideoRepository {
	return &videoRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "video").Logger(),
	}
}

func scanVideo(row pgx.Row) (*model.Video, error) {
	var v model.Video
	err := row.Scan(&v.ID, &v.Title, &v.Description, &v.URL, &v.Thumbnail, &v.Category,
		&v.SortOrder, &v.IsActive, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// List retrieves videos ordered by sort_order, optionally active-only.
func (r *videoRepository) List(ctx context.Context, activeOnly bool) ([]model.Video, error) {
	query := "SELECT " + videoColumns + " FROM videos"
	if activeOnly {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY sort_order ASC, created_at DESC"

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query videos")
		return nil, fmt.Errorf("failed to query videos: %w", err)
	}
	defer rows.Close()

	var videos []model.Video
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan video row")
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, *v)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating video rows")
		return nil, fmt.Errorf("error iterating videos: %w", err)
	}

	return videos, nil
}

// GetByID retrieves a video by ID.
func (r *videoRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	v, err := scanVideo(r.pool.QueryRow(ctx, "SELECT "+videoColumns+" FROM videos WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("video_id", id.String()).Msg("failed to query video")
		return nil, fmt.Errorf("failed to query video: %w", err)
	}
	return v, nil
}

// Create inserts a new video.
func (r *videoRepository) Create(ctx context.Context, v *model.Video) error {
	query := `
		INSERT INTO videos (id, title, description, url, thumbnail, category, sort_order,
			is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		v.ID, v.Title, v.Description, v.URL, v.Thumbnail, v.Category,
		v.SortOrder, v.IsActive, v.CreatedAt, v.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("video_id", v.ID.String()).Msg("failed to create video")
		return fmt.Errorf("failed to create video: %w", err)
	}

	return nil
}

// Update overwrites an existing video.
func (r *videoRepository) Update(ctx context.Context, v *model.Video) (bool, error) {
	query := `
		UPDATE videos
		SET title = $2, description = $3, url = $4, thumbnail = $5, category = $6,
			sort_order = $7, is_active = $8, updated_at = $9
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		v.ID, v.Title, v.Description, v.URL, v.Thumbnail, v.Category,
		v.SortOrder, v.IsActive, v.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("video_id", v.ID.String()).Msg("failed to update video")
		return false, fmt.Errorf("failed to update video: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Delete removes a video.
func (r *videoRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM videos WHERE id = $1", id)
	if err != nil {
		r.logger.Error().Err(err).Str("video_id", id.String()).Msg("failed to delete video")
		return false, fmt.Errorf("failed to delete video: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
