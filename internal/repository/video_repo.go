package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"injai_channel/internal/model"

	"github.com/jackc/pgx/v5"
)

// VideoRepository defines operations for video data
type VideoRepository interface {
	Create(ctx context.Context, video *model.Video) error
	FindByID(ctx context.Context, id string) (*model.Video, error)
	List(ctx context.Context, filters model.VideoFilters) ([]model.Video, error)
	Update(ctx context.Context, video *model.Video) error
	Delete(ctx context.Context, id string) error
}

type videoRepository struct {
	db DBTX
}

// NewVideoRepository creates a new VideoRepository
func NewVideoRepository(db DBTX) VideoRepository {
	return &videoRepository{db: db}
}

const videoSelect = `SELECT v.id, v.title, v.description, v.youtube_id, v.category, v.upload_date, v.thumbnail,
        v.featured, v.views, v.artist_id, a.name, v.created_at, v.updated_at
        FROM videos v LEFT JOIN artists a ON a.id = v.artist_id`

func scanVideo(row scanner) (*model.Video, error) {
	v := &model.Video{}
	err := row.Scan(
		&v.ID, &v.Title, &v.Description, &v.YouTubeID, &v.Category, &v.UploadDate, &v.Thumbnail,
		&v.Featured, &v.Views, &v.ArtistID, &v.ArtistName, &v.CreatedAt, &v.UpdatedAt,
	)
	return v, err
}

// Create inserts a new video
func (r *videoRepository) Create(ctx context.Context, v *model.Video) error {
	sql := `INSERT INTO videos (title, description, youtube_id, category, upload_date, thumbnail, featured, views, artist_id)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql,
		v.Title, v.Description, v.YouTubeID, v.Category, v.UploadDate, v.Thumbnail, v.Featured, v.Views, v.ArtistID,
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}
	return nil
}

// FindByID retrieves a video and its artist name
func (r *videoRepository) FindByID(ctx context.Context, id string) (*model.Video, error) {
	if !validID(id) {
		return nil, nil
	}
	v, err := scanVideo(r.db.QueryRow(ctx, videoSelect+` WHERE v.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find video by ID: %w", err)
	}
	return v, nil
}

// List retrieves videos with optional filters, most recently uploaded first
func (r *videoRepository) List(ctx context.Context, filters model.VideoFilters) ([]model.Video, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(videoSelect)

	args := []interface{}{}
	argCount := 1
	var conditions []string

	if filters.Category != nil && *filters.Category != "" {
		conditions = append(conditions, fmt.Sprintf("v.category = $%d", argCount))
		args = append(args, *filters.Category)
		argCount++
	}
	if filters.ArtistID != nil && *filters.ArtistID != "" {
		if !validID(*filters.ArtistID) {
			return []model.Video{}, nil
		}
		conditions = append(conditions, fmt.Sprintf("v.artist_id = $%d", argCount))
		args = append(args, *filters.ArtistID)
		argCount++
	}
	if filters.Featured {
		conditions = append(conditions, "v.featured = TRUE")
	}
	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY v.upload_date DESC")
	if filters.Limit > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", argCount))
		args = append(args, filters.Limit)
	}

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query videos: %w", err)
	}
	defer rows.Close()

	videos := []model.Video{}
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan video row: %w", err)
		}
		videos = append(videos, *v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating video rows: %w", err)
	}
	return videos, nil
}

// Update modifies an existing video
func (r *videoRepository) Update(ctx context.Context, v *model.Video) error {
	if !validID(v.ID) {
		return ErrNotFound
	}
	sql := `UPDATE videos
            SET title = $1, description = $2, youtube_id = $3, category = $4, upload_date = $5,
                thumbnail = $6, featured = $7, views = $8, artist_id = $9, updated_at = NOW()
            WHERE id = $10 RETURNING created_at, updated_at`
	err := r.db.QueryRow(ctx, sql,
		v.Title, v.Description, v.YouTubeID, v.Category, v.UploadDate,
		v.Thumbnail, v.Featured, v.Views, v.ArtistID, v.ID,
	).Scan(&v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update video: %w", err)
	}
	return nil
}

// Delete removes a video
func (r *videoRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrNotFound
	}
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
