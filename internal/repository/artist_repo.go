package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"injai_channel/internal/model"

	"github.com/jackc/pgx/v5"
)

// ArtistRepository defines operations for artist data
type ArtistRepository interface {
	Create(ctx context.Context, artist *model.Artist) error
	FindByID(ctx context.Context, id string) (*model.Artist, error)
	List(ctx context.Context, filters model.ArtistFilters) ([]model.Artist, error)
	Update(ctx context.Context, artist *model.Artist) error
	Delete(ctx context.Context, id string) error
	CountByCategory(ctx context.Context) (map[string]int, error)
}

type artistRepository struct {
	db DBTX
}

// NewArtistRepository creates a new ArtistRepository
func NewArtistRepository(db DBTX) ArtistRepository {
	return &artistRepository{db: db}
}

const artistColumns = `id, name, bio, category, image, thumbnail, years_active, tracks_released, streams,
        youtube, instagram, twitter, tiktok, featured, created_at, updated_at`

func scanArtist(row scanner) (*model.Artist, error) {
	a := &model.Artist{}
	err := row.Scan(
		&a.ID, &a.Name, &a.Bio, &a.Category, &a.Image, &a.Thumbnail, &a.YearsActive, &a.TracksReleased, &a.Streams,
		&a.YouTube, &a.Instagram, &a.Twitter, &a.TikTok, &a.Featured, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// Create inserts a new artist
func (r *artistRepository) Create(ctx context.Context, a *model.Artist) error {
	sql := `INSERT INTO artists (name, bio, category, image, thumbnail, years_active, tracks_released, streams,
            youtube, instagram, twitter, tiktok, featured)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql,
		a.Name, a.Bio, a.Category, a.Image, a.Thumbnail, a.YearsActive, a.TracksReleased, a.Streams,
		a.YouTube, a.Instagram, a.Twitter, a.TikTok, a.Featured,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create artist: %w", err)
	}
	return nil
}

// FindByID retrieves an artist by its ID
func (r *artistRepository) FindByID(ctx context.Context, id string) (*model.Artist, error) {
	if !validID(id) {
		return nil, nil
	}
	a, err := scanArtist(r.db.QueryRow(ctx, `SELECT `+artistColumns+` FROM artists WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find artist by ID: %w", err)
	}
	return a, nil
}

// List retrieves artists with optional filters, newest first
func (r *artistRepository) List(ctx context.Context, filters model.ArtistFilters) ([]model.Artist, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + artistColumns + ` FROM artists`)

	args := []interface{}{}
	argCount := 1
	var conditions []string

	if filters.Category != nil && *filters.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argCount))
		args = append(args, *filters.Category)
		argCount++
	}
	if filters.Featured {
		conditions = append(conditions, "featured = TRUE")
	}
	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY created_at DESC")
	if filters.Limit > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", argCount))
		args = append(args, filters.Limit)
	}

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query artists: %w", err)
	}
	defer rows.Close()

	artists := []model.Artist{}
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan artist row: %w", err)
		}
		artists = append(artists, *a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating artist rows: %w", err)
	}
	return artists, nil
}

// Update modifies an existing artist
func (r *artistRepository) Update(ctx context.Context, a *model.Artist) error {
	if !validID(a.ID) {
		return ErrNotFound
	}
	sql := `UPDATE artists
            SET name = $1, bio = $2, category = $3, image = $4, thumbnail = $5, years_active = $6,
                tracks_released = $7, streams = $8, youtube = $9, instagram = $10, twitter = $11,
                tiktok = $12, featured = $13, updated_at = NOW()
            WHERE id = $14 RETURNING created_at, updated_at`
	err := r.db.QueryRow(ctx, sql,
		a.Name, a.Bio, a.Category, a.Image, a.Thumbnail, a.YearsActive,
		a.TracksReleased, a.Streams, a.YouTube, a.Instagram, a.Twitter,
		a.TikTok, a.Featured, a.ID,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update artist: %w", err)
	}
	return nil
}

// Delete removes an artist; its videos keep existing without an artist
func (r *artistRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrNotFound
	}
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete artist: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByCategory returns the number of artists per category
func (r *artistRepository) CountByCategory(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.Query(ctx, `SELECT category, COUNT(*) FROM artists GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to count artists by category: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("failed to scan artist category count: %w", err)
		}
		counts[category] = count
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating artist category counts: %w", err)
	}
	return counts, nil
}
