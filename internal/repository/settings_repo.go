package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"injai_channel/internal/model"

	"github.com/jackc/pgx/v5"
)

// SettingsRepository stores the single site settings row
type SettingsRepository interface {
	Get(ctx context.Context) (*model.SiteSettings, error)
	Save(ctx context.Context, settings *model.SiteSettings) error
}

type settingsRepository struct {
	db DBTX
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db DBTX) SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns the settings row, or nil when none has been saved
func (r *settingsRepository) Get(ctx context.Context) (*model.SiteSettings, error) {
	sql := `SELECT id, social_links, team, get_in_touch, featured_playlist, updated_at
            FROM site_settings ORDER BY updated_at DESC LIMIT 1`
	var (
		s          model.SiteSettings
		getInTouch []byte
		updatedAt  time.Time
	)
	err := r.db.QueryRow(ctx, sql).Scan(&s.ID, &s.SocialLinks, &s.Team, &getInTouch, &s.FeaturedPlaylist, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	s.GetInTouch = map[string]any{}
	if len(getInTouch) > 0 {
		if err := json.Unmarshal(getInTouch, &s.GetInTouch); err != nil {
			return nil, fmt.Errorf("decode getInTouch: %w", err)
		}
	}
	s.UpdatedAt = &updatedAt
	return &s, nil
}

// Save inserts the row when it has no ID yet and updates it otherwise
func (r *settingsRepository) Save(ctx context.Context, s *model.SiteSettings) error {
	getInTouch, err := json.Marshal(s.GetInTouch)
	if err != nil {
		return fmt.Errorf("encode getInTouch: %w", err)
	}

	var updatedAt time.Time
	if s.ID == "" {
		sql := `INSERT INTO site_settings (social_links, team, get_in_touch, featured_playlist)
                VALUES ($1, $2, $3, $4) RETURNING id, updated_at`
		err = r.db.QueryRow(ctx, sql, []byte(s.SocialLinks), []byte(s.Team), getInTouch, []byte(s.FeaturedPlaylist)).
			Scan(&s.ID, &updatedAt)
	} else {
		sql := `UPDATE site_settings
                SET social_links = $1, team = $2, get_in_touch = $3, featured_playlist = $4, updated_at = NOW()
                WHERE id = $5 RETURNING updated_at`
		err = r.db.QueryRow(ctx, sql, []byte(s.SocialLinks), []byte(s.Team), getInTouch, []byte(s.FeaturedPlaylist), s.ID).
			Scan(&updatedAt)
	}
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	s.UpdatedAt = &updatedAt
	return nil
}
