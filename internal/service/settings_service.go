package service

import (
	"context"
	"fmt"

	"injai_channel/internal/model"
	"injai_channel/internal/repository"
)

// SettingsService reads and patches the site settings row
type SettingsService interface {
	Get(ctx context.Context) (*model.SiteSettings, error)
	Update(ctx context.Context, update model.SettingsUpdate) (*model.SiteSettings, error)
}

type settingsService struct {
	repo repository.SettingsRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

// Get returns the saved settings, or empty defaults before the first save
func (s *settingsService) Get(ctx context.Context) (*model.SiteSettings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return model.DefaultSiteSettings(), nil
	}
	return settings, nil
}

// Update replaces socialLinks, team and featuredPlaylist when present and merges getInTouch
// key by key into the stored object.
func (s *settingsService) Update(ctx context.Context, update model.SettingsUpdate) (*model.SiteSettings, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if update.SocialLinks != nil {
		settings.SocialLinks = update.SocialLinks
	}
	if update.Team != nil {
		settings.Team = update.Team
	}
	if update.FeaturedPlaylist != nil {
		settings.FeaturedPlaylist = update.FeaturedPlaylist
	}
	if update.GetInTouch != nil {
		merged := make(map[string]any, len(settings.GetInTouch)+len(update.GetInTouch))
		for k, v := range settings.GetInTouch {
			merged[k] = v
		}
		for k, v := range update.GetInTouch {
			merged[k] = v
		}
		settings.GetInTouch = merged
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
