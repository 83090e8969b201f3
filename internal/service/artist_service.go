package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"injai_channel/internal/model"
	"injai_channel/internal/repository"
)

// artistCategories is the fixed category picker shown on the site, in display order
var artistCategories = []model.ArtistCategory{
	{Value: model.ArtistCategoryPioneers, Label: "Top 10 Now"},
	{Value: model.ArtistCategoryCollaborators, Label: "Highlights"},
	{Value: model.ArtistCategoryEmerging, Label: "New Releases"},
}

// ArtistService defines operations for artists
type ArtistService interface {
	List(ctx context.Context, filters model.ArtistFilters) ([]model.ArtistView, error)
	Get(ctx context.Context, id string) (*model.ArtistView, error)
	Create(ctx context.Context, req model.ArtistRequest) (*model.ArtistView, error)
	Update(ctx context.Context, req model.ArtistRequest) (*model.ArtistView, error)
	Delete(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]model.ArtistCategory, error)
}

type artistService struct {
	repo repository.ArtistRepository
}

// NewArtistService creates a new ArtistService
func NewArtistService(repo repository.ArtistRepository) ArtistService {
	return &artistService{repo: repo}
}

func (s *artistService) List(ctx context.Context, filters model.ArtistFilters) ([]model.ArtistView, error) {
	if filters.Category != nil && *filters.Category == "all" {
		filters.Category = nil
	}
	artists, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}
	views := make([]model.ArtistView, 0, len(artists))
	for i := range artists {
		views = append(views, artists[i].View())
	}
	return views, nil
}

func (s *artistService) Get(ctx context.Context, id string) (*model.ArtistView, error) {
	artist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find artist: %w", err)
	}
	if artist == nil {
		return nil, ErrNotFound
	}
	view := artist.View()
	return &view, nil
}

func artistFromRequest(req model.ArtistRequest) (*model.Artist, error) {
	name := strings.TrimSpace(req.Name)
	category := strings.TrimSpace(req.Category)
	if name == "" || category == "" {
		return nil, invalid("Name and category are required")
	}
	thumbnail := req.Thumbnail
	if thumbnail == "" {
		thumbnail = req.Image
	}
	return &model.Artist{
		ID:             req.ID,
		Name:           name,
		Bio:            req.Bio,
		Category:       category,
		Image:          req.Image,
		Thumbnail:      thumbnail,
		YearsActive:    req.Stats.YearsActive,
		TracksReleased: req.Stats.TracksReleased,
		Streams:        req.Stats.Streams,
		YouTube:        req.SocialLinks.YouTube,
		Instagram:      req.SocialLinks.Instagram,
		Twitter:        req.SocialLinks.Twitter,
		TikTok:         req.SocialLinks.TikTok,
		Featured:       req.Featured,
	}, nil
}

func (s *artistService) Create(ctx context.Context, req model.ArtistRequest) (*model.ArtistView, error) {
	artist, err := artistFromRequest(req)
	if err != nil {
		return nil, err
	}
	artist.ID = ""
	if err := s.repo.Create(ctx, artist); err != nil {
		return nil, fmt.Errorf("failed to create artist: %w", err)
	}
	view := artist.View()
	return &view, nil
}

func (s *artistService) Update(ctx context.Context, req model.ArtistRequest) (*model.ArtistView, error) {
	if req.ID == "" {
		return nil, invalid("Artist ID is required")
	}
	artist, err := artistFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, artist); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update artist: %w", err)
	}
	view := artist.View()
	return &view, nil
}

func (s *artistService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return invalid("Artist ID is required")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete artist: %w", err)
	}
	return nil
}

// Categories returns the fixed categories with the number of artists in each
func (s *artistService) Categories(ctx context.Context) ([]model.ArtistCategory, error) {
	counts, err := s.repo.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}
	categories := make([]model.ArtistCategory, 0, len(artistCategories))
	for _, c := range artistCategories {
		c.Count = counts[c.Value]
		categories = append(categories, c)
	}
	return categories, nil
}
