package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"injai_channel/internal/model"
	"injai_channel/internal/repository"
	"injai_channel/internal/utils"
)

// VideoService defines operations for videos
type VideoService interface {
	List(ctx context.Context, filters model.VideoFilters) ([]model.VideoView, error)
	Create(ctx context.Context, req model.VideoRequest) (*model.Video, error)
	Update(ctx context.Context, req model.VideoRequest) (*model.Video, error)
	Delete(ctx context.Context, id string) error
}

type videoService struct {
	repo       repository.VideoRepository
	thumbnails ThumbnailResolver
}

// NewVideoService creates a new VideoService
func NewVideoService(repo repository.VideoRepository, thumbnails ThumbnailResolver) VideoService {
	return &videoService{repo: repo, thumbnails: thumbnails}
}

// videoView is the listing shape with a display year and views label
func videoView(v *model.Video) model.VideoView {
	artist := model.VideoArtist{Name: "Unknown Artist"}
	if v.ArtistID != nil && v.ArtistName != nil {
		artist = model.VideoArtist{ID: *v.ArtistID, Name: *v.ArtistName}
	}
	return model.VideoView{
		ID:          v.ID,
		LegacyID:    v.ID,
		Title:       v.Title,
		Artist:      artist,
		Description: v.Description,
		YouTubeID:   v.YouTubeID,
		Category:    v.Category,
		Year:        strconv.Itoa(v.UploadDate.Year()),
		Views:       utils.ViewsLabel(v.Views),
		UploadDate:  v.UploadDate,
		Thumbnail:   v.Thumbnail,
		Featured:    v.Featured,
	}
}

func (s *videoService) List(ctx context.Context, filters model.VideoFilters) ([]model.VideoView, error) {
	if filters.Category != nil && *filters.Category == "all" {
		filters.Category = nil
	}
	videos, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}
	views := make([]model.VideoView, 0, len(videos))
	for i := range videos {
		views = append(views, videoView(&videos[i]))
	}
	return views, nil
}

func (s *videoService) fromRequest(ctx context.Context, req model.VideoRequest) (*model.Video, error) {
	title := strings.TrimSpace(req.Title)
	youtubeID := utils.NormalizeYouTubeID(req.YouTubeID)
	if title == "" || youtubeID == "" {
		return nil, invalid("Title and YouTube ID are required")
	}

	video := &model.Video{
		ID:          req.ID,
		Title:       title,
		Description: req.Description,
		YouTubeID:   youtubeID,
		Category:    req.Category,
		UploadDate:  time.Now(),
		Thumbnail:   req.Thumbnail,
		Featured:    req.Featured,
		Views:       req.Views,
	}
	if req.UploadDate != nil {
		video.UploadDate = *req.UploadDate
	}
	if req.ArtistID != "" {
		artistID := req.ArtistID
		video.ArtistID = &artistID
	}
	if video.Thumbnail == "" {
		video.Thumbnail = s.thumbnails.Thumbnail(ctx, youtubeID)
	}
	return video, nil
}

func (s *videoService) Create(ctx context.Context, req model.VideoRequest) (*model.Video, error) {
	req.ID = ""
	video, err := s.fromRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, video); err != nil {
		return nil, fmt.Errorf("failed to create video: %w", err)
	}
	return video, nil
}

func (s *videoService) Update(ctx context.Context, req model.VideoRequest) (*model.Video, error) {
	if req.ID == "" {
		return nil, invalid("Video ID is required")
	}
	video, err := s.fromRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, video); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update video: %w", err)
	}
	return video, nil
}

func (s *videoService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return invalid("Video ID is required")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete video: %w", err)
	}
	return nil
}
