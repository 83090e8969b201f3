package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"injai_channel/internal/model"
	"injai_channel/internal/queue"
	"injai_channel/internal/repository"

	"github.com/rs/zerolog"
)

// BroadcastQueue hands newsletter broadcasts to the background worker
type BroadcastQueue interface {
	EnqueueBroadcast(ctx context.Context, job queue.BroadcastJob) error
}

// NewsService defines operations for news articles
type NewsService interface {
	List(ctx context.Context, filters model.NewsFilters) ([]model.NewsArticle, error)
	Get(ctx context.Context, id string) (*model.NewsArticle, error)
	Create(ctx context.Context, req model.NewsRequest) (*model.NewsArticle, error)
	Update(ctx context.Context, req model.NewsRequest) (*model.NewsArticle, error)
	Delete(ctx context.Context, id string) error
}

type newsService struct {
	repo  repository.NewsRepository
	queue BroadcastQueue
	log   zerolog.Logger
}

// NewNewsService creates a new NewsService. queue may be nil, in which case featured
// articles are not broadcast.
func NewNewsService(repo repository.NewsRepository, queue BroadcastQueue, log zerolog.Logger) NewsService {
	return &newsService{repo: repo, queue: queue, log: log}
}

func (s *newsService) List(ctx context.Context, filters model.NewsFilters) ([]model.NewsArticle, error) {
	if filters.Category != nil {
		category := strings.ToUpper(*filters.Category)
		if category == "" || category == "ALL" {
			filters.Category = nil
		} else {
			filters.Category = &category
		}
	}
	return s.repo.List(ctx, filters)
}

func (s *newsService) Get(ctx context.Context, id string) (*model.NewsArticle, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find article: %w", err)
	}
	if article == nil {
		return nil, ErrNotFound
	}
	return article, nil
}

func (s *newsService) Create(ctx context.Context, req model.NewsRequest) (*model.NewsArticle, error) {
	if req.Title == "" || req.Content == "" || req.Image == "" || req.Excerpt == "" || req.Author == "" || req.Category == "" {
		return nil, invalid("Missing required fields")
	}
	article := &model.NewsArticle{
		Title:    req.Title,
		Content:  req.Content,
		Image:    req.Image,
		Excerpt:  req.Excerpt,
		Author:   req.Author,
		Category: strings.ToUpper(req.Category),
		Featured: req.Featured != nil && *req.Featured,
		Links:    req.Links,
	}
	if article.Links == nil {
		article.Links = []model.NewsLink{}
	}
	if err := s.repo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to create news article: %w", err)
	}

	if article.Featured {
		s.enqueueBroadcast(ctx, article)
	}
	return article, nil
}

// enqueueBroadcast never fails the request; the article is already stored.
func (s *newsService) enqueueBroadcast(ctx context.Context, article *model.NewsArticle) {
	if s.queue == nil {
		return
	}
	job := queue.BroadcastJob{ArticleID: article.ID, Subject: "New Featured Article: " + article.Title, Content: article.Content}
	if err := s.queue.EnqueueBroadcast(ctx, job); err != nil {
		s.log.Error().Err(err).Str("article_id", article.ID).Msg("failed to enqueue newsletter broadcast")
		return
	}
	s.log.Info().Str("article_id", article.ID).Msg("newsletter broadcast enqueued")
}

// Update patches the stored article with the non-empty fields of req
func (s *newsService) Update(ctx context.Context, req model.NewsRequest) (*model.NewsArticle, error) {
	if req.ID == "" {
		return nil, invalid("Article ID is required")
	}
	article, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find article: %w", err)
	}
	if article == nil {
		return nil, ErrNotFound
	}

	if req.Title != "" {
		article.Title = req.Title
	}
	if req.Content != "" {
		article.Content = req.Content
	}
	if req.Image != "" {
		article.Image = req.Image
	}
	if req.Excerpt != "" {
		article.Excerpt = req.Excerpt
	}
	if req.Author != "" {
		article.Author = req.Author
	}
	if req.Category != "" {
		article.Category = strings.ToUpper(req.Category)
	}
	if req.Featured != nil {
		article.Featured = *req.Featured
	}
	if req.Links != nil {
		article.Links = req.Links
	}

	if err := s.repo.Update(ctx, article); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update news article: %w", err)
	}
	return article, nil
}

func (s *newsService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return invalid("Article ID is required")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete news article: %w", err)
	}
	return nil
}
