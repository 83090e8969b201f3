package service

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"injai_channel/internal/mailer"
	"injai_channel/internal/model"
	"injai_channel/internal/repository"

	"github.com/rs/zerolog"
)

// NewsletterService manages subscriptions and sends broadcasts
type NewsletterService interface {
	Subscribe(ctx context.Context, req model.SubscribeRequest) (*model.NewsletterSubscription, error)
	Unsubscribe(ctx context.Context, email string) error
	Broadcast(ctx context.Context, req model.BroadcastRequest) (*model.BroadcastResult, error)
	List(ctx context.Context) ([]model.NewsletterSubscription, *model.SubscriberStats, error)
	SetStatus(ctx context.Context, id, status string) (*model.NewsletterSubscription, error)
	Delete(ctx context.Context, id string) error
}

type newsletterService struct {
	subs    repository.NewsletterRepository
	news    repository.NewsRepository
	mail    mailer.Sender
	siteURL string
	log     zerolog.Logger
}

// NewNewsletterService creates a new NewsletterService
func NewNewsletterService(subs repository.NewsletterRepository, news repository.NewsRepository, mail mailer.Sender, siteURL string, log zerolog.Logger) NewsletterService {
	return &newsletterService{
		subs:    subs,
		news:    news,
		mail:    mail,
		siteURL: strings.TrimRight(siteURL, "/"),
		log:     log,
	}
}

// Subscribe creates or reactivates a subscription and sends the welcome email
func (s *newsletterService) Subscribe(ctx context.Context, req model.SubscribeRequest) (*model.NewsletterSubscription, error) {
	email := normalizeEmail(req.Email)
	if email == "" {
		return nil, invalid("Email is required")
	}
	source := req.Source
	if source == "" {
		source = "website"
	}

	sub, err := s.subs.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}

	switch {
	case sub != nil && sub.Status == model.SubscriptionActive:
		return nil, ErrAlreadySubscribed
	case sub != nil:
		sub.Name = req.Name
		sub.Source = source
		if err := s.subs.Reactivate(ctx, sub); err != nil {
			return nil, fmt.Errorf("failed to reactivate subscription: %w", err)
		}
	default:
		sub = &model.NewsletterSubscription{Email: email, Name: req.Name, Status: model.SubscriptionActive, Source: source}
		if err := s.subs.Create(ctx, sub); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return nil, ErrAlreadySubscribed
			}
			return nil, fmt.Errorf("failed to create subscription: %w", err)
		}
	}

	s.sendWelcome(ctx, sub)
	return sub, nil
}

func (s *newsletterService) sendWelcome(ctx context.Context, sub *model.NewsletterSubscription) {
	data := mailer.WelcomeData{Email: sub.Email, SiteURL: s.siteURL}
	if sub.Name != nil {
		data.Name = *sub.Name
	}
	msg, err := mailer.Welcome(sub.Email, data)
	if err == nil {
		err = s.mail.Send(ctx, msg)
	}
	if err != nil {
		s.log.Warn().Err(err).Str("email", sub.Email).Msg("failed to send welcome email")
	}
}

func (s *newsletterService) Unsubscribe(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return invalid("Email is required")
	}
	sub, err := s.subs.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to find subscription: %w", err)
	}
	if sub == nil {
		return ErrNotFound
	}
	if _, err := s.subs.SetStatus(ctx, sub.ID, model.SubscriptionUnsubscribed); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}
	return nil
}

// Broadcast mails the article to every active subscriber, one at a time. A failed send
// is counted and does not stop the loop.
func (s *newsletterService) Broadcast(ctx context.Context, req model.BroadcastRequest) (*model.BroadcastResult, error) {
	if req.ArticleID == "" || req.Subject == "" || req.Content == "" {
		return nil, invalid("Article ID, subject, and content are required")
	}

	article, err := s.news.FindByID(ctx, req.ArticleID)
	if err != nil {
		return nil, fmt.Errorf("failed to find article: %w", err)
	}
	if article == nil {
		return nil, ErrNotFound
	}

	subscribers, err := s.subs.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}

	result := &model.BroadcastResult{}
	for _, sub := range subscribers {
		msg, err := mailer.Newsletter(sub.Email, mailer.NewsletterData{
			Subject: req.Subject,
			Content: template.HTML(req.Content),
			Article: mailer.NewsletterArticle{
				ID:          article.ID,
				Title:       article.Title,
				Author:      article.Author,
				Excerpt:     article.Excerpt,
				PublishedAt: article.PublishedAt,
			},
			Email:   sub.Email,
			SiteURL: s.siteURL,
		})
		if err == nil {
			err = s.mail.Send(ctx, msg)
		}
		if err != nil {
			s.log.Warn().Err(err).Str("email", sub.Email).Msg("failed to send newsletter")
			result.Failed++
			continue
		}
		result.Success++
	}

	s.log.Info().Str("article_id", article.ID).Int("success", result.Success).Int("failed", result.Failed).Msg("newsletter broadcast finished")
	return result, nil
}

func (s *newsletterService) List(ctx context.Context) ([]model.NewsletterSubscription, *model.SubscriberStats, error) {
	subs, err := s.subs.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	stats, err := s.subs.Stats(ctx)
	if err != nil {
		return nil, nil, err
	}
	return subs, stats, nil
}

func (s *newsletterService) SetStatus(ctx context.Context, id, status string) (*model.NewsletterSubscription, error) {
	if !model.ValidSubscriptionStatus(status) {
		return nil, invalid("Invalid status")
	}
	sub, err := s.subs.SetStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update subscriber status: %w", err)
	}
	return sub, nil
}

func (s *newsletterService) Delete(ctx context.Context, id string) error {
	if err := s.subs.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete subscriber: %w", err)
	}
	return nil
}
