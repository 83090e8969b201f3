package handler

import (
	"context"
	"mime/multipart"

	"injai_channel/internal/model"
	"injai_channel/internal/service"
)

type stubAuthService struct {
	signup func(username, email, password string) (*model.User, string, error)
	login  func(email, username, password string) (*model.User, string, error)
}

func (s *stubAuthService) Signup(_ context.Context, username, email, password string) (*model.User, string, error) {
	return s.signup(username, email, password)
}

func (s *stubAuthService) Login(_ context.Context, email, username, password string) (*model.User, string, error) {
	return s.login(email, username, password)
}

type stubUserService struct {
	service.UserService
	deleted []string
	users   map[string]bool
}

func (s *stubUserService) Delete(_ context.Context, callerID, id string) error {
	if !s.users[id] {
		return service.ErrNotFound
	}
	if callerID == id {
		return service.ErrCannotDeleteSelf
	}
	delete(s.users, id)
	s.deleted = append(s.deleted, id)
	return nil
}

type stubNewsService struct {
	service.NewsService
	created []model.NewsRequest
	err     error
}

func (s *stubNewsService) Create(_ context.Context, req model.NewsRequest) (*model.NewsArticle, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = append(s.created, req)
	return &model.NewsArticle{ID: "n-1", Title: req.Title}, nil
}

func (s *stubNewsService) Delete(_ context.Context, id string) error {
	if id == "" {
		return &service.ValidationError{Message: "Article ID is required"}
	}
	return service.ErrNotFound
}

type stubNewsletterService struct {
	service.NewsletterService
	subscribeErr error
	result       *model.BroadcastResult
}

func (s *stubNewsletterService) Subscribe(_ context.Context, req model.SubscribeRequest) (*model.NewsletterSubscription, error) {
	if s.subscribeErr != nil {
		return nil, s.subscribeErr
	}
	return &model.NewsletterSubscription{Email: req.Email}, nil
}

func (s *stubNewsletterService) Broadcast(_ context.Context, _ model.BroadcastRequest) (*model.BroadcastResult, error) {
	return s.result, nil
}

type stubPreviewService struct {
	preview *model.Preview
	err     error
}

func (s *stubPreviewService) Preview(_ context.Context, _ model.PreviewRequest) (*model.Preview, error) {
	return s.preview, s.err
}

type stubUploadService struct {
	url string
	err error
}

func (s *stubUploadService) UploadImage(_ context.Context, _ *multipart.FileHeader) (string, error) {
	return s.url, s.err
}

type stubDashboard struct {
	counts *model.DashboardCounts
}

func (s *stubDashboard) Counts(_ context.Context) (*model.DashboardCounts, error) {
	return s.counts, nil
}
