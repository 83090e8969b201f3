package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"injai_channel/internal/model"
	"injai_channel/internal/repository"
)

// EventService defines operations for events
type EventService interface {
	List(ctx context.Context, filters model.EventFilters) ([]model.Event, error)
	Create(ctx context.Context, req model.EventRequest) (*model.Event, error)
	Update(ctx context.Context, req model.EventRequest) (*model.Event, error)
	Delete(ctx context.Context, id string) error
	CompletePast(ctx context.Context, now time.Time) (int64, error)
}

type eventService struct {
	repo repository.EventRepository
}

// NewEventService creates a new EventService
func NewEventService(repo repository.EventRepository) EventService {
	return &eventService{repo: repo}
}

func (s *eventService) List(ctx context.Context, filters model.EventFilters) ([]model.Event, error) {
	return s.repo.List(ctx, filters)
}

func eventFromRequest(req model.EventRequest) (*model.Event, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" || req.Date == nil {
		return nil, invalid("Title and date are required")
	}
	status := req.Status
	switch status {
	case "":
		status = model.EventStatusUpcoming
	case model.EventStatusUpcoming, model.EventStatusOngoing, model.EventStatusCompleted, model.EventStatusCancelled:
	default:
		return nil, invalid("Invalid status")
	}
	return &model.Event{
		ID:          req.ID,
		Title:       title,
		Description: req.Description,
		Date:        *req.Date,
		Location:    req.Location,
		Type:        req.Type,
		Status:      status,
		Image:       req.Image,
		Featured:    req.Featured,
		TicketPrice: req.TicketPrice,
		TicketURL:   req.TicketURL,
		Capacity:    req.Capacity,
	}, nil
}

func (s *eventService) Create(ctx context.Context, req model.EventRequest) (*model.Event, error) {
	event, err := eventFromRequest(req)
	if err != nil {
		return nil, err
	}
	event.ID = ""
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (s *eventService) Update(ctx context.Context, req model.EventRequest) (*model.Event, error) {
	if req.ID == "" {
		return nil, invalid("Event ID is required")
	}
	event, err := eventFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, event); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return invalid("Event ID is required")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// CompletePast marks upcoming events that ended more than a day before now as completed
func (s *eventService) CompletePast(ctx context.Context, now time.Time) (int64, error) {
	return s.repo.CompleteBefore(ctx, now.Add(-24*time.Hour))
}
