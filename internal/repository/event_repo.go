package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"injai_channel/internal/model"

	"github.com/jackc/pgx/v5"
)

// EventRepository defines operations for event data
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	FindByID(ctx context.Context, id string) (*model.Event, error)
	List(ctx context.Context, filters model.EventFilters) ([]model.Event, error)
	Update(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id string) error
	CompleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type eventRepository struct {
	db DBTX
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db DBTX) EventRepository {
	return &eventRepository{db: db}
}

const eventColumns = `id, title, description, date, location, type, status, image, featured,
        ticket_price, ticket_url, capacity, created_at, updated_at`

func scanEvent(row scanner) (*model.Event, error) {
	e := &model.Event{}
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.Location, &e.Type, &e.Status, &e.Image, &e.Featured,
		&e.TicketPrice, &e.TicketURL, &e.Capacity, &e.CreatedAt, &e.UpdatedAt,
	)
	e.LegacyID = e.ID
	return e, err
}

// Create inserts a new event
func (r *eventRepository) Create(ctx context.Context, e *model.Event) error {
	sql := `INSERT INTO events (title, description, date, location, type, status, image, featured,
            ticket_price, ticket_url, capacity)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql,
		e.Title, e.Description, e.Date, e.Location, e.Type, e.Status, e.Image, e.Featured,
		e.TicketPrice, e.TicketURL, e.Capacity,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	e.LegacyID = e.ID
	return nil
}

// FindByID retrieves an event by its ID
func (r *eventRepository) FindByID(ctx context.Context, id string) (*model.Event, error) {
	if !validID(id) {
		return nil, nil
	}
	e, err := scanEvent(r.db.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find event by ID: %w", err)
	}
	return e, nil
}

// List retrieves events with optional filters, soonest first
func (r *eventRepository) List(ctx context.Context, filters model.EventFilters) ([]model.Event, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + eventColumns + ` FROM events`)

	args := []interface{}{}
	argCount := 1
	var conditions []string

	if filters.Status != nil && *filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argCount))
		args = append(args, *filters.Status)
		argCount++
	}
	if filters.Type != nil && *filters.Type != "" {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argCount))
		args = append(args, *filters.Type)
		argCount++
	}
	if filters.Featured {
		conditions = append(conditions, "featured = TRUE")
	}
	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY date ASC")
	if filters.Limit > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", argCount))
		args = append(args, filters.Limit)
	}

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []model.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, *e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}
	return events, nil
}

// Update modifies an existing event
func (r *eventRepository) Update(ctx context.Context, e *model.Event) error {
	if !validID(e.ID) {
		return ErrNotFound
	}
	sql := `UPDATE events
            SET title = $1, description = $2, date = $3, location = $4, type = $5, status = $6,
                image = $7, featured = $8, ticket_price = $9, ticket_url = $10, capacity = $11, updated_at = NOW()
            WHERE id = $12 RETURNING created_at, updated_at`
	err := r.db.QueryRow(ctx, sql,
		e.Title, e.Description, e.Date, e.Location, e.Type, e.Status,
		e.Image, e.Featured, e.TicketPrice, e.TicketURL, e.Capacity, e.ID,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update event: %w", err)
	}
	e.LegacyID = e.ID
	return nil
}

// Delete removes an event
func (r *eventRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrNotFound
	}
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CompleteBefore marks upcoming events dated before cutoff as completed
func (r *eventRepository) CompleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	sql := `UPDATE events SET status = $1, updated_at = NOW() WHERE status = $2 AND date < $3`
	cmdTag, err := r.db.Exec(ctx, sql, model.EventStatusCompleted, model.EventStatusUpcoming, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to complete past events: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
