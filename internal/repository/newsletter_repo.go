package repository

import (
	"context"
	"errors"
	"fmt"

	"injai_channel/internal/model"

	"github.com/jackc/pgx/v5"
)

// NewsletterRepository defines operations for newsletter subscriptions
type NewsletterRepository interface {
	Create(ctx context.Context, sub *model.NewsletterSubscription) error
	FindByEmail(ctx context.Context, email string) (*model.NewsletterSubscription, error)
	Reactivate(ctx context.Context, sub *model.NewsletterSubscription) error
	SetStatus(ctx context.Context, id, status string) (*model.NewsletterSubscription, error)
	List(ctx context.Context) ([]model.NewsletterSubscription, error)
	ListActive(ctx context.Context) ([]model.NewsletterSubscription, error)
	Stats(ctx context.Context) (*model.SubscriberStats, error)
	Delete(ctx context.Context, id string) error
}

type newsletterRepository struct {
	db DBTX
}

// NewNewsletterRepository creates a new NewsletterRepository
func NewNewsletterRepository(db DBTX) NewsletterRepository {
	return &newsletterRepository{db: db}
}

const subscriptionColumns = `id, email, name, status, source, created_at, updated_at`

func scanSubscription(row scanner) (*model.NewsletterSubscription, error) {
	s := &model.NewsletterSubscription{}
	err := row.Scan(&s.ID, &s.Email, &s.Name, &s.Status, &s.Source, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// Create inserts a new subscription
func (r *newsletterRepository) Create(ctx context.Context, s *model.NewsletterSubscription) error {
	sql := `INSERT INTO newsletter_subscriptions (email, name, status, source)
            VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, s.Email, s.Name, s.Status, s.Source).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}

// FindByEmail retrieves a subscription by email
func (r *newsletterRepository) FindByEmail(ctx context.Context, email string) (*model.NewsletterSubscription, error) {
	sql := `SELECT ` + subscriptionColumns + ` FROM newsletter_subscriptions WHERE email = $1`
	s, err := scanSubscription(r.db.QueryRow(ctx, sql, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not subscribed
		}
		return nil, fmt.Errorf("failed to find subscription by email: %w", err)
	}
	return s, nil
}

// Reactivate sets an existing subscription back to active, refreshing name and source
func (r *newsletterRepository) Reactivate(ctx context.Context, s *model.NewsletterSubscription) error {
	sql := `UPDATE newsletter_subscriptions
            SET status = $1, name = COALESCE($2, name), source = $3, updated_at = NOW()
            WHERE id = $4 RETURNING status, name, updated_at`
	err := r.db.QueryRow(ctx, sql, model.SubscriptionActive, s.Name, s.Source, s.ID).Scan(&s.Status, &s.Name, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to reactivate subscription: %w", err)
	}
	return nil
}

// SetStatus changes the status of a subscription and returns the updated row
func (r *newsletterRepository) SetStatus(ctx context.Context, id, status string) (*model.NewsletterSubscription, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	sql := `UPDATE newsletter_subscriptions SET status = $1, updated_at = NOW()
            WHERE id = $2 RETURNING ` + subscriptionColumns
	s, err := scanSubscription(r.db.QueryRow(ctx, sql, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update subscription status: %w", err)
	}
	return s, nil
}

// List returns every subscription, newest first
func (r *newsletterRepository) List(ctx context.Context) ([]model.NewsletterSubscription, error) {
	return r.query(ctx, `SELECT `+subscriptionColumns+` FROM newsletter_subscriptions ORDER BY created_at DESC`)
}

// ListActive returns the subscriptions a broadcast is sent to
func (r *newsletterRepository) ListActive(ctx context.Context) ([]model.NewsletterSubscription, error) {
	return r.query(ctx, `SELECT `+subscriptionColumns+` FROM newsletter_subscriptions WHERE status = $1 ORDER BY created_at`,
		model.SubscriptionActive)
}

func (r *newsletterRepository) query(ctx context.Context, sql string, args ...any) ([]model.NewsletterSubscription, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}
	defer rows.Close()

	subs := []model.NewsletterSubscription{}
	for rows.Next() {
		s, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscription row: %w", err)
		}
		subs = append(subs, *s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscription rows: %w", err)
	}
	return subs, nil
}

// Stats counts subscriptions by status
func (r *newsletterRepository) Stats(ctx context.Context) (*model.SubscriberStats, error) {
	stats := &model.SubscriberStats{}
	sql := `SELECT
            COUNT(*),
            COUNT(*) FILTER (WHERE status = 'active'),
            COUNT(*) FILTER (WHERE status = 'unsubscribed')
            FROM newsletter_subscriptions`
	if err := r.db.QueryRow(ctx, sql).Scan(&stats.Total, &stats.Active, &stats.Unsubscribed); err != nil {
		return nil, fmt.Errorf("failed to count subscriptions: %w", err)
	}
	return stats, nil
}

// Delete removes a subscription
func (r *newsletterRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrNotFound
	}
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM newsletter_subscriptions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
