package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"injai_channel/internal/model"

	"github.com/jackc/pgx/v5"
)

// MaxNewsResults caps the public news listing
const MaxNewsResults = 50

// NewsRepository defines operations for news articles
type NewsRepository interface {
	Create(ctx context.Context, article *model.NewsArticle) error
	FindByID(ctx context.Context, id string) (*model.NewsArticle, error)
	List(ctx context.Context, filters model.NewsFilters) ([]model.NewsArticle, error)
	Update(ctx context.Context, article *model.NewsArticle) error
	Delete(ctx context.Context, id string) error
}

type newsRepository struct {
	db DBTX
}

// NewNewsRepository creates a new NewsRepository
func NewNewsRepository(db DBTX) NewsRepository {
	return &newsRepository{db: db}
}

const newsColumns = `id, title, content, image, excerpt, author, category, featured, links,
        published_at, created_at, updated_at`

func scanNews(row scanner) (*model.NewsArticle, error) {
	n := &model.NewsArticle{}
	var links []byte
	err := row.Scan(
		&n.ID, &n.Title, &n.Content, &n.Image, &n.Excerpt, &n.Author, &n.Category, &n.Featured, &links,
		&n.PublishedAt, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	n.Links = []model.NewsLink{}
	if len(links) > 0 {
		if err := json.Unmarshal(links, &n.Links); err != nil {
			return nil, fmt.Errorf("decode news links: %w", err)
		}
	}
	return n, nil
}

func encodeLinks(links []model.NewsLink) ([]byte, error) {
	if links == nil {
		links = []model.NewsLink{}
	}
	return json.Marshal(links)
}

// Create inserts a new article
func (r *newsRepository) Create(ctx context.Context, n *model.NewsArticle) error {
	links, err := encodeLinks(n.Links)
	if err != nil {
		return fmt.Errorf("encode news links: %w", err)
	}
	sql := `INSERT INTO news (title, content, image, excerpt, author, category, featured, links)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, published_at, created_at, updated_at`
	err = r.db.QueryRow(ctx, sql,
		n.Title, n.Content, n.Image, n.Excerpt, n.Author, n.Category, n.Featured, links,
	).Scan(&n.ID, &n.PublishedAt, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create news article: %w", err)
	}
	return nil
}

// FindByID retrieves an article by its ID
func (r *newsRepository) FindByID(ctx context.Context, id string) (*model.NewsArticle, error) {
	if !validID(id) {
		return nil, nil
	}
	n, err := scanNews(r.db.QueryRow(ctx, `SELECT `+newsColumns+` FROM news WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find news article by ID: %w", err)
	}
	return n, nil
}

// List retrieves at most MaxNewsResults articles, newest first
func (r *newsRepository) List(ctx context.Context, filters model.NewsFilters) ([]model.NewsArticle, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + newsColumns + ` FROM news`)

	args := []interface{}{}
	argCount := 1
	var conditions []string

	if filters.Category != nil && *filters.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argCount))
		args = append(args, *filters.Category)
		argCount++
	}
	if filters.Featured {
		conditions = append(conditions, "featured = TRUE")
	}
	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY published_at DESC LIMIT $%d", argCount))
	args = append(args, MaxNewsResults)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}
	defer rows.Close()

	articles := []model.NewsArticle{}
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan news row: %w", err)
		}
		articles = append(articles, *n)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating news rows: %w", err)
	}
	return articles, nil
}

// Update modifies an existing article
func (r *newsRepository) Update(ctx context.Context, n *model.NewsArticle) error {
	if !validID(n.ID) {
		return ErrNotFound
	}
	links, err := encodeLinks(n.Links)
	if err != nil {
		return fmt.Errorf("encode news links: %w", err)
	}
	sql := `UPDATE news
            SET title = $1, content = $2, image = $3, excerpt = $4, author = $5, category = $6,
                featured = $7, links = $8, updated_at = NOW()
            WHERE id = $9 RETURNING published_at, created_at, updated_at`
	err = r.db.QueryRow(ctx, sql,
		n.Title, n.Content, n.Image, n.Excerpt, n.Author, n.Category, n.Featured, links, n.ID,
	).Scan(&n.PublishedAt, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update news article: %w", err)
	}
	return nil
}

// Delete removes an article
func (r *newsRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrNotFound
	}
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete news article: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
