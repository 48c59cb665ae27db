package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/sportmap-ro/backend/internal/domain/entities"
	"github.com/sportmap-ro/backend/internal/domain/repositories"
	"github.com/sportmap-ro/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/sportmap-ro/backend/pkg/errors"
)

const seoPagesTable = "seo_pages"

// SEOPageAdapter implements the SEOPageRepository interface
type SEOPageAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewSEOPageAdapter creates a new SEO page adapter
func NewSEOPageAdapter(client *postgres.Client) repositories.SEOPageRepository {
	return &SEOPageAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

func scanSEOPage(row interface{ Scan(...interface{}) error }) (*entities.SEOPage, error) {
	page := &entities.SEOPage{}
	err := row.Scan(
		&page.ID,
		&page.Path,
		&page.Title,
		&page.Description,
		&page.Keywords,
		&page.OGImage,
		&page.CreatedAt,
		&page.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return page, nil
}

// Create creates a new SEO page entry
func (a *SEOPageAdapter) Create(ctx context.Context, page *entities.SEOPage) error {
	now := time.Now()
	if page.CreatedAt.IsZero() {
		page.CreatedAt = now
	}
	page.UpdatedAt = now

	query, args, err := a.db.Insert(seoPagesTable).Rows(goqu.Record{
		"id":          page.ID,
		"path":        page.Path,
		"title":       page.Title,
		"description": page.Description,
		"keywords":    page.Keywords,
		"og_image":    page.OGImage,
		"created_at":  page.CreatedAt,
		"updated_at":  page.UpdatedAt,
	}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build seo page insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create seo page", err)
	}

	return nil
}

// GetByPath retrieves the SEO metadata for a page path
func (a *SEOPageAdapter) GetByPath(ctx context.Context, path string) (*entities.SEOPage, error) {
	query, args, err := a.db.From(seoPagesTable).
		Select("id", "path", "title", "description", "keywords", "og_image", "created_at", "updated_at").
		Where(goqu.Ex{"path": path}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build seo page select query", err)
	}

	page, err := scanSEOPage(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("seo page for path %s not found", path))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get seo page", err)
	}

	return page, nil
}

// Update updates an SEO page entry
func (a *SEOPageAdapter) Update(ctx context.Context, page *entities.SEOPage) error {
	page.UpdatedAt = time.Now()

	query, args, err := a.db.Update(seoPagesTable).
		Set(goqu.Record{
			"path":        page.Path,
			"title":       page.Title,
			"description": page.Description,
			"keywords":    page.Keywords,
			"og_image":    page.OGImage,
			"updated_at":  page.UpdatedAt,
		}).
		Where(goqu.Ex{"id": page.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build seo page update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update seo page", err)
	}

	return requireRowsAffected(result, fmt.Sprintf("seo page with id %s not found", page.ID))
}

// Delete deletes an SEO page entry
func (a *SEOPageAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete(seoPagesTable).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build seo page delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete seo page", err)
	}

	return requireRowsAffected(result, fmt.Sprintf("seo page with id %s not found", id))
}

// List retrieves all SEO page entries
func (a *SEOPageAdapter) List(ctx context.Context) ([]*entities.SEOPage, error) {
	query, args, err := a.db.From(seoPagesTable).
		Select("id", "path", "title", "description", "keywords", "og_image", "created_at", "updated_at").
		Order(goqu.C("path").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build seo page list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list seo pages", err)
	}
	defer rows.Close()

	pages := []*entities.SEOPage{}
	for rows.Next() {
		page, err := scanSEOPage(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan seo page", err)
		}
		pages = append(pages, page)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating seo pages", err)
	}

	return pages, nil
}
