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

const suggestionsTable = "suggestions"

// SuggestionAdapter implements the SuggestionRepository interface
type SuggestionAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewSuggestionAdapter creates a new suggestion adapter
func NewSuggestionAdapter(client *postgres.Client) repositories.SuggestionRepository {
	return &SuggestionAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create stores a visitor suggestion
func (a *SuggestionAdapter) Create(ctx context.Context, suggestion *entities.Suggestion) error {
	if suggestion.CreatedAt.IsZero() {
		suggestion.CreatedAt = time.Now()
	}

	query, args, err := a.db.Insert(suggestionsTable).Rows(goqu.Record{
		"id":          suggestion.ID,
		"facility_id": sql.NullString{String: suggestion.FacilityID, Valid: suggestion.FacilityID != ""},
		"message":     suggestion.Message,
		"email":       suggestion.Email,
		"page":        suggestion.Page,
		"user_agent":  suggestion.UserAgent,
		"created_at":  suggestion.CreatedAt,
	}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build suggestion insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create suggestion", err)
	}

	return nil
}

// List retrieves suggestions, newest first
func (a *SuggestionAdapter) List(ctx context.Context, limit, offset int) ([]*entities.Suggestion, error) {
	ds := a.db.From(suggestionsTable).
		Select("id", "facility_id", "message", "email", "page", "user_agent", "created_at").
		Order(goqu.C("created_at").Desc())

	if limit > 0 {
		ds = ds.Limit(uint(limit))
	}
	if offset > 0 {
		ds = ds.Offset(uint(offset))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build suggestion list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list suggestions", err)
	}
	defer rows.Close()

	suggestions := []*entities.Suggestion{}
	for rows.Next() {
		suggestion := &entities.Suggestion{}
		var facilityID sql.NullString
		err := rows.Scan(
			&suggestion.ID,
			&facilityID,
			&suggestion.Message,
			&suggestion.Email,
			&suggestion.Page,
			&suggestion.UserAgent,
			&suggestion.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan suggestion", err)
		}
		suggestion.FacilityID = facilityID.String
		suggestions = append(suggestions, suggestion)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating suggestions", err)
	}

	return suggestions, nil
}

// Delete removes a handled suggestion
func (a *SuggestionAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete(suggestionsTable).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build suggestion delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete suggestion", err)
	}

	return requireRowsAffected(result, fmt.Sprintf("suggestion with id %s not found", id))
}
