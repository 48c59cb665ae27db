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

const coachesTable = "coaches"

var coachColumns = []interface{}{
	"id", "name", "slug", "city", "county", "sports", "phone_number",
	"email", "description", "price_per_hour", "status", "is_active",
	"created_at", "updated_at",
}

// CoachAdapter implements the CoachRepository interface
type CoachAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewCoachAdapter creates a new coach adapter
func NewCoachAdapter(client *postgres.Client) repositories.CoachRepository {
	return &CoachAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

func coachRecord(coach *entities.Coach) goqu.Record {
	return goqu.Record{
		"id":             coach.ID,
		"name":           coach.Name,
		"slug":           coach.Slug,
		"city":           coach.City,
		"county":         coach.County,
		"sports":         encodeJSONColumn(coach.Sports),
		"phone_number":   coach.PhoneNumber,
		"email":          coach.Email,
		"description":    coach.Description,
		"price_per_hour": coach.PricePerHour,
		"status":         string(coach.Status),
		"is_active":      coach.IsActive,
		"created_at":     coach.CreatedAt,
		"updated_at":     coach.UpdatedAt,
	}
}

func scanCoach(row interface{ Scan(...interface{}) error }) (*entities.Coach, error) {
	coach := &entities.Coach{}
	var status string
	var sports sql.NullString
	var pricePerHour sql.NullFloat64

	err := row.Scan(
		&coach.ID,
		&coach.Name,
		&coach.Slug,
		&coach.City,
		&coach.County,
		&sports,
		&coach.PhoneNumber,
		&coach.Email,
		&coach.Description,
		&pricePerHour,
		&status,
		&coach.IsActive,
		&coach.CreatedAt,
		&coach.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	coach.Status = entities.FacilityStatus(status)
	coach.Sports = entities.DecodeStringList(sports.String)
	if pricePerHour.Valid {
		price := pricePerHour.Float64
		coach.PricePerHour = &price
	}

	return coach, nil
}

// Create creates a new coach
func (a *CoachAdapter) Create(ctx context.Context, coach *entities.Coach) error {
	now := time.Now()
	if coach.CreatedAt.IsZero() {
		coach.CreatedAt = now
	}
	coach.UpdatedAt = now

	query, args, err := a.db.Insert(coachesTable).Rows(coachRecord(coach)).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build coach insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create coach", err)
	}

	return nil
}

// GetByID retrieves a coach by ID
func (a *CoachAdapter) GetByID(ctx context.Context, id string) (*entities.Coach, error) {
	return a.getOne(ctx, goqu.Ex{"id": id, "is_active": true},
		fmt.Sprintf("coach with id %s not found", id))
}

// GetBySlug retrieves a coach by its public slug
func (a *CoachAdapter) GetBySlug(ctx context.Context, slug string) (*entities.Coach, error) {
	return a.getOne(ctx, goqu.Ex{"slug": slug, "is_active": true},
		fmt.Sprintf("coach with slug %s not found", slug))
}

func (a *CoachAdapter) getOne(ctx context.Context, where goqu.Ex, notFoundMsg string) (*entities.Coach, error) {
	query, args, err := a.db.From(coachesTable).
		Select(coachColumns...).
		Where(where).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build coach select query", err)
	}

	coach, err := scanCoach(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(notFoundMsg)
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get coach", err)
	}

	return coach, nil
}

// Update updates a coach
func (a *CoachAdapter) Update(ctx context.Context, coach *entities.Coach) error {
	coach.UpdatedAt = time.Now()

	record := coachRecord(coach)
	delete(record, "id")
	delete(record, "created_at")
	// Moderation state changes only through SetStatus and Delete.
	delete(record, "status")
	delete(record, "is_active")

	query, args, err := a.db.Update(coachesTable).
		Set(record).
		Where(goqu.Ex{"id": coach.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build coach update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update coach", err)
	}

	return requireRowsAffected(result, fmt.Sprintf("coach with id %s not found", coach.ID))
}

// SetStatus moves a coach through the approval workflow
func (a *CoachAdapter) SetStatus(ctx context.Context, id string, status entities.FacilityStatus) error {
	query, args, err := a.db.Update(coachesTable).
		Set(goqu.Record{"status": string(status), "updated_at": time.Now()}).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build coach status query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to set coach status", err)
	}

	return requireRowsAffected(result, fmt.Sprintf("coach with id %s not found", id))
}

// Delete deletes a coach (soft delete)
func (a *CoachAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Update(coachesTable).
		Set(goqu.Record{"is_active": false, "updated_at": time.Now()}).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build coach delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete coach", err)
	}

	return requireRowsAffected(result, fmt.Sprintf("coach with id %s not found", id))
}

// List retrieves coaches with filters
func (a *CoachAdapter) List(ctx context.Context, filter repositories.CoachFilter) ([]*entities.Coach, error) {
	ds := a.db.From(coachesTable).Select(coachColumns...).Where(goqu.Ex{"is_active": true})

	if filter.City != "" {
		ds = ds.Where(goqu.Ex{"city": filter.City})
	}
	if filter.County != "" {
		ds = ds.Where(goqu.Ex{"county": filter.County})
	}
	if filter.Sport != "" {
		ds = ds.Where(goqu.L("sports LIKE ?", "%\""+filter.Sport+"\"%"))
	}
	if filter.Status != "" {
		ds = ds.Where(goqu.Ex{"status": string(filter.Status)})
	}

	ds = ds.Order(goqu.C("name").Asc())

	if filter.Limit > 0 {
		ds = ds.Limit(uint(filter.Limit))
	}
	if filter.Offset > 0 {
		ds = ds.Offset(uint(filter.Offset))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build coach list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list coaches", err)
	}
	defer rows.Close()

	coaches := []*entities.Coach{}
	for rows.Next() {
		coach, err := scanCoach(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan coach", err)
		}
		coaches = append(coaches, coach)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating coaches", err)
	}

	return coaches, nil
}
