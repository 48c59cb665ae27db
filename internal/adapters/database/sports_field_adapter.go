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

const sportsFieldsTable = "sports_fields"

var sportsFieldColumns = []interface{}{
	"id", "facility_id", "name", "sport", "surface", "covered", "slot_size",
	"time_slots", "created_at", "updated_at",
}

// SportsFieldAdapter implements the SportsFieldRepository interface
type SportsFieldAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewSportsFieldAdapter creates a new sports field adapter
func NewSportsFieldAdapter(client *postgres.Client) repositories.SportsFieldRepository {
	return &SportsFieldAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

func sportsFieldRecord(field *entities.SportsField) goqu.Record {
	return goqu.Record{
		"id":          field.ID,
		"facility_id": field.FacilityID,
		"name":        field.Name,
		"sport":       field.Sport,
		"surface":     field.Surface,
		"covered":     field.Covered,
		"slot_size":   field.SlotSize,
		"time_slots":  entities.EncodeTimeSlots(field.TimeSlots),
		"created_at":  field.CreatedAt,
		"updated_at":  field.UpdatedAt,
	}
}

func scanSportsField(row interface{ Scan(...interface{}) error }) (*entities.SportsField, error) {
	field := &entities.SportsField{}
	var timeSlots sql.NullString

	err := row.Scan(
		&field.ID,
		&field.FacilityID,
		&field.Name,
		&field.Sport,
		&field.Surface,
		&field.Covered,
		&field.SlotSize,
		&timeSlots,
		&field.CreatedAt,
		&field.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	field.TimeSlots = entities.DecodeTimeSlots(timeSlots.String)

	return field, nil
}

// ListByFacility retrieves all fields attached to a facility, in creation order
func (a *SportsFieldAdapter) ListByFacility(ctx context.Context, facilityID string) ([]*entities.SportsField, error) {
	query, args, err := a.db.From(sportsFieldsTable).
		Select(sportsFieldColumns...).
		Where(goqu.Ex{"facility_id": facilityID}).
		Order(goqu.C("created_at").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build sports field list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list sports fields", err)
	}
	defer rows.Close()

	fields := []*entities.SportsField{}
	for rows.Next() {
		field, err := scanSportsField(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan sports field", err)
		}
		fields = append(fields, field)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating sports fields", err)
	}

	return fields, nil
}

// GetByID retrieves a single sports field
func (a *SportsFieldAdapter) GetByID(ctx context.Context, id string) (*entities.SportsField, error) {
	query, args, err := a.db.From(sportsFieldsTable).
		Select(sportsFieldColumns...).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build sports field select query", err)
	}

	field, err := scanSportsField(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("sports field with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get sports field", err)
	}

	return field, nil
}

// ReplaceForFacility swaps the full set of fields for a facility in one
// transaction. Schedule edits always arrive as the complete new list, so a
// delete-and-insert keeps the stored state identical to what the owner saved.
func (a *SportsFieldAdapter) ReplaceForFacility(ctx context.Context, facilityID string, fields []*entities.SportsField) error {
	tx, err := a.client.DB().BeginTx(ctx, nil)
	if err != nil {
		return apperrors.NewInternalError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	deleteQuery, deleteArgs, err := a.db.Delete(sportsFieldsTable).
		Where(goqu.Ex{"facility_id": facilityID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build sports field delete query", err)
	}

	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return apperrors.NewInternalError("failed to delete sports fields", err)
	}

	now := time.Now()
	for _, field := range fields {
		field.FacilityID = facilityID
		if field.CreatedAt.IsZero() {
			field.CreatedAt = now
		}
		field.UpdatedAt = now

		insertQuery, insertArgs, err := a.db.Insert(sportsFieldsTable).
			Rows(sportsFieldRecord(field)).
			ToSQL()
		if err != nil {
			return apperrors.NewInternalError("failed to build sports field insert query", err)
		}

		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return apperrors.NewInternalError("failed to insert sports field", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternalError("failed to commit sports field replacement", err)
	}

	return nil
}
