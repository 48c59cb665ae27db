package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/sportmap-ro/backend/internal/domain/entities"
	"github.com/sportmap-ro/backend/internal/domain/repositories"
	"github.com/sportmap-ro/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/sportmap-ro/backend/pkg/errors"
)

const facilitiesTable = "facilities"

var facilityColumns = []interface{}{
	"id", "name", "slug", "kind", "street", "city", "county", "postal_code",
	"map_coordinates", "phone_number", "whatsapp_number", "email", "website",
	"description", "sports", "features", "gallery", "social_media",
	"status", "owner_id", "rating", "review_count", "is_active",
	"created_at", "updated_at",
}

// FacilityAdapter implements the FacilityRepository interface
type FacilityAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewFacilityAdapter creates a new facility adapter
func NewFacilityAdapter(client *postgres.Client) repositories.FacilityRepository {
	return &FacilityAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

func facilityRecord(facility *entities.Facility) goqu.Record {
	return goqu.Record{
		"id":              facility.ID,
		"name":            facility.Name,
		"slug":            facility.Slug,
		"kind":            string(facility.Kind),
		"street":          facility.Address.Street,
		"city":            facility.Address.City,
		"county":          facility.Address.County,
		"postal_code":     facility.Address.PostalCode,
		"map_coordinates": encodeJSONColumn(facility.Coordinates),
		"phone_number":    facility.PhoneNumber,
		"whatsapp_number": facility.WhatsAppNumber,
		"email":           facility.Email,
		"website":         facility.Website,
		"description":     facility.Description,
		"sports":          encodeJSONColumn(facility.Sports),
		"features":        encodeJSONColumn(facility.Features),
		"gallery":         encodeJSONColumn(facility.Gallery),
		"social_media":    encodeJSONColumn(facility.SocialMedia),
		"status":          string(facility.Status),
		"owner_id":        sql.NullString{String: facility.OwnerID, Valid: facility.OwnerID != ""},
		"rating":          facility.Rating,
		"review_count":    facility.ReviewCount,
		"is_active":       facility.IsActive,
		"created_at":      facility.CreatedAt,
		"updated_at":      facility.UpdatedAt,
	}
}

// encodeJSONColumn serializes a value into the legacy text columns. Empty
// values are stored as empty strings, matching what the old writers did.
func encodeJSONColumn(v interface{}) string {
	if v == nil {
		return ""
	}
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	s := string(data)
	if s == "null" {
		return ""
	}
	return s
}

func scanFacility(row interface{ Scan(...interface{}) error }) (*entities.Facility, error) {
	facility := &entities.Facility{}
	var kind, status string
	var coordinates, sports, features, gallery, socialMedia sql.NullString
	var ownerID sql.NullString

	err := row.Scan(
		&facility.ID,
		&facility.Name,
		&facility.Slug,
		&kind,
		&facility.Address.Street,
		&facility.Address.City,
		&facility.Address.County,
		&facility.Address.PostalCode,
		&coordinates,
		&facility.PhoneNumber,
		&facility.WhatsAppNumber,
		&facility.Email,
		&facility.Website,
		&facility.Description,
		&sports,
		&features,
		&gallery,
		&socialMedia,
		&status,
		&ownerID,
		&facility.Rating,
		&facility.ReviewCount,
		&facility.IsActive,
		&facility.CreatedAt,
		&facility.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	facility.Kind = entities.FacilityKind(kind)
	facility.Status = entities.FacilityStatus(status)
	facility.OwnerID = ownerID.String

	// Canonicalize the legacy JSON columns in one place; malformed payloads
	// decode to empty values instead of failing the read.
	facility.Coordinates = entities.DecodeMapCoordinates(coordinates.String)
	facility.Sports = entities.DecodeStringList(sports.String)
	facility.Features = entities.DecodeStringList(features.String)
	facility.Gallery = entities.DecodeStringList(gallery.String)
	facility.SocialMedia = entities.DecodeSocialMedia(socialMedia.String)

	return facility, nil
}

// Create creates a new facility
func (a *FacilityAdapter) Create(ctx context.Context, facility *entities.Facility) error {
	now := time.Now()
	if facility.CreatedAt.IsZero() {
		facility.CreatedAt = now
	}
	facility.UpdatedAt = now

	query, args, err := a.db.Insert(facilitiesTable).Rows(facilityRecord(facility)).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build facility insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create facility", err)
	}

	return nil
}

// GetByID retrieves a facility by ID
func (a *FacilityAdapter) GetByID(ctx context.Context, id string) (*entities.Facility, error) {
	return a.getOne(ctx, goqu.Ex{"id": id, "is_active": true},
		fmt.Sprintf("facility with id %s not found", id))
}

// GetBySlug retrieves a facility by its public slug
func (a *FacilityAdapter) GetBySlug(ctx context.Context, slug string) (*entities.Facility, error) {
	return a.getOne(ctx, goqu.Ex{"slug": slug, "is_active": true},
		fmt.Sprintf("facility with slug %s not found", slug))
}

func (a *FacilityAdapter) getOne(ctx context.Context, where goqu.Ex, notFoundMsg string) (*entities.Facility, error) {
	query, args, err := a.db.From(facilitiesTable).
		Select(facilityColumns...).
		Where(where).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build facility select query", err)
	}

	facility, err := scanFacility(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(notFoundMsg)
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get facility", err)
	}

	return facility, nil
}

// GetByIDs retrieves multiple facilities by their IDs
func (a *FacilityAdapter) GetByIDs(ctx context.Context, ids []string) ([]*entities.Facility, error) {
	if len(ids) == 0 {
		return []*entities.Facility{}, nil
	}

	query, args, err := a.db.From(facilitiesTable).
		Select(facilityColumns...).
		Where(goqu.Ex{"id": ids, "is_active": true}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build facility select query", err)
	}

	return a.queryFacilities(ctx, query, args)
}

// Update updates a facility
func (a *FacilityAdapter) Update(ctx context.Context, facility *entities.Facility) error {
	facility.UpdatedAt = time.Now()

	record := facilityRecord(facility)
	delete(record, "id")
	delete(record, "created_at")
	// Moderation state changes only through SetStatus and Delete.
	delete(record, "status")
	delete(record, "is_active")

	query, args, err := a.db.Update(facilitiesTable).
		Set(record).
		Where(goqu.Ex{"id": facility.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build facility update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update facility", err)
	}

	return requireRowsAffected(result, fmt.Sprintf("facility with id %s not found", facility.ID))
}

// SetStatus moves a facility through the approval workflow
func (a *FacilityAdapter) SetStatus(ctx context.Context, id string, status entities.FacilityStatus) error {
	query, args, err := a.db.Update(facilitiesTable).
		Set(goqu.Record{"status": string(status), "updated_at": time.Now()}).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build facility status query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to set facility status", err)
	}

	return requireRowsAffected(result, fmt.Sprintf("facility with id %s not found", id))
}

// Delete deletes a facility (soft delete)
func (a *FacilityAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Update(facilitiesTable).
		Set(goqu.Record{"is_active": false, "updated_at": time.Now()}).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build facility delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete facility", err)
	}

	return requireRowsAffected(result, fmt.Sprintf("facility with id %s not found", id))
}

// List retrieves facilities with filters
func (a *FacilityAdapter) List(ctx context.Context, filter repositories.FacilityFilter) ([]*entities.Facility, error) {
	ds := a.db.From(facilitiesTable).Select(facilityColumns...)

	if filter.Kind != "" {
		ds = ds.Where(goqu.Ex{"kind": string(filter.Kind)})
	}
	if filter.City != "" {
		ds = ds.Where(goqu.Ex{"city": filter.City})
	}
	if filter.County != "" {
		ds = ds.Where(goqu.Ex{"county": filter.County})
	}
	if filter.Sport != "" {
		// Sports are stored as a JSON array in a text column.
		ds = ds.Where(goqu.L("sports LIKE ?", "%\""+filter.Sport+"\"%"))
	}
	if filter.Status != "" {
		ds = ds.Where(goqu.Ex{"status": string(filter.Status)})
	}
	if filter.IsActive != nil {
		ds = ds.Where(goqu.Ex{"is_active": *filter.IsActive})
	}

	ds = ds.Order(goqu.C("created_at").Desc())

	if filter.Limit > 0 {
		ds = ds.Limit(uint(filter.Limit))
	}
	if filter.Offset > 0 {
		ds = ds.Offset(uint(filter.Offset))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build facility list query", err)
	}

	return a.queryFacilities(ctx, query, args)
}

func (a *FacilityAdapter) queryFacilities(ctx context.Context, query string, args []interface{}) ([]*entities.Facility, error) {
	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list facilities", err)
	}
	defer rows.Close()

	facilities := []*entities.Facility{}
	for rows.Next() {
		facility, err := scanFacility(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan facility", err)
		}
		facilities = append(facilities, facility)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating facilities", err)
	}

	return facilities, nil
}

func requireRowsAffected(result sql.Result, notFoundMsg string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(notFoundMsg)
	}
	return nil
}
