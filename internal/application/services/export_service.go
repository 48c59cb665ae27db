package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"github.com/sportmap-ro/backend/internal/domain/repositories"
	apperrors "github.com/sportmap-ro/backend/pkg/errors"
)

// ExportService produces the admin spreadsheet export of listings
type ExportService struct {
	facilityRepo repositories.FacilityRepository
	coachRepo    repositories.CoachRepository
}

// NewExportService creates a new export service
func NewExportService(facilityRepo repositories.FacilityRepository, coachRepo repositories.CoachRepository) *ExportService {
	return &ExportService{
		facilityRepo: facilityRepo,
		coachRepo:    coachRepo,
	}
}

var facilityExportHeader = []string{
	"ID", "Name", "Slug", "Kind", "City", "County", "Phone", "Email",
	"Sports", "Status", "Rating", "Reviews", "Created",
}

var coachExportHeader = []string{
	"ID", "Name", "Slug", "City", "County", "Sports", "Phone", "Email",
	"Price/hour", "Status", "Created",
}

// Listings writes every listing into an xlsx workbook with one sheet per
// listing type and returns the serialized file.
func (s *ExportService) Listings(ctx context.Context) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := s.writeFacilitiesSheet(ctx, f); err != nil {
		return nil, err
	}
	if err := s.writeCoachesSheet(ctx, f); err != nil {
		return nil, err
	}

	// Drop the default sheet excelize creates
	f.DeleteSheet("Sheet1")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, apperrors.NewInternalError("failed to serialize export", err)
	}
	return buf.Bytes(), nil
}

func (s *ExportService) writeFacilitiesSheet(ctx context.Context, f *excelize.File) error {
	const sheet = "Facilities"
	if _, err := f.NewSheet(sheet); err != nil {
		return apperrors.NewInternalError("failed to create export sheet", err)
	}

	facilities, err := s.facilityRepo.List(ctx, repositories.FacilityFilter{})
	if err != nil {
		return err
	}

	writeRow(f, sheet, 1, toCells(facilityExportHeader))
	for i, facility := range facilities {
		writeRow(f, sheet, i+2, []interface{}{
			facility.ID,
			facility.Name,
			facility.Slug,
			string(facility.Kind),
			facility.Address.City,
			facility.Address.County,
			facility.PhoneNumber,
			facility.Email,
			strings.Join(facility.Sports, ", "),
			string(facility.Status),
			facility.Rating,
			facility.ReviewCount,
			facility.CreatedAt.Format("2006-01-02"),
		})
	}
	return nil
}

func (s *ExportService) writeCoachesSheet(ctx context.Context, f *excelize.File) error {
	const sheet = "Coaches"
	if _, err := f.NewSheet(sheet); err != nil {
		return apperrors.NewInternalError("failed to create export sheet", err)
	}

	coaches, err := s.coachRepo.List(ctx, repositories.CoachFilter{})
	if err != nil {
		return err
	}

	writeRow(f, sheet, 1, toCells(coachExportHeader))
	for i, coach := range coaches {
		price := ""
		if coach.PricePerHour != nil {
			price = fmt.Sprintf("%.2f", *coach.PricePerHour)
		}
		writeRow(f, sheet, i+2, []interface{}{
			coach.ID,
			coach.Name,
			coach.Slug,
			coach.City,
			coach.County,
			strings.Join(coach.Sports, ", "),
			coach.PhoneNumber,
			coach.Email,
			price,
			string(coach.Status),
			coach.CreatedAt.Format("2006-01-02"),
		})
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) {
	cell, _ := excelize.CoordinatesToCellName(1, row)
	_ = f.SetSheetRow(sheet, cell, &values)
}

func toCells(header []string) []interface{} {
	cells := make([]interface{}, len(header))
	for i, h := range header {
		cells[i] = h
	}
	return cells
}
