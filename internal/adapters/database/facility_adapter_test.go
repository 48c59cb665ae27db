package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportmap-ro/backend/internal/domain/entities"
	"github.com/sportmap-ro/backend/internal/domain/repositories"
	"github.com/sportmap-ro/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/sportmap-ro/backend/pkg/errors"
)

func newMockAdapter(t *testing.T) (repositories.FacilityRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewFacilityAdapter(postgres.NewClientFromDB(db)), mock
}

func facilityRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "slug", "kind", "street", "city", "county", "postal_code",
		"map_coordinates", "phone_number", "whatsapp_number", "email", "website",
		"description", "sports", "features", "gallery", "social_media",
		"status", "owner_id", "rating", "review_count", "is_active",
		"created_at", "updated_at",
	})
}

func TestFacilityAdapter_GetByID(t *testing.T) {
	t.Run("decodes legacy snake_case JSON columns", func(t *testing.T) {
		adapter, mock := newMockAdapter(t)

		now := time.Now()
		rows := facilityRows().AddRow(
			"fac-1", "Baza Sportivă Tineretului", "baza-sportiva-tineretului", "sports_base",
			"Str. Stadionului 2", "Cluj-Napoca", "Cluj", "400000",
			`{"lat": "46.7712", "long": "23.6236"}`,
			"+40740000000", "", "contact@baza.ro", "",
			"", `["fotbal","tenis"]`, `["parcare","vestiare"]`, "", `{"Facebook":"https://fb.com/baza"}`,
			"approved", nil, 4.5, 12, true, now, now,
		)

		mock.ExpectQuery(`SELECT .+ FROM "facilities" WHERE .+`).
			WithArgs("fac-1", true).
			WillReturnRows(rows)

		facility, err := adapter.GetByID(context.Background(), "fac-1")
		require.NoError(t, err)

		assert.Equal(t, entities.KindSportsBase, facility.Kind)
		assert.Equal(t, entities.StatusApproved, facility.Status)
		require.NotNil(t, facility.Coordinates)
		assert.InDelta(t, 46.7712, facility.Coordinates.Latitude, 0.0001)
		assert.InDelta(t, 23.6236, facility.Coordinates.Longitude, 0.0001)
		assert.Equal(t, []string{"fotbal", "tenis"}, facility.Sports)
		assert.Equal(t, []string{"parcare", "vestiare"}, facility.Features)
		assert.Empty(t, facility.Gallery)
		assert.Equal(t, "https://fb.com/baza", facility.SocialMedia.Facebook)
		assert.True(t, facility.IsPublic())
	})

	t.Run("malformed JSON columns decode to empty values", func(t *testing.T) {
		adapter, mock := newMockAdapter(t)

		now := time.Now()
		rows := facilityRows().AddRow(
			"fac-2", "Atelier Reparații Biciclete", "atelier-reparatii", "repair_shop",
			"", "Brașov", "Brașov", "",
			"{not json", "", "", "", "",
			"", "also not json", "", "", "???",
			"pending", nil, 0.0, 0, true, now, now,
		)

		mock.ExpectQuery(`SELECT .+ FROM "facilities" WHERE .+`).
			WithArgs("fac-2", true).
			WillReturnRows(rows)

		facility, err := adapter.GetByID(context.Background(), "fac-2")
		require.NoError(t, err)

		assert.Nil(t, facility.Coordinates)
		assert.Empty(t, facility.Sports)
		assert.Empty(t, facility.SocialMedia.Facebook)
		assert.False(t, facility.IsPublic())
	})

	t.Run("returns not found for missing facility", func(t *testing.T) {
		adapter, mock := newMockAdapter(t)

		mock.ExpectQuery(`SELECT .+ FROM "facilities" WHERE .+`).
			WithArgs("missing", true).
			WillReturnRows(facilityRows())

		facility, err := adapter.GetByID(context.Background(), "missing")
		assert.Nil(t, facility)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestFacilityAdapter_SetStatus(t *testing.T) {
	t.Run("updates the status column", func(t *testing.T) {
		adapter, mock := newMockAdapter(t)

		mock.ExpectExec(`UPDATE "facilities" SET .+`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := adapter.SetStatus(context.Background(), "fac-1", entities.StatusApproved)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found when no row matched", func(t *testing.T) {
		adapter, mock := newMockAdapter(t)

		mock.ExpectExec(`UPDATE "facilities" SET .+`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := adapter.SetStatus(context.Background(), "missing", entities.StatusRejected)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestFacilityAdapter_Delete(t *testing.T) {
	t.Run("soft deletes by clearing is_active", func(t *testing.T) {
		adapter, mock := newMockAdapter(t)

		mock.ExpectExec(`UPDATE "facilities" SET .+"is_active"=\$1.+`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := adapter.Delete(context.Background(), "fac-1")
		assert.NoError(t, err)
	})
}
