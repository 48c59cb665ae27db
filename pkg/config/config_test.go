package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("SCHEDULE_START_HOUR")
	os.Unsetenv("SCHEDULE_END_HOUR")
	os.Unsetenv("TYPESENSE_URL")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "sportmap", cfg.Database.Database)
	assert.Equal(t, "http://localhost:8108", cfg.Typesense.URL)
	assert.Equal(t, 6, cfg.Schedule.StartHour)
	assert.Equal(t, 23, cfg.Schedule.EndHour)
}

func TestLoad_ScheduleWindow(t *testing.T) {
	os.Setenv("SCHEDULE_START_HOUR", "8")
	os.Setenv("SCHEDULE_END_HOUR", "22")
	defer func() {
		os.Unsetenv("SCHEDULE_START_HOUR")
		os.Unsetenv("SCHEDULE_END_HOUR")
	}()

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 8, cfg.Schedule.StartHour)
	assert.Equal(t, 22, cfg.Schedule.EndHour)
}

func TestValidate_OK(t *testing.T) {
	cfg, err := Load()
	assert.NoError(t, err)
	assert.NoError(t, cfg.Validate())
}

func TestValidate_BadScheduleWindow(t *testing.T) {
	cfg, err := Load()
	assert.NoError(t, err)

	cfg.Schedule.StartHour = 23
	cfg.Schedule.EndHour = 6

	verr := cfg.Validate()
	assert.Error(t, verr)
	assert.Contains(t, verr.Error(), "SCHEDULE_START_HOUR must be before SCHEDULE_END_HOUR")
}

func TestValidate_ProductionRequiresDBPassword(t *testing.T) {
	cfg, err := Load()
	assert.NoError(t, err)

	cfg.Environment = "production"
	cfg.Database.Password = ""

	verr := cfg.Validate()
	assert.Error(t, verr)
	assert.Contains(t, verr.Error(), "DB_PASSWORD")
}

func TestValidate_OTELEndpointRequiredWhenEnabled(t *testing.T) {
	cfg, err := Load()
	assert.NoError(t, err)

	cfg.OTEL.Enabled = true
	cfg.OTEL.Endpoint = ""

	assert.Error(t, cfg.Validate())
}
