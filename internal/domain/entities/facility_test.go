package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacility_IsPublic(t *testing.T) {
	facility := Facility{Status: StatusApproved, IsActive: true}
	assert.True(t, facility.IsPublic())

	facility.Status = StatusPending
	assert.False(t, facility.IsPublic())

	facility.Status = StatusApproved
	facility.IsActive = false
	assert.False(t, facility.IsPublic())
}

func TestFacility_JSONAlwaysCarriesSocialMedia(t *testing.T) {
	data, err := json.Marshal(Facility{Name: "Teren"})
	require.NoError(t, err)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &payload))

	// API consumers read social_media as an object even when empty.
	assert.Contains(t, payload, "social_media")
	assert.JSONEq(t, `{}`, string(payload["social_media"]))
}
