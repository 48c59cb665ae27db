package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTimeSlots_SnakeCase(t *testing.T) {
	raw := `[{"day":"monday","start_time":"08:00","end_time":"20:00","status":"open","price":50}]`

	slots := DecodeTimeSlots(raw)
	require.Len(t, slots, 1)
	assert.Equal(t, "monday", slots[0].Day)
	assert.Equal(t, "08:00", slots[0].StartTime)
	assert.Equal(t, "20:00", slots[0].EndTime)
	assert.Equal(t, SlotOpen, slots[0].Status)
	require.NotNil(t, slots[0].Price)
	assert.Equal(t, 50.0, *slots[0].Price)
}

func TestDecodeTimeSlots_CamelCaseAndQuotedPrice(t *testing.T) {
	raw := `[{"day":"Tuesday","startTime":"10:00","endTime":"12:00","status":"OPEN","price":"75.5","isPriceUnspecified":false}]`

	slots := DecodeTimeSlots(raw)
	require.Len(t, slots, 1)
	assert.Equal(t, "tuesday", slots[0].Day)
	assert.Equal(t, "10:00", slots[0].StartTime)
	assert.Equal(t, "12:00", slots[0].EndTime)
	assert.Equal(t, SlotOpen, slots[0].Status)
	require.NotNil(t, slots[0].Price)
	assert.Equal(t, 75.5, *slots[0].Price)
}

func TestDecodeTimeSlots_UnknownStatusBecomesNotSpecified(t *testing.T) {
	raw := `[{"day":"monday","start_time":"08:00","end_time":"10:00","status":"whatever"}]`

	slots := DecodeTimeSlots(raw)
	require.Len(t, slots, 1)
	assert.Equal(t, SlotNotSpecified, slots[0].Status)
	assert.Nil(t, slots[0].Price)
}

func TestDecodeTimeSlots_MalformedPayloadDecodesEmpty(t *testing.T) {
	assert.Nil(t, DecodeTimeSlots("not json"))
	assert.Nil(t, DecodeTimeSlots(`{"day":"monday"}`))
	assert.Nil(t, DecodeTimeSlots(""))
}

func TestDecodeTimeSlots_PreservesStoredOrder(t *testing.T) {
	raw := `[
		{"day":"monday","start_time":"18:00","end_time":"19:00","status":"open","price":100},
		{"day":"monday","start_time":"08:00","end_time":"20:00","status":"open","price":50}
	]`

	slots := DecodeTimeSlots(raw)
	require.Len(t, slots, 2)
	assert.Equal(t, "18:00", slots[0].StartTime)
	assert.Equal(t, "08:00", slots[1].StartTime)
}

func TestEncodeTimeSlots_RoundTripsCanonicalShape(t *testing.T) {
	price := 50.0
	slots := []TimeSlot{
		{Day: "monday", StartTime: "08:00", EndTime: "20:00", Status: SlotOpen, Price: &price},
	}

	decoded := DecodeTimeSlots(EncodeTimeSlots(slots))
	assert.Equal(t, slots, decoded)
}

func TestEncodeTimeSlots_Empty(t *testing.T) {
	assert.Equal(t, "[]", EncodeTimeSlots(nil))
}

func TestDecodeMapCoordinates(t *testing.T) {
	coords := DecodeMapCoordinates(`{"latitude":44.43,"longitude":26.10}`)
	require.NotNil(t, coords)
	assert.Equal(t, 44.43, coords.Latitude)
	assert.Equal(t, 26.10, coords.Longitude)

	// Legacy rows used lat/lng, sometimes quoted.
	coords = DecodeMapCoordinates(`{"lat":"45.75","lng":"21.22"}`)
	require.NotNil(t, coords)
	assert.Equal(t, 45.75, coords.Latitude)
	assert.Equal(t, 21.22, coords.Longitude)

	assert.Nil(t, DecodeMapCoordinates(`{"lat":44.43}`))
	assert.Nil(t, DecodeMapCoordinates("garbage"))
	assert.Nil(t, DecodeMapCoordinates(""))
}

func TestDecodeSocialMedia(t *testing.T) {
	social := DecodeSocialMedia(`{"Facebook":"https://fb.com/x","instagram":"https://ig.com/x"}`)
	assert.Equal(t, "https://fb.com/x", social.Facebook)
	assert.Equal(t, "https://ig.com/x", social.Instagram)
	assert.Empty(t, social.TikTok)

	assert.Equal(t, SocialMedia{}, DecodeSocialMedia("oops"))
}

func TestDecodeStringList(t *testing.T) {
	assert.Equal(t, []string{"nocturna", "parcare"}, DecodeStringList(`["nocturna","parcare"]`))
	assert.Nil(t, DecodeStringList(`{"a":1}`))
	assert.Nil(t, DecodeStringList(""))
}
