package entities

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Legacy writers stored features, gallery, social_media, map_coordinates and
// time_slots as opaque JSON strings with inconsistent key casing
// (snake_case and camelCase mixed) and numbers sometimes quoted. Each decoder
// below canonicalizes one of those columns in a single step right after the
// row is read; a payload that cannot be parsed decodes to the empty value.

// DecodeStringList decodes a JSON array of strings (features, gallery).
func DecodeStringList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	return out
}

// DecodeSocialMedia decodes the social_media column.
func DecodeSocialMedia(raw string) SocialMedia {
	if strings.TrimSpace(raw) == "" {
		return SocialMedia{}
	}
	var m map[string]string
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return SocialMedia{}
	}
	lower := make(map[string]string, len(m))
	for k, v := range m {
		lower[strings.ToLower(k)] = v
	}
	return SocialMedia{
		Facebook:  lower["facebook"],
		Instagram: lower["instagram"],
		TikTok:    lower["tiktok"],
		YouTube:   lower["youtube"],
	}
}

// DecodeMapCoordinates decodes the map_coordinates column. Accepts
// lat/latitude and lng/long/longitude key variants, quoted or unquoted.
func DecodeMapCoordinates(raw string) *MapCoordinates {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil
	}
	lower := make(map[string]json.RawMessage, len(m))
	for k, v := range m {
		lower[strings.ToLower(k)] = v
	}
	lat, latOK := decodeNumber(firstRaw(lower, "latitude", "lat"))
	lng, lngOK := decodeNumber(firstRaw(lower, "longitude", "lng", "long"))
	if !latOK || !lngOK {
		return nil
	}
	return &MapCoordinates{Latitude: lat, Longitude: lng}
}

// legacyTimeSlot mirrors the historical payload shape with every key variant
// seen in stored rows.
type legacyTimeSlot struct {
	Day                  string          `json:"day"`
	StartTime            json.RawMessage `json:"startTime"`
	StartTimeSnake       json.RawMessage `json:"start_time"`
	EndTime              json.RawMessage `json:"endTime"`
	EndTimeSnake         json.RawMessage `json:"end_time"`
	Status               string          `json:"status"`
	Price                json.RawMessage `json:"price"`
	IsPriceUnspecified   bool            `json:"isPriceUnspecified"`
	IsPriceUnspecifiedSn bool            `json:"is_price_unspecified"`
}

// DecodeTimeSlots decodes the time_slots column into canonical TimeSlots.
// Slots keep their stored order; a malformed payload decodes to nil.
func DecodeTimeSlots(raw string) []TimeSlot {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var legacy []legacyTimeSlot
	if err := json.Unmarshal([]byte(raw), &legacy); err != nil {
		return nil
	}
	slots := make([]TimeSlot, 0, len(legacy))
	for _, l := range legacy {
		slot := TimeSlot{
			Day:                strings.ToLower(strings.TrimSpace(l.Day)),
			StartTime:          decodeClockString(l.StartTime, l.StartTimeSnake),
			EndTime:            decodeClockString(l.EndTime, l.EndTimeSnake),
			Status:             canonicalSlotStatus(l.Status),
			IsPriceUnspecified: l.IsPriceUnspecified || l.IsPriceUnspecifiedSn,
		}
		if price, ok := decodeNumber(l.Price); ok {
			slot.Price = &price
		}
		slots = append(slots, slot)
	}
	return slots
}

// EncodeTimeSlots serializes canonical slots for storage. Written rows always
// use the snake_case shape; only reads have to tolerate the legacy variants.
func EncodeTimeSlots(slots []TimeSlot) string {
	if len(slots) == 0 {
		return "[]"
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func canonicalSlotStatus(s string) SlotStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "open":
		return SlotOpen
	case "closed":
		return SlotClosed
	default:
		return SlotNotSpecified
	}
}

func decodeClockString(candidates ...json.RawMessage) string {
	for _, c := range candidates {
		if len(c) == 0 {
			continue
		}
		var s string
		if err := json.Unmarshal(c, &s); err == nil && s != "" {
			return s
		}
	}
	return ""
}

func decodeNumber(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

func firstRaw(m map[string]json.RawMessage, keys ...string) json.RawMessage {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v
		}
	}
	return nil
}
