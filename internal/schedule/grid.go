// Package schedule turns a sports field's weekly time slots into a per-day,
// per-hour rendering decision plus a color legend. It is a pure computation:
// no I/O, no state, and malformed input degrades to empty cells instead of
// failing.
package schedule

import (
	"strings"

	"github.com/sportmap-ro/backend/internal/domain/entities"
)

const (
	defaultStartHour = 6
	defaultEndHour   = 23
	defaultMaxPrice  = 100
)

// DefaultDayOrder lists the weekday keys in display order.
var DefaultDayOrder = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// Options bounds the rendered hour window and permits locale-specific
// weekday ordering. The zero value renders 06:00-23:00, Monday first.
type Options struct {
	StartHour int
	EndHour   int
	DayOrder  []string
}

func (o Options) normalized() Options {
	if o.StartHour == 0 && o.EndHour == 0 {
		o.StartHour = defaultStartHour
		o.EndHour = defaultEndHour
	}
	if o.StartHour < 0 || o.EndHour > 24 || o.EndHour <= o.StartHour {
		o.StartHour = defaultStartHour
		o.EndHour = defaultEndHour
	}
	if len(o.DayOrder) == 0 {
		o.DayOrder = DefaultDayOrder
	}
	return o
}

// CellKind classifies what a grid cell renders.
type CellKind string

const (
	// CellUnset marks a day with no slots at all.
	CellUnset CellKind = "unset"
	// CellEmpty marks an hour not covered on a day that has other slots.
	CellEmpty CellKind = "empty"
	// CellClosed marks an hour covered by a closed slot.
	CellClosed CellKind = "closed"
	// CellMain marks an hour covered by the day's longest open slot.
	CellMain CellKind = "main"
	// CellSecondary marks an hour covered by another open slot.
	CellSecondary CellKind = "secondary"
)

// Cell colors. CellUnset and CellEmpty are both neutral but render in
// different shades so a fully unconfigured day is distinguishable.
const (
	ColorRed          = "red"
	ColorGreen        = "green"
	ColorBlue         = "blue"
	ColorNeutral      = "neutral"
	ColorNeutralLight = "neutral-light"
)

// Cell is the rendering decision for one (day, hour) position.
type Cell struct {
	Hour      int                `json:"hour"`
	Kind      CellKind           `json:"kind"`
	Color     string             `json:"color"`
	Intensity float64            `json:"intensity,omitempty"`
	Slot      *entities.TimeSlot `json:"slot,omitempty"`
}

// Grid is the full weekly schedule: one cell per hour of the display window,
// for every day in display order.
type Grid struct {
	Days      []string          `json:"days"`
	StartHour int               `json:"start_hour"`
	EndHour   int               `json:"end_hour"`
	Cells     map[string][]Cell `json:"cells"`
}

// ComputeGrid maps a field's time slots onto the weekly display window.
// Calling it twice with the same input yields the same output.
func ComputeGrid(slots []entities.TimeSlot, opts Options) Grid {
	opts = opts.normalized()
	maxPrice := maxOpenPrice(slots)

	byDay := make(map[string][]entities.TimeSlot)
	for _, s := range slots {
		day := strings.ToLower(strings.TrimSpace(s.Day))
		byDay[day] = append(byDay[day], s)
	}

	grid := Grid{
		Days:      opts.DayOrder,
		StartHour: opts.StartHour,
		EndHour:   opts.EndHour,
		Cells:     make(map[string][]Cell, len(opts.DayOrder)),
	}

	for _, day := range opts.DayOrder {
		daySlots := byDay[day]
		mainIdx, secondaryIdx := mainAndSecondary(daySlots)

		cells := make([]Cell, 0, opts.EndHour-opts.StartHour)
		for hour := opts.StartHour; hour < opts.EndHour; hour++ {
			cells = append(cells, cellFor(daySlots, mainIdx, secondaryIdx, hour, maxPrice))
		}
		grid.Cells[day] = cells
	}

	return grid
}

// cellFor decides what one hour cell renders. Secondary slots are checked
// before the main slot: a short premium interval carved out of the day's
// long base interval must win its own hours. Within a category the first
// covering slot in input order wins; overlapping slots of the same status
// are a data-entry edge case this deliberately tolerates.
func cellFor(daySlots []entities.TimeSlot, mainIdx int, secondaryIdx []int, hour int, maxPrice float64) Cell {
	if len(daySlots) == 0 {
		return Cell{Hour: hour, Kind: CellUnset, Color: ColorNeutral}
	}

	for _, i := range secondaryIdx {
		if coversHour(daySlots[i], hour) {
			return Cell{
				Hour:      hour,
				Kind:      CellSecondary,
				Color:     ColorBlue,
				Intensity: blueIntensity(daySlots[i].Price, daySlots[i].IsPriceUnspecified, maxPrice),
				Slot:      &daySlots[i],
			}
		}
	}

	for i := range daySlots {
		if daySlots[i].Status == entities.SlotClosed && coversHour(daySlots[i], hour) {
			return Cell{Hour: hour, Kind: CellClosed, Color: ColorRed, Slot: &daySlots[i]}
		}
	}

	if mainIdx >= 0 && coversHour(daySlots[mainIdx], hour) {
		return Cell{Hour: hour, Kind: CellMain, Color: ColorGreen, Slot: &daySlots[mainIdx]}
	}

	return Cell{Hour: hour, Kind: CellEmpty, Color: ColorNeutralLight}
}

// coversHour reports whether the slot overlaps the [hour, hour+1) window at
// minute granularity. Malformed times cover nothing. Overnight slots get the
// same +24h normalization as duration, so they paint their pre-midnight
// hours.
func coversHour(slot entities.TimeSlot, hour int) bool {
	start, okStart := parseClock(slot.StartTime)
	end, okEnd := parseClock(slot.EndTime)
	if !okStart || !okEnd {
		return false
	}
	if end < start {
		end += 24 * 60
	}
	hourStart := hour * 60
	hourEnd := hourStart + 60
	return hourStart < end && hourEnd > start
}
