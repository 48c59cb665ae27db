package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sportmap-ro/backend/internal/domain/entities"
)

func cellAt(t *testing.T, grid Grid, day string, hour int) Cell {
	t.Helper()
	cells, ok := grid.Cells[day]
	require.True(t, ok, "day %s missing from grid", day)
	require.GreaterOrEqual(t, hour, grid.StartHour)
	require.Less(t, hour, grid.EndHour)
	return cells[hour-grid.StartHour]
}

func TestComputeGrid_EmptySlotsYieldNeutralGrid(t *testing.T) {
	grid := ComputeGrid(nil, Options{})

	assert.Equal(t, 6, grid.StartHour)
	assert.Equal(t, 23, grid.EndHour)
	assert.Equal(t, DefaultDayOrder, grid.Days)
	require.Len(t, grid.Cells, 7)

	for _, day := range DefaultDayOrder {
		require.Len(t, grid.Cells[day], 17)
		for _, cell := range grid.Cells[day] {
			assert.Equal(t, CellUnset, cell.Kind)
			assert.Equal(t, ColorNeutral, cell.Color)
			assert.Nil(t, cell.Slot)
		}
	}
}

func TestComputeGrid_MainAndSecondaryScenario(t *testing.T) {
	slots := []entities.TimeSlot{
		openSlot("monday", "08:00", "20:00", fp(50)),
		openSlot("monday", "18:00", "19:00", fp(100)),
	}

	grid := ComputeGrid(slots, Options{})

	// 08:00 falls only inside the 12h slot, which is main.
	morning := cellAt(t, grid, "monday", 8)
	assert.Equal(t, CellMain, morning.Kind)
	assert.Equal(t, ColorGreen, morning.Color)
	require.NotNil(t, morning.Slot)
	assert.Equal(t, fp(50), morning.Slot.Price)

	// 18:00 is inside [18:00,19:00): the shorter premium slot wins the cell.
	evening := cellAt(t, grid, "monday", 18)
	assert.Equal(t, CellSecondary, evening.Kind)
	assert.Equal(t, ColorBlue, evening.Color)
	require.NotNil(t, evening.Slot)
	assert.Equal(t, fp(100), evening.Slot.Price)
	assert.InDelta(t, 1.0, evening.Intensity, 1e-9, "highest price maps to full intensity")

	// 19:00 is back inside the main slot only.
	after := cellAt(t, grid, "monday", 19)
	assert.Equal(t, CellMain, after.Kind)

	// 20:00 is past both slots but monday has slots: lighter neutral.
	late := cellAt(t, grid, "monday", 20)
	assert.Equal(t, CellEmpty, late.Kind)
	assert.Equal(t, ColorNeutralLight, late.Color)

	// Tuesday has no slots at all: plain neutral.
	assert.Equal(t, CellUnset, cellAt(t, grid, "tuesday", 10).Kind)
}

func TestComputeGrid_ClosedSlotOnly(t *testing.T) {
	slots := []entities.TimeSlot{
		{Day: "tuesday", StartTime: "10:00", EndTime: "11:00", Status: entities.SlotClosed},
	}

	grid := ComputeGrid(slots, Options{})

	for hour := grid.StartHour; hour < grid.EndHour; hour++ {
		cell := cellAt(t, grid, "tuesday", hour)
		if hour == 10 {
			assert.Equal(t, CellClosed, cell.Kind)
			assert.Equal(t, ColorRed, cell.Color)
		} else {
			assert.Equal(t, CellEmpty, cell.Kind, "hour %d", hour)
		}
	}

	// Days without slots stay unset.
	assert.Equal(t, CellUnset, cellAt(t, grid, "monday", 10).Kind)
}

func TestComputeGrid_Idempotent(t *testing.T) {
	slots := []entities.TimeSlot{
		openSlot("monday", "08:00", "20:00", fp(50)),
		openSlot("monday", "18:00", "19:00", fp(100)),
		{Day: "tuesday", StartTime: "10:00", EndTime: "11:00", Status: entities.SlotClosed},
		openSlot("friday", "22:00", "02:00", nil),
	}

	first := ComputeGrid(slots, Options{})
	second := ComputeGrid(slots, Options{})

	assert.Equal(t, first, second)
}

func TestComputeGrid_OvernightSlotPaintsEveningHours(t *testing.T) {
	slots := []entities.TimeSlot{
		openSlot("saturday", "22:00", "02:00", fp(60)),
	}

	grid := ComputeGrid(slots, Options{})

	assert.Equal(t, CellMain, cellAt(t, grid, "saturday", 22).Kind)
	assert.Equal(t, CellEmpty, cellAt(t, grid, "saturday", 21).Kind)
}

func TestComputeGrid_MalformedTimesCoverNothing(t *testing.T) {
	slots := []entities.TimeSlot{
		{Day: "monday", StartTime: "8h00", EndTime: "20:00", Status: entities.SlotOpen},
		{Day: "monday", StartTime: "", EndTime: "", Status: entities.SlotOpen},
	}

	grid := ComputeGrid(slots, Options{})

	// The day has slots, but none of them parse, so every cell is empty.
	for hour := grid.StartHour; hour < grid.EndHour; hour++ {
		assert.Equal(t, CellEmpty, cellAt(t, grid, "monday", hour).Kind, "hour %d", hour)
	}
}

func TestComputeGrid_NotSpecifiedSlotsCoverNothing(t *testing.T) {
	slots := []entities.TimeSlot{
		{Day: "monday", StartTime: "08:00", EndTime: "12:00", Status: entities.SlotNotSpecified},
	}

	grid := ComputeGrid(slots, Options{})

	assert.Equal(t, CellEmpty, cellAt(t, grid, "monday", 9).Kind)
}

func TestComputeGrid_OverlappingSecondariesFirstInputWins(t *testing.T) {
	// Two open slots overlapping at 10:00 is a data-entry error the original
	// system never validated; the earlier-stored slot wins the cell.
	slots := []entities.TimeSlot{
		openSlot("monday", "06:00", "23:00", fp(50)),
		openSlot("monday", "10:00", "11:00", fp(30)),
		openSlot("monday", "10:00", "12:00", fp(60)),
	}

	grid := ComputeGrid(slots, Options{})

	cell := cellAt(t, grid, "monday", 10)
	require.Equal(t, CellSecondary, cell.Kind)
	require.NotNil(t, cell.Slot)
	assert.Equal(t, fp(30), cell.Slot.Price)

	// The longer overlapping secondary still wins the hour it alone covers.
	cell = cellAt(t, grid, "monday", 11)
	require.Equal(t, CellSecondary, cell.Kind)
	require.NotNil(t, cell.Slot)
	assert.Equal(t, fp(60), cell.Slot.Price)
}

func TestComputeGrid_CustomWindowAndDayOrder(t *testing.T) {
	slots := []entities.TimeSlot{
		openSlot("sunday", "08:00", "10:00", fp(45)),
	}

	grid := ComputeGrid(slots, Options{
		StartHour: 8,
		EndHour:   12,
		DayOrder:  []string{"sunday", "saturday"},
	})

	assert.Equal(t, []string{"sunday", "saturday"}, grid.Days)
	require.Len(t, grid.Cells, 2)
	require.Len(t, grid.Cells["sunday"], 4)

	assert.Equal(t, CellMain, cellAt(t, grid, "sunday", 8).Kind)
	assert.Equal(t, CellMain, cellAt(t, grid, "sunday", 9).Kind)
	assert.Equal(t, CellEmpty, cellAt(t, grid, "sunday", 10).Kind)
}

func TestComputeGrid_DayKeysAreCaseInsensitive(t *testing.T) {
	slots := []entities.TimeSlot{
		openSlot("Monday", "08:00", "10:00", fp(45)),
	}

	grid := ComputeGrid(slots, Options{})

	assert.Equal(t, CellMain, cellAt(t, grid, "monday", 8).Kind)
}

func TestComputeGrid_InvalidOptionsFallBackToDefaults(t *testing.T) {
	grid := ComputeGrid(nil, Options{StartHour: 20, EndHour: 8})

	assert.Equal(t, 6, grid.StartHour)
	assert.Equal(t, 23, grid.EndHour)
}
