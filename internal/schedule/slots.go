package schedule

import (
	"sort"
	"strconv"
	"strings"

	"github.com/sportmap-ro/backend/internal/domain/entities"
)

// parseClock parses an "HH:MM" string into minutes since midnight.
// Anything unparsable or out of range reports !ok; callers treat such slots
// as covering nothing rather than failing the whole grid.
func parseClock(s string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

// slotDuration returns the slot length in hours. An end earlier than the
// start wraps past midnight, so 22:00-02:00 is 4 hours. Malformed times
// yield 0.
func slotDuration(slot entities.TimeSlot) float64 {
	start, okStart := parseClock(slot.StartTime)
	end, okEnd := parseClock(slot.EndTime)
	if !okStart || !okEnd {
		return 0
	}
	if end < start {
		end += 24 * 60
	}
	return float64(end-start) / 60
}

// mainAndSecondary picks the main (longest open) slot for one day and the
// remaining open slots as secondary. It returns indexes into daySlots; main
// is -1 when the day has no open slot. Ties on duration keep input order:
// the sort is stable, so the slot stored first stays main.
func mainAndSecondary(daySlots []entities.TimeSlot) (int, []int) {
	open := make([]int, 0, len(daySlots))
	for i, s := range daySlots {
		if s.Status == entities.SlotOpen {
			open = append(open, i)
		}
	}
	if len(open) == 0 {
		return -1, nil
	}

	sort.SliceStable(open, func(a, b int) bool {
		return slotDuration(daySlots[open[a]]) > slotDuration(daySlots[open[b]])
	})

	secondary := open[1:]
	// Secondary slots are matched against cells in input order, not by duration.
	sort.Ints(secondary)
	return open[0], secondary
}

// maxOpenPrice returns the highest price among open, priced slots, used to
// scale secondary-slot intensity. Fields with no priced slots scale against
// a fixed default so intensities stay in band.
func maxOpenPrice(slots []entities.TimeSlot) float64 {
	max := 0.0
	for _, s := range slots {
		if s.Status != entities.SlotOpen || s.IsPriceUnspecified || s.Price == nil {
			continue
		}
		if *s.Price > max {
			max = *s.Price
		}
	}
	if max == 0 {
		return defaultMaxPrice
	}
	return max
}
