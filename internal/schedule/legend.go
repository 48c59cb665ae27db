package schedule

import (
	"sort"
	"strconv"

	"github.com/sportmap-ro/backend/internal/domain/entities"
)

// unspecifiedIntensity is the fixed low band reserved for slots without a
// usable price, kept below the 0.4 floor of priced slots.
const unspecifiedIntensity = 0.3

// LegendEntry describes one color used on the grid.
type LegendEntry struct {
	Color     string   `json:"color"`
	Intensity float64  `json:"intensity,omitempty"`
	Label     string   `json:"label"`
	Price     *float64 `json:"price,omitempty"`
}

// blueIntensity maps a secondary slot's price into [0.4, 1.0] relative to
// the field's highest price. Missing, zero or explicitly unspecified prices
// get the fixed low band instead.
func blueIntensity(price *float64, priceUnspecified bool, maxPrice float64) float64 {
	if priceUnspecified || price == nil || *price == 0 {
		return unspecifiedIntensity
	}
	if maxPrice <= 0 {
		maxPrice = defaultMaxPrice
	}
	ratio := *price / maxPrice
	if ratio > 1 {
		ratio = 1
	}
	return 0.4 + 0.6*ratio
}

// ComputeLegend produces the deduplicated (color, label) pairs covering the
// main slot price, every distinct secondary price ascending, an
// "unspecified" entry when a secondary slot has no price, and a closed entry
// when any slot is closed. An empty slot set yields an empty legend.
func ComputeLegend(slots []entities.TimeSlot) []LegendEntry {
	entries := []LegendEntry{}
	if len(slots) == 0 {
		return entries
	}

	maxPrice := maxOpenPrice(slots)

	byDay := make(map[string][]entities.TimeSlot)
	dayKeys := []string{}
	for _, s := range slots {
		day := s.Day
		if _, seen := byDay[day]; !seen {
			dayKeys = append(dayKeys, day)
		}
		byDay[day] = append(byDay[day], s)
	}

	mainPrices := map[float64]struct{}{}
	mainUnspecified := false
	secondaryPrices := map[float64]struct{}{}
	secondaryUnspecified := false
	anyClosed := false

	for _, s := range slots {
		if s.Status == entities.SlotClosed {
			anyClosed = true
		}
	}

	for _, day := range dayKeys {
		daySlots := byDay[day]
		mainIdx, secondaryIdx := mainAndSecondary(daySlots)
		if mainIdx >= 0 {
			if p, ok := usablePrice(daySlots[mainIdx]); ok {
				mainPrices[p] = struct{}{}
			} else {
				mainUnspecified = true
			}
		}
		for _, i := range secondaryIdx {
			if p, ok := usablePrice(daySlots[i]); ok {
				secondaryPrices[p] = struct{}{}
			} else {
				secondaryUnspecified = true
			}
		}
	}

	for _, p := range sortedPrices(mainPrices) {
		price := p
		entries = append(entries, LegendEntry{
			Color: ColorGreen,
			Label: priceLabel(price),
			Price: &price,
		})
	}
	if mainUnspecified {
		entries = append(entries, LegendEntry{Color: ColorGreen, Label: unspecifiedLabel})
	}

	for _, p := range sortedPrices(secondaryPrices) {
		price := p
		entries = append(entries, LegendEntry{
			Color:     ColorBlue,
			Intensity: blueIntensity(&price, false, maxPrice),
			Label:     priceLabel(price),
			Price:     &price,
		})
	}
	if secondaryUnspecified {
		entries = append(entries, LegendEntry{
			Color:     ColorBlue,
			Intensity: unspecifiedIntensity,
			Label:     unspecifiedLabel,
		})
	}

	if anyClosed {
		entries = append(entries, LegendEntry{Color: ColorRed, Label: closedLabel})
	}

	return entries
}

const (
	unspecifiedLabel = "Preț nespecificat"
	closedLabel      = "Închis"
)

func usablePrice(slot entities.TimeSlot) (float64, bool) {
	if slot.IsPriceUnspecified || slot.Price == nil || *slot.Price == 0 {
		return 0, false
	}
	return *slot.Price, true
}

func priceLabel(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64) + " lei"
}

func sortedPrices(set map[float64]struct{}) []float64 {
	prices := make([]float64, 0, len(set))
	for p := range set {
		prices = append(prices, p)
	}
	sort.Float64s(prices)
	return prices
}
