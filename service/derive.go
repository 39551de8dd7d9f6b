package service

import (
	"math"
	"sort"
	"strconv"

	"flightdeals-cli/model"
)

// Derive produces the ordered page of flights to render: price filter,
// airline filter, stop-category filter, stable sort, then the first
// pageSize elements. It never mutates the input slice and returns the
// same sequence for the same inputs.
func Derive(flights []model.Flight, params model.FilterParams, best model.BestPrices, pageSize int) []model.Flight {
	filtered := Filter(flights, params, best)
	sortFlights(filtered, params.Sort)

	if pageSize < 0 {
		pageSize = 0
	}
	if pageSize > len(filtered) {
		pageSize = len(filtered)
	}
	return filtered[:pageSize]
}

// Filter applies the three filter stages and returns a fresh slice in the
// original relative order.
func Filter(flights []model.Flight, params model.FilterParams, best model.BestPrices) []model.Flight {
	direct := best.DirectCarriers()

	filtered := make([]model.Flight, 0, len(flights))
	for _, flight := range flights {
		if !inPriceRange(flight, params.PriceRange) {
			continue
		}
		if !airlineSelected(flight, params.Airlines) {
			continue
		}
		if !stopCategoryMatches(flight, params.Stops, direct) {
			continue
		}
		filtered = append(filtered, flight)
	}
	return filtered
}

// TotalAmount parses the flight's total price. Malformed amounts come
// back as NaN, which fails every range check and never decides a sort
// comparison.
func TotalAmount(f model.Flight) float64 {
	amount, err := strconv.ParseFloat(f.Price.Total.Amount, 64)
	if err != nil {
		return math.NaN()
	}
	return amount
}

// CombinedDuration is the upstream travel-time key: the first segment of
// the outbound leg plus the second segment of the return leg. A missing
// leg or segment contributes zero.
func CombinedDuration(f model.Flight) int {
	total := 0
	if leg, ok := f.Leg(0); ok {
		if seg, ok := leg.Segment(0); ok {
			total += seg.TravelDuration
		}
	}
	if leg, ok := f.Leg(1); ok {
		if seg, ok := leg.Segment(1); ok {
			total += seg.TravelDuration
		}
	}
	return total
}

func inPriceRange(f model.Flight, rng model.PriceRange) bool {
	amount := TotalAmount(f)
	return amount >= float64(rng.Min) && amount <= float64(rng.Max)
}

func airlineSelected(f model.Flight, airlines map[string]bool) bool {
	if len(airlines) == 0 {
		return true
	}
	return airlines[f.Carrier.Caption]
}

// stopCategoryMatches reproduces the upstream toggle semantics verbatim:
// the "no connections" toggle keeps offers whose carrier is NOT in the
// DIRECT best-flights list, the "one connection" toggle keeps offers
// whose carrier IS in it, and the first branch wins when both are on.
func stopCategoryMatches(f model.Flight, stops map[model.StopCategory]bool, direct map[string]bool) bool {
	switch {
	case stops[model.StopsDirect]:
		return !direct[f.Carrier.UID]
	case stops[model.StopsOne]:
		return direct[f.Carrier.UID]
	default:
		return true
	}
}

func sortFlights(flights []model.Flight, mode model.SortMode) {
	switch mode {
	case model.SortPriceAscending:
		sort.SliceStable(flights, func(i, j int) bool {
			return lessByPrice(flights[i], flights[j], false)
		})
	case model.SortPriceDescending:
		sort.SliceStable(flights, func(i, j int) bool {
			return lessByPrice(flights[i], flights[j], true)
		})
	case model.SortDuration:
		sort.SliceStable(flights, func(i, j int) bool {
			return CombinedDuration(flights[i]) < CombinedDuration(flights[j])
		})
	}
}

// lessByPrice orders by total price with combined duration as tie-break.
// A NaN price is never decisive; the comparison falls through to the
// tie-break. Under descending order both keys reverse.
func lessByPrice(a, b model.Flight, descending bool) bool {
	priceA, priceB := TotalAmount(a), TotalAmount(b)
	if priceA != priceB && !math.IsNaN(priceA) && !math.IsNaN(priceB) {
		if descending {
			return priceA > priceB
		}
		return priceA < priceB
	}
	if descending {
		return CombinedDuration(a) > CombinedDuration(b)
	}
	return CombinedDuration(a) < CombinedDuration(b)
}

// Airlines returns the unique carrier captions in dataset order, for the
// airline filter list.
func Airlines(flights []model.Flight) []string {
	seen := make(map[string]bool, len(flights))
	var names []string
	for _, flight := range flights {
		caption := flight.Carrier.Caption
		if caption == "" || seen[caption] {
			continue
		}
		seen[caption] = true
		names = append(names, caption)
	}
	return names
}
