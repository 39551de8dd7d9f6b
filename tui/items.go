package tui

import (
	"fmt"
	"strings"

	"flightdeals-cli/model"
	"flightdeals-cli/service"
	"github.com/charmbracelet/bubbles/list"
)

type flightItem struct {
	flight model.Flight
}

func (f flightItem) Title() string {
	return fmt.Sprintf("%s • %s", f.flight.Carrier.Caption, service.FormatPrice(f.flight.Price.Total.Amount))
}

func (f flightItem) Description() string {
	leg, ok := f.flight.Leg(0)
	if !ok {
		return ""
	}
	seg, ok := leg.Segment(0)
	if !ok {
		return ""
	}

	parts := []string{routeLabel(seg)}
	if dt, err := service.SplitDateTime(seg.DepartureDate); err == nil {
		parts = append(parts, fmt.Sprintf("%s %s", dt.Date, dt.Time))
	} else {
		parts = append(parts, "--:--")
	}
	parts = append(parts, service.FormatDuration(seg.TravelDuration))
	if len(f.flight.Legs) == 1 {
		parts = append(parts, "one-way")
	}
	return strings.Join(parts, " • ")
}

func (f flightItem) FilterValue() string {
	var targets []string
	targets = append(targets, f.flight.Carrier.Caption)
	for _, leg := range f.flight.Legs {
		for _, seg := range leg.Segments {
			targets = append(targets, seg.DepartureAirport.Caption, seg.ArrivalAirport.Caption)
		}
	}
	return strings.ToLower(strings.Join(targets, " "))
}

func routeLabel(seg model.Segment) string {
	from := seg.DepartureAirport.Caption
	if seg.DepartureCity != nil {
		from = fmt.Sprintf("%s, %s", seg.DepartureCity.Caption, from)
	}
	to := seg.ArrivalAirport.Caption
	if seg.ArrivalCity != nil {
		to = fmt.Sprintf("%s, %s", seg.ArrivalCity.Caption, to)
	}
	return fmt.Sprintf("%s (%s) → %s (%s)", from, seg.DepartureAirport.UID, to, seg.ArrivalAirport.UID)
}

func buildFlightItems(flights []model.Flight) []list.Item {
	items := make([]list.Item, 0, len(flights))
	for _, flight := range flights {
		items = append(items, flightItem{flight: flight})
	}
	return items
}

type sortItem struct {
	mode     model.SortMode
	label    string
	selected bool
}

func (s sortItem) Title() string {
	if s.selected {
		return fmt.Sprintf("(•) %s", s.label)
	}
	return fmt.Sprintf("( ) %s", s.label)
}

func (s sortItem) Description() string { return "" }
func (s sortItem) FilterValue() string { return strings.ToLower(s.label) }

func buildSortItems(current model.SortMode) []list.Item {
	modes := []struct {
		mode  model.SortMode
		label string
	}{
		{model.SortPriceAscending, "price, cheapest first"},
		{model.SortPriceDescending, "price, most expensive first"},
		{model.SortDuration, "travel time"},
		{model.SortNone, "dataset order"},
	}

	items := make([]list.Item, 0, len(modes))
	for _, entry := range modes {
		items = append(items, sortItem{
			mode:     entry.mode,
			label:    entry.label,
			selected: entry.mode == current,
		})
	}
	return items
}

type airlineItem struct {
	name     string
	selected bool
}

func (a airlineItem) Title() string {
	if a.selected {
		return fmt.Sprintf("[x] %s", a.name)
	}
	return fmt.Sprintf("[ ] %s", a.name)
}

func (a airlineItem) Description() string { return "" }
func (a airlineItem) FilterValue() string { return strings.ToLower(a.name) }

func buildAirlineItems(names []string, selected map[string]bool) []list.Item {
	items := make([]list.Item, 0, len(names))
	for _, name := range names {
		items = append(items, airlineItem{name: name, selected: selected[name]})
	}
	return items
}

type stopItem struct {
	category model.StopCategory
	label    string
	selected bool
}

func (s stopItem) Title() string {
	if s.selected {
		return fmt.Sprintf("[x] %s", s.label)
	}
	return fmt.Sprintf("[ ] %s", s.label)
}

func (s stopItem) Description() string { return "" }
func (s stopItem) FilterValue() string { return strings.ToLower(s.label) }

func buildStopItems(selected map[model.StopCategory]bool) []list.Item {
	return []list.Item{
		stopItem{category: model.StopsOne, label: "1 connection", selected: selected[model.StopsOne]},
		stopItem{category: model.StopsDirect, label: "no connections", selected: selected[model.StopsDirect]},
	}
}
