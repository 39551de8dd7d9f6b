package tui

import (
	"strings"
	"testing"

	"flightdeals-cli/model"
	"flightdeals-cli/service"
	tea "github.com/charmbracelet/bubbletea"
)

func testFlight(name, uid, amount string) model.Flight {
	return model.Flight{
		Carrier: model.Carrier{UID: uid, Caption: name, AirlineCode: uid},
		Price:   model.Price{Total: model.Money{Amount: amount, CurrencyCode: "RUB"}},
		Legs: []model.Leg{
			{Duration: 120, Segments: []model.Segment{{
				TravelDuration:   120,
				DepartureAirport: model.Ref{UID: "SVO", Caption: "Шереметьево"},
				ArrivalAirport:   model.Ref{UID: "LHR", Caption: "Хитроу"},
				DepartureDate:    "2023-08-18T11:35:00",
				ArrivalDate:      "2023-08-18T14:45:00",
			}}},
		},
	}
}

func newResultsModel(flights []model.Flight) appModel {
	m := New("").(appModel)
	m.session = service.NewSession(flights, model.BestPrices{})
	m.state = stateResults
	m.refreshResults()
	return m
}

func TestHandleKey_MoreGrowsPage(t *testing.T) {
	m := newResultsModel([]model.Flight{
		testFlight("A", "A", "100"),
		testFlight("B", "B", "200"),
		testFlight("C", "C", "300"),
		testFlight("D", "D", "400"),
		testFlight("E", "E", "500"),
	})
	if got := len(m.resultList.Items()); got != 2 {
		t.Fatalf("expected initial page of 2, got %d", got)
	}

	next, _, handled := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	if !handled {
		t.Fatal("expected the more key to be handled")
	}
	grown := next.(appModel)
	if got := len(grown.resultList.Items()); got != 4 {
		t.Fatalf("expected 4 flights after more, got %d", got)
	}
}

func TestHandleKey_OpensSortPicker(t *testing.T) {
	m := newResultsModel([]model.Flight{testFlight("A", "A", "100")})

	next, _, handled := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	if !handled {
		t.Fatal("expected the sort key to be handled")
	}
	opened := next.(appModel)
	if opened.state != stateSelectSort {
		t.Fatalf("expected sort picker state, got %d", opened.state)
	}
	if got := len(opened.sortList.Items()); got != 4 {
		t.Fatalf("expected 4 sort modes, got %d", got)
	}
}

func TestHandleKey_ToggleAirline(t *testing.T) {
	m := newResultsModel([]model.Flight{
		testFlight("Carrier A", "A", "100"),
		testFlight("Carrier B", "B", "200"),
	})
	m.airlineList.SetItems(buildAirlineItems(m.session.Airlines(), m.session.Params().Airlines))
	m.state = stateSelectAirlines
	m.airlineList.Select(0)

	next, _, handled := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if !handled {
		t.Fatal("expected enter to be handled")
	}
	toggled := next.(appModel)
	if !toggled.session.Params().Airlines["Carrier A"] {
		t.Fatal("expected Carrier A to be selected")
	}
	item, ok := toggled.airlineList.Items()[0].(airlineItem)
	if !ok || !item.selected {
		t.Fatalf("expected the list row to show the selection, got %+v", item)
	}
	if got := len(toggled.resultList.Items()); got != 1 {
		t.Fatalf("expected the results to narrow to 1 flight, got %d", got)
	}
}

func TestHandleKey_EscReturnsToResults(t *testing.T) {
	m := newResultsModel([]model.Flight{testFlight("A", "A", "100")})
	m.state = stateSelectStops

	next, _, handled := m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if !handled {
		t.Fatal("expected esc to be handled")
	}
	if back := next.(appModel); back.state != stateResults {
		t.Fatalf("expected results state, got %d", back.state)
	}
}

func TestApplyPriceRange(t *testing.T) {
	m := newResultsModel([]model.Flight{
		testFlight("A", "A", "100"),
		testFlight("B", "B", "500"),
	})
	m.minInput.SetValue("200")
	m.maxInput.SetValue("900")
	m.applyPriceRange()

	params := m.session.Params()
	if params.PriceRange.Min != 200 || params.PriceRange.Max != 900 {
		t.Fatalf("unexpected range: %+v", params.PriceRange)
	}
	if got := len(m.resultList.Items()); got != 1 {
		t.Fatalf("expected 1 flight in range, got %d", got)
	}
}

func TestParseBound(t *testing.T) {
	if got := parseBound(" 250 ", 0); got != 250 {
		t.Fatalf("expected 250, got %d", got)
	}
	if got := parseBound("", 1000000); got != 1000000 {
		t.Fatalf("expected fallback for empty input, got %d", got)
	}
	if got := parseBound("abc", 0); got != 0 {
		t.Fatalf("expected fallback for junk input, got %d", got)
	}
}

func TestBuildSortItems_MarksCurrentMode(t *testing.T) {
	items := buildSortItems(model.SortDuration)
	var marked int
	for _, entry := range items {
		item := entry.(sortItem)
		if item.selected {
			marked++
			if item.mode != model.SortDuration {
				t.Fatalf("wrong mode marked: %q", item.mode)
			}
			if !strings.HasPrefix(item.Title(), "(•)") {
				t.Fatalf("expected radio marker, got %q", item.Title())
			}
		}
	}
	if marked != 1 {
		t.Fatalf("expected exactly one marked mode, got %d", marked)
	}
}

func TestFlightItem_Labels(t *testing.T) {
	item := flightItem{flight: testFlight("Аэрофлот", "SU", "21049.00")}
	if got := item.Title(); got != "Аэрофлот • 21 049 ₽" {
		t.Fatalf("unexpected title: %q", got)
	}
	desc := item.Description()
	if !strings.Contains(desc, "SVO") || !strings.Contains(desc, "LHR") {
		t.Fatalf("expected the route in the description, got %q", desc)
	}
	if !strings.Contains(desc, "2 ч 0 мин") {
		t.Fatalf("expected the formatted duration, got %q", desc)
	}
	if !strings.Contains(desc, "one-way") {
		t.Fatalf("expected the one-way marker for a single leg, got %q", desc)
	}
}
