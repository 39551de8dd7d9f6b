package service

import "flightdeals-cli/model"

const (
	initialPageSize = 2
	pageSizeStep    = 2
)

// Session owns the filter parameters and page size for one results view.
// Every mutator returns the freshly derived page, so the caller always
// renders the current state. A Session is not safe for concurrent use;
// it lives inside a single UI loop.
type Session struct {
	flights  []model.Flight
	best     model.BestPrices
	params   model.FilterParams
	pageSize int
}

func NewSession(flights []model.Flight, best model.BestPrices) *Session {
	return &Session{
		flights:  flights,
		best:     best,
		params:   model.DefaultFilterParams(),
		pageSize: initialPageSize,
	}
}

// Page derives the current visible page.
func (s *Session) Page() []model.Flight {
	return Derive(s.flights, s.params, s.best, s.pageSize)
}

func (s *Session) SetSortMode(mode model.SortMode) []model.Flight {
	s.params.Sort = mode
	return s.Page()
}

func (s *Session) SetPriceRange(rng model.PriceRange) []model.Flight {
	s.params.PriceRange = rng
	return s.Page()
}

// ToggleAirline flips one carrier in the airline selection. An empty
// selection means no airline restriction.
func (s *Session) ToggleAirline(name string) []model.Flight {
	if s.params.Airlines[name] {
		delete(s.params.Airlines, name)
	} else {
		s.params.Airlines[name] = true
	}
	return s.Page()
}

func (s *Session) ToggleStopCategory(category model.StopCategory) []model.Flight {
	if s.params.Stops[category] {
		delete(s.params.Stops, category)
	} else {
		s.params.Stops[category] = true
	}
	return s.Page()
}

// RequestMore grows the visible page. The page size is clamped against
// the filtered set only when slicing, so growing past it is harmless.
func (s *Session) RequestMore() []model.Flight {
	s.pageSize += pageSizeStep
	return s.Page()
}

// HasMore reports whether flights beyond the current page survive the
// filters.
func (s *Session) HasMore() bool {
	return s.pageSize < s.FilteredCount()
}

// FilteredCount is the size of the filtered set before pagination.
func (s *Session) FilteredCount() int {
	return len(Filter(s.flights, s.params, s.best))
}

func (s *Session) Params() model.FilterParams {
	return s.params
}

// Airlines lists the unique carrier captions of the loaded dataset.
func (s *Session) Airlines() []string {
	return Airlines(s.flights)
}
