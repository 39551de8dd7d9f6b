package model

// SortMode selects the ordering of the result list.
type SortMode string

const (
	SortNone            SortMode = ""
	SortPriceAscending  SortMode = "ascending"
	SortPriceDescending SortMode = "descending"
	SortDuration        SortMode = "time"
)

// StopCategory is one of the connection toggles in the filter sidebar.
type StopCategory string

const (
	StopsOne    StopCategory = "one"
	StopsDirect StopCategory = "none"
)

// PriceRange is an inclusive amount window. Min > Max is not an error;
// it simply matches nothing.
type PriceRange struct {
	Min int
	Max int
}

// FilterParams holds the session-scoped filter and sort state. The zero
// value is not useful; start from DefaultFilterParams.
type FilterParams struct {
	Sort       SortMode
	PriceRange PriceRange
	Airlines   map[string]bool
	Stops      map[StopCategory]bool
}

func DefaultFilterParams() FilterParams {
	return FilterParams{
		Sort:       SortNone,
		PriceRange: PriceRange{Min: 0, Max: 1000000},
		Airlines:   map[string]bool{},
		Stops:      map[StopCategory]bool{},
	}
}
