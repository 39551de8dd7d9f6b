package cmd

import (
	"fmt"
	"os"

	"flightdeals-cli/model"
	"flightdeals-cli/service"
	"flightdeals-cli/store"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var listOpts struct {
	sort     string
	min      int
	max      int
	airlines []string
	stops    []string
	limit    int
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the filtered result page as a table",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := store.LoadDataset(datasetPath())
		if err != nil {
			return err
		}

		params, err := listParams()
		if err != nil {
			return err
		}

		flights := store.Flights(result)
		page := service.Derive(flights, params, result.Result.BestPrices, listOpts.limit)
		renderTable(page)
		total := len(service.Filter(flights, params, result.Result.BestPrices))
		fmt.Printf("%d of %d flights\n", len(page), total)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listOpts.sort, "sort", "", "sort mode: ascending, descending or time")
	listCmd.Flags().IntVar(&listOpts.min, "min", 0, "minimum price, inclusive")
	listCmd.Flags().IntVar(&listOpts.max, "max", 1000000, "maximum price, inclusive")
	listCmd.Flags().StringArrayVar(&listOpts.airlines, "airline", nil, "keep only this carrier (repeatable)")
	listCmd.Flags().StringArrayVar(&listOpts.stops, "stops", nil, "connection toggle: one or none (repeatable)")
	listCmd.Flags().IntVar(&listOpts.limit, "limit", 2, "number of flights to print")
}

func listParams() (model.FilterParams, error) {
	params := model.DefaultFilterParams()

	switch listOpts.sort {
	case "", string(model.SortPriceAscending), string(model.SortPriceDescending), string(model.SortDuration):
		params.Sort = model.SortMode(listOpts.sort)
	default:
		return params, fmt.Errorf("unknown sort mode %q", listOpts.sort)
	}

	params.PriceRange = model.PriceRange{Min: listOpts.min, Max: listOpts.max}
	for _, name := range listOpts.airlines {
		params.Airlines[name] = true
	}
	for _, toggle := range listOpts.stops {
		switch toggle {
		case string(model.StopsOne), string(model.StopsDirect):
			params.Stops[model.StopCategory(toggle)] = true
		default:
			return params, fmt.Errorf("unknown stops toggle %q", toggle)
		}
	}
	return params, nil
}

func renderTable(flights []model.Flight) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Carrier", "Price", "Route", "Departure", "Duration"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMax: 32},
		{Number: 3, WidthMax: 48},
	})

	for _, flight := range flights {
		t.AppendRow(flightRow(flight))
	}
	t.Render()
}

func flightRow(flight model.Flight) table.Row {
	route, departure, duration := "", "--:--", ""
	if leg, ok := flight.Leg(0); ok {
		if seg, ok := leg.Segment(0); ok {
			route = fmt.Sprintf("%s → %s", seg.DepartureAirport.UID, seg.ArrivalAirport.UID)
			if dt, err := service.SplitDateTime(seg.DepartureDate); err == nil {
				departure = fmt.Sprintf("%s %s", dt.Date, dt.Time)
			}
			duration = service.FormatDuration(seg.TravelDuration)
		}
	}
	return table.Row{
		flight.Carrier.Caption,
		service.FormatPrice(flight.Price.Total.Amount),
		route,
		departure,
		duration,
	}
}
