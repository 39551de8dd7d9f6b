package tui

import (
	"fmt"
	"strconv"
	"strings"

	"flightdeals-cli/model"
	"flightdeals-cli/service"
	"flightdeals-cli/store"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type appState int

const (
	stateLoading appState = iota
	stateResults
	stateSelectSort
	stateSelectAirlines
	stateSelectStops
	statePriceRange
	stateError
)

type appModel struct {
	datasetPath string
	session     *service.Session

	state appState
	err   error

	width  int
	height int

	resultList  list.Model
	sortList    list.Model
	airlineList list.Model
	stopList    list.Model

	minInput textinput.Model
	maxInput textinput.Model

	spinner spinner.Model
}

type datasetMsg struct {
	flights []model.Flight
	best    model.BestPrices
	err     error
}

// New builds the results browser. An empty datasetPath selects the
// embedded dataset.
func New(datasetPath string) tea.Model {
	m := appModel{
		datasetPath: datasetPath,
		state:       stateLoading,
	}

	m.resultList = newList("Flights")
	m.sortList = newList("Sort by")
	m.airlineList = newList("Airlines")
	m.stopList = newList("Connections")

	m.minInput = newPriceInput("0")
	m.maxInput = newPriceInput("1000000")

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.loadDatasetCmd(), m.spinner.Tick)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		model, cmd, handled := m.handleKey(msg)
		if handled {
			return model, cmd
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.state == stateLoading {
			return m, cmd
		}
		return m, nil

	case datasetMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.session = service.NewSession(msg.flights, msg.best)
		m.refreshResults()
		m.state = stateResults
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case stateResults:
		m.resultList, cmd = m.resultList.Update(msg)
	case stateSelectSort:
		m.sortList, cmd = m.sortList.Update(msg)
	case stateSelectAirlines:
		m.airlineList, cmd = m.airlineList.Update(msg)
	case stateSelectStops:
		m.stopList, cmd = m.stopList.Update(msg)
	case statePriceRange:
		m, cmd = m.updatePriceInputs(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	header := m.headerView()
	switch m.state {
	case stateLoading:
		return header + "\n\n" + fmt.Sprintf("%s Loading flights\n\n%s", m.spinner.View(), hint("Reading dataset..."))
	case stateResults:
		return header + "\n\n" + m.resultList.View() + "\n" + m.footerView()
	case stateSelectSort:
		return header + "\n\n" + m.sortList.View()
	case stateSelectAirlines:
		return header + "\n\n" + m.airlineList.View()
	case stateSelectStops:
		return header + "\n\n" + m.stopList.View()
	case statePriceRange:
		return header + "\n\n" + m.priceRangeView()
	case stateError:
		return header + "\n\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.err.Error()) + "\n\n" + hint("Press ctrl+c to quit.")
	default:
		return header
	}
}

func (m appModel) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("Flight Deals")

	var sub []string
	if m.session != nil {
		params := m.session.Params()
		if label := sortLabel(params.Sort); label != "" {
			sub = append(sub, "Sort: "+label)
		}
		if params.PriceRange != model.DefaultFilterParams().PriceRange {
			sub = append(sub, fmt.Sprintf("Price: %d–%d", params.PriceRange.Min, params.PriceRange.Max))
		}
		if len(params.Airlines) > 0 {
			sub = append(sub, fmt.Sprintf("Airlines: %d selected", len(params.Airlines)))
		}
		if params.Stops[model.StopsDirect] {
			sub = append(sub, "no connections")
		} else if params.Stops[model.StopsOne] {
			sub = append(sub, "1 connection")
		}
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + lipgloss.NewStyle().Faint(true).Render(meta)
	}

	hints := "ctrl+c quit"
	switch m.state {
	case stateResults:
		hints = "ctrl+c quit • s sort • a airlines • c connections • p price • m show more"
	case stateSelectSort:
		hints = "ctrl+c quit • esc back • enter select"
	case stateSelectAirlines, stateSelectStops:
		hints = "ctrl+c quit • esc back • enter/x toggle"
	case statePriceRange:
		hints = "esc cancel • tab switch field • enter apply"
	}
	return title + meta + "\n" + hint(hints)
}

func (m appModel) footerView() string {
	if m.session == nil {
		return ""
	}
	shown := len(m.resultList.Items())
	total := m.session.FilteredCount()
	if m.session.HasMore() {
		return hint(fmt.Sprintf("%d of %d flights • press m for more", shown, total))
	}
	return hint(fmt.Sprintf("%d of %d flights", shown, total))
}

func (m appModel) priceRangeView() string {
	label := lipgloss.NewStyle().Bold(true)
	return strings.Join([]string{
		label.Render("Price range"),
		"",
		"From " + m.minInput.View(),
		"To   " + m.maxInput.View(),
		"",
		hint("Inclusive bounds; empty field resets to the default."),
	}, "\n")
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit, true
	}

	if m.state == statePriceRange {
		switch msg.Type {
		case tea.KeyEsc:
			m.state = stateResults
			return m, nil, true
		case tea.KeyTab, tea.KeyShiftTab:
			m.switchPriceFocus()
			return m, nil, true
		case tea.KeyEnter:
			m.applyPriceRange()
			m.state = stateResults
			return m, nil, true
		}
		return m, nil, false
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit, true
	case "esc":
		return m.goBack()
	case "s":
		if m.state == stateResults && m.session != nil {
			m.sortList.SetItems(buildSortItems(m.session.Params().Sort))
			m.state = stateSelectSort
			return m, nil, true
		}
	case "a":
		if m.state == stateResults && m.session != nil {
			m.airlineList.SetItems(buildAirlineItems(m.session.Airlines(), m.session.Params().Airlines))
			m.state = stateSelectAirlines
			return m, nil, true
		}
	case "c":
		if m.state == stateResults && m.session != nil {
			m.stopList.SetItems(buildStopItems(m.session.Params().Stops))
			m.state = stateSelectStops
			return m, nil, true
		}
	case "p":
		if m.state == stateResults && m.session != nil {
			m.openPriceRange()
			return m, nil, true
		}
	case "m", "+":
		if m.state == stateResults && m.session != nil {
			m.session.RequestMore()
			m.refreshResults()
			return m, nil, true
		}
	case "x":
		if m.state == stateSelectAirlines {
			return m.toggleSelectedAirline()
		}
		if m.state == stateSelectStops {
			return m.toggleSelectedStop()
		}
	}

	if msg.Type == tea.KeyEnter {
		switch m.state {
		case stateSelectSort:
			item, ok := m.sortList.SelectedItem().(sortItem)
			if !ok {
				return m, nil, true
			}
			m.session.SetSortMode(item.mode)
			m.refreshResults()
			m.state = stateResults
			return m, nil, true
		case stateSelectAirlines:
			return m.toggleSelectedAirline()
		case stateSelectStops:
			return m.toggleSelectedStop()
		}
	}
	return m, nil, false
}

func (m appModel) goBack() (tea.Model, tea.Cmd, bool) {
	switch m.state {
	case stateSelectSort, stateSelectAirlines, stateSelectStops:
		m.state = stateResults
		return m, nil, true
	}
	return m, nil, false
}

func (m appModel) toggleSelectedAirline() (tea.Model, tea.Cmd, bool) {
	item, ok := m.airlineList.SelectedItem().(airlineItem)
	if !ok {
		return m, nil, true
	}
	m.session.ToggleAirline(item.name)
	index := m.airlineList.Index()
	m.airlineList.SetItems(buildAirlineItems(m.session.Airlines(), m.session.Params().Airlines))
	m.airlineList.Select(index)
	m.refreshResults()
	return m, nil, true
}

func (m appModel) toggleSelectedStop() (tea.Model, tea.Cmd, bool) {
	item, ok := m.stopList.SelectedItem().(stopItem)
	if !ok {
		return m, nil, true
	}
	m.session.ToggleStopCategory(item.category)
	index := m.stopList.Index()
	m.stopList.SetItems(buildStopItems(m.session.Params().Stops))
	m.stopList.Select(index)
	m.refreshResults()
	return m, nil, true
}

func (m *appModel) openPriceRange() {
	params := m.session.Params()
	m.minInput.SetValue(strconv.Itoa(params.PriceRange.Min))
	m.maxInput.SetValue(strconv.Itoa(params.PriceRange.Max))
	m.minInput.Focus()
	m.maxInput.Blur()
	m.state = statePriceRange
}

func (m *appModel) switchPriceFocus() {
	if m.minInput.Focused() {
		m.minInput.Blur()
		m.minInput.SetValue(strings.TrimSpace(m.minInput.Value()))
		m.maxInput.Focus()
	} else {
		m.maxInput.Blur()
		m.maxInput.SetValue(strings.TrimSpace(m.maxInput.Value()))
		m.minInput.Focus()
	}
}

// applyPriceRange parses both bounds. An empty or unparseable field
// falls back to its default bound; an inverted range is applied as-is
// and simply matches nothing.
func (m *appModel) applyPriceRange() {
	defaults := model.DefaultFilterParams().PriceRange
	rng := model.PriceRange{
		Min: parseBound(m.minInput.Value(), defaults.Min),
		Max: parseBound(m.maxInput.Value(), defaults.Max),
	}
	m.session.SetPriceRange(rng)
	m.refreshResults()
}

func parseBound(value string, fallback int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func (m appModel) updatePriceInputs(msg tea.Msg) (appModel, tea.Cmd) {
	var cmd tea.Cmd
	if m.minInput.Focused() {
		m.minInput, cmd = m.minInput.Update(msg)
	} else {
		m.maxInput, cmd = m.maxInput.Update(msg)
	}
	return m, cmd
}

func (m *appModel) refreshResults() {
	m.resultList.SetItems(buildFlightItems(m.session.Page()))
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 7
	if h < 6 {
		h = 6
	}
	m.resultList.SetSize(m.width, h)
	m.sortList.SetSize(m.width, h)
	m.airlineList.SetSize(m.width, h)
	m.stopList.SetSize(m.width, h)
}

func (m appModel) loadDatasetCmd() tea.Cmd {
	return func() tea.Msg {
		result, err := store.LoadDataset(m.datasetPath)
		if err != nil {
			return datasetMsg{err: err}
		}
		return datasetMsg{
			flights: store.Flights(result),
			best:    result.Result.BestPrices,
		}
	}
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func newPriceInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 9
	ti.Width = 12
	return ti
}

func sortLabel(mode model.SortMode) string {
	switch mode {
	case model.SortPriceAscending:
		return "price ascending"
	case model.SortPriceDescending:
		return "price descending"
	case model.SortDuration:
		return "travel time"
	default:
		return ""
	}
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}
