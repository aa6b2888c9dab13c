// Package tui renders the dashboard in the terminal. It reads through
// the same store and view builders as the HTTP server, so both front
// ends always agree on the numbers.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"device-rental-backend/internal/metrics"
	"device-rental-backend/internal/model"
	"device-rental-backend/internal/store"
	"device-rental-backend/internal/view"
)

// Palette, shared with the web page.
const (
	colorInk    = "#2D6A8F"
	colorGreen  = "#4D9A6A"
	colorAmber  = "#D9A441"
	colorRed    = "#B05555"
	colorGray   = "#6B7280"
	colorLight  = "#E5E7EB"
	colorBright = "#F8F8F2"
)

const (
	tabOverview = iota
	tabFinance
	tabInventory
	tabLeases
)

var tabNames = [...]string{"Overview", "Finance", "Inventory", "Leases"}

type styles struct {
	tab       lipgloss.Style
	tabActive lipgloss.Style
	card      lipgloss.Style
	cardLabel lipgloss.Style
	cardValue lipgloss.Style
	heading   lipgloss.Style
	dim       lipgloss.Style
	good      lipgloss.Style
	warn      lipgloss.Style
	bad       lipgloss.Style
	banner    lipgloss.Style
	app       lipgloss.Style
}

func newStyles() styles {
	return styles{
		tab:       lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray)).Padding(0, 2),
		tabActive: lipgloss.NewStyle().Foreground(lipgloss.Color(colorBright)).Background(lipgloss.Color(colorInk)).Bold(true).Padding(0, 2),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorInk)).
			Padding(0, 2).
			MarginRight(1),
		cardLabel: lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray)),
		cardValue: lipgloss.NewStyle().Foreground(lipgloss.Color(colorBright)).Bold(true),
		heading:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorInk)).Bold(true),
		dim:       lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray)),
		good:      lipgloss.NewStyle().Foreground(lipgloss.Color(colorGreen)),
		warn:      lipgloss.NewStyle().Foreground(lipgloss.Color(colorAmber)),
		bad:       lipgloss.NewStyle().Foreground(lipgloss.Color(colorRed)).Bold(true),
		banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorGreen)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorGreen)).
			Padding(0, 1),
		app: lipgloss.NewStyle().Padding(1, 2),
	}
}

type keyMap struct {
	NextTab   key.Binding
	PrevTab   key.Binding
	Printers  key.Binding
	Computers key.Binding
	Status    key.Binding
	Apply     key.Binding
	Refresh   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		NextTab:   key.NewBinding(key.WithKeys("right", "tab"), key.WithHelp("→/tab", "next tab")),
		PrevTab:   key.NewBinding(key.WithKeys("left", "shift+tab"), key.WithHelp("←", "prev tab")),
		Printers:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "toggle printers")),
		Computers: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "toggle computers")),
		Status:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "cycle status")),
		Apply:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "request change")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Status, k.Apply, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Refresh},
		{k.Printers, k.Computers},
		{k.Status, k.Apply},
		{k.Help, k.Quit},
	}
}

type dashboard struct {
	store store.Store
	now   func() time.Time

	tab       int
	rows      []metrics.Derived
	printers  bool
	computers bool
	statusIdx int

	table  table.Model
	keys   keyMap
	help   help.Model
	styles styles

	receipt   string
	updateErr error
	width     int
}

func newInventoryTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Category", Width: 9},
		{Title: "Model", Width: 18},
		{Title: "Status", Width: 12},
		{Title: "Client", Width: 10},
		{Title: "Income", Width: 10},
		{Title: "Cost", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(6),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(colorInk)).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(colorBright)).
		Background(lipgloss.Color(colorInk)).
		Bold(false)
	t.SetStyles(s)
	return t
}

func initialDashboard(s store.Store, now func() time.Time) *dashboard {
	d := &dashboard{
		store:     s,
		now:       now,
		printers:  true,
		computers: true,
		table:     newInventoryTable(),
		keys:      newKeyMap(),
		help:      help.New(),
		styles:    newStyles(),
	}
	d.refresh()
	return d
}

func (*dashboard) Init() tea.Cmd {
	return nil
}

func (d *dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width = msg.Width
		d.help.Width = msg.Width
		return d, nil
	case tea.KeyMsg:
		return d.handleKey(msg)
	}
	return d, nil
}

func (d *dashboard) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, d.keys.Quit):
		return d, tea.Quit
	case key.Matches(msg, d.keys.NextTab):
		d.tab = (d.tab + 1) % len(tabNames)
		return d, nil
	case key.Matches(msg, d.keys.PrevTab):
		d.tab = (d.tab + len(tabNames) - 1) % len(tabNames)
		return d, nil
	case key.Matches(msg, d.keys.Refresh):
		d.refresh()
		return d, nil
	case key.Matches(msg, d.keys.Help):
		d.help.ShowAll = !d.help.ShowAll
		return d, nil
	}

	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '4' {
		d.tab = int(s[0] - '1')
		return d, nil
	}

	if d.tab != tabInventory {
		return d, nil
	}

	switch {
	case key.Matches(msg, d.keys.Printers):
		d.printers = !d.printers
		d.rebuildTable()
		return d, nil
	case key.Matches(msg, d.keys.Computers):
		d.computers = !d.computers
		d.rebuildTable()
		return d, nil
	case key.Matches(msg, d.keys.Status):
		d.statusIdx = (d.statusIdx + 1) % len(model.Statuses())
		return d, nil
	case key.Matches(msg, d.keys.Apply):
		d.applyStatus()
		return d, nil
	}

	var cmd tea.Cmd
	d.table, cmd = d.table.Update(msg)
	return d, cmd
}

// selection maps the two toggles onto the builder's category filter.
// Both toggles on means no filter; both off is an explicitly empty
// selection, which matches nothing.
func (d *dashboard) selection() []model.Category {
	cats := make([]model.Category, 0, len(model.Categories()))
	if d.printers {
		cats = append(cats, model.CategoryPrinter)
	}
	if d.computers {
		cats = append(cats, model.CategoryComputer)
	}
	if len(cats) == len(model.Categories()) {
		return nil
	}
	return cats
}

func (d *dashboard) refresh() {
	d.rows = metrics.Derive(d.store.Fleet(), d.now())
	d.rebuildTable()
}

func (d *dashboard) rebuildTable() {
	inv := view.BuildInventory(d.rows, d.selection())
	rows := make([]table.Row, len(inv.Rows))
	for i, r := range inv.Rows {
		rows[i] = table.Row{
			r.DeviceID,
			r.Category.Label(),
			r.Model,
			r.Status.Label(),
			r.Client,
			money(r.LeaseIncome),
			money(r.MaintenanceCost),
		}
	}
	d.table.SetRows(rows)
	d.table.SetCursor(0)
}

func (d *dashboard) pendingStatus() model.Status {
	return model.Statuses()[d.statusIdx]
}

func (d *dashboard) applyStatus() {
	if len(d.table.Rows()) == 0 {
		return
	}
	row := d.table.SelectedRow()
	if row == nil {
		return
	}

	receipt, err := view.BuildStatusUpdate(d.rows, row[0], string(d.pendingStatus()), d.now())
	if err != nil {
		d.updateErr = err
		d.receipt = ""
		return
	}
	d.updateErr = nil
	d.receipt = receipt.Message + " (receipt " + receipt.ReceiptID + ")"
}

// Run starts the interactive dashboard and blocks until the user quits.
func Run(s store.Store) error {
	p := tea.NewProgram(initialDashboard(s, time.Now), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
