package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/colorquiz/internal/palette"
	"github.com/vovakirdan/colorquiz/internal/taxonomy"
)

// Palette browser layout constants
const (
	minWidthForDetail = 90 // Minimum width to show the detail pane beside the table
	detailWidth       = 30 // Width of the detail pane
)

// PaletteKeyMap defines the key bindings for the palette browser.
type PaletteKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextGrade key.Binding
	PrevGrade key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PaletteKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGrade, k.PrevGrade, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k PaletteKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGrade, k.PrevGrade},
		{k.Back, k.Quit},
	}
}

// DefaultPaletteKeyMap returns default key bindings.
func DefaultPaletteKeyMap() PaletteKeyMap {
	return PaletteKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NextGrade: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next grade"),
		),
		PrevGrade: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev grade"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "p"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PaletteModel is the Bubble Tea model for browsing the graded palettes.
type PaletteModel struct {
	book        *palette.Book
	grades      []palette.Grade
	gradeCursor int
	entries     []taxonomy.Entry
	table       table.Model
	help        help.Model
	keys        PaletteKeyMap
	theme       Theme
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showDetail  bool // Whether to show the detail pane
}

// NewPaletteModel creates a palette browser starting at the given grade.
func NewPaletteModel(book *palette.Book, grade palette.Grade, width, height int) PaletteModel {
	h := help.New()
	h.Width = width

	m := PaletteModel{
		book:       book,
		grades:     palette.Grades(),
		keys:       DefaultPaletteKeyMap(),
		help:       h,
		theme:      DefaultTheme(),
		width:      width,
		height:     height,
		showDetail: width >= minWidthForDetail,
	}
	for i, g := range m.grades {
		if g == grade {
			m.gradeCursor = i
		}
	}

	m.table = m.createTable()
	m.loadEntries()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *PaletteModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Name", Width: 14},
		{Title: "PCCS", Width: 7},
		{Title: "Munsell", Width: 12},
		{Title: "Hex", Width: 8},
		{Title: "Origin", Width: 8},
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadEntries loads the entries of the current grade into the table.
func (m *PaletteModel) loadEntries() {
	entries, err := m.book.Entries(m.grades[m.gradeCursor])
	if err != nil {
		entries = nil
	}
	m.entries = entries

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			e.Name,
			e.PCCS,
			e.Munsell,
			e.Hex,
			string(e.Origin),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the palette browser.
func (m PaletteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the palette browser.
func (m PaletteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextGrade):
			m.gradeCursor = (m.gradeCursor + 1) % len(m.grades)
			m.loadEntries()
			return m, nil

		case key.Matches(msg, m.keys.PrevGrade):
			m.gradeCursor--
			if m.gradeCursor < 0 {
				m.gradeCursor = len(m.grades) - 1
			}
			m.loadEntries()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showDetail = m.width >= minWidthForDetail
		m.table = m.createTable()
		m.loadEntries()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the palette browser.
func (m PaletteModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	g := m.grades[m.gradeCursor]
	title := fmt.Sprintf("PALETTE - %s (%d colors)", g.Title(), len(m.entries))
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render(title), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableView := tableStyle.Render(m.renderTableContent())

	if m.showDetail {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableView, "  ", m.renderDetail()))
	} else {
		b.WriteString(centerBlock(tableView, m.width))
		b.WriteString("\n")
		b.WriteString(centerBlock(m.renderDetail(), m.width))
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m PaletteModel) renderTableContent() string {
	if len(m.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("This grade has no colors.")
	}
	return m.table.View()
}

// renderDetail shows the swatch and description of the highlighted entry.
func (m PaletteModel) renderDetail() string {
	e, ok := m.Current()
	if !ok {
		return ""
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(detailWidth).
		Padding(0, 1)

	body := lipgloss.JoinVertical(lipgloss.Left,
		Swatch(e.Hex, detailWidth-2, 3, e.Name),
		"",
		e.DisplayDescription(),
	)
	return style.Render(body)
}

// Current returns the highlighted entry.
func (m PaletteModel) Current() (taxonomy.Entry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.entries) {
		return taxonomy.Entry{}, false
	}
	return m.entries[i], true
}

// Grade returns the grade being shown.
func (m PaletteModel) Grade() palette.Grade {
	return m.grades[m.gradeCursor]
}

// IsGoingBack returns true if user wants to go back.
func (m PaletteModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m PaletteModel) IsQuitting() bool {
	return m.quitting
}

// RunPalette runs the palette browser on its own.
func RunPalette(book *palette.Book, grade palette.Grade, width, height int) error {
	model := paletteProgram{NewPaletteModel(book, grade, width, height)}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// paletteProgram quits the standalone browser on back as well as quit.
type paletteProgram struct {
	PaletteModel
}

func (p paletteProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := p.PaletteModel.Update(msg)
	if pm, ok := next.(PaletteModel); ok {
		p.PaletteModel = pm
	}
	if p.IsGoingBack() {
		return p, tea.Quit
	}
	return p, cmd
}
