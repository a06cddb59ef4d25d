package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colorquiz/internal/core"
	"github.com/vovakirdan/colorquiz/internal/palette"
	"github.com/vovakirdan/colorquiz/internal/registry"
)

// MenuItem represents a selectable quiz mode in the menu.
type MenuItem struct {
	ModeID string
	Title  string
}

// MenuSelection is what the user picked.
type MenuSelection struct {
	Grade  palette.Grade
	ModeID string
}

// MenuModel is the Bubble Tea model for grade and mode selection.
type MenuModel struct {
	items       []MenuItem
	grades      []palette.Grade
	book        *palette.Book
	cursor      int
	gradeCursor int
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	help        help.Model
	theme       Theme
	err         string
	quitting    bool
	selected    *MenuSelection // Set when user starts a quiz
	openPalette bool           // True if user asked for the palette browser
}

// NewMenuModel creates a new menu model with the given grade and mode
// preselected.
func NewMenuModel(book *palette.Book, cfg core.RuntimeConfig, grade palette.Grade, modeID string) MenuModel {
	modes := registry.List()
	items := make([]MenuItem, 0, len(modes))
	cursor := 0
	for i, md := range modes {
		items = append(items, MenuItem{ModeID: md.ID, Title: md.Title})
		if md.ID == modeID {
			cursor = i
		}
	}

	grades := palette.Grades()
	gradeCursor := 0
	for i, g := range grades {
		if g == grade {
			gradeCursor = i
		}
	}

	return MenuModel{
		items:       items,
		grades:      grades,
		book:        book,
		cursor:      cursor,
		gradeCursor: gradeCursor,
		config:      cfg,
		keyMapper:   NewKeyMapper(),
		help:        help.New(),
		theme:       DefaultTheme(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if m.gradeCursor > 0 {
			m.gradeCursor--
		}

	case MenuActionRight:
		if m.gradeCursor < len(m.grades)-1 {
			m.gradeCursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			m.selected = &MenuSelection{
				Grade:  m.grades[m.gradeCursor],
				ModeID: m.items[m.cursor].ModeID,
			}
			m.err = ""
		}

	case MenuActionPalette:
		m.openPalette = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	w := m.config.ScreenW
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render("  C O L O R   Q U I Z  "), w))
	b.WriteString("\n\n")

	// Grade tabs
	b.WriteString(centerText(m.theme.Subtitle.Render("Grade"), w))
	b.WriteString("\n")
	tabs := make([]string, len(m.grades))
	for i, g := range m.grades {
		label := fmt.Sprintf("%s (%d)", g.Label(), m.book.Len(g))
		if i == m.gradeCursor {
			tabs[i] = m.theme.GradeActive.Render(label)
		} else {
			tabs[i] = m.theme.GradeNormal.Render(label)
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), w))
	b.WriteString("\n\n")

	// Mode list
	b.WriteString(centerText(m.theme.Subtitle.Render("Mode"), w))
	b.WriteString("\n")
	for i, item := range m.items {
		line := "  " + item.Title
		style := m.theme.MenuItemNormal
		if i == m.cursor {
			line = "> " + item.Title
			style = m.theme.MenuItemActive
		}
		b.WriteString(centerText(style.Render(line), w))
		b.WriteString("\n")
	}

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(centerText(m.theme.Error.Render(m.err), w))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	k := m.keyMapper.Keys()
	b.WriteString(centerText(m.theme.Help.Render(m.help.View(bindings{k.Up, k.Down, k.Left, k.Right, k.Select, k.Palette, k.Quit})), w))
	b.WriteString("\n")

	return b.String()
}

// SetError shows a message under the mode list, e.g. when a quiz could
// not start.
func (m *MenuModel) SetError(err error) {
	if err == nil {
		m.err = ""
		return
	}
	m.err = err.Error()
}

// Selected returns the selection, or nil if none was made.
func (m MenuModel) Selected() *MenuSelection {
	return m.selected
}

// ClearSelection forgets the last selection so the menu can be reused.
func (m *MenuModel) ClearSelection() {
	m.selected = nil
	m.openPalette = false
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsPalette returns true if user requested the palette browser.
func (m MenuModel) WantsPalette() bool {
	return m.openPalette
}

// Grade returns the highlighted grade.
func (m MenuModel) Grade() palette.Grade {
	return m.grades[m.gradeCursor]
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
