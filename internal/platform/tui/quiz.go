package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/colorquiz/internal/quiz"
	"github.com/vovakirdan/colorquiz/internal/taxonomy"
)

// gridColumns is the number of choices per row.
const gridColumns = 3

// QuizModel renders a running quiz session and forwards answers to it.
type QuizModel struct {
	session     *quiz.Session
	keys        KeyMap
	help        help.Model
	progress    progress.Model
	theme       Theme
	cursor      int
	width       int
	height      int
	quitting    bool
	backToMenu  bool
	openPalette bool
}

// NewQuizModel creates a quiz screen over a started session.
func NewQuizModel(session *quiz.Session, width, height int) QuizModel {
	p := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	p.Width = progressWidth(width)

	h := help.New()
	h.Width = width

	return QuizModel{
		session:  session,
		keys:     DefaultKeyMap(),
		help:     h,
		progress: p,
		theme:    DefaultTheme(),
		width:    width,
		height:   height,
	}
}

func progressWidth(screenW int) int {
	w := screenW - 20
	if w > 60 {
		w = 60
	}
	if w < 10 {
		w = 10
	}
	return w
}

// Init initializes the quiz screen.
func (m QuizModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the quiz screen.
func (m QuizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = progressWidth(msg.Width)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m QuizModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		return m, nil
	case key.Matches(msg, m.keys.Palette):
		m.openPalette = true
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.session.State() {
	case quiz.StateAnswering:
		m.handleAnswering(msg)
	case quiz.StateRevealed:
		if key.Matches(msg, m.keys.Next) {
			m.session.Advance()
			m.cursor = 0
		}
	}
	return m, nil
}

// handleAnswering moves the grid cursor and submits the highlighted choice.
func (m *QuizModel) handleAnswering(msg tea.KeyMsg) {
	n := len(m.session.Choices())
	if n == 0 {
		return
	}
	switch {
	case key.Matches(msg, m.keys.Left):
		if m.cursor%gridColumns > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Right):
		if m.cursor%gridColumns < gridColumns-1 && m.cursor+1 < n {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor-gridColumns >= 0 {
			m.cursor -= gridColumns
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor+gridColumns < n {
			m.cursor += gridColumns
		}
	case key.Matches(msg, m.keys.Select):
		m.session.Submit(m.session.Choices()[m.cursor])
	}
}

// View renders the quiz screen.
func (m QuizModel) View() string {
	if m.quitting {
		return ""
	}

	v := m.session.View()
	if v.State == quiz.StateIdle {
		return centerText(m.theme.Muted.Render("No quiz running."), m.width)
	}

	var b strings.Builder

	// Header
	b.WriteString("\n")
	header := fmt.Sprintf("%s  ·  %s", v.Grade.Label(), v.ModeTitle)
	b.WriteString(centerText(m.theme.Title.Render(header), m.width))
	b.WriteString("\n")
	counter := fmt.Sprintf("%d/%d  score %d", v.Position, v.Total, v.Score)
	bar := m.progress.ViewAs(v.Progress) + "  " + m.theme.ProgressTag.Render(counter)
	b.WriteString(centerText(bar, m.width))
	b.WriteString("\n\n")

	// Question
	b.WriteString(centerText(m.theme.Question.Render(v.Question), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerBlock(m.renderPrompt(v), m.width))
	b.WriteString("\n\n")

	// Choices or feedback
	b.WriteString(centerBlock(m.renderGrid(v), m.width))
	b.WriteString("\n")
	if v.State == quiz.StateRevealed && v.Entry != nil {
		b.WriteString("\n")
		b.WriteString(centerBlock(m.renderFeedback(v), m.width))
		b.WriteString("\n")
	}

	// Help bar
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Help.Render(m.help.View(m.helpKeys(v.State))), m.width))

	return b.String()
}

func (m QuizModel) helpKeys(state quiz.State) bindings {
	if state == quiz.StateRevealed {
		return bindings{m.keys.Next, m.keys.Back, m.keys.Palette, m.keys.Quit}
	}
	return bindings{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Select, m.keys.Back, m.keys.Quit}
}

// renderPrompt draws the given: a swatch, a description or a name.
func (m QuizModel) renderPrompt(v quiz.View) string {
	switch v.Prompt {
	case taxonomy.FieldHex:
		return Swatch(v.Given, 24, 5, "")
	case taxonomy.FieldDescription:
		width := m.width - 10
		if width > 60 {
			width = 60
		}
		if width < 20 {
			width = 20
		}
		return m.theme.PromptText.Width(width).Render(v.Given)
	default:
		return m.theme.PromptName.Render(v.Given)
	}
}

// renderGrid lays out the choices in rows of gridColumns.
func (m QuizModel) renderGrid(v quiz.View) string {
	correct := ""
	if v.Entry != nil {
		correct = v.Entry.Value(v.Answer)
	}

	var rows []string
	for start := 0; start < len(v.Choices); start += gridColumns {
		end := min(start+gridColumns, len(v.Choices))
		cells := make([]string, 0, gridColumns)
		for i := start; i < end; i++ {
			cells = append(cells, m.choiceStyle(v, i, correct).Render(v.Choices[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m QuizModel) choiceStyle(v quiz.View, i int, correct string) lipgloss.Style {
	choice := v.Choices[i]
	if v.State == quiz.StateRevealed {
		switch {
		case choice == correct:
			return m.theme.ChoiceCorrect
		case choice == v.Selected:
			return m.theme.ChoiceWrong
		}
		return m.theme.ChoiceNormal
	}
	if i == m.cursor {
		return m.theme.ChoiceActive
	}
	return m.theme.ChoiceNormal
}

// renderFeedback draws the card shown after an answer.
func (m QuizModel) renderFeedback(v quiz.View) string {
	e := v.Entry

	verdict := m.theme.CardCorrect.Render("✓ Correct!")
	if !v.Correct {
		verdict = m.theme.CardWrong.Render("✗ Incorrect")
	}

	row := func(label, value string) string {
		if value == "" {
			value = "-"
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, m.theme.CardLabel.Render(label), m.theme.CardValue.Render(value))
	}

	details := lipgloss.JoinVertical(lipgloss.Left,
		verdict,
		"",
		row("Name", e.Name),
		row("PCCS", e.PCCS),
		row("Munsell", e.Munsell),
		row("Hex", e.Hex),
	)
	top := lipgloss.JoinHorizontal(lipgloss.Top, Swatch(e.Hex, 10, 4, ""), "  ", details)

	body := top
	if e.Description != "" {
		width := lipgloss.Width(top)
		if width < 30 {
			width = 30
		}
		body = lipgloss.JoinVertical(lipgloss.Left, top, "", lipgloss.NewStyle().Width(width).Render(e.Description))
	}
	return m.theme.CardBorder.Render(body)
}

// IsQuitting returns true if user requested to quit entirely.
func (m QuizModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m QuizModel) BackToMenu() bool {
	return m.backToMenu
}

// WantsPalette returns true if user requested the palette browser.
func (m QuizModel) WantsPalette() bool {
	return m.openPalette
}

// Completed reports whether the session reached its summary.
func (m QuizModel) Completed() bool {
	return m.session.State() == quiz.StateCompleted
}
