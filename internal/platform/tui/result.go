package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colorquiz/internal/quiz"
)

const maxStars = 5

// ResultModel shows the summary of a completed quiz.
type ResultModel struct {
	result     quiz.Result
	title      string
	keyMapper  *KeyMapper
	help       help.Model
	theme      Theme
	width      int
	quitting   bool
	replay     bool
	backToMenu bool
}

// NewResultModel creates a summary screen. title names the grade and mode.
func NewResultModel(result quiz.Result, title string, width int) ResultModel {
	return ResultModel{
		result:    result,
		title:     title,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		theme:     DefaultTheme(),
		width:     width,
	}
}

// Init initializes the result screen.
func (m ResultModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the result screen.
func (m ResultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionRestart, MenuActionSelect:
			m.replay = true
		case MenuActionBack:
			m.backToMenu = true
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}
	return m, nil
}

// StarString renders n filled stars out of five.
func StarString(n int) string {
	n = max(0, min(n, maxStars))
	return strings.Repeat("★", n) + strings.Repeat("☆", maxStars-n)
}

// View renders the summary.
func (m ResultModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.Title.Render("R E S U L T"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Subtitle.Render(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.Stars.Render(StarString(m.result.Stars)), m.width))
	b.WriteString("\n\n")

	score := fmt.Sprintf("%d / %d correct  (%d%%)", m.result.Score, m.result.Total, m.result.Percentage)
	b.WriteString(centerText(m.theme.Score.Render(score), m.width))
	b.WriteString("\n\n")

	k := m.keyMapper.Keys()
	b.WriteString(centerText(m.theme.Help.Render(m.help.View(bindings{k.Restart, k.Back, k.Quit})), m.width))
	b.WriteString("\n")
	return b.String()
}

// Result returns the summarized result.
func (m ResultModel) Result() quiz.Result {
	return m.result
}

// WantsReplay returns true if user asked to play the same quiz again.
func (m ResultModel) WantsReplay() bool {
	return m.replay
}

// BackToMenu returns true if user requested the mode selection.
func (m ResultModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if user requested to quit.
func (m ResultModel) IsQuitting() bool {
	return m.quitting
}
