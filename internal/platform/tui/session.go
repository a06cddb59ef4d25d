package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colorquiz/internal/core"
	"github.com/vovakirdan/colorquiz/internal/palette"
	"github.com/vovakirdan/colorquiz/internal/quiz"
)

// screen identifies the active view of a session.
type screen int

const (
	screenMenu screen = iota
	screenQuiz
	screenResult
	screenPalette
)

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Book    *palette.Book
	Runtime core.RuntimeConfig
	Quiz    quiz.Options

	// Grade and Mode preselect the menu. With Direct set the quiz starts
	// right away and the menu is only shown afterwards.
	Grade  palette.Grade
	Mode   string
	Direct bool
}

// SessionModel manages the full flow: menu -> quiz -> result -> menu.
// It is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	book    *palette.Book
	config  core.RuntimeConfig
	session *quiz.Session

	screen      screen
	paletteFrom screen // screen to return to from the palette browser
	menu        MenuModel
	quizView    QuizModel
	result      ResultModel
	palette     PaletteModel
	quitting    bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	qopts := opts.Quiz
	if qopts.Rand == nil {
		qopts.Rand = opts.Runtime.Rand()
	}

	m := SessionModel{
		book:    opts.Book,
		config:  opts.Runtime,
		session: quiz.NewSession(opts.Book, qopts),
		screen:  screenMenu,
		menu:    NewMenuModel(opts.Book, opts.Runtime, opts.Grade, opts.Mode),
	}

	if opts.Direct {
		m.startQuiz(opts.Grade, opts.Mode)
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
		m.resizeAll(wsm)
		return m, nil
	}

	switch m.screen {
	case screenQuiz:
		return m.updateQuiz(msg)
	case screenResult:
		return m.updateResult(msg)
	case screenPalette:
		return m.updatePalette(msg)
	default:
		return m.updateMenu(msg)
	}
}

// resizeAll forwards a resize to every screen so switching keeps the layout.
func (m *SessionModel) resizeAll(msg tea.WindowSizeMsg) {
	if next, _ := m.menu.Update(msg); next != nil {
		m.menu = next.(MenuModel)
	}
	if m.quizView.session != nil {
		next, _ := m.quizView.Update(msg)
		m.quizView = next.(QuizModel)
	}
	if m.result.keyMapper != nil {
		next, _ := m.result.Update(msg)
		m.result = next.(ResultModel)
	}
	if m.palette.book != nil {
		next, _ := m.palette.Update(msg)
		m.palette = next.(PaletteModel)
	}
}

// startQuiz starts a quiz and switches to the quiz screen. Errors are
// reported on the menu.
func (m *SessionModel) startQuiz(grade palette.Grade, modeID string) {
	if err := m.session.Start(grade, modeID); err != nil {
		m.menu.SetError(err)
		m.screen = screenMenu
		return
	}
	m.menu.SetError(nil)
	m.quizView = NewQuizModel(m.session, m.config.ScreenW, m.config.ScreenH)
	m.screen = screenQuiz
}

// toMenu discards the running quiz and shows the menu.
func (m *SessionModel) toMenu() {
	m.session.Stop()
	m.menu.ClearSelection()
	m.screen = screenMenu
}

func (m *SessionModel) openPalette(from screen, grade palette.Grade) {
	m.palette = NewPaletteModel(m.book, grade, m.config.ScreenW, m.config.ScreenH)
	m.paletteFrom = from
	m.screen = screenPalette
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsPalette() {
		m.menu.ClearSelection()
		m.openPalette(screenMenu, m.menu.Grade())
		return m, nil
	}

	if sel := m.menu.Selected(); sel != nil {
		m.menu.ClearSelection()
		m.startQuiz(sel.Grade, sel.ModeID)
		return m, nil
	}

	return m, cmd
}

// updateQuiz handles updates when a quiz is running.
func (m SessionModel) updateQuiz(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.quizView.Update(msg)
	if qm, ok := next.(QuizModel); ok {
		m.quizView = qm
	}

	switch {
	case m.quizView.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.quizView.BackToMenu():
		m.toMenu()
		return m, nil

	case m.quizView.WantsPalette():
		m.openPalette(screenQuiz, m.session.Grade())
		return m, nil

	case m.quizView.Completed():
		res, _ := m.session.Result()
		m.result = NewResultModel(res, m.quizTitle(), m.config.ScreenW)
		m.screen = screenResult
		return m, nil
	}

	return m, cmd
}

// updateResult handles updates on the summary screen.
func (m SessionModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.result.Update(msg)
	if rm, ok := next.(ResultModel); ok {
		m.result = rm
	}

	switch {
	case m.result.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.result.WantsReplay():
		if err := m.session.Restart(); err != nil {
			m.menu.SetError(err)
			m.toMenu()
			return m, nil
		}
		m.quizView = NewQuizModel(m.session, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenQuiz
		return m, nil

	case m.result.BackToMenu():
		m.toMenu()
		return m, nil
	}

	return m, cmd
}

// updatePalette handles updates in the palette browser. Leaving it for a
// quiz re-enters the quiz view, which starts the quiz over.
func (m SessionModel) updatePalette(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.palette.Update(msg)
	if pm, ok := next.(PaletteModel); ok {
		m.palette = pm
	}

	if m.palette.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.palette.IsGoingBack() {
		if m.paletteFrom != screenQuiz {
			m.screen = screenMenu
			return m, nil
		}
		if err := m.session.Reenter(); err != nil {
			m.menu.SetError(err)
			m.toMenu()
			return m, nil
		}
		m.quizView = NewQuizModel(m.session, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenQuiz
		return m, nil
	}

	return m, cmd
}

func (m SessionModel) quizTitle() string {
	mode := m.session.Mode()
	if mode == nil {
		return m.session.Grade().Label()
	}
	return fmt.Sprintf("%s  ·  %s", m.session.Grade().Label(), mode.Title())
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenQuiz:
		return m.quizView.View()
	case screenResult:
		return m.result.View()
	case screenPalette:
		return m.palette.View()
	default:
		return m.menu.View()
	}
}

// Session returns the underlying quiz session.
func (m SessionModel) Session() *quiz.Session {
	return m.session
}

// RunSession runs a local session until the user quits.
func RunSession(opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
