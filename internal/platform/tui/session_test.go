package tui

import (
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/colorquiz/internal/core"
	_ "github.com/vovakirdan/colorquiz/internal/modes"
	"github.com/vovakirdan/colorquiz/internal/palette"
	"github.com/vovakirdan/colorquiz/internal/quiz"
	"github.com/vovakirdan/colorquiz/internal/taxonomy"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func send(t *testing.T, m SessionModel, keys ...string) SessionModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(SessionModel)
		require.True(t, ok)
	}
	return m
}

func newTestSession(opts SessionOptions) SessionModel {
	if opts.Book == nil {
		opts.Book = palette.Default()
	}
	opts.Runtime = core.RuntimeConfig{ScreenW: 100, ScreenH: 40, Seed: 1}
	opts.Quiz.Rand = rand.New(rand.NewSource(7))
	return NewSessionModel(opts)
}

// answerCorrectly moves the grid cursor onto the correct choice and submits.
func answerCorrectly(t *testing.T, m SessionModel) SessionModel {
	t.Helper()
	s := m.Session()
	cur, ok := s.Current()
	require.True(t, ok)
	idx := slices.Index(s.Choices(), cur.Value(s.Mode().Answer()))
	require.GreaterOrEqual(t, idx, 0)

	for range idx / gridColumns {
		m = send(t, m, "down")
	}
	for range idx % gridColumns {
		m = send(t, m, "right")
	}
	return send(t, m, "enter")
}

func TestSessionDirectPlaythrough(t *testing.T) {
	m := newTestSession(SessionOptions{Grade: palette.Grade3, Mode: "color-to-name", Direct: true})
	require.Equal(t, screenQuiz, m.screen)

	for range 3 {
		m = answerCorrectly(t, m)
		assert.Equal(t, quiz.StateRevealed, m.Session().State())
		assert.Contains(t, m.View(), "Correct!")
		m = send(t, m, "enter")
	}

	require.Equal(t, screenResult, m.screen)
	assert.Equal(t, quiz.Result{Score: 3, Total: 3, Percentage: 100, Stars: 5}, m.result.Result())
	assert.Contains(t, m.View(), "★★★★★")
	assert.Contains(t, m.View(), "100%")

	m = send(t, m, "r")
	require.Equal(t, screenQuiz, m.screen)
	assert.Equal(t, 0, m.Session().Index())
	assert.Equal(t, 0, m.Session().Score())

	m = send(t, m, "b")
	assert.Equal(t, screenMenu, m.screen)
	assert.Equal(t, quiz.StateIdle, m.Session().State())
}

func TestSessionWrongAnswer(t *testing.T) {
	m := newTestSession(SessionOptions{Grade: palette.Grade3, Mode: "color-to-name", Direct: true})

	s := m.Session()
	cur, _ := s.Current()
	idx := slices.Index(s.Choices(), cur.Name)
	if idx == 0 {
		m = send(t, m, "right")
	}
	m = send(t, m, "enter")

	assert.Equal(t, 0, m.Session().Score())
	view := m.View()
	assert.Contains(t, view, "Incorrect")
	assert.Contains(t, view, cur.Name)
	assert.Contains(t, view, cur.Munsell)
}

func TestSessionMenuSelection(t *testing.T) {
	m := newTestSession(SessionOptions{Grade: palette.Grade1, Mode: "color-to-name"})
	require.Equal(t, screenMenu, m.screen)
	assert.Contains(t, m.View(), "C O L O R")

	m = send(t, m, "right", "right", "down", "enter")
	require.Equal(t, screenQuiz, m.screen)
	assert.Equal(t, palette.Grade3, m.Session().Grade())
	assert.Equal(t, "description-to-name", m.Session().Mode().ID())
	assert.Equal(t, 3, m.Session().Total())
}

func TestSessionStartErrorStaysOnMenu(t *testing.T) {
	m := newTestSession(SessionOptions{
		Grade:  palette.Grade3,
		Mode:   "description-to-name",
		Direct: true,
		Quiz:   quiz.Options{DescriptionOrigin: taxonomy.OriginForeign},
	})

	assert.Equal(t, screenMenu, m.screen)
	assert.Contains(t, m.View(), "empty palette")

	m = send(t, m, "up", "enter")
	assert.Equal(t, screenQuiz, m.screen)
	assert.NotContains(t, m.menu.View(), "empty palette")
}

func TestSessionPaletteReentersQuiz(t *testing.T) {
	m := newTestSession(SessionOptions{Grade: palette.Grade3, Mode: "color-to-name", Direct: true})
	m = answerCorrectly(t, m)
	m = send(t, m, "n")
	require.Equal(t, 1, m.Session().Index())
	require.Equal(t, 1, m.Session().Score())

	m = send(t, m, "p")
	require.Equal(t, screenPalette, m.screen)
	assert.Contains(t, m.View(), "PALETTE")

	m = send(t, m, "esc")
	require.Equal(t, screenQuiz, m.screen)
	assert.Equal(t, quiz.StateAnswering, m.Session().State())
	assert.Equal(t, 0, m.Session().Index())
	assert.Equal(t, 0, m.Session().Score())
}

func TestSessionPaletteFromMenu(t *testing.T) {
	m := newTestSession(SessionOptions{Grade: palette.Grade2, Mode: "color-to-name"})
	m = send(t, m, "p")
	require.Equal(t, screenPalette, m.screen)
	assert.Equal(t, palette.Grade2, m.palette.Grade())

	m = send(t, m, "b")
	assert.Equal(t, screenMenu, m.screen)
	assert.Equal(t, quiz.StateIdle, m.Session().State())
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(SessionOptions{Grade: palette.Grade3, Mode: "name-to-pccs", Direct: true})
	next, cmd := m.Update(keyMsg("q"))
	assert.NotNil(t, cmd)
	assert.Empty(t, next.View())
}

func TestSessionResize(t *testing.T) {
	m := newTestSession(SessionOptions{Grade: palette.Grade3, Mode: "color-to-name", Direct: true})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(SessionModel)

	assert.Equal(t, 60, m.config.ScreenW)
	assert.Equal(t, 60, m.quizView.width)
	assert.Equal(t, 60, m.menu.Config().ScreenW)
}

func TestQuizGridNavigation(t *testing.T) {
	s := quiz.NewSession(palette.Default(), quiz.Options{Rand: rand.New(rand.NewSource(3))})
	require.NoError(t, s.Start(palette.Grade1, "color-to-name"))
	n := len(s.Choices())
	require.Greater(t, n, 3)

	m := NewQuizModel(s, 100, 40)
	step := func(k string) {
		next, _ := m.Update(keyMsg(k))
		m = next.(QuizModel)
	}

	step("left")
	assert.Equal(t, 0, m.cursor)
	step("up")
	assert.Equal(t, 0, m.cursor)
	step("right")
	step("right")
	step("right")
	assert.Equal(t, 2, m.cursor, "stays in the row")
	step("down")
	assert.Equal(t, 5, m.cursor)
	step("up")
	assert.Equal(t, 2, m.cursor)
}

func TestPaletteBrowser(t *testing.T) {
	m := NewPaletteModel(palette.Default(), palette.Grade3, 100, 40)
	cur, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "桜色", cur.Name)
	assert.Contains(t, m.View(), "Grade 3")

	step := func(k string) {
		next, _ := m.Update(keyMsg(k))
		m = next.(PaletteModel)
	}

	step("tab")
	assert.Equal(t, palette.Grade1, m.Grade())
	cur, _ = m.Current()
	assert.Equal(t, "黄色", cur.Name)

	step("down")
	cur, _ = m.Current()
	assert.Equal(t, "紫", cur.Name)

	step("left")
	assert.Equal(t, palette.Grade3, m.Grade())

	step("esc")
	assert.True(t, m.IsGoingBack())
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key  string
		want MenuAction
	}{
		{"q", MenuActionQuit},
		{"k", MenuActionUp},
		{"down", MenuActionDown},
		{"left", MenuActionLeft},
		{"l", MenuActionRight},
		{"enter", MenuActionSelect},
		{"esc", MenuActionBack},
		{"r", MenuActionRestart},
		{"p", MenuActionPalette},
		{"z", MenuActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, km.MapKeyToMenuAction(keyMsg(tt.key)))
		})
	}
}

func TestResultModel(t *testing.T) {
	m := NewResultModel(quiz.NewResult(2, 3), "3級", 80)
	view := m.View()
	assert.Contains(t, view, "★★★☆☆")
	assert.Contains(t, view, "2 / 3 correct")
	assert.Contains(t, view, "67%")

	next, _ := m.Update(keyMsg("r"))
	assert.True(t, next.(ResultModel).WantsReplay())
	next, _ = m.Update(keyMsg("esc"))
	assert.True(t, next.(ResultModel).BackToMenu())
}

func TestStarString(t *testing.T) {
	assert.Equal(t, "☆☆☆☆☆", StarString(0))
	assert.Equal(t, "★☆☆☆☆", StarString(1))
	assert.Equal(t, "★★★★★", StarString(9))
	assert.Equal(t, "☆☆☆☆☆", StarString(-2))
}

func TestSSHSessionModel(t *testing.T) {
	srv := &SSHServer{config: DefaultSSHServerConfig(), logger: log.New(io.Discard)}
	m := srv.newSessionModel("alice", 120, 30)

	assert.Equal(t, screenMenu, m.screen)
	assert.Equal(t, 120, m.config.ScreenW)
	assert.True(t, strings.Contains(m.View(), "Mode"))

	other := srv.newSessionModel("bob", 80, 24)
	assert.NotSame(t, m.Session(), other.Session())
}

func TestNewSSHServerCreatesHostKey(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_ed25519")
	cfg.Logger = log.New(io.Discard)

	srv, err := NewSSHServer(cfg)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", srv.Addr())
	assert.Zero(t, srv.Active())

	_, err = os.Stat(cfg.HostKeyPath)
	assert.NoError(t, err)
}
