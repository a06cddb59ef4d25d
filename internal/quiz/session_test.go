package quiz

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/vovakirdan/colorquiz/internal/modes"
	"github.com/vovakirdan/colorquiz/internal/palette"
	"github.com/vovakirdan/colorquiz/internal/registry"
	"github.com/vovakirdan/colorquiz/internal/taxonomy"
)

func newSession(seed int64, opts Options) *Session {
	opts.Rand = rand.New(rand.NewSource(seed))
	return NewSession(palette.Default(), opts)
}

func answerOf(t *testing.T, s *Session) string {
	t.Helper()
	cur, ok := s.Current()
	require.True(t, ok)
	return cur.Value(s.Mode().Answer())
}

func TestStartErrors(t *testing.T) {
	tests := []struct {
		name   string
		grade  palette.Grade
		mode   string
		origin taxonomy.Origin
		want   error
	}{
		{"unknown grade", palette.Grade("7"), "color-to-name", "", palette.ErrUnknownGrade},
		{"unknown mode", palette.Grade3, "name-to-munsell", "", registry.ErrUnknownMode},
		{"no foreign names", palette.Grade3, "description-to-name", taxonomy.OriginForeign, ErrEmptyPalette},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(1, Options{DescriptionOrigin: tt.origin})
			err := s.Start(tt.grade, tt.mode)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, StateIdle, s.State())
		})
	}
}

func TestFailedStartKeepsRunningQuiz(t *testing.T) {
	s := newSession(1, Options{})
	require.NoError(t, s.Start(palette.Grade3, "color-to-name"))
	require.True(t, s.Submit(answerOf(t, s)))

	require.Error(t, s.Start(palette.Grade3, "nope"))
	assert.Equal(t, StateRevealed, s.State())
	assert.Equal(t, 1, s.Score())
}

func TestGrade3EndToEnd(t *testing.T) {
	s := newSession(42, Options{})
	require.NoError(t, s.Start(palette.Grade3, "color-to-name"))
	require.Equal(t, 3, s.Total())

	for i := range 3 {
		v := s.View()
		assert.Equal(t, StateAnswering, v.State)
		assert.Equal(t, i+1, v.Position)
		assert.Len(t, v.Choices, 3)
		assert.Contains(t, v.Choices, answerOf(t, s))

		require.True(t, s.Submit(answerOf(t, s)))
		assert.True(t, s.View().Correct)
		require.True(t, s.Advance())
	}

	assert.Equal(t, StateCompleted, s.State())
	res, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, Result{Score: 3, Total: 3, Percentage: 100, Stars: 5}, res)
}

func TestSequenceIsPermutation(t *testing.T) {
	entries, err := palette.Default().Entries(palette.Grade1)
	require.NoError(t, err)

	for seed := range int64(20) {
		s := newSession(seed, Options{})
		require.NoError(t, s.Start(palette.Grade1, "name-to-pccs"))
		assert.ElementsMatch(t, entries, s.Sequence())
	}
}

func TestSequenceFixedForSession(t *testing.T) {
	s := newSession(5, Options{})
	require.NoError(t, s.Start(palette.Grade1, "color-to-name"))
	seq := s.Sequence()

	for s.State() != StateCompleted {
		assert.Equal(t, seq[s.Index()], mustCurrent(t, s))
		s.Submit("wrong")
		s.Advance()
	}
	assert.Equal(t, seq, s.Sequence())
}

func mustCurrent(t *testing.T, s *Session) taxonomy.Entry {
	t.Helper()
	cur, ok := s.Current()
	require.True(t, ok)
	return cur
}

func TestDoubleSubmitCountsOnce(t *testing.T) {
	s := newSession(3, Options{})
	require.NoError(t, s.Start(palette.Grade3, "color-to-name"))

	answer := answerOf(t, s)
	assert.True(t, s.Submit(answer))
	assert.False(t, s.Submit(answer))
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, answer, s.View().Selected)
}

func TestOutOfStateTransitions(t *testing.T) {
	s := newSession(3, Options{})
	assert.False(t, s.Submit("x"))
	assert.False(t, s.Advance())
	_, ok := s.Result()
	assert.False(t, ok)
	assert.Equal(t, View{State: StateIdle}, s.View())

	require.NoError(t, s.Start(palette.Grade3, "color-to-name"))
	assert.False(t, s.Advance(), "advance before answering")

	for s.State() != StateCompleted {
		s.Submit("x")
		s.Advance()
	}
	assert.False(t, s.Submit("x"))
	assert.False(t, s.Advance())
	assert.Equal(t, 0, s.Score())
}

func TestScoreNeverExceedsAnswered(t *testing.T) {
	for seed := range int64(50) {
		s := newSession(seed, Options{})
		require.NoError(t, s.Start(palette.Grade1, "color-to-name"))
		pick := rand.New(rand.NewSource(seed))

		for s.State() != StateCompleted {
			choices := s.Choices()
			s.Submit(choices[pick.Intn(len(choices))])
			assert.LessOrEqual(t, s.Score(), s.Index()+1)
			s.Advance()
		}
		res, ok := s.Result()
		require.True(t, ok)
		assert.Equal(t, len(s.Sequence()), res.Total)
		assert.LessOrEqual(t, res.Score, res.Total)
	}
}

func TestChoicesHaveOneCorrectNoDuplicates(t *testing.T) {
	for _, mode := range []string{"color-to-name", "description-to-name", "name-to-pccs"} {
		t.Run(mode, func(t *testing.T) {
			s := newSession(11, Options{DescriptionOrigin: taxonomy.OriginAny})
			require.NoError(t, s.Start(palette.Grade1, mode))

			for s.State() != StateCompleted {
				choices := s.Choices()
				answer := answerOf(t, s)

				n := 0
				seen := map[string]bool{}
				for _, c := range choices {
					assert.False(t, seen[c], "duplicate choice %q", c)
					seen[c] = true
					if c == answer {
						n++
					}
				}
				assert.Equal(t, 1, n)
				assert.LessOrEqual(t, len(choices), 12)

				s.Submit(answer)
				s.Advance()
			}
		})
	}
}

func TestOriginPoolOfOne(t *testing.T) {
	s := newSession(9, Options{DescriptionOrigin: taxonomy.OriginForeign})
	require.NoError(t, s.Start(palette.Grade2, "description-to-name"))

	require.Equal(t, 1, s.Total())
	v := s.View()
	assert.Equal(t, []string{"ピンク"}, v.Choices)
	assert.Equal(t, taxonomy.FieldDescription, v.Prompt)
	assert.NotContains(t, v.Given, "<br")

	require.True(t, s.Submit("ピンク"))
	require.True(t, s.Advance())
	res, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, 5, res.Stars)
}

func TestOriginPoolOfOneAmongAny(t *testing.T) {
	s := newSession(9, Options{DescriptionOrigin: taxonomy.OriginAny})
	require.NoError(t, s.Start(palette.Grade2, "description-to-name"))
	require.Equal(t, 3, s.Total())

	for s.State() != StateCompleted {
		cur := mustCurrent(t, s)
		if cur.Origin == taxonomy.OriginForeign {
			assert.Equal(t, []string{cur.Name}, s.Choices())
		} else {
			assert.Len(t, s.Choices(), 2)
			assert.NotContains(t, s.Choices(), "ピンク")
		}
		s.Submit(cur.Name)
		s.Advance()
	}
}

func TestDescriptionModeDefaultsToNative(t *testing.T) {
	s := newSession(2, Options{})
	require.NoError(t, s.Start(palette.Grade2, "description-to-name"))
	assert.Equal(t, 2, s.Total())
	for _, e := range s.Sequence() {
		assert.Equal(t, taxonomy.OriginNative, e.Origin)
	}
}

func TestNameToPCCSChoices(t *testing.T) {
	s := newSession(4, Options{})
	require.NoError(t, s.Start(palette.Grade3, "name-to-pccs"))

	v := s.View()
	cur := mustCurrent(t, s)
	assert.Equal(t, cur.Name, v.Given)
	assert.Contains(t, v.Choices, cur.PCCS)
	assert.Len(t, v.Choices, 3)
}

func TestSampleSizeLimitsChoices(t *testing.T) {
	s := newSession(4, Options{SampleSize: 1})
	require.NoError(t, s.Start(palette.Grade1, "color-to-name"))
	assert.LessOrEqual(t, len(s.Choices()), 2)
}

func TestViewAfterReveal(t *testing.T) {
	s := newSession(8, Options{})
	require.NoError(t, s.Start(palette.Grade3, "color-to-name"))

	v := s.View()
	assert.Nil(t, v.Entry)
	assert.Equal(t, 0.0, v.Progress)
	assert.Equal(t, "color-to-name", v.ModeID)
	assert.Equal(t, palette.Grade3, v.Grade)
	assert.True(t, strings.HasPrefix(v.Given, "#"))

	s.Submit("not a color")
	v = s.View()
	require.NotNil(t, v.Entry)
	assert.False(t, v.Correct)
	assert.Equal(t, mustCurrent(t, s).Name, v.Entry.Name)
	assert.NotContains(t, v.Entry.Description, "<br")
	assert.InDelta(t, 1.0/3.0, v.Progress, 1e-9)
}

func TestRestartAndReenter(t *testing.T) {
	s := newSession(6, Options{})
	assert.ErrorIs(t, s.Restart(), ErrNotStarted)
	assert.NoError(t, s.Reenter())
	assert.Equal(t, StateIdle, s.State())

	require.NoError(t, s.Start(palette.Grade3, "color-to-name"))
	s.Submit(answerOf(t, s))
	s.Advance()
	require.Equal(t, 1, s.Index())

	require.NoError(t, s.Reenter())
	assert.Equal(t, StateAnswering, s.State())
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, "color-to-name", s.Mode().ID())

	for s.State() != StateCompleted {
		s.Submit("x")
		s.Advance()
	}
	require.NoError(t, s.Restart())
	assert.Equal(t, StateAnswering, s.State())
	assert.Equal(t, palette.Grade3, s.Grade())

	s.Stop()
	assert.Equal(t, StateIdle, s.State())
	assert.NoError(t, s.Reenter())
	assert.Equal(t, StateIdle, s.State())
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	s := newSession(1, Options{Logger: logger})
	require.NoError(t, s.Start(palette.Grade3, "color-to-name"))
	s.Submit("x")

	out := buf.String()
	assert.Contains(t, out, "quiz started")
	assert.Contains(t, out, "answer submitted")
}

func TestResultStars(t *testing.T) {
	tests := []struct {
		score, total int
		want         Result
	}{
		{3, 3, Result{3, 3, 100, 5}},
		{9, 10, Result{9, 10, 90, 5}},
		{2, 3, Result{2, 3, 67, 3}},
		{7, 10, Result{7, 10, 70, 4}},
		{1, 3, Result{1, 3, 33, 2}},
		{1, 6, Result{1, 6, 17, 1}},
		{0, 3, Result{0, 3, 0, 0}},
		{0, 0, Result{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NewResult(tt.score, tt.total))
	}
}
