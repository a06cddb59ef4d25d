// Package quiz implements the quiz session engine: it fixes a question
// sequence for a grade and mode, builds choices for each question, scores
// answers and reports the final result.
//
// The engine has no UI dependencies. Callers drive it with Start, Submit
// and Advance and render View.
package quiz

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorquiz/internal/core"
	"github.com/vovakirdan/colorquiz/internal/distractor"
	"github.com/vovakirdan/colorquiz/internal/palette"
	"github.com/vovakirdan/colorquiz/internal/registry"
	"github.com/vovakirdan/colorquiz/internal/taxonomy"
)

var (
	// ErrEmptyPalette is returned when a mode has nothing to ask about.
	ErrEmptyPalette = errors.New("quiz: empty palette")
	// ErrNotStarted is returned by Restart before any Start.
	ErrNotStarted = errors.New("quiz: not started")
)

// Options configures a Session.
type Options struct {
	SampleSize        int             // distractors per question; <= 0 means distractor.DefaultSampleSize
	DescriptionOrigin taxonomy.Origin // origin asked by the description mode; empty means native
	Rand              *rand.Rand      // nil means time-seeded
	Logger            *log.Logger     // nil discards
}

// Session is one run through a palette. It is not safe for concurrent use.
type Session struct {
	book    *palette.Book
	opts    Options
	rng     *rand.Rand
	sampler *distractor.Sampler
	logger  *log.Logger

	grade    palette.Grade
	mode     registry.Mode
	entries  []taxonomy.Entry // the grade's full palette, distractor source
	sequence []taxonomy.Entry

	index    int
	score    int
	state    State
	choices  []string
	selected string
	correct  bool
}

// NewSession creates an idle session over book.
func NewSession(book *palette.Book, opts Options) *Session {
	rng := opts.Rand
	if rng == nil {
		rng = core.NewRand(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		book:    book,
		opts:    opts,
		rng:     rng,
		sampler: distractor.NewSampler(rng, opts.SampleSize),
		logger:  logger,
		state:   StateIdle,
	}
}

// Start begins a new quiz. On error the session is left unchanged.
func (s *Session) Start(grade palette.Grade, modeID string) error {
	entries, err := s.book.Entries(grade)
	if err != nil {
		return err
	}
	mode, err := registry.Create(modeID, registry.Settings{DescriptionOrigin: s.opts.DescriptionOrigin})
	if err != nil {
		return err
	}

	sequence := slices.Clone(mode.Sequence(entries))
	if len(sequence) == 0 {
		return fmt.Errorf("%w: grade %s, mode %s", ErrEmptyPalette, grade, modeID)
	}
	s.rng.Shuffle(len(sequence), func(i, j int) {
		sequence[i], sequence[j] = sequence[j], sequence[i]
	})

	s.grade = grade
	s.mode = mode
	s.entries = entries
	s.sequence = sequence
	s.index = 0
	s.score = 0
	s.selected = ""
	s.correct = false
	s.buildChoices()
	s.state = StateAnswering

	s.logger.Debug("quiz started", "grade", grade, "mode", modeID, "questions", len(sequence))
	return nil
}

// Submit answers the current question. It only acts while answering and
// reports whether the answer was taken; later submits are ignored.
func (s *Session) Submit(value string) bool {
	if s.state != StateAnswering {
		return false
	}
	s.selected = value
	s.correct = value == s.answer()
	if s.correct {
		s.score++
	}
	s.state = StateRevealed

	s.logger.Debug("answer submitted", "index", s.index, "correct", s.correct, "score", s.score)
	return true
}

// Advance moves past a revealed question. After the last one the session
// is completed.
func (s *Session) Advance() bool {
	if s.state != StateRevealed {
		return false
	}
	if s.index == len(s.sequence)-1 {
		s.state = StateCompleted
		s.logger.Debug("quiz completed", "score", s.score, "total", len(s.sequence))
		return true
	}
	s.index++
	s.selected = ""
	s.correct = false
	s.buildChoices()
	s.state = StateAnswering
	return true
}

// Restart starts over with the same grade and mode and a fresh sequence.
func (s *Session) Restart() error {
	if s.mode == nil {
		return ErrNotStarted
	}
	return s.Start(s.grade, s.mode.ID())
}

// Reenter handles the quiz view being shown again. A known grade and mode
// always restart; an idle session stays idle.
func (s *Session) Reenter() error {
	if s.mode == nil {
		return nil
	}
	return s.Restart()
}

// Stop discards progress and returns to idle.
func (s *Session) Stop() {
	s.mode = nil
	s.entries = nil
	s.sequence = nil
	s.choices = nil
	s.index = 0
	s.score = 0
	s.selected = ""
	s.correct = false
	s.state = StateIdle
}

func (s *Session) buildChoices() {
	correct := s.sequence[s.index]
	pool := s.mode.Pool(s.entries, correct)
	s.choices = s.sampler.Choices(pool, correct, s.mode.ExcludeSimilar(), s.mode.Answer())
}

func (s *Session) answer() string {
	return s.sequence[s.index].Value(s.mode.Answer())
}

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Grade returns the grade of the current or last quiz.
func (s *Session) Grade() palette.Grade { return s.grade }

// Mode returns the mode of the current quiz, nil when idle.
func (s *Session) Mode() registry.Mode { return s.mode }

// Score returns the number of correct answers so far.
func (s *Session) Score() int { return s.score }

// Index returns the 0-based position of the current question.
func (s *Session) Index() int { return s.index }

// Total returns the number of questions.
func (s *Session) Total() int { return len(s.sequence) }

// Sequence returns a copy of the question order.
func (s *Session) Sequence() []taxonomy.Entry { return slices.Clone(s.sequence) }

// Choices returns a copy of the current choice list.
func (s *Session) Choices() []string { return slices.Clone(s.choices) }

// Current returns the entry being asked about.
func (s *Session) Current() (taxonomy.Entry, bool) {
	if s.state == StateIdle || len(s.sequence) == 0 {
		return taxonomy.Entry{}, false
	}
	return s.sequence[s.index], true
}
