package quiz

import (
	"math"

	"github.com/vovakirdan/colorquiz/internal/palette"
	"github.com/vovakirdan/colorquiz/internal/taxonomy"
)

// View is a read-only snapshot for rendering.
type View struct {
	Grade     palette.Grade
	ModeID    string
	ModeTitle string
	Question  string

	Prompt taxonomy.Field
	Given  string // prompt field value of the current entry
	Answer taxonomy.Field

	Choices  []string
	Position int // 1-based
	Total    int
	Score    int
	Progress float64 // answered / total
	State    State

	Selected string
	Correct  bool
	// Entry is the full correct entry, set once the answer is revealed.
	Entry *taxonomy.Entry
}

// View returns a snapshot of the session. An idle session gives a zero
// View with State set.
func (s *Session) View() View {
	if s.state == StateIdle {
		return View{State: StateIdle}
	}

	current := s.sequence[s.index]
	answered := s.index
	if s.state != StateAnswering {
		answered++
	}

	v := View{
		Grade:     s.grade,
		ModeID:    s.mode.ID(),
		ModeTitle: s.mode.Title(),
		Question:  s.mode.Question(),
		Prompt:    s.mode.Prompt(),
		Given:     current.Value(s.mode.Prompt()),
		Answer:    s.mode.Answer(),
		Choices:   s.Choices(),
		Position:  s.index + 1,
		Total:     len(s.sequence),
		Score:     s.score,
		Progress:  float64(answered) / float64(len(s.sequence)),
		State:     s.state,
		Selected:  s.selected,
		Correct:   s.correct,
	}
	if s.state != StateAnswering {
		e := current.Display()
		v.Entry = &e
	}
	return v
}

// Result summarizes a completed quiz.
type Result struct {
	Score      int
	Total      int
	Percentage int // rounded
	Stars      int // 0 to 5
}

// Result returns the summary once the session is completed.
func (s *Session) Result() (Result, bool) {
	if s.state != StateCompleted {
		return Result{}, false
	}
	return NewResult(s.score, len(s.sequence)), true
}

// NewResult computes percentage and stars for a score.
func NewResult(score, total int) Result {
	pct := 0
	if total > 0 {
		pct = int(math.Round(float64(score) * 100 / float64(total)))
	}
	return Result{
		Score:      score,
		Total:      total,
		Percentage: pct,
		Stars:      Stars(pct),
	}
}

// Stars rates a percentage from 0 to 5.
func Stars(pct int) int {
	switch {
	case pct >= 90:
		return 5
	case pct >= 70:
		return 4
	case pct >= 50:
		return 3
	case pct >= 30:
		return 2
	case pct > 0:
		return 1
	default:
		return 0
	}
}
