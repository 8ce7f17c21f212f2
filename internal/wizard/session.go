package wizard

import (
	"errors"
	"fmt"

	"github.com/hmuraoka/shinkoku-navi/internal/table"
)

// ErrComplete is returned by Select once a terminal option has been chosen.
// Only Restart leaves the completed state.
var ErrComplete = errors.New("questionnaire already complete")

// ErrUnknownOption is returned by Select when the option id does not belong
// to the current question. The selection is a caller contract violation, so
// the session is returned unchanged.
var ErrUnknownOption = errors.New("option not on current question")

// ErrAtStart is returned by Back when there is nothing to go back to.
var ErrAtStart = errors.New("already at the first question")

// Answers maps question id to the chosen option id.
type Answers map[string]string

// clone returns a copy of the answer map. Transitions copy before writing
// so an earlier Session value is never changed behind the caller's back.
func (a Answers) clone() Answers {
	c := make(Answers, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}

// Session is the questionnaire state: the current question, the answers
// recorded so far, and the path taken (for back-navigation). The zero value
// is not usable; construct with New.
type Session struct {
	tbl     *table.Table
	current string
	answers Answers
	history []string
	done    bool
}

// New returns a fresh session positioned at the table's start question.
func New(tbl *table.Table) Session {
	return Session{
		tbl:     tbl,
		current: tbl.Start().ID,
		answers: Answers{},
	}
}

// Current returns the question the session is positioned at. ok is false
// once the session is complete.
func (s Session) Current() (table.Question, bool) {
	if s.done {
		return table.Question{}, false
	}
	q, ok := s.tbl.Question(s.current)
	return q, ok
}

// Done reports whether a terminal option has been selected.
func (s Session) Done() bool {
	return s.done
}

// CanGoBack reports whether Back has anywhere to go.
func (s Session) CanGoBack() bool {
	return len(s.history) > 0 && !s.done
}

// Answers returns a copy of the recorded answers.
func (s Session) Answers() Answers {
	return s.answers.clone()
}

// Table returns the decision table the session walks.
func (s Session) Table() *table.Table {
	return s.tbl
}

// Select records the chosen option for the current question and either
// advances to the option's next question or, on a terminal option, marks
// the session complete.
//
// Selecting an option that does not belong to the current question, or
// selecting after completion, returns the session unchanged together with
// ErrUnknownOption or ErrComplete.
func (s Session) Select(optionID string) (Session, error) {
	if s.done {
		return s, ErrComplete
	}
	q, ok := s.tbl.Question(s.current)
	if !ok {
		return s, fmt.Errorf("current question %q not in table", s.current)
	}
	opt, ok := q.Option(optionID)
	if !ok {
		return s, fmt.Errorf("%w: %q on question %q", ErrUnknownOption, optionID, s.current)
	}

	next := s
	next.answers = s.answers.clone()
	next.answers[s.current] = opt.ID

	if opt.Terminal() {
		next.done = true
		return next, nil
	}

	if _, ok := s.tbl.Question(opt.Next); !ok {
		// Validation rejects dangling next pointers at load time; guard
		// anyway so a hand-built table cannot strand the session.
		return s, fmt.Errorf("option %q points at unknown question %q", opt.ID, opt.Next)
	}

	next.history = append(append([]string{}, s.history...), s.current)
	next.current = opt.Next
	return next, nil
}

// Back returns to the previously visited question. Answers recorded for
// questions forward of the re-entered one are pruned, so re-selecting a
// different option cannot leak tasks from the abandoned branch. The answer
// of the re-entered question itself is kept; a new Select overwrites it.
func (s Session) Back() (Session, error) {
	if !s.CanGoBack() {
		return s, ErrAtStart
	}

	next := s
	next.current = s.history[len(s.history)-1]
	next.history = append([]string{}, s.history[:len(s.history)-1]...)

	onPath := make(map[string]bool, len(next.history)+1)
	for _, id := range next.history {
		onPath[id] = true
	}
	onPath[next.current] = true

	next.answers = make(Answers, len(s.answers))
	for id, optID := range s.answers {
		if onPath[id] {
			next.answers[id] = optID
		}
	}
	return next, nil
}

// Restart returns a fresh session on the same table. The reset is atomic by
// construction: callers swap the whole value.
func (s Session) Restart() Session {
	return New(s.tbl)
}

// Progress returns the completion fraction in [0, 1]: (index of the current
// question + 1) / total questions, clamped. A completed session reports 1.
func (s Session) Progress() float64 {
	total := s.tbl.Len()
	if total == 0 || s.done {
		return 1
	}
	idx := s.tbl.QuestionIndex(s.current)
	if idx < 0 {
		return 0
	}
	p := float64(idx+1) / float64(total)
	if p > 1 {
		p = 1
	}
	return p
}
