// Package session holds the quiz progression state machine: which question
// is active, how answers are scored, and when a session is finished.
//
// A Session is single-writer. It does no locking; a driver that receives
// events concurrently must serialize its calls.
package session

import "github.com/rustquiz/rustquiz/internal/quiz"

// Result is the outcome of a single Answer call.
type Result int

const (
	ResultCorrect         Result = iota // matched the item's correct index
	ResultWrong                         // any other index, including out of range
	ResultAlreadyFinished               // session was already finished; nothing changed
)

func (r Result) String() string {
	switch r {
	case ResultCorrect:
		return "correct"
	case ResultWrong:
		return "wrong"
	case ResultAlreadyFinished:
		return "already-finished"
	default:
		return "unknown"
	}
}

// Session tracks progress through an ordered list of items.
//
// Invariants: score <= current <= len(items); once finished, only Reset or
// ResetWith changes state. The item list is borrowed and never reordered or
// modified.
type Session struct {
	items    []quiz.Item
	current  int
	score    int
	finished bool
}

// New creates a session over items. A session with no items is finished as
// soon as it is created: there is nothing to answer, and CurrentQuestion
// reports no question.
func New(items []quiz.Item) *Session {
	s := &Session{items: items}
	s.Reset()
	return s
}

// CurrentQuestion returns the active item, or false once the session is
// finished. It never changes state.
func (s *Session) CurrentQuestion() (quiz.Item, bool) {
	if s.finished || s.current >= len(s.items) {
		return quiz.Item{}, false
	}
	return s.items[s.current], true
}

// Answer scores choice against the active item and advances to the next one.
// Any choice other than the correct index is Wrong. On a finished session
// Answer returns ResultAlreadyFinished and changes nothing.
func (s *Session) Answer(choice int) Result {
	if s.finished {
		return ResultAlreadyFinished
	}
	if s.current >= len(s.items) {
		s.finished = true
		return ResultAlreadyFinished
	}

	result := ResultWrong
	if s.items[s.current].IsCorrect(choice) {
		s.score++
		result = ResultCorrect
	}

	s.current++
	if s.current >= len(s.items) {
		s.finished = true
	}
	return result
}

// Progress returns (answered, total) for display. total is supplied by the
// caller, normally Len().
func (s *Session) Progress(total int) (int, int) {
	return min(s.current, total), total
}

// Reset returns the session to its initial state, keeping the same items.
func (s *Session) Reset() {
	s.current = 0
	s.score = 0
	s.finished = len(s.items) == 0
}

// ResetWith binds a newly selected item list and resets.
func (s *Session) ResetWith(items []quiz.Item) {
	s.items = items
	s.Reset()
}

// Score returns the number of correct answers so far.
func (s *Session) Score() int { return s.score }

// Index returns the position of the active item (len(items) once finished).
func (s *Session) Index() int { return s.current }

// Finished reports whether every item has been answered.
func (s *Session) Finished() bool { return s.finished }

// Len returns the number of items in the session.
func (s *Session) Len() int { return len(s.items) }

// Items returns the session's item list. Callers must not modify it.
func (s *Session) Items() []quiz.Item { return s.items }
