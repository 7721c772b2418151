package reader

import "github.com/glabrego/noor-cli/internal/quran"

type SelectionState int

const (
	SelectionClosed SelectionState = iota
	SelectionChoosing
	SelectionLoading
	SelectionExplained
	SelectionFailed
)

func (s SelectionState) String() string {
	switch s {
	case SelectionChoosing:
		return "choosing"
	case SelectionLoading:
		return "loading"
	case SelectionExplained:
		return "explained"
	case SelectionFailed:
		return "failed"
	default:
		return "closed"
	}
}

// Selection is the verse action modal. The zero value is closed.
//
// Every transition that starts or abandons an explanation request bumps
// the ticket, so a late answer for an earlier request no longer matches.
type Selection struct {
	state       SelectionState
	verse       quran.Verse
	explanation string
	ticket      int
}

func (s Selection) State() SelectionState { return s.state }
func (s Selection) IsOpen() bool          { return s.state != SelectionClosed }
func (s Selection) Verse() quran.Verse    { return s.verse }
func (s Selection) Explanation() string   { return s.explanation }
func (s Selection) Ticket() int           { return s.ticket }

// Open shows the actions for v, discarding any previous explanation.
func (s *Selection) Open(v quran.Verse) {
	s.state = SelectionChoosing
	s.verse = v
	s.explanation = ""
	s.ticket++
}

// BeginExplain moves to Loading and returns the ticket the answer must
// carry. ok is false when no request may start from the current state.
func (s *Selection) BeginExplain() (int, bool) {
	if s.state != SelectionChoosing && s.state != SelectionFailed {
		return 0, false
	}
	s.ticket++
	s.state = SelectionLoading
	s.explanation = ""
	return s.ticket, true
}

// Resolve applies an explanation answer. Answers for another ticket or
// arriving outside Loading are ignored and Resolve returns false.
func (s *Selection) Resolve(ticket int, text string, ok bool) bool {
	if s.state != SelectionLoading || ticket != s.ticket {
		return false
	}
	if !ok {
		s.state = SelectionFailed
		s.explanation = ""
		return true
	}
	s.state = SelectionExplained
	s.explanation = text
	return true
}

// BackToActions returns from a shown explanation or failure to the
// action list for the same verse.
func (s *Selection) BackToActions() {
	if s.state == SelectionClosed {
		return
	}
	s.state = SelectionChoosing
	s.explanation = ""
	s.ticket++
}

func (s *Selection) Close() {
	s.state = SelectionClosed
	s.verse = quran.Verse{}
	s.explanation = ""
	s.ticket++
}
