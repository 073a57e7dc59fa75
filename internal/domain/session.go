package domain

// Session counts answers since startup or the last clear
type Session struct {
	AskedCount     int
	CorrectCount   int
	IncorrectCount int
}

// Record counts one checked answer
func (s *Session) Record(correct bool) {
	s.AskedCount++
	if correct {
		s.CorrectCount++
	} else {
		s.IncorrectCount++
	}
}

// Reset zeroes every counter
func (s *Session) Reset() {
	*s = Session{}
}

// Prompt is the active question shown to the user
type Prompt struct {
	Index     int
	Text      string
	Direction Direction
}

// Outcome is the result of a checked answer
type Outcome struct {
	Correct  bool
	Expected string // first listed variant, as authored
	Accepted string // full stored field
}
