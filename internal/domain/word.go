package domain

// WordPair is one vocabulary entry with success/failure counters
type WordPair struct {
	Native         string `json:"native"`
	Foreign        string `json:"foreign"`
	CorrectCount   int    `json:"correctCount"`
	IncorrectCount int    `json:"incorrectCount"`
}

// NewWordPair creates a pair with zero counters
func NewWordPair(native, foreign string) WordPair {
	return WordPair{Native: native, Foreign: foreign}
}

// PromptText returns the field shown to the user for the direction
func (w WordPair) PromptText(d Direction) string {
	if d == ForeignToNative {
		return w.Foreign
	}
	return w.Native
}

// AnswerField returns the field the answer is checked against
func (w WordPair) AnswerField(d Direction) string {
	if d == ForeignToNative {
		return w.Native
	}
	return w.Foreign
}
