package domain

// Tab is a screen of the trainer
type Tab string

const (
	TabAdd   Tab = "add"
	TabTrain Tab = "train"
	TabStats Tab = "stats"
)

// FeedbackKind styles a feedback message
type FeedbackKind string

const (
	FeedbackNone FeedbackKind = ""
	FeedbackOK   FeedbackKind = "ok"
	FeedbackBad  FeedbackKind = "bad"
	FeedbackInfo FeedbackKind = "info"
)

// Feedback is the message shown under the prompt
type Feedback struct {
	Kind FeedbackKind
	Text string
}

// ViewModel is everything a presentation layer needs to render the trainer
type ViewModel struct {
	Tab             Tab
	Direction       Direction
	Prompt          *Prompt
	NoWords         bool
	Answered        bool
	Feedback        Feedback
	Session         Session
	TotalWords      int
	ConfirmingClear bool
	Importing       bool
}
