package domain

// ChatState is the bot's current conversation state
type ChatState string

const (
	StateIdle           ChatState = "idle"
	StateWaitingNative  ChatState = "waiting_native"
	StateWaitingForeign ChatState = "waiting_foreign"
	StateTraining       ChatState = "training"
	StateWaitingImport  ChatState = "waiting_import"
)

// StateData holds temporary data for the current state
type StateData struct {
	State         ChatState
	PendingNative string
}
