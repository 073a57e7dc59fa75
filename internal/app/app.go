package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"

	"wordtrainer/internal/domain"
	"wordtrainer/internal/service"
)

// NoWordsText is shown instead of a prompt while the store is empty
const NoWordsText = "Add some words first"

// App owns all mutable trainer state and serializes user actions.
// Front-ends render View() and call the action methods.
type App struct {
	mu sync.Mutex

	words    *service.WordService
	trainer  *service.TrainerService
	stats    *service.StatsService
	transfer *service.TransferService
	logger   *zap.Logger

	tab             domain.Tab
	direction       domain.Direction
	noWords         bool
	feedback        domain.Feedback
	confirmingClear bool
	importing       bool
}

// New creates the controller; words must already be loaded
func New(
	words *service.WordService,
	trainer *service.TrainerService,
	stats *service.StatsService,
	transfer *service.TransferService,
	direction domain.Direction,
	logger *zap.Logger,
) *App {
	return &App{
		words:     words,
		trainer:   trainer,
		stats:     stats,
		transfer:  transfer,
		logger:    logger,
		tab:       domain.TabAdd,
		direction: direction,
	}
}

// View returns a snapshot of the view-model
func (a *App) View() domain.ViewModel {
	a.mu.Lock()
	defer a.mu.Unlock()

	return domain.ViewModel{
		Tab:             a.tab,
		Direction:       a.direction,
		Prompt:          a.trainer.Prompt(),
		NoWords:         a.noWords,
		Answered:        a.trainer.Answered(),
		Feedback:        a.feedback,
		Session:         a.trainer.Session(),
		TotalWords:      a.words.Count(),
		ConfirmingClear: a.confirmingClear,
		Importing:       a.importing,
	}
}

// ShowTab switches screens; entering the Train tab asks for a prompt
func (a *App) ShowTab(tab domain.Tab) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.tab = tab
	a.feedback = domain.Feedback{}
	if tab == domain.TabTrain {
		a.nextPrompt()
	}
}

// SetDirection changes the training direction and asks for a new prompt
func (a *App) SetDirection(d domain.Direction) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.direction = d
	a.nextPrompt()
}

// Train opens the Train tab in direction d with a fresh prompt
func (a *App) Train(d domain.Direction) *domain.Prompt {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.tab = domain.TabTrain
	a.direction = d
	return a.nextPrompt()
}

// NextPrompt draws a new prompt and clears feedback
func (a *App) NextPrompt() *domain.Prompt {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.nextPrompt()
}

func (a *App) nextPrompt() *domain.Prompt {
	prompt := a.trainer.SelectPrompt(a.direction)
	a.noWords = prompt == nil
	a.feedback = domain.Feedback{}
	return prompt
}

// CheckAnswer scores raw against the active prompt.
// A nil outcome with nil error means the input was ignored.
func (a *App) CheckAnswer(raw string) (*domain.Outcome, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.importing {
		return nil, domain.ErrImportPending
	}

	outcome, err := a.trainer.CheckAnswer(raw, a.direction)
	if err != nil {
		a.logger.Error("Failed to check answer", zap.Error(err))
		a.feedback = domain.Feedback{Kind: domain.FeedbackInfo, Text: err.Error()}
		return nil, err
	}
	if outcome == nil {
		return nil, nil
	}

	if outcome.Correct {
		a.feedback = domain.Feedback{Kind: domain.FeedbackOK, Text: "Correct!"}
	} else {
		a.feedback = domain.Feedback{Kind: domain.FeedbackBad, Text: "Wrong. Correct: " + outcome.Expected}
	}
	return outcome, nil
}

// AddWord appends a new pair
func (a *App) AddWord(native, foreign string) (domain.WordPair, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.importing {
		return domain.WordPair{}, domain.ErrImportPending
	}
	word, err := a.words.AddWordPair(native, foreign)
	if err != nil {
		return domain.WordPair{}, err
	}
	a.noWords = false
	return word, nil
}

// RequestClear asks for confirmation before clearing everything
func (a *App) RequestClear() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.importing {
		return domain.ErrImportPending
	}
	a.confirmingClear = true
	return nil
}

// CancelClear drops a pending clear request
func (a *App) CancelClear() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.confirmingClear = false
}

// ConfirmClear removes every word and resets the session.
// It fails unless RequestClear was called first.
func (a *App) ConfirmClear() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.importing {
		return domain.ErrImportPending
	}
	if !a.confirmingClear {
		return domain.ErrClearNotConfirmed
	}

	// request stays pending on a failed write so the user can retry
	if err := a.words.ClearAll(); err != nil {
		return err
	}
	a.confirmingClear = false

	a.trainer.ResetSession()
	a.trainer.ClearPrompt()
	a.noWords = true
	a.feedback = domain.Feedback{}
	return nil
}

// Stats returns the most failed words and the total word count
func (a *App) Stats(limit int) ([]domain.WordPair, int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.stats.RankedByFailures(limit)
}

// Export writes the store as indented JSON
func (a *App) Export(w io.Writer) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.transfer.Export(w)
}

// ExportFile writes the export to path
func (a *App) ExportFile(path string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.transfer.ExportFile(path)
}

// Import replaces the store with the payload read from r.
// The read happens without the lock; other mutations fail with
// ErrImportPending until the payload has been applied or rejected.
func (a *App) Import(r io.Reader) (int, error) {
	if err := a.beginImport(); err != nil {
		return 0, err
	}

	data, readErr := service.ReadPayload(r)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.importing = false

	if readErr != nil {
		return 0, readErr
	}

	n, err := a.transfer.Import(data)
	if err != nil {
		return 0, err
	}

	// positions changed, so the old prompt no longer points at its word
	a.trainer.ClearPrompt()
	a.confirmingClear = false
	if a.tab == domain.TabTrain {
		a.nextPrompt()
	} else {
		a.noWords = a.words.Count() == 0
	}
	return n, nil
}

// ImportFile opens path and imports it
func (a *App) ImportFile(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open import file: %w", err)
	}
	defer file.Close()

	return a.Import(file)
}

func (a *App) beginImport() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.importing {
		return domain.ErrImportPending
	}
	a.importing = true
	return nil
}

// IsValidation reports whether err is a user input problem rather than a failure
func IsValidation(err error) bool {
	return errors.Is(err, domain.ErrEmptyField) ||
		errors.Is(err, domain.ErrImportFormat) ||
		errors.Is(err, domain.ErrImportPending) ||
		errors.Is(err, domain.ErrClearNotConfirmed)
}
