package handler

import (
	"errors"

	"wordtrainer/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func (h *Handler) handleTrainNative(c tele.Context) error {
	return h.startTraining(c, domain.NativeToForeign)
}

func (h *Handler) handleTrainForeign(c tele.Context) error {
	return h.startTraining(c, domain.ForeignToNative)
}

// startTraining switches to the Train tab and shows the first prompt
func (h *Handler) startTraining(c tele.Context, d domain.Direction) error {
	if h.app.Train(d) == nil {
		h.ResetState()
		return alert(c, "No words yet. Add some first.")
	}

	h.SetState(domain.StateData{State: domain.StateTraining})
	return h.reply(c, promptText(h.app.View()), trainMarkup())
}

// handleNext skips to another prompt
func (h *Handler) handleNext(c tele.Context) error {
	if h.app.NextPrompt() == nil {
		h.ResetState()
		return alert(c, "No words yet. Add some first.")
	}

	h.SetState(domain.StateData{State: domain.StateTraining})
	return h.reply(c, promptText(h.app.View()), trainMarkup())
}

// handleAnswer checks the text against the prompt and moves on to the next one
func (h *Handler) handleAnswer(c tele.Context, text string) error {
	outcome, err := h.app.CheckAnswer(text)
	if err != nil {
		if errors.Is(err, domain.ErrImportPending) {
			return c.Send(err.Error())
		}
		h.logger.Error("Failed to check answer", zap.Error(err))
		return c.Send(errorText)
	}
	if outcome == nil {
		// No active prompt anymore, e.g. the store was cleared
		h.ResetState()
		return c.Send("No words yet. Add some first.", backMarkup())
	}

	view := h.app.View()
	if err := c.Send(outcomeText(outcome) + "\n" + sessionText(view.Session, view.TotalWords)); err != nil {
		return err
	}

	// One answer per prompt: the next message belongs to a new prompt
	h.app.NextPrompt()
	return c.Send(promptText(h.app.View()), trainMarkup())
}
