package handler

import (
	"strings"

	"wordtrainer/internal/app"
	"wordtrainer/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const askNativeText = "Send the native word"

// handleAdd starts the add-words flow
func (h *Handler) handleAdd(c tele.Context) error {
	h.app.ShowTab(domain.TabAdd)
	h.SetState(domain.StateData{State: domain.StateWaitingNative})
	return h.reply(c, askNativeText, cancelMarkup())
}

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	state := h.GetState()

	switch state.State {
	case domain.StateTraining:
		return h.handleAnswer(c, text)

	case domain.StateWaitingImport:
		return c.Send("Send the JSON file as a document", cancelMarkup())

	case domain.StateWaitingForeign:
		return h.saveWordPair(c, state.PendingNative, text)

	default:
		// Idle or waiting for native: this text is the native word
		h.SetState(domain.StateData{
			State:         domain.StateWaitingForeign,
			PendingNative: text,
		})
		return c.Send("Now the foreign word (separate variants with ;)", cancelMarkup())
	}
}

func (h *Handler) saveWordPair(c tele.Context, native, foreign string) error {
	word, err := h.app.AddWord(native, foreign)
	if err != nil {
		if app.IsValidation(err) {
			return c.Send(err.Error(), cancelMarkup())
		}
		h.logger.Error("Failed to save word pair", zap.Error(err))
		return c.Send("Could not save the word. Try again.", cancelMarkup())
	}

	h.logger.Info("Word pair added via bot",
		zap.String("native", word.Native),
		zap.String("foreign", word.Foreign),
	)

	// Wait for the next pair
	h.SetState(domain.StateData{State: domain.StateWaitingNative})
	return c.Send("✅ Saved!\n\n"+askNativeText+" or tap Cancel", cancelMarkup())
}
