package handler

import (
	"errors"

	"wordtrainer/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start and the main menu button
func (h *Handler) handleStart(c tele.Context) error {
	h.logger.Info("Main menu opened", zap.String("username", c.Sender().Username))

	h.ResetState()
	h.app.CancelClear()
	h.app.ShowTab(domain.TabAdd)
	return h.reply(c, mainMenuText, mainMenuMarkup())
}

// handleCancel cancels the current operation and returns to the menu
func (h *Handler) handleCancel(c tele.Context) error {
	h.ResetState()
	h.app.CancelClear()
	return h.reply(c, mainMenuText, mainMenuMarkup())
}

// handleStats shows the most failed words
func (h *Handler) handleStats(c tele.Context) error {
	h.ResetState()
	h.app.ShowTab(domain.TabStats)

	ranked, total := h.app.Stats(h.statsLimit)
	return h.reply(c, statsText(ranked, total), backMarkup())
}

// handleClear asks for confirmation before deleting every word
func (h *Handler) handleClear(c tele.Context) error {
	if err := h.app.RequestClear(); err != nil {
		return alert(c, err.Error())
	}
	h.ResetState()
	return h.reply(c, "Delete all words? This cannot be undone.", confirmClearMarkup())
}

// handleClearYes clears the store after confirmation
func (h *Handler) handleClearYes(c tele.Context) error {
	err := h.app.ConfirmClear()
	switch {
	case errors.Is(err, domain.ErrClearNotConfirmed):
		return alert(c, "Nothing to confirm")
	case errors.Is(err, domain.ErrImportPending):
		return alert(c, err.Error())
	case err != nil:
		h.logger.Error("Failed to clear words", zap.Error(err))
		return alert(c, errorText)
	}

	h.logger.Info("All words cleared")
	return h.reply(c, "🗑 All words deleted.\n\n"+mainMenuText, mainMenuMarkup())
}
