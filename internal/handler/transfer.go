package handler

import (
	"bytes"
	"fmt"

	"wordtrainer/internal/app"
	"wordtrainer/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const exportFileName = "words.json"

// handleExport sends the store as a JSON document
func (h *Handler) handleExport(c tele.Context) error {
	var buf bytes.Buffer
	if err := h.app.Export(&buf); err != nil {
		h.logger.Error("Failed to export words", zap.Error(err))
		return alert(c, errorText)
	}

	doc := &tele.Document{
		File:     tele.FromReader(&buf),
		FileName: exportFileName,
		MIME:     "application/json",
		Caption:  fmt.Sprintf("%d words", h.app.View().TotalWords),
	}
	if err := c.Send(doc); err != nil {
		h.logger.Error("Failed to send export", zap.Error(err))
		return err
	}

	if c.Callback() != nil {
		return c.Respond()
	}
	return nil
}

// handleImport waits for a JSON document
func (h *Handler) handleImport(c tele.Context) error {
	h.SetState(domain.StateData{State: domain.StateWaitingImport})
	return h.reply(c, "Send a JSON file: an array of {\"native\", \"foreign\"} objects.\nIt replaces all current words.", cancelMarkup())
}

// handleDocument downloads an uploaded document and imports it
func (h *Handler) handleDocument(c tele.Context) error {
	if h.GetState().State != domain.StateWaitingImport {
		return c.Send("Tap Import first to replace your words with a file.", backMarkup())
	}

	doc := c.Message().Document
	if doc == nil {
		return c.Send("Send the file as a document", cancelMarkup())
	}

	reader, err := h.fetchFile(&doc.File)
	if err != nil {
		h.logger.Error("Failed to download import", zap.Error(err))
		return c.Send(errorText)
	}
	defer reader.Close()

	n, err := h.app.Import(reader)
	if err != nil {
		if !app.IsValidation(err) {
			h.logger.Error("Import failed", zap.String("file", doc.FileName), zap.Error(err))
			return c.Send("Import failed: "+err.Error(), cancelMarkup())
		}
		h.logger.Warn("Import rejected", zap.String("file", doc.FileName), zap.Error(err))
		return c.Send("Import failed: "+err.Error(), cancelMarkup())
	}

	h.ResetState()
	return c.Send(fmt.Sprintf("✅ Imported %d words\n\n%s", n, mainMenuText), mainMenuMarkup())
}
