package handler

import (
	"io"
	"sync"

	"wordtrainer/internal/app"
	"wordtrainer/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot        *tele.Bot
	app        *app.App
	statsLimit int
	logger     *zap.Logger

	// Downloads uploaded documents; bot.File outside of tests
	fetchFile func(*tele.File) (io.ReadCloser, error)

	// Conversation state of the single owner chat
	state    domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	trainer *app.App,
	statsLimit int,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:        bot,
		app:        trainer,
		statsLimit: statsLimit,
		logger:     logger,
		fetchFile:  bot.File,
		state:      domain.StateData{State: domain.StateIdle},
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Messages
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnDocument, h.handleDocument)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnAdd, h.handleAdd)
	h.bot.Handle(&btnTrainNative, h.handleTrainNative)
	h.bot.Handle(&btnTrainForeign, h.handleTrainForeign)
	h.bot.Handle(&btnNext, h.handleNext)
	h.bot.Handle(&btnStats, h.handleStats)
	h.bot.Handle(&btnExport, h.handleExport)
	h.bot.Handle(&btnImport, h.handleImport)
	h.bot.Handle(&btnClear, h.handleClear)
	h.bot.Handle(&btnClearYes, h.handleClearYes)
	h.bot.Handle(&btnClearNo, h.handleCancel)
	h.bot.Handle(&btnCancel, h.handleCancel)
	h.bot.Handle(&btnMainMenu, h.handleStart)

	// Generic callback handler for buttons whose unique id did not match
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns the current conversation state
func (h *Handler) GetState() domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()
	return h.state
}

// SetState sets the conversation state
func (h *Handler) SetState(state domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.state = state
}

// ResetState returns to idle
func (h *Handler) ResetState() {
	h.SetState(domain.StateData{State: domain.StateIdle})
}

// Inline keyboard buttons
var (
	btnAdd = tele.Btn{
		Unique: "add",
		Text:   "➕ Add words",
	}
	btnTrainNative = tele.Btn{
		Unique: "train_nf",
		Text:   "🎯 Native → foreign",
	}
	btnTrainForeign = tele.Btn{
		Unique: "train_fn",
		Text:   "🎯 Foreign → native",
	}
	btnNext = tele.Btn{
		Unique: "next",
		Text:   "⏭ Next",
	}
	btnStats = tele.Btn{
		Unique: "stats",
		Text:   "📊 Stats",
	}
	btnExport = tele.Btn{
		Unique: "export",
		Text:   "📤 Export",
	}
	btnImport = tele.Btn{
		Unique: "import",
		Text:   "📥 Import",
	}
	btnClear = tele.Btn{
		Unique: "clear",
		Text:   "🗑 Clear all",
	}
	btnClearYes = tele.Btn{
		Unique: "clear_yes",
		Text:   "Yes, delete everything",
	}
	btnClearNo = tele.Btn{
		Unique: "clear_no",
		Text:   "No",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnAdd),
		menu.Row(btnTrainNative, btnTrainForeign),
		menu.Row(btnStats),
		menu.Row(btnExport, btnImport),
		menu.Row(btnClear),
	)
	return menu
}

func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))
	return markup
}

func trainMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnNext, btnMainMenu))
	return markup
}

func confirmClearMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnClearYes, btnClearNo))
	return markup
}

func backMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnMainMenu))
	return markup
}
