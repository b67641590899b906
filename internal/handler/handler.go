package handler

import (
	"context"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// DateRefresher runs a refresh cycle and returns the new label
type DateRefresher interface {
	Refresh(ctx context.Context) string
}

// LabelReader exposes the current status label
type LabelReader interface {
	Text() string
}

// Handler manages all bot interactions
type Handler struct {
	ctx      context.Context
	bot      *tele.Bot
	dates    DateRefresher
	label    LabelReader
	aboutURL string
	logger   *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	ctx context.Context,
	bot *tele.Bot,
	dates DateRefresher,
	label LabelReader,
	aboutURL string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		ctx:      ctx,
		bot:      bot,
		dates:    dates,
		label:    label,
		aboutURL: aboutURL,
		logger:   logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers(middleware ...tele.MiddlewareFunc) {
	h.bot.Use(middleware...)

	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/refresh", h.handleRefresh)
	h.bot.Handle("/about", h.handleAbout)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnRefresh, h.handleRefresh)
	h.bot.Handle(&btnAbout, h.handleAbout)
	h.bot.Handle(&btnBack, h.handleStart)

	// Generic callback handler for buttons whose unique did not come through
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// Inline keyboard buttons
var (
	btnRefresh = tele.Btn{
		Unique: "refresh",
		Text:   "🔄 Refresh",
	}
	btnAbout = tele.Btn{
		Unique: "about",
		Text:   "ℹ️ About",
	}
	btnBack = tele.Btn{
		Unique: "back",
		Text:   "📅 Date",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnRefresh, btnAbout),
	)
	return menu
}

// aboutMarkup returns the keyboard shown under the about text
func aboutMarkup(url string) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(menu.URL("Open GitHub", url)),
		menu.Row(btnBack),
	)
	return menu
}
