package handler

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const aboutText = "Nepali Date\n\nDisplays the current Nepali (Bikram Sambat) date."

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context) error {
	if err == nil {
		return nil
	}

	// Same label as before, nothing to edit
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already shows current label, acknowledging",
			zap.Int64("user_id", c.Sender().ID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", c.Sender().ID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// reply edits the message when triggered by a button, sends a new one otherwise
func (h *Handler) reply(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() == nil {
		return c.Send(text, markup)
	}

	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// handleStart shows the current label with the main menu
func (h *Handler) handleStart(c tele.Context) error {
	h.logger.Info("User opened date menu",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("username", c.Sender().Username),
	)

	text := h.label.Text()
	if text == "" {
		text = h.dates.Refresh(h.ctx)
	}
	return h.reply(c, text, mainMenuMarkup())
}

// handleRefresh runs a refresh cycle and shows the result
func (h *Handler) handleRefresh(c tele.Context) error {
	h.logger.Info("Manually refreshing date", zap.Int64("user_id", c.Sender().ID))

	text := h.dates.Refresh(h.ctx)
	return h.reply(c, text, mainMenuMarkup())
}

// handleAbout shows the about text with a link to the project
func (h *Handler) handleAbout(c tele.Context) error {
	return h.reply(c, aboutText, aboutMarkup(h.aboutURL))
}

// handleCallback handles callbacks not matched by a registered button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Info("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	switch route(callback.Unique, data) {
	case btnRefresh.Unique:
		return h.handleRefresh(c)
	case btnAbout.Unique:
		return h.handleAbout(c)
	case btnBack.Unique:
		return h.handleStart(c)
	}

	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// route picks the button identifier from unique, falling back to data
func route(unique, data string) string {
	if unique != "" {
		return unique
	}
	// Button data arrives as "<unique>|<payload>" once the \f prefix is stripped
	if i := strings.Index(data, "|"); i >= 0 {
		data = data[:i]
	}
	return data
}
