package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const deniedText = "माफ गर्नुहोस्, तपाईंलाई अनुमति छैन।"

// AllowlistMiddleware only lets the listed Telegram users through.
// An empty list allows everyone.
func AllowlistMiddleware(allowed []int64, logger *zap.Logger) tele.MiddlewareFunc {
	users := make(map[int64]struct{}, len(allowed))
	for _, id := range allowed {
		users[id] = struct{}{}
	}

	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if len(users) == 0 {
				return next(c)
			}

			sender := c.Sender()
			if sender == nil {
				return nil
			}

			if _, ok := users[sender.ID]; !ok {
				logger.Warn("Rejected user not in allowlist", zap.Int64("user_id", sender.ID))
				if c.Callback() != nil {
					return c.Respond(&tele.CallbackResponse{Text: deniedText})
				}
				return c.Send(deniedText)
			}

			return next(c)
		}
	}
}
