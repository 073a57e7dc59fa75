package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const privateText = "This trainer is private."

// OwnerOnly serves updates from ownerID and refuses everyone else
func OwnerOnly(ownerID int64, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender != nil && sender.ID == ownerID {
				return next(c)
			}

			var senderID int64
			if sender != nil {
				senderID = sender.ID
			}
			logger.Warn("Refused update from another user", zap.Int64("user_id", senderID))

			if c.Callback() != nil {
				return c.Respond(&tele.CallbackResponse{Text: privateText})
			}
			return c.Send(privateText)
		}
	}
}
