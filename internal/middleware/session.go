package middleware

import (
	"time"

	"quizera/internal/config"
	"quizera/internal/logger"
	"quizera/internal/util"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LocalSessionID is the fiber.Ctx locals key holding the browser session id.
const LocalSessionID = "session_id"

// Session ties a browser to a session id kept in a cookie. A missing or
// malformed cookie gets a fresh id. The cookie expiry is pushed forward on
// every request.
func Session(cfg config.SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(cfg.CookieName)
		if !util.IsValidULID(id) {
			id = util.NewULID()
			logger.Get().Debug("New browser session", zap.String("session_id", id))
		}

		c.Cookie(&fiber.Cookie{
			Name:     cfg.CookieName,
			Value:    id,
			Path:     "/",
			Expires:  time.Now().Add(cfg.TTL),
			HTTPOnly: true,
			Secure:   cfg.Secure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		c.Locals(LocalSessionID, id)
		return c.Next()
	}
}

// SessionID returns the id set by Session, or "" outside a session route.
func SessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalSessionID).(string)
	return id
}
