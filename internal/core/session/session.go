package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// CookieName is the browser cookie carrying the session id.
	CookieName = "sid"
	// LocalsKey is the fiber locals key the session id is exposed under.
	LocalsKey = "session_id"

	cookieLifetime = 365 * 24 * time.Hour
)

// Middleware ensures every request carries a session id, minting one for
// first-time visitors. Cart snapshots, customer sessions and toast queues
// are all keyed off this id.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(CookieName)
		if sid == "" {
			sid = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     CookieName,
				Value:    sid,
				Expires:  time.Now().Add(cookieLifetime),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals(LocalsKey, sid)
		return c.Next()
	}
}

// FromCtx returns the session id attached by Middleware.
func FromCtx(c *fiber.Ctx) string {
	sid, _ := c.Locals(LocalsKey).(string)
	return sid
}
