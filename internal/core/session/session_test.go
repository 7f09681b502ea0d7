package session

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(Middleware())
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.SendString(FromCtx(c))
	})
	return app
}

// TestMiddleware_MintsCookie verifies a first visit gets a uuid session id
// as an HTTP-only cookie.
func TestMiddleware_MintsCookie(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	require.NoError(t, err)

	var sid string
	for _, cookie := range resp.Cookies() {
		if cookie.Name == CookieName {
			sid = cookie.Value
			assert.True(t, cookie.HttpOnly)
		}
	}
	require.NotEmpty(t, sid)
	_, err = uuid.Parse(sid)
	assert.NoError(t, err)

	body := make([]byte, 64)
	n, _ := resp.Body.Read(body)
	assert.Equal(t, sid, string(body[:n]))
}

// TestMiddleware_ReusesCookie verifies a returning visitor keeps their id.
func TestMiddleware_ReusesCookie(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Cookie", CookieName+"=known-session")
	resp, err := app.Test(req)
	require.NoError(t, err)

	body := make([]byte, 64)
	n, _ := resp.Body.Read(body)
	assert.Equal(t, "known-session", string(body[:n]))

	// No new cookie is set for a returning visitor.
	for _, cookie := range resp.Cookies() {
		assert.NotEqual(t, CookieName, cookie.Name)
	}
}

// TestFromCtx_Missing verifies the fallback when middleware did not run.
func TestFromCtx_Missing(t *testing.T) {
	app := fiber.New()
	app.Get("/bare", func(c *fiber.Ctx) error {
		return c.SendString("[" + FromCtx(c) + "]")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/bare", nil))
	require.NoError(t, err)

	body := make([]byte, 16)
	n, _ := resp.Body.Read(body)
	assert.Equal(t, "[]", string(body[:n]))
}
