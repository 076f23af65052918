package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/config"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/owner"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func newApp() *fiber.App {
	cfg := &config.Config{SessionSecret: secret, SessionCookie: "session"}
	app := fiber.New()
	app.Get("/me", SessionProtected(cfg), RequireUser(), func(c *fiber.Ctx) error {
		id, err := owner.UserID(c)
		if err != nil {
			return err
		}
		return c.SendString(id)
	})
	return app
}

func sign(t *testing.T, key string, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return signed
}

func validClaims(sub string) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
}

func TestSession_BearerHeader(t *testing.T) {
	app := newApp()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+sign(t, secret, jwt.SigningMethodHS256, validClaims("user-1")))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSession_HeaderScheme(t *testing.T) {
	tok := sign(t, secret, jwt.SigningMethodHS256, validClaims("user-1"))
	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"lowercase scheme", "bearer " + tok, http.StatusOK},
		{"bare token", tok, http.StatusUnauthorized},
		{"other scheme", "Basic " + tok, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			req.Header.Set("Authorization", tt.header)

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestSession_Cookie(t *testing.T) {
	app := newApp()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: sign(t, secret, jwt.SigningMethodHS256, validClaims("user-2"))})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSession_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{"no token", func(t *testing.T) string { return "" }},
		{"garbage", func(t *testing.T) string { return "not-a-jwt" }},
		{"wrong key", func(t *testing.T) string {
			return sign(t, "some-other-secret-value", jwt.SigningMethodHS256, validClaims("user-1"))
		}},
		{"wrong algorithm", func(t *testing.T) string {
			return sign(t, secret, jwt.SigningMethodHS512, validClaims("user-1"))
		}},
		{"expired", func(t *testing.T) string {
			return sign(t, secret, jwt.SigningMethodHS256, jwt.MapClaims{
				"sub": "user-1",
				"exp": time.Now().Add(-time.Minute).Unix(),
			})
		}},
		{"missing subject", func(t *testing.T) string {
			return sign(t, secret, jwt.SigningMethodHS256, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tok := tt.token(t); tok != "" {
				req.Header.Set("Authorization", "Bearer "+tok)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestRateLimit_InMemory(t *testing.T) {
	app := fiber.New()
	app.Use(RateLimit(2, nil))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		codes = append(codes, resp.StatusCode)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestSecurityHeaders(t *testing.T) {
	app := fiber.New()
	app.Use(SecurityHeaders())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
}
