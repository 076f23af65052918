package middleware

import (
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/config"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/dto"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/owner"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// SessionProtected verifies the HS256 session token from the Authorization
// header or, failing that, the session cookie. AuthScheme is spelled out
// because jwtware only defaults it for its own TokenLookup.
func SessionProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{
			JWTAlg: jwt.SigningMethodHS256.Alg(),
			Key:    []byte(cfg.SessionSecret),
		},
		ContextKey:   owner.TokenKey,
		TokenLookup:  "header:Authorization,cookie:" + cfg.SessionCookie,
		AuthScheme:   "Bearer",
		ErrorHandler: unauthorized,
	})
}

// RequireUser resolves the acting user id from the verified claims. It must
// run after SessionProtected.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := owner.Claims(c)
		if err != nil {
			return unauthorized(c, err)
		}
		sub, err := owner.SubjectFromClaims(claims)
		if err != nil {
			return unauthorized(c, err)
		}
		owner.SetUserID(c, sub)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, _ error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error:   true,
		Message: "Unauthorized",
	})
}
