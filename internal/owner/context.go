// Package owner carries the authenticated user id from the session layer to
// the store. Every owned-entity query is filtered through Scope.
package owner

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// TokenKey is where the session middleware stores the verified token.
	TokenKey = "user"
	// UserIDKey is where RequireUser stores the resolved user id.
	UserIDKey = "user_id"
)

var ErrNoIdentity = errors.New("no verified identity in context")

// UserID returns the acting user id resolved by the session middleware.
func UserID(c *fiber.Ctx) (string, error) {
	if id, ok := c.Locals(UserIDKey).(string); ok && id != "" {
		return id, nil
	}
	return "", ErrNoIdentity
}

// SetUserID stores the acting user id for downstream handlers.
func SetUserID(c *fiber.Ctx, userID string) {
	c.Locals(UserIDKey, userID)
}

// Claims extracts the verified session claims.
func Claims(c *fiber.Ctx) (jwt.MapClaims, error) {
	token, ok := c.Locals(TokenKey).(*jwt.Token)
	if !ok || token == nil {
		return nil, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

// SubjectFromClaims returns the sub claim or an error when it is missing.
func SubjectFromClaims(claims jwt.MapClaims) (string, error) {
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("missing sub claim")
	}
	return sub, nil
}
