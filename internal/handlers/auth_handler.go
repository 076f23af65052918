package handlers

import (
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/owner"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

type AuthHandler struct {
	users *services.UserService
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// User returns the caller's profile, recording the claims the identity
// provider put in the session token.
func (h *AuthHandler) User(c *fiber.Ctx) error {
	userID, err := owner.UserID(c)
	if err != nil {
		return respondError(c, err)
	}
	claims, err := owner.Claims(c)
	if err != nil {
		return respondError(c, owner.ErrNoIdentity)
	}

	user, err := h.users.Upsert(c.UserContext(), services.UpsertUser{
		ID:              userID,
		Email:           stringClaim(claims, "email"),
		FirstName:       stringClaim(claims, "first_name"),
		LastName:        stringClaim(claims, "last_name"),
		ProfileImageURL: stringClaim(claims, "profile_image_url"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

func stringClaim(claims jwt.MapClaims, key string) *string {
	if v, ok := claims[key].(string); ok && v != "" {
		return &v
	}
	return nil
}
