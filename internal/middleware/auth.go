// Package middleware provides authentication, logging and rate limiting
// middleware for the application.
package middleware

import (
	"context"
	"strconv"
	"strings"

	"retrospace/internal/cache"
	"retrospace/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var cfg *config.Config

// LocalsUserID is the fiber Locals key holding the authenticated user's ID.
const LocalsUserID = "userID"

// Token issuer and audience claims. Mint and verify with the same values so
// tokens from other deployments sharing a secret are still rejected.
const (
	TokenIssuer   = "retrospace-api"
	TokenAudience = "retrospace-client"
)

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

// AuthRequired is a middleware that enforces authentication for protected routes.
func AuthRequired(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authorization header required",
		})
	}

	userID, jti, ok := parseBearerToken(authHeader)
	if !ok || isTokenRevoked(c, jti) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired token",
		})
	}

	storeUserID(c, userID)
	return c.Next()
}

// AuthOptional resolves the viewer identity when a bearer token is present but
// lets anonymous requests through. A malformed or expired token is still
// rejected rather than silently downgraded to anonymous.
func AuthOptional(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Next()
	}

	userID, jti, ok := parseBearerToken(authHeader)
	if !ok || isTokenRevoked(c, jti) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired token",
		})
	}

	storeUserID(c, userID)
	return c.Next()
}

// storeUserID records the authenticated user in fiber locals and syncs it to
// the user context for logging and downstream services.
func storeUserID(c *fiber.Ctx, userID uint) {
	c.Locals(LocalsUserID, userID)
	ctx := context.WithValue(c.UserContext(), UserIDKey, userID)
	c.SetUserContext(ctx)
}

// parseBearerToken validates a "Bearer <jwt>" header and extracts the user ID
// from the subject claim and the token's jti.
func parseBearerToken(authHeader string) (uint, string, bool) {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, "", false
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithIssuer(TokenIssuer), jwt.WithAudience(TokenAudience))
	if err != nil || !token.Valid {
		return 0, "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", false
	}

	subStr, ok := claims["sub"].(string)
	if !ok {
		return 0, "", false
	}

	userID, err := strconv.ParseUint(subStr, 10, 32)
	if err != nil || userID == 0 {
		return 0, "", false
	}

	jti, _ := claims["jti"].(string)
	return uint(userID), jti, true
}

// isTokenRevoked checks the logout blacklist. Without Redis there is no
// blacklist and tokens stay valid until expiry.
func isTokenRevoked(c *fiber.Ctx, jti string) bool {
	if jti == "" {
		return false
	}
	client := cache.GetClient()
	if client == nil {
		return false
	}
	exists, err := client.Exists(c.Context(), "blacklist:"+jti).Result()
	return err == nil && exists > 0
}
