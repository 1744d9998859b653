package middleware

import (
	"strings"

	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/domain"
	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/telemetry"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys for storing user info
const (
	UserIDKey = "userID"
	EmailKey  = "email"
)

// VerifyAccessToken validates the bearer JWT and stores the caller in locals
func VerifyAccessToken(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, "Missing authorization token")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims := &domain.AccessClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(jwtSecret), nil
		}, jwt.WithIssuer(domain.TokenIssuer))
		if err != nil || !token.Valid {
			return unauthorized(c, "Invalid or expired token")
		}
		if claims.UserID == "" {
			return unauthorized(c, "Invalid token claims")
		}

		c.Locals(UserIDKey, claims.UserID)
		c.Locals(EmailKey, claims.Email)
		telemetry.SetSpanAttribute(c, "user.id", claims.UserID)

		return c.Next()
	}
}

// GetUserID returns the authenticated user's id, or "" outside VerifyAccessToken
func GetUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDKey).(string)
	return id
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"message": message,
		"error":   fiber.Map{"code": "UNAUTHORIZED"},
	})
}
