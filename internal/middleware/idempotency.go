package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// CorrelationIDHeader carries the client's idempotency key
const CorrelationIDHeader = "X-Correlation-ID"

type storedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

// IdempotencyMiddleware replays the stored response when a mutating request
// repeats an X-Correlation-ID within ttl. Keys are scoped to the caller, so
// it must run after VerifyAccessToken.
func IdempotencyMiddleware(redisClient *redis.Client, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodPost && c.Method() != fiber.MethodPatch && c.Method() != fiber.MethodPut {
			return c.Next()
		}

		correlationID := c.Get(CorrelationIDHeader)
		if correlationID == "" {
			return c.Next()
		}

		key := fmt.Sprintf("idempotency:%s:%s", GetUserID(c), correlationID)

		cached, err := redisClient.Get(c.UserContext(), key).Bytes()
		if err == nil && len(cached) > 0 {
			var stored storedResponse
			if json.Unmarshal(cached, &stored) == nil {
				c.Set("X-Idempotent-Replay", "true")
				c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
				return c.Status(stored.Status).Send(stored.Body)
			}
		}

		if err := c.Next(); err != nil {
			return err
		}

		statusCode := c.Response().StatusCode()
		if statusCode >= 200 && statusCode < 300 {
			// marshal now, fasthttp reuses the response buffer once the handler returns
			body := c.Response().Body()
			if len(body) > 0 && json.Valid(body) {
				payload, _ := json.Marshal(storedResponse{Status: statusCode, Body: body})
				go func() {
					bgCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
					defer cancel()
					if err := redisClient.Set(bgCtx, key, payload, ttl).Err(); err != nil {
						logger.Warn("failed to store idempotent response", "key", key, "error", err)
					}
				}()
			}
		}

		return nil
	}
}
