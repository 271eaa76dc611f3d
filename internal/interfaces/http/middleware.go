package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tu-usuario/catalog-pro/pkg/logger"
)

const requestIDKey = "request_id"

// RequestID asigna un X-Request-ID (uuid) a cada petición si el cliente no
// trae uno, y lo propaga en la respuesta y en locals para el logging.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Locals(requestIDKey, requestID)
		c.Set("X-Request-ID", requestID)
		return c.Next()
	}
}

// GetRequestID devuelve el request id asignado por RequestID, o "" si no hay.
func GetRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// RequestLogger registra método, ruta, estado y duración de cada petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
