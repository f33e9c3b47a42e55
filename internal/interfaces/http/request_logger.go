package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/lagerhub/pkg/logger"
)

// HeaderRequestID header de correlación; se respeta el valor entrante
// si el cliente ya trae uno.
const HeaderRequestID = "X-Request-Id"

// RequestLogger asigna un request id y registra cada petición con
// método, ruta, status y duración.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Locals(HeaderRequestID, reqID)
		c.Set(HeaderRequestID, reqID)

		start := time.Now()
		err := c.Next()

		ev := log.Info()
		if err != nil || c.Response().StatusCode() >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("petición HTTP")
		return err
	}
}
