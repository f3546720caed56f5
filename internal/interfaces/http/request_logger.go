package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// RequestLogger registra cada petición con método, ruta, estado y latencia.
// Va después de recover en la cadena para que los panics recuperados también
// queden registrados con su estado 500.
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		// Si el handler devolvió error, el ErrorHandler de Fiber aún no corrió:
		// el estado real sale del error, no de la respuesta.
		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		evt := log.Info()
		if status >= fiber.StatusInternalServerError {
			evt = log.Error()
		} else if status >= fiber.StatusBadRequest {
			evt = log.Warn()
		}
		evt.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}
