package http_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/dulcehorno/panaderia-api/internal/interfaces/http"
)

func TestRequestLogger_RegistraMetodoRutaYEstado(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"pong": true})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := buf.String()
	assert.Contains(t, out, `"method":"GET"`)
	assert.Contains(t, out, `"path":"/ping"`)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"level":"info"`)
}

func TestRequestLogger_ErroresDeClienteComoWarn(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	// Sin rutas registradas: cualquier petición termina en 404

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/no-existe", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	out := buf.String()
	assert.Contains(t, out, `"status":404`)
	assert.Contains(t, out, `"level":"warn"`)
}
