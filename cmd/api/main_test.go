package main

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El middleware de swagger entra en pánico al arrancar si el archivo no
// existe, así que el spec estático tiene que estar versionado junto al binario.
const swaggerSpecPath = "../../docs/swagger.json"

func TestSwaggerSpec_ExisteYEsValido(t *testing.T) {
	raw, err := os.ReadFile(swaggerSpecPath)
	require.NoError(t, err, "el spec de swagger debe estar versionado en docs/")

	var spec struct {
		Swagger string                     `json:"swagger"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(raw, &spec))
	assert.Equal(t, "2.0", spec.Swagger)
	assert.NotEmpty(t, spec.Paths)
	assert.Contains(t, spec.Paths, "/api/auth/login")
	assert.Contains(t, spec.Paths, "/health")
}

func TestSwaggerSpec_ElMiddlewareArrancaYSirveLaUI(t *testing.T) {
	app := fiber.New()
	// Misma configuración que main, con la ruta relativa al paquete.
	require.NotPanics(t, func() {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerSpecPath,
			Path:     "docs",
			Title:    "Mentoria API",
		}))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/docs", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
