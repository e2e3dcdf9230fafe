package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/domain"
)

// dispara errorResponse con el error dado y devuelve status + cuerpo parseado.
func fireError(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/falla", func(c *fiber.Ctx) error {
		return errorResponse(c, err)
	})

	resp, reqErr := app.Test(httptest.NewRequest("GET", "/falla", nil))
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	body, reqErr := io.ReadAll(resp.Body)
	require.NoError(t, reqErr)
	var parsed dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &parsed))
	return resp.StatusCode, parsed
}

func TestErrorResponseTaxonomy(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validación", domain.NewValidationError().Add("name", "es requerido"), fiber.StatusBadRequest, "VALIDATION"},
		{"categoría ajena", domain.ErrCategoryNotOwned, fiber.StatusForbidden, "FORBIDDEN"},
		{"prohibido", domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
		{"no autorizado", domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
		{"username duplicado", domain.ErrUsernameTaken, fiber.StatusConflict, "DUPLICATE"},
		{"no encontrado", domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{"usuario no encontrado", domain.ErrUserNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{"error desconocido", errors.New("se rompió algo"), fiber.StatusInternalServerError, "INTERNAL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := fireError(t, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}
}

func TestErrorResponseValidationFields(t *testing.T) {
	verr := domain.NewValidationError().Add("price", "debe ser ≥ 0").Add("name", "es requerido")
	status, body := fireError(t, verr)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "es requerido", body.Fields["name"])
	assert.Equal(t, "debe ser ≥ 0", body.Fields["price"])
}
