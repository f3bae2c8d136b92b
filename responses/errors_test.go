package responses

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", NewValidation("Cart is empty"), fiber.StatusBadRequest, "Cart is empty"},
		{"not found", NewNotFound("Order not found"), fiber.StatusNotFound, "Order not found"},
		{"not authorized", NewNotAuthorized("Not authorized"), fiber.StatusForbidden, "Not authorized"},
		{"invalid transition", NewInvalidTransition("Cannot cancel this order"), fiber.StatusBadRequest, "Cannot cancel this order"},
		{"unclassified", errors.New("boom"), fiber.StatusInternalServerError, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return FromError(c, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.message, body.Message)
		})
	}
}
