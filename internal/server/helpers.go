package server

import (
	"errors"
	"log/slog"
	"net/url"

	"folio/internal/middleware"
	"folio/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseBody decodes the JSON request body. Unknown fields are ignored. On failure
// it writes a 400 JSON response and returns errResponseWritten.
func parseBody[T any](c *fiber.Ctx) (*T, error) {
	var v T
	if err := c.BodyParser(&v); err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
		return nil, errResponseWritten
	}
	return &v, nil
}

// persistenceFailure answers with a bare 500: no body, no error detail.
func persistenceFailure(c *fiber.Ctx, err error) error {
	middleware.Logger.WarnContext(c.UserContext(), "Request failed in persistence layer",
		slog.String("method", c.Method()),
		slog.String("path", c.Path()),
		slog.String("error", err.Error()),
	)
	c.Status(fiber.StatusInternalServerError)
	return nil
}

// pathParam returns the URL-decoded route parameter, or the raw value when it
// is not valid percent-encoding.
func pathParam(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}
