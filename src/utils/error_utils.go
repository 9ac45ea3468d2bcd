// error_utils.go
package utils

import (
	"Backend-EaseForm/src/apperrors"
	"Backend-EaseForm/src/models"

	"github.com/gofiber/fiber/v2"
)

// HandleError sends the structured error body with an explicit status.
func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Error:      true,
		Message:    message,
		StatusCode: status,
	})
}

// AppError translates a service error into the structured response using
// the apperrors taxonomy. production controls whether storage detail is
// echoed.
func AppError(c *fiber.Ctx, err error, production bool) error {
	status := apperrors.StatusOf(err)
	return c.Status(status).JSON(models.ErrorResponse{
		Error:      true,
		Message:    apperrors.Public(err, production),
		StatusCode: status,
	})
}
