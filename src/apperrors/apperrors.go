package apperrors

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Sentinel errors for every failure kind the API can produce. Services wrap
// these with fmt.Errorf("%w: ...") so the boundary can classify with
// errors.Is while keeping the underlying detail for logs.
var (
	ErrUnauthenticated   = errors.New("invalid or missing credentials")
	ErrNotFound          = errors.New("resource not found")
	ErrForbidden         = errors.New("permission denied") // internal only, surfaced as not-found
	ErrAcceptanceClosed  = errors.New("this form is no longer accepting responses")
	ErrDuplicateConflict = errors.New("a response from this device has already been submitted")
	ErrStorage           = errors.New("storage failure")
	ErrBootstrap         = errors.New("failed to initialize host profile")
)

// Storage wraps a collaborator failure so it is classified as ErrStorage.
func Storage(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}

// StatusOf maps an error to its HTTP status. Forbidden maps to 404: the API
// never reveals that a foreign-owned resource exists.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrForbidden):
		return fiber.StatusNotFound
	case errors.Is(err, ErrAcceptanceClosed):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrDuplicateConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// Public returns the message safe to expose for err. Forbidden is reported
// with the not-found message so the two outcomes are indistinguishable, and
// storage/bootstrap detail is suppressed in production.
func Public(err error, production bool) string {
	switch {
	case errors.Is(err, ErrForbidden):
		return ErrNotFound.Error()
	case errors.Is(err, ErrStorage), errors.Is(err, ErrBootstrap):
		if production {
			return "internal server error occurred"
		}
		return err.Error()
	default:
		return err.Error()
	}
}
