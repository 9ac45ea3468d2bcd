package routes

import (
	"Backend-EaseForm/src/controllers"
	"Backend-EaseForm/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// responseRoutes registers the owner-side response endpoints.
func responseRoutes(router fiber.Router, ctrl *controllers.ResponseController) {
	responses := router.Group("/responses", middleware.AuthJWT)

	responses.Delete("/:id", ctrl.DeleteResponse)
}
