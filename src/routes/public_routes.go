package routes

import (
	"time"

	"Backend-EaseForm/src/controllers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// publicFormRoutes registers the anonymous endpoints.
func publicFormRoutes(router fiber.Router, ctrl *controllers.PublicFormController) {
	public := router.Group("/public/forms")

	public.Get("/:id", ctrl.GetPublicForm)

	public.Post("/:id/responses", limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
	}), ctrl.SubmitResponse)
}
