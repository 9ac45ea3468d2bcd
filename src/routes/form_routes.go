package routes

import (
	"Backend-EaseForm/src/controllers"
	"Backend-EaseForm/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// formRoutes registers the owner-scoped form management endpoints.
func formRoutes(router fiber.Router, ctrl *controllers.FormController, responseCtrl *controllers.ResponseController) {
	forms := router.Group("/forms", middleware.AuthJWT)

	forms.Post("/", ctrl.CreateForm)
	forms.Get("/", ctrl.ListForms)
	forms.Get("/:id", ctrl.GetForm)
	forms.Put("/:id", ctrl.UpdateForm)
	forms.Patch("/:id/stop", ctrl.StopForm)
	forms.Get("/:id/qr", ctrl.GetFormQR)
	forms.Delete("/:id", ctrl.DeleteForm)

	forms.Get("/:id/responses", responseCtrl.ListFormResponses)
}
