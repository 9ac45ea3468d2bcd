package routes

import (
	"Backend-EaseForm/src/config"
	"Backend-EaseForm/src/controllers"
	"Backend-EaseForm/src/database"
	"Backend-EaseForm/src/jobs"
	"Backend-EaseForm/src/services/authz"
	"Backend-EaseForm/src/services/forms"
	"Backend-EaseForm/src/services/hosts"
	"Backend-EaseForm/src/services/responses"

	"github.com/gofiber/fiber/v2"
)

// InitRoutes wires stores, services and controllers and registers every
// route group under /api.
func InitRoutes(app *fiber.App, cfg config.Config) {
	formStore := database.NewFormStore()
	responseStore := database.NewResponseStore()
	hostStore := database.NewHostStore()

	// The resolver and the bootstrap are the only holders of privileged
	// capabilities.
	resolver := authz.NewResolver(formStore)
	hostSvc := hosts.NewService(hostStore)

	var queue forms.TaskQueue
	if q := jobs.NewQueue(); q != nil {
		queue = q
	}

	formSvc := forms.NewService(formStore, resolver, hostSvc, responseStore, queue)
	responseSvc := responses.NewService(responseStore, formStore, resolver)

	production := cfg.IsProduction()
	formCtrl := controllers.NewFormController(formSvc, cfg.FrontendURL, production)
	publicCtrl := controllers.NewPublicFormController(formSvc, responseSvc, production)
	responseCtrl := controllers.NewResponseController(responseSvc, production)

	api := app.Group("/api")

	authRoutes(api)
	formRoutes(api, formCtrl, responseCtrl)
	publicFormRoutes(api, publicCtrl)
	responseRoutes(api, responseCtrl)
}
