package routes

import (
	"time"

	"Backend-EaseForm/src/controllers"
	"Backend-EaseForm/src/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// authRoutes registers register/login/refresh/logout.
func authRoutes(router fiber.Router) {
	auth := router.Group("/auth")

	// Credential endpoints are the main brute-force target.
	auth.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
	}))

	auth.Post("/register", controllers.RegisterHost)
	auth.Post("/login", controllers.LoginHost)
	auth.Post("/refresh", controllers.RefreshToken)
	auth.Post("/logout", middleware.AuthJWT, controllers.Logout)
}
