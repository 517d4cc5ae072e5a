package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salonhub/salon-booking-api/controllers"
	"github.com/salonhub/salon-booking-api/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(api fiber.Router) {
	auth := api.Group("/auth")

	// Public routes
	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)
	auth.Post("/verify-phone", controllers.VerifyPhone)
	auth.Post("/verify-otp", controllers.VerifyOTP)
	auth.Post("/forgot-password", controllers.ForgotPassword)

	// Protected routes. /me does its own token parsing.
	auth.Get("/me", controllers.GetCurrentUser)
	auth.Get("/profile", middleware.Protected(), controllers.GetProfile)
	auth.Put("/profile", middleware.Protected(), controllers.UpdateProfile)
}
