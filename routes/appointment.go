package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salonhub/salon-booking-api/controllers"
	"github.com/salonhub/salon-booking-api/middleware"
	"github.com/salonhub/salon-booking-api/models"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(api fiber.Router) {
	appointment := api.Group("/appointments", middleware.Protected())
	appointment.Post("/", controllers.CreateAppointment)
	appointment.Get("/", middleware.RequireRole(models.RoleAdmin), controllers.GetAllAppointments)
	appointment.Get("/user/:userId", controllers.GetUserAppointments)
	appointment.Get("/user/:userId/upcoming", controllers.GetUpcomingAppointments)
	appointment.Patch("/:id/status", middleware.RequireRole(models.RoleAdmin), controllers.UpdateAppointmentStatus)
	appointment.Patch("/:id/cancel/user/:userId", controllers.CancelAppointment)
}
