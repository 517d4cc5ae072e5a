package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salonhub/salon-booking-api/controllers"
	"github.com/salonhub/salon-booking-api/middleware"
	"github.com/salonhub/salon-booking-api/models"
)

// SetupCatalogRoutes configures category and service routes
func SetupCatalogRoutes(api fiber.Router) {
	categories := api.Group("/categories")
	categories.Get("/", controllers.GetCategories)
	categories.Get("/all", controllers.GetAllCategories)
	categories.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.CreateCategory)
	categories.Get("/:id", controllers.GetCategory)
	categories.Patch("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.UpdateCategory)
	categories.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.DeleteCategory)

	services := api.Group("/services")
	services.Get("/", controllers.GetAllServices)
	services.Get("/category/:categoryId", controllers.GetServicesByCategory)
	services.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.CreateService)
	services.Get("/:id", controllers.GetService)
	services.Put("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.UpdateService)
	services.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.DeleteService)
	services.Post("/:id/image", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.UploadServiceImage)
}
