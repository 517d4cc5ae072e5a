package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salonhub/salon-booking-api/controllers"
	"github.com/salonhub/salon-booking-api/middleware"
	"github.com/salonhub/salon-booking-api/models"
	"github.com/salonhub/salon-booking-api/store"
)

// SetupStoreRoutes configures discount and review routes
func SetupStoreRoutes(api fiber.Router, discounts *store.DiscountStore, reviews *store.ReviewStore) {
	d := api.Group("/discounts")
	d.Get("/", controllers.GetDiscounts(discounts))
	d.Get("/quote", controllers.QuoteDiscount(discounts))
	d.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.CreateDiscount(discounts))
	d.Put("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.UpdateDiscount(discounts))
	d.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.DeleteDiscount(discounts))

	r := api.Group("/reviews")
	r.Get("/", controllers.GetReviews(reviews))
	r.Post("/", controllers.CreateReview(reviews))
	r.Patch("/:id/status", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.ModerateReview(reviews))
	r.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.DeleteReview(reviews))
}
