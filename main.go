package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/salonhub/salon-booking-api/config"
	"github.com/salonhub/salon-booking-api/cron"
	"github.com/salonhub/salon-booking-api/db"
	"github.com/salonhub/salon-booking-api/logger"
	"github.com/salonhub/salon-booking-api/redis"
	"github.com/salonhub/salon-booking-api/routes"
	"github.com/salonhub/salon-booking-api/store"
)

func main() {
	config.Load()
	logger.Init()
	defer logger.Sync()

	db.Migrate()
	redis.InitRedis()

	discounts, err := store.NewDiscountStore(redis.Ctx, redis.StoreBackend{})
	if err != nil {
		log.Fatal("Failed to initialize discount store: ", err)
	}
	reviews, err := store.NewReviewStore(redis.Ctx, redis.StoreBackend{})
	if err != nil {
		log.Fatal("Failed to initialize review store: ", err)
	}

	discounts.Subscribe(func(items []store.Discount) {
		logger.Log.Info("discounts changed", zap.Int("count", len(items)))
	})

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Salon booking API")
	})

	api := app.Group("/api")
	routes.SetupAuthRoutes(api)
	routes.SetupCatalogRoutes(api)
	routes.SetupAppointmentRoutes(api)
	routes.SetupStoreRoutes(api, discounts, reviews)

	cron.StartCronJobs()

	if err := app.Listen(":" + config.Port()); err != nil {
		log.Fatal("Server failed: ", err)
	}
}
