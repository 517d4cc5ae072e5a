package db

import (
	"fmt"
	"log"

	"github.com/salonhub/salon-booking-api/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Category{},
		&models.Service{},
		&models.Appointment{},
		&models.AppointmentService{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	SeedRoles()

	fmt.Println("✅ Migrations applied successfully!")
}
