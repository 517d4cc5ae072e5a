package db

import (
	"log"

	"github.com/salonhub/salon-booking-api/models"
)

// SeedRoles creates the static reference roles if they don't exist.
func SeedRoles() {
	roles := []models.Role{
		{Name: models.RoleAdmin, Description: "Back-office administrator"},
		{Name: models.RoleUser, Description: "Storefront customer"},
	}

	for _, role := range roles {
		var existing models.Role
		if DB.Where("name = ?", role.Name).First(&existing).RowsAffected == 0 {
			if err := DB.Create(&role).Error; err != nil {
				log.Printf("Failed to seed role %s: %v", role.Name, err)
			}
		}
	}
}
