package models

import (
	"gorm.io/gorm"

	"github.com/salonhub/salon-booking-api/utils"
)

type Category struct {
	gorm.Model
	Name        string    `json:"name"`
	Slug        string    `json:"slug" gorm:"unique"`
	Description string    `json:"description"`
	Services    []Service `json:"services,omitempty" gorm:"foreignKey:CategoryID"`
}

// BeforeSave derives the routing slug from the name when none is supplied.
func (c *Category) BeforeSave(tx *gorm.DB) error {
	if c.Slug == "" {
		c.Slug = utils.Slugify(c.Name)
	}
	return nil
}
