package dto

import "time"

type DiscountRequest struct {
	Name       string    `json:"name" validate:"required"`
	Type       string    `json:"type" validate:"required,oneof=percentage fixed"`
	Value      float64   `json:"value" validate:"required,gt=0"`
	Services   []string  `json:"services"`
	Categories []string  `json:"categories"`
	Tiers      []string  `json:"tiers"`
	ValidFrom  time.Time `json:"valid_from" validate:"required"`
	ValidUntil time.Time `json:"valid_until" validate:"required,gtfield=ValidFrom"`
}

type CreateReviewRequest struct {
	AppointmentID string `json:"appointment_id"`
	CustomerName  string `json:"customer_name" validate:"required"`
	Rating        int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment       string `json:"comment"`
}

type ModerateReviewRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}
