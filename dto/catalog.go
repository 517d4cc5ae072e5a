package dto

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type CreateServiceRequest struct {
	Name              string   `json:"name" validate:"required"`
	Description       string   `json:"description"`
	Features          []string `json:"features"`
	Price             float64  `json:"price" validate:"gte=0"`
	DiscountedPrice   float64  `json:"discounted_price" validate:"gte=0"`
	DurationInMinutes int      `json:"duration_in_minutes" validate:"gt=0"`
	Image             string   `json:"image"`
	IsAvailable       *bool    `json:"is_available"`
	CategoryID        uint     `json:"category_id" validate:"required"`
}

type UpdateServiceRequest struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Features          []string `json:"features"`
	Price             *float64 `json:"price" validate:"omitempty,gte=0"`
	DiscountedPrice   *float64 `json:"discounted_price" validate:"omitempty,gte=0"`
	DurationInMinutes *int     `json:"duration_in_minutes" validate:"omitempty,gt=0"`
	Image             string   `json:"image"`
	IsAvailable       *bool    `json:"is_available"`
	CategoryID        uint     `json:"category_id"`
}
