package dto

type CreateAppointmentRequest struct {
	UserID             uint    `json:"user_id" validate:"required"`
	ServiceIDs         []uint  `json:"service_ids" validate:"required,min=1,dive,required"`
	Date               string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time               string  `json:"time" validate:"required,datetime=15:04"`
	Duration           string  `json:"duration" validate:"required,oneof=30min 45min 1hr 1.5hr 2hr"`
	TotalAmount        float64 `json:"total_amount" validate:"gte=0"`
	SpecialPreferences string  `json:"special_preferences"`
	WhatsAppNumber     string  `json:"whatsapp_number"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}
