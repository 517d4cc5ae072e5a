package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/salonhub/salon-booking-api/db"
	"github.com/salonhub/salon-booking-api/dto"
	"github.com/salonhub/salon-booking-api/logger"
	"github.com/salonhub/salon-booking-api/models"
	"github.com/salonhub/salon-booking-api/utils"
)

// appointmentResponse is the transport shape: user and service rows joined
// and flattened, no internal keys exposed.
type appointmentResponse struct {
	ID                 uint                     `json:"id"`
	Date               string                   `json:"date"`
	Time               string                   `json:"time"`
	Duration           string                   `json:"duration"`
	TotalAmount        float64                  `json:"total_amount"`
	Status             models.AppointmentStatus `json:"status"`
	SpecialPreferences string                   `json:"special_preferences,omitempty"`
	WhatsAppNumber     string                   `json:"whatsapp_number,omitempty"`
	CreatedAt          time.Time                `json:"created_at"`
	User               appointmentUser          `json:"user"`
	Services           []appointmentLine        `json:"services"`
}

type appointmentUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type appointmentLine struct {
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	DurationInMinutes int     `json:"duration_in_minutes"`
}

// upcomingResponse is the reduced projection for the customer's upcoming list.
type upcomingResponse struct {
	ID       uint                     `json:"id"`
	Date     string                   `json:"date"`
	Time     string                   `json:"time"`
	Status   models.AppointmentStatus `json:"status"`
	Services []string                 `json:"services"`
}

func toAppointmentResponse(a models.Appointment) appointmentResponse {
	resp := appointmentResponse{
		ID:                 a.ID,
		Date:               a.Date,
		Time:               a.Time,
		Duration:           a.Duration,
		TotalAmount:        a.TotalAmount,
		Status:             a.Status,
		SpecialPreferences: a.SpecialPreferences,
		WhatsAppNumber:     a.WhatsAppNumber,
		CreatedAt:          a.CreatedAt,
		User: appointmentUser{
			ID:    a.User.ID,
			Name:  a.User.Name,
			Phone: a.User.Phone,
		},
		Services: make([]appointmentLine, 0, len(a.Services)),
	}
	for _, line := range a.Services {
		resp.Services = append(resp.Services, appointmentLine{
			Name:              line.Service.Name,
			Price:             line.Service.Price,
			DurationInMinutes: line.Service.DurationInMinutes,
		})
	}
	return resp
}

// CreateAppointment books one appointment with one line item per service,
// written atomically. A partial failure rolls everything back.
func CreateAppointment(c *fiber.Ctx) error {
	req := new(dto.CreateAppointmentRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Cannot parse JSON",
			Error:   err.Error(),
		})
	}
	if errs := dto.Validate(req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errs,
		})
	}

	var user models.User
	if err := db.DB.First(&user, req.UserID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
			Error:   err.Error(),
		})
	}

	// The IN lookup collapses repeated ids, so the existence check has to
	// count unique ids rather than the raw request slice.
	seen := make(map[uint]bool, len(req.ServiceIDs))
	uniqueIDs := make([]uint, 0, len(req.ServiceIDs))
	for _, id := range req.ServiceIDs {
		if !seen[id] {
			seen[id] = true
			uniqueIDs = append(uniqueIDs, id)
		}
	}

	var services []models.Service
	if err := db.DB.Find(&services, uniqueIDs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}
	if len(services) != len(uniqueIDs) {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "One or more services not found",
		})
	}

	appointment := models.Appointment{
		UserID:             user.ID,
		Date:               req.Date,
		Time:               req.Time,
		Duration:           req.Duration,
		TotalAmount:        req.TotalAmount,
		Status:             models.StatusPending,
		SpecialPreferences: req.SpecialPreferences,
		WhatsAppNumber:     req.WhatsAppNumber,
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&appointment).Error; err != nil {
			return err
		}
		// One line item per requested id, duplicates included: booking the
		// same service twice is a valid order.
		for _, serviceID := range req.ServiceIDs {
			line := models.AppointmentService{
				AppointmentID: appointment.ID,
				ServiceID:     serviceID,
				UserID:        user.ID,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Log.Error("appointment create transaction failed",
			zap.Uint("user_id", user.ID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Preload("User").Preload("Services.Service").
		First(&appointment, appointment.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load created appointment",
			Error:   err.Error(),
		})
	}

	logger.SLog.Infow("appointment booked",
		"appointment_id", appointment.ID, "user_id", user.ID, "services", len(req.ServiceIDs))

	return c.Status(fiber.StatusCreated).JSON(toAppointmentResponse(appointment))
}

// GetAllAppointments lists appointments for the back-office, newest first.
// filter: today | upcoming | pending | confirmed | completed | cancelled.
func GetAllAppointments(c *fiber.Ctx) error {
	query := db.DB.Preload("User").Preload("Services.Service")

	switch filter := c.Query("filter"); filter {
	case "":
		// unfiltered
	case "today":
		query = query.Where("date = ?", utils.Today())
	case "upcoming":
		query = query.Where("date > ?", utils.Today())
	case "pending", "confirmed", "completed", "cancelled":
		query = query.Where("status = ?", filter)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Unknown filter: " + filter,
		})
	}

	var appointments []models.Appointment
	if err := query.Order("created_at DESC").Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}

	out := make([]appointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, toAppointmentResponse(a))
	}
	return c.JSON(out)
}

// GetUserAppointments lists one user's appointments, newest first.
func GetUserAppointments(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var appointments []models.Appointment
	if err := db.DB.Preload("User").Preload("Services.Service").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}

	out := make([]appointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, toAppointmentResponse(a))
	}
	return c.JSON(out)
}

// GetUpcomingAppointments returns the user's not-cancelled appointments
// from today onward, soonest first, in the reduced projection.
func GetUpcomingAppointments(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var appointments []models.Appointment
	if err := db.DB.Preload("Services.Service").
		Where("user_id = ? AND date >= ? AND status <> ?", userID, utils.Today(), models.StatusCancelled).
		Order("date ASC, time ASC").
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch upcoming appointments",
			Error:   err.Error(),
		})
	}

	out := make([]upcomingResponse, 0, len(appointments))
	for _, a := range appointments {
		names := make([]string, 0, len(a.Services))
		for _, line := range a.Services {
			names = append(names, line.Service.Name)
		}
		out = append(out, upcomingResponse{
			ID:       a.ID,
			Date:     a.Date,
			Time:     a.Time,
			Status:   a.Status,
			Services: names,
		})
	}
	return c.JSON(out)
}

// UpdateAppointmentStatus applies a lifecycle transition. Illegal
// transitions are rejected without touching the row.
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	req := new(dto.UpdateAppointmentStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Cannot parse JSON",
			Error:   err.Error(),
		})
	}
	if errs := dto.Validate(req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errs,
		})
	}

	var appointment models.Appointment
	if err := db.DB.First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	if err := appointment.Transition(models.AppointmentStatus(req.Status)); err != nil {
		var invalid *models.InvalidTransitionError
		if errors.As(err, &invalid) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
				Message: "Invalid status transition",
				Error:   invalid.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update status",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&appointment).Update("status", appointment.Status).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update status",
			Error:   err.Error(),
		})
	}

	logger.SLog.Infow("appointment status updated",
		"appointment_id", appointment.ID, "status", appointment.Status)

	return c.JSON(fiber.Map{
		"id":     appointment.ID,
		"status": appointment.Status,
	})
}

// CancelAppointment cancels an appointment scoped to its owner.
func CancelAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	userID := c.Params("userId")

	var appointment models.Appointment
	if err := db.DB.Where("id = ? AND user_id = ?", id, userID).
		First(&appointment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	if err := appointment.Transition(models.StatusCancelled); err != nil {
		var invalid *models.InvalidTransitionError
		if errors.As(err, &invalid) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
				Message: "Appointment can no longer be cancelled",
				Error:   invalid.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to cancel appointment",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&appointment).Update("status", appointment.Status).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to cancel appointment",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"id":     appointment.ID,
		"status": appointment.Status,
	})
}
