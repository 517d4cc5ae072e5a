package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/salonhub/salon-booking-api/db"
	"github.com/salonhub/salon-booking-api/logger"
	"github.com/salonhub/salon-booking-api/models"
	"github.com/salonhub/salon-booking-api/utils"
)

// Notifier delivers an appointment reminder to a WhatsApp number.
type Notifier interface {
	Send(number, message string) error
}

// LogNotifier is the mock delivery channel: reminders are only logged.
type LogNotifier struct{}

func (LogNotifier) Send(number, message string) error {
	logger.SLog.Infow("whatsapp reminder (mock)", "to", number, "message", message)
	return nil
}

var notifier Notifier = LogNotifier{}

// StartCronJobs initializes and starts the cron scheduler for appointment reminders
func StartCronJobs() {
	c := cron.New()
	// Hourly scan for tomorrow's confirmed appointments
	_, err := c.AddFunc("0 * * * *", sendAppointmentReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
}

// sendAppointmentReminders checks for appointments and sends reminders
func sendAppointmentReminders() {
	tomorrow := time.Now().AddDate(0, 0, 1).Format(utils.DateLayout)

	var appointments []models.Appointment
	err := db.DB.Preload("User").Preload("Services.Service").
		Where("status = ? AND date = ?", models.StatusConfirmed, tomorrow).
		Find(&appointments).Error
	if err != nil {
		logger.Log.Error("fetching appointments for reminders failed", zap.Error(err))
		return
	}

	for _, appointment := range appointments {
		number := appointment.WhatsAppNumber
		if number == "" {
			number = appointment.User.Phone
		}
		if err := notifier.Send(number, reminderMessage(&appointment)); err != nil {
			logger.Log.Error("reminder delivery failed",
				zap.Uint("appointment_id", appointment.ID), zap.Error(err))
		}
	}
}

func reminderMessage(appointment *models.Appointment) string {
	services := ""
	for i, line := range appointment.Services {
		if i > 0 {
			services += ", "
		}
		services += line.Service.Name
	}
	return fmt.Sprintf(
		"Hi %s, a reminder for your salon appointment tomorrow at %s (%s). See you then!",
		appointment.User.Name, appointment.Time, services)
}
