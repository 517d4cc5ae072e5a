package models

import (
	"fmt"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentDurations are the accepted values for the duration field.
var AppointmentDurations = []string{"30min", "45min", "1hr", "1.5hr", "2hr"}

// statusTransitions is the full lifecycle table. Completed and cancelled
// are terminal.
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// InvalidTransitionError is returned when a status change is not in the
// transition table.
type InvalidTransitionError struct {
	From AppointmentStatus
	To   AppointmentStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// IsValidStatus reports whether s is one of the known lifecycle states.
func IsValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether the lifecycle allows from -> to.
func CanTransition(from, to AppointmentStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Appointment struct {
	gorm.Model
	UserID             uint                 `json:"user_id"`
	User               User                 `json:"user,omitempty" gorm:"foreignKey:UserID"`
	// Date is stored as an ISO "2006-01-02" string. Text storage keeps the
	// wire shape stable and compares correctly both in SQL and in Go.
	Date               string               `json:"date"`
	Time               string               `json:"time"`
	Duration           string               `json:"duration"`
	TotalAmount        float64              `json:"total_amount"`
	Status             AppointmentStatus    `json:"status"`
	SpecialPreferences string               `json:"special_preferences"`
	WhatsAppNumber     string               `json:"whatsapp_number"`
	Services           []AppointmentService `json:"services,omitempty" gorm:"foreignKey:AppointmentID"`
}

// AppointmentService is one booked line item. The user id is denormalized
// so per-user service history does not need a join through appointments.
type AppointmentService struct {
	gorm.Model
	AppointmentID uint        `json:"appointment_id"`
	Appointment   Appointment `json:"-" gorm:"foreignKey:AppointmentID"`
	ServiceID     uint        `json:"service_id"`
	Service       Service     `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	UserID        uint        `json:"user_id"`
	User          User        `json:"-" gorm:"foreignKey:UserID"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}

// Transition moves the appointment to newStatus, rejecting anything the
// lifecycle table does not allow. It does not persist.
func (a *Appointment) Transition(newStatus AppointmentStatus) error {
	if !CanTransition(a.Status, newStatus) {
		return &InvalidTransitionError{From: a.Status, To: newStatus}
	}
	a.Status = newStatus
	return nil
}
