package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/schema"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"pending to pending", StatusPending, StatusPending, false},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to pending", StatusConfirmed, StatusPending, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
		{"cancelled to confirmed", StatusCancelled, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestTransition(t *testing.T) {
	a := Appointment{Status: StatusPending}

	err := a.Transition(StatusConfirmed)
	assert.NoError(t, err)
	assert.Equal(t, StatusConfirmed, a.Status)

	err = a.Transition(StatusCompleted)
	assert.NoError(t, err)
	assert.Equal(t, StatusCompleted, a.Status)
}

func TestTransitionRejectsIllegalMove(t *testing.T) {
	a := Appointment{Status: StatusPending}

	err := a.Transition(StatusCompleted)
	assert.Error(t, err)

	var invalid *InvalidTransitionError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, StatusPending, invalid.From)
	assert.Equal(t, StatusCompleted, invalid.To)

	// Status untouched on failure
	assert.Equal(t, StatusPending, a.Status)
}

func TestBeforeCreateDefaultsToPending(t *testing.T) {
	a := Appointment{}
	assert.NoError(t, a.BeforeCreate(nil))
	assert.Equal(t, StatusPending, a.Status)

	b := Appointment{Status: StatusConfirmed}
	assert.NoError(t, b.BeforeCreate(nil))
	assert.Equal(t, StatusConfirmed, b.Status)
}

func TestAppointmentDateColumnStaysText(t *testing.T) {
	// A native date column comes back from the driver as time.Time and
	// would be re-serialized as RFC3339 instead of "2006-01-02".
	s, err := schema.Parse(&Appointment{}, &sync.Map{}, schema.NamingStrategy{})
	assert.NoError(t, err)

	field := s.LookUpField("Date")
	assert.NotNil(t, field)
	assert.Equal(t, schema.String, field.DataType)
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []AppointmentStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		assert.True(t, IsValidStatus(s))
	}
	assert.False(t, IsValidStatus("rescheduled"))
	assert.False(t, IsValidStatus(""))
}
