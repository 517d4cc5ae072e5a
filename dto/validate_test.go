package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fieldNames(errs []FieldError) []string {
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, e.Field)
	}
	return names
}

func TestRegisterRequestValidation(t *testing.T) {
	errs := Validate(&RegisterRequest{})
	assert.ElementsMatch(t, []string{"Name", "Phone", "Password"}, fieldNames(errs))

	errs = Validate(&RegisterRequest{Name: "Asha", Phone: "9876543210", Password: "secret1"})
	assert.Nil(t, errs)

	errs = Validate(&RegisterRequest{Name: "Asha", Phone: "123", Password: "secret1"})
	assert.Equal(t, []string{"Phone"}, fieldNames(errs))
}

func TestCreateAppointmentRequestValidation(t *testing.T) {
	valid := CreateAppointmentRequest{
		UserID:      1,
		ServiceIDs:  []uint{2, 3},
		Date:        "2026-09-01",
		Time:        "14:30",
		Duration:    "1hr",
		TotalAmount: 120,
	}
	assert.Nil(t, Validate(&valid))

	noServices := valid
	noServices.ServiceIDs = []uint{}
	assert.Equal(t, []string{"ServiceIDs"}, fieldNames(Validate(&noServices)))

	badDate := valid
	badDate.Date = "01-09-2026"
	assert.Equal(t, []string{"Date"}, fieldNames(Validate(&badDate)))

	badDuration := valid
	badDuration.Duration = "3hr"
	assert.Equal(t, []string{"Duration"}, fieldNames(Validate(&badDuration)))
}

func TestCreateAppointmentRequestAcceptsAllDurations(t *testing.T) {
	for _, d := range []string{"30min", "45min", "1hr", "1.5hr", "2hr"} {
		req := CreateAppointmentRequest{
			UserID:     1,
			ServiceIDs: []uint{2},
			Date:       "2026-09-01",
			Time:       "10:00",
			Duration:   d,
		}
		assert.Nil(t, Validate(&req), "duration %s should be accepted", d)
	}
}

func TestUpdateStatusRequestValidation(t *testing.T) {
	assert.Nil(t, Validate(&UpdateAppointmentStatusRequest{Status: "confirmed"}))
	assert.NotNil(t, Validate(&UpdateAppointmentStatusRequest{Status: "done"}))
	assert.NotNil(t, Validate(&UpdateAppointmentStatusRequest{}))
}

func TestCreateReviewRequestValidation(t *testing.T) {
	assert.Nil(t, Validate(&CreateReviewRequest{CustomerName: "Meera", Rating: 5}))
	assert.NotNil(t, Validate(&CreateReviewRequest{CustomerName: "Meera", Rating: 6}))
	assert.NotNil(t, Validate(&CreateReviewRequest{Rating: 4}))
}
