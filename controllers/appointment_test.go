package controllers

import (
	"fmt"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhub/salon-booking-api/db"
	"github.com/salonhub/salon-booking-api/dto"
	"github.com/salonhub/salon-booking-api/models"
	"github.com/salonhub/salon-booking-api/utils"
)

func newAppointmentTestApp() *fiber.App {
	app := fiber.New()
	api := app.Group("/api")
	api.Post("/appointments", CreateAppointment)
	api.Get("/appointments", GetAllAppointments)
	api.Patch("/appointments/:id/status", UpdateAppointmentStatus)
	return app
}

func TestCreateAppointmentWritesAllRows(t *testing.T) {
	setupTestDB(t)
	app := newAppointmentTestApp()

	user := createTestUser(t, "9876543210")
	haircut := createTestService(t, "Haircut", 40)
	manicure := createTestService(t, "Manicure", 25)
	facial := createTestService(t, "Facial", 60)

	resp := jsonRequest(t, app, fiber.MethodPost, "/api/appointments", dto.CreateAppointmentRequest{
		UserID:      user.ID,
		ServiceIDs:  []uint{haircut.ID, manicure.ID, facial.ID},
		Date:        "2026-09-15",
		Time:        "14:30",
		Duration:    "1.5hr",
		TotalAmount: 125,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, "2026-09-15", body["date"])
	assert.Equal(t, "pending", body["status"])

	var appointments int64
	db.DB.Model(&models.Appointment{}).Count(&appointments)
	assert.EqualValues(t, 1, appointments)

	var lines []models.AppointmentService
	require.NoError(t, db.DB.Find(&lines).Error)
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, user.ID, line.UserID)
	}
}

func TestCreateAppointmentRollsBackOnLineItemFailure(t *testing.T) {
	setupTestDB(t)
	app := newAppointmentTestApp()

	user := createTestUser(t, "9876543210")
	haircut := createTestService(t, "Haircut", 40)

	// With the line-item table gone the second write in the transaction
	// fails; the appointment row must not survive.
	require.NoError(t, db.DB.Migrator().DropTable(&models.AppointmentService{}))

	resp := jsonRequest(t, app, fiber.MethodPost, "/api/appointments", dto.CreateAppointmentRequest{
		UserID:     user.ID,
		ServiceIDs: []uint{haircut.ID},
		Date:       "2026-09-15",
		Time:       "14:30",
		Duration:   "30min",
	})
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var appointments int64
	db.DB.Model(&models.Appointment{}).Count(&appointments)
	assert.EqualValues(t, 0, appointments)
}

func TestCreateAppointmentAcceptsRepeatedServiceIDs(t *testing.T) {
	setupTestDB(t)
	app := newAppointmentTestApp()

	user := createTestUser(t, "9876543210")
	haircut := createTestService(t, "Haircut", 40)
	manicure := createTestService(t, "Manicure", 25)

	resp := jsonRequest(t, app, fiber.MethodPost, "/api/appointments", dto.CreateAppointmentRequest{
		UserID:      user.ID,
		ServiceIDs:  []uint{haircut.ID, haircut.ID, manicure.ID},
		Date:        "2026-09-15",
		Time:        "10:00",
		Duration:    "2hr",
		TotalAmount: 105,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var lines []models.AppointmentService
	require.NoError(t, db.DB.Find(&lines).Error)
	assert.Len(t, lines, 3)
}

func TestCreateAppointmentUnknownServiceNotFound(t *testing.T) {
	setupTestDB(t)
	app := newAppointmentTestApp()

	user := createTestUser(t, "9876543210")
	haircut := createTestService(t, "Haircut", 40)

	resp := jsonRequest(t, app, fiber.MethodPost, "/api/appointments", dto.CreateAppointmentRequest{
		UserID:     user.ID,
		ServiceIDs: []uint{haircut.ID, haircut.ID + 99},
		Date:       "2026-09-15",
		Time:       "10:00",
		Duration:   "1hr",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var appointments int64
	db.DB.Model(&models.Appointment{}).Count(&appointments)
	assert.EqualValues(t, 0, appointments)
}

func TestGetAllAppointmentsFilters(t *testing.T) {
	setupTestDB(t)
	app := newAppointmentTestApp()

	user := createTestUser(t, "9876543210")
	yesterday := time.Now().AddDate(0, 0, -1).Format(utils.DateLayout)
	tomorrow := time.Now().AddDate(0, 0, 1).Format(utils.DateLayout)

	seed := []models.Appointment{
		{UserID: user.ID, Date: yesterday, Time: "10:00", Duration: "1hr", Status: models.StatusCompleted},
		{UserID: user.ID, Date: utils.Today(), Time: "11:00", Duration: "1hr", Status: models.StatusConfirmed},
		{UserID: user.ID, Date: tomorrow, Time: "12:00", Duration: "1hr", Status: models.StatusPending},
	}
	for i := range seed {
		require.NoError(t, db.DB.Create(&seed[i]).Error)
	}

	dates := func(target string) []string {
		resp := jsonRequest(t, app, fiber.MethodGet, target, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var out []map[string]interface{}
		decodeBody(t, resp, &out)
		got := make([]string, 0, len(out))
		for _, a := range out {
			got = append(got, a["date"].(string))
		}
		return got
	}

	// The unfiltered list also pins the wire shape: dates come back as the
	// same "2006-01-02" strings that went in.
	assert.ElementsMatch(t, []string{yesterday, utils.Today(), tomorrow}, dates("/api/appointments"))
	assert.Equal(t, []string{utils.Today()}, dates("/api/appointments?filter=today"))
	assert.Equal(t, []string{tomorrow}, dates("/api/appointments?filter=upcoming"))
	assert.Equal(t, []string{tomorrow}, dates("/api/appointments?filter=pending"))

	resp := jsonRequest(t, app, fiber.MethodGet, "/api/appointments?filter=sometime", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateStatusUnknownIDLeavesRowsUntouched(t *testing.T) {
	setupTestDB(t)
	app := newAppointmentTestApp()

	user := createTestUser(t, "9876543210")
	appointment := models.Appointment{UserID: user.ID, Date: utils.Today(), Time: "10:00", Duration: "1hr"}
	require.NoError(t, db.DB.Create(&appointment).Error)

	resp := jsonRequest(t, app, fiber.MethodPatch, "/api/appointments/9999/status",
		dto.UpdateAppointmentStatusRequest{Status: "confirmed"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var reloaded models.Appointment
	require.NoError(t, db.DB.First(&reloaded, appointment.ID).Error)
	assert.Equal(t, models.StatusPending, reloaded.Status)
}

func TestUpdateStatusRejectsIllegalTransition(t *testing.T) {
	setupTestDB(t)
	app := newAppointmentTestApp()

	user := createTestUser(t, "9876543210")
	appointment := models.Appointment{UserID: user.ID, Date: utils.Today(), Time: "10:00", Duration: "1hr"}
	require.NoError(t, db.DB.Create(&appointment).Error)

	target := fmt.Sprintf("/api/appointments/%d/status", appointment.ID)
	resp := jsonRequest(t, app, fiber.MethodPatch, target,
		dto.UpdateAppointmentStatusRequest{Status: "completed"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var reloaded models.Appointment
	require.NoError(t, db.DB.First(&reloaded, appointment.ID).Error)
	assert.Equal(t, models.StatusPending, reloaded.Status)

	resp = jsonRequest(t, app, fiber.MethodPatch, target,
		dto.UpdateAppointmentStatusRequest{Status: "confirmed"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, db.DB.First(&reloaded, appointment.ID).Error)
	assert.Equal(t, models.StatusConfirmed, reloaded.Status)
}
