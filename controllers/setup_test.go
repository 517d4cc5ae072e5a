package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/salonhub/salon-booking-api/db"
	"github.com/salonhub/salon-booking-api/logger"
	"github.com/salonhub/salon-booking-api/models"
)

// setupTestDB points the global db handle at a throwaway sqlite file with
// the full schema and seeded roles. Each test gets its own database.
func setupTestDB(t *testing.T) {
	t.Helper()

	if logger.Log == nil {
		logger.Init()
	}

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "salon.db")), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Category{},
		&models.Service{},
		&models.Appointment{},
		&models.AppointmentService{},
	))

	db.DB = gdb
	db.SeedRoles()
}

func createTestUser(t *testing.T, phone string) models.User {
	t.Helper()

	var role models.Role
	require.NoError(t, db.DB.Where("name = ?", models.RoleUser).First(&role).Error)

	user := models.User{
		Name:       "Asha",
		Phone:      phone,
		Password:   "not-a-real-hash",
		IsVerified: true,
		RoleID:     role.ID,
	}
	require.NoError(t, db.DB.Create(&user).Error)
	return user
}

func createTestService(t *testing.T, name string, price float64) models.Service {
	t.Helper()

	service := models.Service{
		Name:              name,
		Price:             price,
		DurationInMinutes: 30,
		IsAvailable:       true,
	}
	require.NoError(t, db.DB.Create(&service).Error)
	return service
}

func jsonRequest(t *testing.T, app *fiber.App, method, target string, payload interface{}) *http.Response {
	t.Helper()

	var body []byte
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = raw
	}

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
