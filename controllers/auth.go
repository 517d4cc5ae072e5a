package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/salonhub/salon-booking-api/config"
	"github.com/salonhub/salon-booking-api/db"
	"github.com/salonhub/salon-booking-api/dto"
	"github.com/salonhub/salon-booking-api/logger"
	"github.com/salonhub/salon-booking-api/models"
	"github.com/salonhub/salon-booking-api/utils"
)

// duplicatePhoneResponse answers a register attempt for a phone that already
// has an account, per the configured policy.
func duplicatePhoneResponse(c *fiber.Ctx) error {
	if config.RegisterDuplicatePolicy() == config.DuplicateConflict {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "User with this phone already exists",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Registered successfully. Please verify your phone.",
	})
}

// Register handles user registration. The new user starts unverified with
// a short-lived OTP; verification happens through the verify-otp flow.
func Register(c *fiber.Ctx) error {
	req := new(dto.RegisterRequest)
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

	// Duplicate phone: policy decides between idempotent success and 409.
	var existing models.User
	if db.DB.Where("phone = ?", req.Phone).First(&existing).RowsAffected > 0 {
		return duplicatePhoneResponse(c)
	}

	roleID := req.RoleID
	if roleID == 0 {
		var userRole models.Role
		if err := db.DB.Where("name = ?", models.RoleUser).First(&userRole).Error; err != nil {
			logger.Log.Error("default role lookup failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to assign default role",
				Error:   err.Error(),
			})
		}
		roleID = userRole.ID
	}

	var role models.Role
	if err := db.DB.First(&role, roleID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Role not found",
			Error:   err.Error(),
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to hash password",
			Error:   err.Error(),
		})
	}

	otp := req.OTP
	if otp == "" {
		otp = utils.GenerateOTP()
	}

	user := models.User{
		Name:         req.Name,
		Phone:        req.Phone,
		Password:     string(hashedPassword),
		Address:      req.Address,
		IsVerified:   false,
		OTP:          otp,
		OTPExpiresAt: time.Now().Add(utils.OTPTTL),
		RoleID:       role.ID,
		Role:         role,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		// A concurrent register can slip past the lookup above and land on
		// the unique phone constraint instead; same policy applies.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return duplicatePhoneResponse(c)
		}
		logger.Log.Error("user create failed", zap.String("phone", req.Phone), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create user",
			Error:   err.Error(),
		})
	}

	logger.SLog.Infow("user registered", "user_id", user.ID, "role", role.Name)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Registered successfully. Please verify your phone.",
	})
}

// Login authenticates by phone and password and issues a 1-day session token.
func Login(c *fiber.Ctx) error {
	req := new(dto.LoginRequest)
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
	if db.DB.Preload("Role").Where("phone = ?", req.Phone).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
		})
	}

	if !user.IsVerified {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "Phone number is not verified",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "Invalid credentials",
		})
	}

	secret := config.JWTSecret()
	if secret == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "JWT secret is not configured",
		})
	}

	tokenString, err := utils.CreateToken(secret, user.Name, user.Phone, user.Role.Name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to generate token",
			Error:   err.Error(),
		})
	}

	user.Password = ""
	return c.JSON(fiber.Map{
		"token": tokenString,
		"user":  user,
	})
}

// VerifyPhone reports whether the phone belongs to a verified account. The
// storefront uses it to gate the register-vs-login flow.
func VerifyPhone(c *fiber.Ctx) error {
	req := new(dto.VerifyPhoneRequest)
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
	if db.DB.Where("phone = ?", req.Phone).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
		})
	}
	if !user.IsVerified {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "Phone number is not verified",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Phone number is verified",
	})
}

// VerifyOTP completes registration by checking the one-time password.
func VerifyOTP(c *fiber.Ctx) error {
	req := new(dto.VerifyOTPRequest)
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
	if db.DB.Where("phone = ?", req.Phone).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
		})
	}

	if user.OTP != req.OTP || time.Now().After(user.OTPExpiresAt) {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "Invalid or expired OTP",
		})
	}

	updates := map[string]interface{}{"is_verified": true, "otp": ""}
	if err := db.DB.Model(&user).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to verify user",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Phone verified successfully",
	})
}

// GetCurrentUser resolves the Authorization bearer token back to a user
// row. It parses the token itself so the route works without the shared
// middleware chain.
func GetCurrentUser(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "Missing or malformed token",
		})
	}

	claims, err := utils.ParseToken(config.JWTSecret(), strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "Invalid or expired token",
			Error:   err.Error(),
		})
	}

	phone, ok := claims["phone"].(string)
	if !ok || phone == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "Invalid token claims",
		})
	}

	var user models.User
	if db.DB.Preload("Role").Where("phone = ?", phone).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "User not found",
		})
	}

	user.Password = ""
	user.OTP = ""
	return c.JSON(user)
}

// GetProfile returns a user's profile by id query param.
func GetProfile(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Missing id query parameter",
		})
	}

	var user models.User
	if err := db.DB.Preload("Role").First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
			Error:   err.Error(),
		})
	}

	user.Password = ""
	user.OTP = ""
	return c.JSON(user)
}

// UpdateProfile mutates name, address and optionally the password.
func UpdateProfile(c *fiber.Ctx) error {
	req := new(dto.UpdateProfileRequest)
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
	if err := db.DB.First(&user, req.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
			Error:   err.Error(),
		})
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to hash password",
				Error:   err.Error(),
			})
		}
		updates["password"] = string(hashed)
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&user).Updates(updates).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to update profile",
				Error:   err.Error(),
			})
		}
	}

	user.Password = ""
	user.OTP = ""
	return c.JSON(user)
}

// ForgotPassword resets the password after checking the OTP.
func ForgotPassword(c *fiber.Ctx) error {
	req := new(dto.ForgotPasswordRequest)
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
	if db.DB.Where("phone = ?", req.Phone).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
		})
	}

	if user.OTP != req.OTP || time.Now().After(user.OTPExpiresAt) {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "Invalid or expired OTP",
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to hash password",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&user).Updates(map[string]interface{}{
		"password": string(hashed),
		"otp":      "",
	}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to reset password",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Password reset successfully",
	})
}
