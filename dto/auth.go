package dto

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required,min=10"`
	Password string `json:"password" validate:"required,min=6"`
	OTP      string `json:"otp"`
	RoleID   uint   `json:"role_id"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type VerifyPhoneRequest struct {
	Phone string `json:"phone" validate:"required"`
}

type VerifyOTPRequest struct {
	Phone string `json:"phone" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}

type UpdateProfileRequest struct {
	ID       uint   `json:"id" validate:"required"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

type ForgotPasswordRequest struct {
	Phone       string `json:"phone" validate:"required"`
	OTP         string `json:"otp" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}
