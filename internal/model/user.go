package model

import "time"

// OTPPurpose distinguishes the two one-time-code slots on a user.
type OTPPurpose string

const (
	PurposeVerification  OTPPurpose = "verification"
	PurposePasswordReset OTPPurpose = "passwordReset"
)

// OTP is a pending one-time code. A nil *OTP means no code is outstanding;
// each purpose holds at most one pending code at a time.
type OTP struct {
	Code      string
	ExpiresAt time.Time
}

// User represents a user in the database.
type User struct {
	ID                string
	Name              string
	Email             string
	PasswordHash      string
	IsAdmin           bool
	Verified          bool
	ProfilePictureURL string
	VerificationOTP   *OTP
	PasswordResetOTP  *OTP
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// OTPFor returns the pending code for the given purpose, or nil.
func (u *User) OTPFor(purpose OTPPurpose) *OTP {
	if purpose == PurposePasswordReset {
		return u.PasswordResetOTP
	}
	return u.VerificationOTP
}

// SetOTP replaces any pending code for the given purpose.
func (u *User) SetOTP(purpose OTPPurpose, otp OTP) {
	if purpose == PurposePasswordReset {
		u.PasswordResetOTP = &otp
		return
	}
	u.VerificationOTP = &otp
}

// ClearOTP removes the pending code for the given purpose.
func (u *User) ClearOTP(purpose OTPPurpose) {
	if purpose == PurposePasswordReset {
		u.PasswordResetOTP = nil
		return
	}
	u.VerificationOTP = nil
}

// SignupRequest represents a user registration request.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SendOTPRequest asks for a fresh verification or reset code by email.
type SendOTPRequest struct {
	Email string `json:"email"`
}

// VerifyEmailRequest carries a verification code back to the server.
type VerifyEmailRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// ResetPasswordRequest carries a reset code and the replacement password.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"new_password"`
}

// UpdateNameRequest renames the authenticated user.
type UpdateNameRequest struct {
	Name string `json:"name"`
}

// UpdateProfilePictureRequest sets the authenticated user's picture URL.
type UpdateProfilePictureRequest struct {
	ProfilePictureURL string `json:"profile_picture_url"`
}

// AuthResponse represents a login response with a JWT token and user info.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse represents user data safe for API responses (no hash, no codes).
type UserResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	IsAdmin           bool      `json:"is_admin"`
	Verified          bool      `json:"verified"`
	ProfilePictureURL string    `json:"profile_picture_url,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// NewUserResponse strips a user down to its API-safe fields.
func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		IsAdmin:           u.IsAdmin,
		Verified:          u.Verified,
		ProfilePictureURL: u.ProfilePictureURL,
		CreatedAt:         u.CreatedAt,
	}
}
