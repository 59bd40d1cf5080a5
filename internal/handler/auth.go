package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/pizzapie/pizzapie-go/internal/model"
	"github.com/pizzapie/pizzapie-go/internal/service"
)

// AuthHandler handles signup, login and the OTP flows.
type AuthHandler struct {
	auth *service.AuthService
	otp  *service.OTPService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, otp *service.OTPService) *AuthHandler {
	return &AuthHandler{auth: auth, otp: otp}
}

// HandleSignup handles POST /api/users/signup requests.
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if !decodeBody(w, r, &req) {
		return
	}

	_, err := h.auth.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNameRequired),
			errors.Is(err, service.ErrEmailRequired),
			errors.Is(err, service.ErrPasswordRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("error creating user"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "user created successfully"})
}

// HandleLogin handles POST /api/users/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.auth.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse("user not found"))
		case errors.Is(err, service.ErrInvalidPassword):
			writeJSON(w, http.StatusUnauthorized, errorResponse("invalid password"))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleSendVerificationOTP handles POST /api/users/send-verification-otp requests.
func (h *AuthHandler) HandleSendVerificationOTP(w http.ResponseWriter, r *http.Request) {
	h.handleSendOTP(w, r, h.otp.SendVerificationOTP)
}

// HandleSendForgotPasswordOTP handles POST /api/users/send-forgot-password-otp requests.
func (h *AuthHandler) HandleSendForgotPasswordOTP(w http.ResponseWriter, r *http.Request) {
	h.handleSendOTP(w, r, h.otp.SendPasswordResetOTP)
}

// HandleVerifyEmail handles POST /api/users/verify-email requests.
func (h *AuthHandler) HandleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req model.VerifyEmailRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.otp.VerifyEmail(r.Context(), req.Email, req.OTP); err != nil {
		writeOTPError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "email verified"})
}

// HandleResetPassword handles POST /api/users/reset-password requests.
func (h *AuthHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req model.ResetPasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.otp.ResetPassword(r.Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		writeOTPError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "password reset"})
}

func (h *AuthHandler) handleSendOTP(w http.ResponseWriter, r *http.Request, send func(ctx context.Context, email string) error) {
	var req model.SendOTPRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Email == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("email is required"))
		return
	}

	if err := send(r.Context(), req.Email); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse("user not found"))
			return
		}
		// Mail delivery failures land here too; the caller only sees a
		// generic server error.
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "otp sent"})
}

func writeOTPError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse("user not found"))
	case errors.Is(err, service.ErrInvalidOTP):
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid otp"))
	case errors.Is(err, service.ErrOTPExpired):
		writeJSON(w, http.StatusBadRequest, errorResponse("otp expired"))
	case errors.Is(err, service.ErrPasswordRequired):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}
