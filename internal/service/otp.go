package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pizzapie/pizzapie-go/internal/crypto"
	"github.com/pizzapie/pizzapie-go/internal/email"
	"github.com/pizzapie/pizzapie-go/internal/model"
	"github.com/pizzapie/pizzapie-go/internal/repository"
)

var (
	ErrInvalidOTP = errors.New("invalid otp")
	ErrOTPExpired = errors.New("otp expired")
)

// OTPService issues and verifies single-use numeric codes bound to a user and
// a purpose. Each purpose holds one slot: issuing overwrites any pending code
// unconditionally, and a successful verify clears it.
type OTPService struct {
	users UserStore
	mail  email.Sender
	ttl   time.Duration
}

// NewOTPService creates a new OTPService.
func NewOTPService(users UserStore, mail email.Sender, ttl time.Duration) *OTPService {
	return &OTPService{
		users: users,
		mail:  mail,
		ttl:   ttl,
	}
}

// SendVerificationOTP issues a fresh email-verification code and mails it.
func (s *OTPService) SendVerificationOTP(ctx context.Context, userEmail string) error {
	return s.issue(ctx, userEmail, model.PurposeVerification,
		"Verify your email",
		"We received a request to verify your email. Use the following OTP to complete the process:")
}

// SendPasswordResetOTP issues a fresh password-reset code and mails it.
func (s *OTPService) SendPasswordResetOTP(ctx context.Context, userEmail string) error {
	return s.issue(ctx, userEmail, model.PurposePasswordReset,
		"Reset your password",
		"We received a request to reset your password. Use the following OTP to complete the process:")
}

// VerifyEmail checks a verification code and, on success, marks the user
// verified and clears the slot.
func (s *OTPService) VerifyEmail(ctx context.Context, userEmail, code string) error {
	user, err := s.getUser(ctx, userEmail)
	if err != nil {
		return err
	}

	if err := checkAndClearOTP(user, model.PurposeVerification, code); err != nil {
		return err
	}
	user.Verified = true

	return s.users.Update(ctx, user)
}

// ResetPassword checks a reset code and, on success, replaces the user's
// password hash and clears the slot in the same update.
func (s *OTPService) ResetPassword(ctx context.Context, userEmail, code, newPassword string) error {
	if newPassword == "" {
		return ErrPasswordRequired
	}

	user, err := s.getUser(ctx, userEmail)
	if err != nil {
		return err
	}

	if err := checkAndClearOTP(user, model.PurposePasswordReset, code); err != nil {
		return err
	}

	hash, err := crypto.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash

	return s.users.Update(ctx, user)
}

func (s *OTPService) issue(ctx context.Context, userEmail string, purpose model.OTPPurpose, subject, intro string) error {
	user, err := s.getUser(ctx, userEmail)
	if err != nil {
		return err
	}

	code, err := crypto.GenerateOTP()
	if err != nil {
		return err
	}

	user.SetOTP(purpose, model.OTP{
		Code:      code,
		ExpiresAt: time.Now().Add(s.ttl),
	})

	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	validity := fmt.Sprintf("%d minutes", int(s.ttl.Minutes()))
	body, err := email.RenderOTPEmail(intro, code, validity)
	if err != nil {
		return err
	}

	if err := s.mail.Send(ctx, user.Email, subject, body); err != nil {
		return fmt.Errorf("delivering otp: %w", err)
	}
	return nil
}

// checkAndClearOTP applies the code contract: no pending code or a mismatch
// is ErrInvalidOTP; a matching code past its expiry is ErrOTPExpired. The
// mismatch check runs first, so an expired slot probed with a wrong code
// still reads as invalid. Success clears the slot in memory; the caller
// persists the user.
func checkAndClearOTP(user *model.User, purpose model.OTPPurpose, code string) error {
	slot := user.OTPFor(purpose)
	if slot == nil || slot.Code != code {
		return ErrInvalidOTP
	}
	if time.Now().After(slot.ExpiresAt) {
		return ErrOTPExpired
	}
	user.ClearOTP(purpose)
	return nil
}

func (s *OTPService) getUser(ctx context.Context, userEmail string) (*model.User, error) {
	user, err := s.users.GetByEmail(ctx, userEmail)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
