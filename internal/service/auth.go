package service

import (
	"context"
	"errors"
	"time"

	"github.com/pizzapie/pizzapie-go/internal/crypto"
	"github.com/pizzapie/pizzapie-go/internal/model"
	"github.com/pizzapie/pizzapie-go/internal/repository"
)

var (
	ErrNameRequired     = errors.New("name is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrUserNotFound     = errors.New("user not found")
	ErrPictureRequired  = errors.New("profile_picture_url is required")
)

// AuthService handles account and authentication business logic.
type AuthService struct {
	users     UserStore
	jwtSecret string
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: secret,
		tokenTTL:  tokenTTL,
	}
}

// Register creates a new user account. The password is stored only as an
// Argon2id hash; new accounts start unverified and without the admin role.
func (s *AuthService) Register(ctx context.Context, req model.SignupRequest) (model.UserResponse, error) {
	if req.Name == "" {
		return model.UserResponse{}, ErrNameRequired
	}
	if req.Email == "" {
		return model.UserResponse{}, ErrEmailRequired
	}
	if req.Password == "" {
		return model.UserResponse{}, ErrPasswordRequired
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.UserResponse{}, err
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return model.UserResponse{}, err
	}

	return model.NewUserResponse(user), nil
}

// Login authenticates a user and returns a bearer token. An unknown email is
// reported as ErrUserNotFound, a wrong password as ErrInvalidPassword.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrUserNotFound
		}
		return model.AuthResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidPassword
	}

	token, err := crypto.GenerateToken(user.ID, user.IsAdmin, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		Token: token,
		User:  model.NewUserResponse(user),
	}, nil
}

// GetUser retrieves a user by ID and returns safe user data.
func (s *AuthService) GetUser(ctx context.Context, userID string) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}

	return model.NewUserResponse(user), nil
}

// ListUsers returns every account, stripped to API-safe fields.
func (s *AuthService) ListUsers(ctx context.Context) ([]model.UserResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]model.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, model.NewUserResponse(&users[i]))
	}
	return responses, nil
}

// UpdateName renames the user.
func (s *AuthService) UpdateName(ctx context.Context, userID, name string) (model.UserResponse, error) {
	if name == "" {
		return model.UserResponse{}, ErrNameRequired
	}
	return s.updateUser(ctx, userID, func(u *model.User) {
		u.Name = name
	})
}

// UpdateProfilePicture sets the user's profile picture URL.
func (s *AuthService) UpdateProfilePicture(ctx context.Context, userID, pictureURL string) (model.UserResponse, error) {
	if pictureURL == "" {
		return model.UserResponse{}, ErrPictureRequired
	}
	return s.updateUser(ctx, userID, func(u *model.User) {
		u.ProfilePictureURL = pictureURL
	})
}

func (s *AuthService) updateUser(ctx context.Context, userID string, mutate func(*model.User)) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}

	mutate(user)

	if err := s.users.Update(ctx, user); err != nil {
		return model.UserResponse{}, err
	}
	return model.NewUserResponse(user), nil
}
