package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pizzapie/pizzapie-go/internal/model"
	"github.com/pizzapie/pizzapie-go/internal/repository"
	"github.com/pizzapie/pizzapie-go/internal/service"
)

// memUserStore is a minimal in-memory service.UserStore for handler tests.
type memUserStore struct {
	users map[string]model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]model.User)}
}

func (m *memUserStore) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.ID = "user-1"
	m.users[user.ID] = *user
	return nil
}

func (m *memUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	user := u
	return &user, nil
}

func (m *memUserStore) List(_ context.Context) ([]model.User, error) {
	var users []model.User
	for _, u := range m.users {
		users = append(users, u)
	}
	return users, nil
}

func (m *memUserStore) Update(_ context.Context, user *model.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	m.users[user.ID] = *user
	return nil
}

type discardSender struct{}

func (discardSender) Send(context.Context, string, string, string) error { return nil }

func newTestAuthHandler() *AuthHandler {
	store := newMemUserStore()
	auth := service.NewAuthService(store, "test-secret", time.Hour)
	otp := service.NewOTPService(store, discardSender{}, 5*time.Minute)
	return NewAuthHandler(auth, otp)
}

func post(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestHandleSignup(t *testing.T) {
	h := newTestAuthHandler()

	rec := post(h.HandleSignup, `{"name":"Alice","email":"alice@example.com","password":"hunter2000"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandleSignupMissingField(t *testing.T) {
	h := newTestAuthHandler()

	rec := post(h.HandleSignup, `{"email":"alice@example.com","password":"hunter2000"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSignupBadBody(t *testing.T) {
	h := newTestAuthHandler()

	rec := post(h.HandleSignup, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSignupDuplicateEmail(t *testing.T) {
	h := newTestAuthHandler()

	rec := post(h.HandleSignup, `{"name":"Alice","email":"alice@example.com","password":"hunter2000"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = post(h.HandleSignup, `{"name":"Alice","email":"alice@example.com","password":"hunter2000"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleLogin(t *testing.T) {
	h := newTestAuthHandler()

	rec := post(h.HandleSignup, `{"name":"Alice","email":"alice@example.com","password":"hunter2000"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = post(h.HandleLogin, `{"email":"alice@example.com","password":"hunter2000"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice@example.com", resp.User.Email)

	// The password (and its hash) never appear in the response.
	assert.NotContains(t, rec.Body.String(), "hunter2000")
	assert.NotContains(t, rec.Body.String(), "argon2id")
}

func TestHandleLoginUnknownEmail(t *testing.T) {
	h := newTestAuthHandler()

	rec := post(h.HandleLogin, `{"email":"nobody@example.com","password":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleLoginWrongPassword(t *testing.T) {
	h := newTestAuthHandler()

	rec := post(h.HandleSignup, `{"name":"Alice","email":"alice@example.com","password":"hunter2000"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = post(h.HandleLogin, `{"email":"alice@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleVerifyEmailInvalidOTP(t *testing.T) {
	h := newTestAuthHandler()

	rec := post(h.HandleSignup, `{"name":"Alice","email":"alice@example.com","password":"hunter2000"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = post(h.HandleVerifyEmail, `{"email":"alice@example.com","otp":"000000"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSendOTPUnknownUser(t *testing.T) {
	h := newTestAuthHandler()

	rec := post(h.HandleSendVerificationOTP, `{"email":"nobody@example.com"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
