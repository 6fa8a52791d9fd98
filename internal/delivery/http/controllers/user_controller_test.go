package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetmatch/internal/delivery/http/helpers"
	"meetmatch/internal/domain"
)

// fakeUserService implements domain.UserService for handler tests.
type fakeUserService struct {
	user   *domain.User
	err    error
	lastID int
}

func (f *fakeUserService) GetByID(ctx context.Context, id int) (*domain.User, error) {
	f.lastID = id
	return f.user, f.err
}

func TestUserController_GetProfile(t *testing.T) {
	bio := "kahve tutkunu"
	svc := &fakeUserService{user: &domain.User{ID: 1, Username: "demo_user", Name: "Ahmet Kaya", Bio: &bio}}
	c := NewUserController(testLogger, svc)

	req := asActor(httptest.NewRequest(http.MethodGet, "/user/profile", nil), 1)
	rec := httptest.NewRecorder()
	c.GetProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var user domain.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "demo_user", user.Username)
	assert.Equal(t, 1, svc.lastID)
}

func TestUserController_GetProfile_not_found(t *testing.T) {
	c := NewUserController(testLogger, &fakeUserService{err: domain.ErrUserNotFound})

	req := asActor(httptest.NewRequest(http.MethodGet, "/user/profile", nil), 1)
	rec := httptest.NewRecorder()
	c.GetProfile(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body helpers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User not found", body.Message)
}

func TestUserController_GetProfile_error(t *testing.T) {
	c := NewUserController(testLogger, &fakeUserService{err: errors.New("boom")})

	req := asActor(httptest.NewRequest(http.MethodGet, "/user/profile", nil), 1)
	rec := httptest.NewRecorder()
	c.GetProfile(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
