package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/profile-forge/internal/types"
)

func newTestAuthHandler(t *testing.T) (*AuthHandler, *fakeDB) {
	t.Helper()
	database := newFakeDB()
	userService := newTestUserService(t, database)
	jwtService := setupTestJWTService(t, 24)
	return NewAuthHandler(userService, jwtService), database
}

func postAuth(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	handler, _ := newTestAuthHandler(t)

	w := postAuth(t, handler.Register, types.CreateUserRequest{
		Name:     "Amira Hassan",
		Email:    "amira@example.com",
		Password: "a-strong-password",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "amira@example.com", resp.User.Email)
}

func TestAuthHandler_Register_InvalidRequest(t *testing.T) {
	handler, _ := newTestAuthHandler(t)

	// Password too short
	w := postAuth(t, handler.Register, types.CreateUserRequest{
		Name: "Amira", Email: "amira@example.com", Password: "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Invalid email
	w = postAuth(t, handler.Register, types.CreateUserRequest{
		Name: "Amira", Email: "not-an-email", Password: "a-strong-password",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	handler, _ := newTestAuthHandler(t)

	req := types.CreateUserRequest{
		Name: "Amira", Email: "amira@example.com", Password: "a-strong-password",
	}
	require.Equal(t, http.StatusCreated, postAuth(t, handler.Register, req).Code)
	assert.Equal(t, http.StatusConflict, postAuth(t, handler.Register, req).Code)
}

func TestAuthHandler_Login(t *testing.T) {
	handler, _ := newTestAuthHandler(t)

	require.Equal(t, http.StatusCreated, postAuth(t, handler.Register, types.CreateUserRequest{
		Name: "Amira", Email: "amira@example.com", Password: "a-strong-password",
	}).Code)

	w := postAuth(t, handler.Login, types.LoginRequest{
		Email: "amira@example.com", Password: "a-strong-password",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	handler, _ := newTestAuthHandler(t)

	require.Equal(t, http.StatusCreated, postAuth(t, handler.Register, types.CreateUserRequest{
		Name: "Amira", Email: "amira@example.com", Password: "a-strong-password",
	}).Code)

	w := postAuth(t, handler.Login, types.LoginRequest{
		Email: "amira@example.com", Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_UpdatePasswordWithUserID(t *testing.T) {
	handler, database := newTestAuthHandler(t)

	require.Equal(t, http.StatusCreated, postAuth(t, handler.Register, types.CreateUserRequest{
		Name: "Amira", Email: "amira@example.com", Password: "original-password",
	}).Code)

	user, err := database.GetUserByEmail(context.Background(), "amira@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)

	payload, err := json.Marshal(types.UpdatePasswordRequest{
		CurrentPassword: "original-password",
		NewPassword:     "replacement-password",
	})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, "/auth/password", bytes.NewReader(payload))
	w := httptest.NewRecorder()
	handler.UpdatePasswordWithUserID(w, req, user.ID)

	require.Equal(t, http.StatusOK, w.Code)

	login := postAuth(t, handler.Login, types.LoginRequest{
		Email: "amira@example.com", Password: "replacement-password",
	})
	assert.Equal(t, http.StatusOK, login.Code)
}
