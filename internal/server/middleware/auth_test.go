package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTokenValidator is a test implementation of TokenValidator.
type fakeTokenValidator struct {
	validTokens map[string]uuid.UUID
}

func newFakeTokenValidator() *fakeTokenValidator {
	return &fakeTokenValidator{validTokens: make(map[string]uuid.UUID)}
}

func (v *fakeTokenValidator) addValidToken(token string, userID uuid.UUID) {
	v.validTokens[token] = userID
}

func (v *fakeTokenValidator) ValidateToken(tokenString string) (UserIDGetter, error) {
	userID, ok := v.validTokens[tokenString]
	if !ok {
		return nil, fmt.Errorf("invalid token")
	}
	return &fakeClaims{userID: userID}, nil
}

type fakeClaims struct {
	userID uuid.UUID
}

func (c *fakeClaims) GetUserID() uuid.UUID {
	return c.userID
}

func runMiddleware(t *testing.T, validator TokenValidator, authHeader string) (*httptest.ResponseRecorder, bool, uuid.UUID) {
	t.Helper()

	handlerCalled := false
	var contextUserID uuid.UUID
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		extracted, err := GetUserID(r)
		require.NoError(t, err)
		contextUserID = extracted
		w.WriteHeader(http.StatusOK)
	})

	wrapped := AuthMiddleware(validator)(handler)

	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	return w, handlerCalled, contextUserID
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	validator := newFakeTokenValidator()
	userID := uuid.New()
	validator.addValidToken("valid-test-token", userID)

	w, called, contextUserID := runMiddleware(t, validator, "Bearer valid-test-token")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
	assert.Equal(t, userID, contextUserID)
}

func TestAuthMiddleware_CaseInsensitiveBearer(t *testing.T) {
	validator := newFakeTokenValidator()
	userID := uuid.New()
	validator.addValidToken("tok", userID)

	w, called, _ := runMiddleware(t, validator, "bearer tok")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	validator := newFakeTokenValidator()

	w, called, _ := runMiddleware(t, validator, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	validator := newFakeTokenValidator()
	validator.addValidToken("tok", uuid.New())

	for _, header := range []string{"tok", "Bearer", "Basic tok", "Bearer tok extra"} {
		w, called, _ := runMiddleware(t, validator, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.False(t, called, "header %q", header)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	validator := newFakeTokenValidator()

	w, called, _ := runMiddleware(t, validator, "Bearer unknown-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestGetUserID_NotInContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)

	_, err := GetUserID(req)
	assert.Error(t, err)
}
