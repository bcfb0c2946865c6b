package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/profile-forge/internal/config"
	"github.com/jonathan/profile-forge/internal/db"
	"github.com/jonathan/profile-forge/internal/types"
)

// fakeDB is an in-memory DBClient for unit tests.
type fakeDB struct {
	users map[uuid.UUID]*db.User
	fail  error
}

func newFakeDB() *fakeDB {
	return &fakeDB{users: make(map[uuid.UUID]*db.User)}
}

func (f *fakeDB) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	if f.fail != nil {
		return false, f.fail
	}
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDB) CreateUser(ctx context.Context, name, email string) (uuid.UUID, error) {
	if f.fail != nil {
		return uuid.Nil, f.fail
	}
	id := uuid.New()
	now := time.Now()
	f.users[id] = &db.User{ID: id, Name: name, Email: email, CreatedAt: now, UpdatedAt: now}
	return id, nil
}

func (f *fakeDB) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	u, ok := f.users[userID]
	if !ok {
		return errors.New("user not found")
	}
	u.PasswordHash = passwordHash
	u.PasswordSet = true
	return nil
}

func (f *fakeDB) GetUser(ctx context.Context, id uuid.UUID) (*db.User, error) {
	return f.users[id], nil
}

func (f *fakeDB) GetUserByEmail(ctx context.Context, email string) (*db.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func newTestUserService(t *testing.T, database DBClient) *UserService {
	t.Helper()
	t.Setenv("BCRYPT_COST", "10") // keep hashing fast in tests
	passwordConfig, err := config.NewPasswordConfig()
	require.NoError(t, err)
	return NewUserService(database, passwordConfig)
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	database := newFakeDB()
	service := newTestUserService(t, database)
	ctx := context.Background()

	user, err := service.Register(ctx, &types.CreateUserRequest{
		Name:     "Amira Hassan",
		Email:    "amira@example.com",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "Amira Hassan", user.Name)
	assert.NotEqual(t, uuid.Nil, user.ID)

	loggedIn, err := service.Login(ctx, &types.LoginRequest{
		Email:    "amira@example.com",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	database := newFakeDB()
	service := newTestUserService(t, database)
	ctx := context.Background()

	_, err := service.Register(ctx, &types.CreateUserRequest{
		Name: "First", Email: "amira@example.com", Password: "password-one",
	})
	require.NoError(t, err)

	_, err = service.Register(ctx, &types.CreateUserRequest{
		Name: "Second", Email: "amira@example.com", Password: "password-two",
	})
	require.Error(t, err)
	var dupErr *ErrEmailAlreadyExists
	assert.ErrorAs(t, err, &dupErr)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	database := newFakeDB()
	service := newTestUserService(t, database)
	ctx := context.Background()

	_, err := service.Register(ctx, &types.CreateUserRequest{
		Name: "Amira", Email: "amira@example.com", Password: "the-right-password",
	})
	require.NoError(t, err)

	_, err = service.Login(ctx, &types.LoginRequest{
		Email: "amira@example.com", Password: "the-wrong-password",
	})
	var credErr *ErrInvalidCredentials
	assert.ErrorAs(t, err, &credErr)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	service := newTestUserService(t, newFakeDB())

	_, err := service.Login(context.Background(), &types.LoginRequest{
		Email: "nobody@example.com", Password: "whatever-password",
	})
	var credErr *ErrInvalidCredentials
	assert.ErrorAs(t, err, &credErr)
}

func TestUserService_UpdatePassword(t *testing.T) {
	database := newFakeDB()
	service := newTestUserService(t, database)
	ctx := context.Background()

	user, err := service.Register(ctx, &types.CreateUserRequest{
		Name: "Amira", Email: "amira@example.com", Password: "original-password",
	})
	require.NoError(t, err)

	// Wrong current password is rejected
	err = service.UpdatePassword(ctx, user.ID, "not-the-password", "new-password-123")
	var mismatchErr *ErrPasswordMismatch
	assert.ErrorAs(t, err, &mismatchErr)

	// Correct current password succeeds
	err = service.UpdatePassword(ctx, user.ID, "original-password", "new-password-123")
	require.NoError(t, err)

	_, err = service.Login(ctx, &types.LoginRequest{
		Email: "amira@example.com", Password: "new-password-123",
	})
	assert.NoError(t, err)
}

func TestUserService_UpdatePassword_UnknownUser(t *testing.T) {
	service := newTestUserService(t, newFakeDB())

	err := service.UpdatePassword(context.Background(), uuid.New(), "old-password", "new-password")
	var notFoundErr *ErrUserNotFound
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestToAPIUser(t *testing.T) {
	now := time.Now()
	dbUser := &db.User{
		ID:           uuid.New(),
		Name:         "Amira Hassan",
		Email:        "amira@example.com",
		PasswordHash: "hashed-password",
		PasswordSet:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	apiUser := toAPIUser(dbUser)
	require.NotNil(t, apiUser)
	assert.Equal(t, dbUser.ID, apiUser.ID)
	assert.Equal(t, dbUser.Name, apiUser.Name)
	assert.Equal(t, dbUser.Email, apiUser.Email)

	assert.Nil(t, toAPIUser(nil))
}
