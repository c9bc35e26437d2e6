package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booktracker-backend/internal/domains/user"
	"booktracker-backend/pkg/jwt"
)

type fakeRepo struct {
	users map[uuid.UUID]*user.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[uuid.UUID]*user.User)}
}

func (f *fakeRepo) Create(_ context.Context, u *user.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeRepo) GetByIdentifier(_ context.Context, identifier string) (*user.User, error) {
	for _, u := range f.users {
		if u.Username == identifier || u.Email == identifier {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func newTestService() (user.Service, *fakeRepo) {
	repo := newFakeRepo()
	manager := jwt.NewManager("test-secret", 15*time.Minute, 72*time.Hour)
	return NewUserService(repo, manager), repo
}

func registerAlice(t *testing.T, svc user.Service) *user.UserResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), user.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	return resp
}

func TestRegister(t *testing.T) {
	svc, repo := newTestService()

	resp := registerAlice(t, svc)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "alice@example.com", resp.Email)

	stored := repo.users[resp.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct horse", stored.PasswordHash)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newTestService()
	registerAlice(t, svc)

	_, err := svc.Register(context.Background(), user.RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "correct horse",
	})
	assert.ErrorIs(t, err, user.ErrUsernameTaken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	registerAlice(t, svc)

	_, err := svc.Register(context.Background(), user.RegisterRequest{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "correct horse",
	})
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestRegisterWeakPassword(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), user.RegisterRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "short",
	})
	assert.Error(t, err)
}

func TestLoginByUsernameAndEmail(t *testing.T) {
	svc, _ := newTestService()
	registerAlice(t, svc)

	for _, identifier := range []string{"alice", "alice@example.com"} {
		resp, err := svc.Login(context.Background(), user.LoginRequest{
			Username: identifier,
			Password: "correct horse",
		})
		require.NoError(t, err, identifier)
		assert.NotEmpty(t, resp.Access)
		assert.NotEmpty(t, resp.Refresh)
		assert.Equal(t, "alice", resp.User.Username)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService()
	registerAlice(t, svc)

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Username: "alice",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Username: "nobody",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestRefreshRoundTrip(t *testing.T) {
	svc, _ := newTestService()
	registerAlice(t, svc)

	login, err := svc.Login(context.Background(), user.LoginRequest{
		Username: "alice",
		Password: "correct horse",
	})
	require.NoError(t, err)

	pair, err := svc.Refresh(context.Background(), user.RefreshTokenRequest{
		RefreshToken: login.Refresh,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newTestService()
	registerAlice(t, svc)

	login, err := svc.Login(context.Background(), user.LoginRequest{
		Username: "alice",
		Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), user.RefreshTokenRequest{
		RefreshToken: login.Access,
	})
	assert.ErrorIs(t, err, user.ErrInvalidRefresh)
}
