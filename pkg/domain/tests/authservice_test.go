package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales/pkg/domain/model"
	"sales/pkg/domain/service"
)

var admin = service.AdminCredentials{Username: "admin", Password: "s3cret"}

func setupAuth(t *testing.T) (service.AuthService, *mockUserRepository, *mockEventDispatcher) {
	repo := newMockUserRepository()
	dispatcher := &mockEventDispatcher{}
	authService := service.NewAuthService(admin, repo, &mockPasswordManager{}, dispatcher)
	return authService, repo, dispatcher
}

func TestAuthenticateAdmin(t *testing.T) {
	authService, repo, dispatcher := setupAuth(t)
	ctx := context.Background()

	role, err := authService.Authenticate(ctx, "admin", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, role)

	require.Len(t, dispatcher.events, 1)
	event, ok := dispatcher.events[0].(model.UserLoggedIn)
	require.True(t, ok)
	assert.Equal(t, model.RoleAdmin, event.Role)

	t.Run("Independent of stored users", func(t *testing.T) {
		repo.store["admin"] = &model.User{Username: "admin", PasswordHash: "other-hashed"}
		role, err := authService.Authenticate(ctx, "admin", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, role)
	})
}

func TestAuthenticateUser(t *testing.T) {
	authService, repo, dispatcher := setupAuth(t)
	ctx := context.Background()
	repo.store["alice"] = &model.User{Username: "alice", PasswordHash: "wonderland-hashed"}

	t.Run("Success", func(t *testing.T) {
		role, err := authService.Authenticate(ctx, "alice", "wonderland")
		require.NoError(t, err)
		assert.Equal(t, model.RoleUser, role)
	})

	t.Run("Fail on wrong password", func(t *testing.T) {
		dispatcher.Reset()
		_, err := authService.Authenticate(ctx, "alice", "looking-glass")
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
		assert.Empty(t, dispatcher.events)
	})

	t.Run("Fail on unknown user with the same error", func(t *testing.T) {
		_, err := authService.Authenticate(ctx, "mallory", "wonderland")
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("Fail on admin name with user password", func(t *testing.T) {
		_, err := authService.Authenticate(ctx, "admin", "wonderland")
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("Fail on empty input", func(t *testing.T) {
		_, err := authService.Authenticate(ctx, "", "")
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})
}
