package service

import (
	"context"
	"errors"

	"sales/pkg/domain/model"
)

// AdminCredentials is the statically configured administrator identity. It
// is never stored alongside regular users.
type AdminCredentials struct {
	Username string
	Password string
}

type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (model.Role, error)
}

func NewAuthService(admin AdminCredentials, repo model.UserRepository, passManager model.PasswordManager, dispatcher EventDispatcher) AuthService {
	return &authService{
		admin:       admin,
		repo:        repo,
		passManager: passManager,
		dispatcher:  dispatcher,
	}
}

type authService struct {
	admin       AdminCredentials
	repo        model.UserRepository
	passManager model.PasswordManager
	dispatcher  EventDispatcher
}

func (s *authService) Authenticate(ctx context.Context, username, password string) (model.Role, error) {
	if username == "" || password == "" {
		return "", model.ErrInvalidCredentials
	}

	if s.admin.Username != "" && username == s.admin.Username && password == s.admin.Password {
		s.loggedIn(username, model.RoleAdmin)
		return model.RoleAdmin, nil
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, model.ErrUserNotFound) {
		return "", model.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	ok, err := s.passManager.Check(user.PasswordHash, password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", model.ErrInvalidCredentials
	}

	s.loggedIn(username, model.RoleUser)
	return model.RoleUser, nil
}

func (s *authService) loggedIn(username string, role model.Role) {
	_ = s.dispatcher.Dispatch(model.UserLoggedIn{Username: username, Role: role})
}
