package service

import (
	"context"
	"errors"
	"strings"

	"sales/pkg/domain/model"
)

var (
	ErrEmptyField = errors.New("required field is empty")
)

type UserService interface {
	CreateUser(ctx context.Context, username, plainTextPassword string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

func NewUserService(repo model.UserRepository, passManager model.PasswordManager, dispatcher EventDispatcher) UserService {
	return &userService{
		repo:        repo,
		passManager: passManager,
		dispatcher:  dispatcher,
	}
}

type userService struct {
	repo        model.UserRepository
	passManager model.PasswordManager
	dispatcher  EventDispatcher
}

// CreateUser relies on the repository rejecting duplicates atomically, so two
// concurrent creations of the same username cannot both succeed.
func (s *userService) CreateUser(ctx context.Context, username, plainTextPassword string) (*model.User, error) {
	if strings.TrimSpace(username) == "" || plainTextPassword == "" {
		return nil, ErrEmptyField
	}

	hashedPassword, err := s.passManager.Hash(plainTextPassword)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hashedPassword,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Dispatch(model.UserCreated{Username: username})

	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}
