package model

import (
	"context"
	"errors"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

// Session is one logged-in visitor. The cart belongs to the session and is
// never shared with another one.
type Session struct {
	ID       string
	Username string
	Role     Role
	Cart     *Cart
}

func NewSession(id, username string, role Role) *Session {
	return &Session{
		ID:       id,
		Username: username,
		Role:     role,
		Cart:     NewCart(),
	}
}

type SessionRepository interface {
	NextID() (string, error)
	Save(ctx context.Context, session *Session) error
	Find(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
