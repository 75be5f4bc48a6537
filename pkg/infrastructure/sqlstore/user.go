package sqlstore

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"sales/pkg/domain/model"
)

type userRow struct {
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
}

type UserRepository struct {
	db *sqlx.DB
}

var _ model.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO users (username, password_hash) VALUES (:username, :password_hash)`,
		userRow{Username: user.Username, PasswordHash: user.PasswordHash},
	)
	if isDuplicateEntry(err) {
		return model.ErrUsernameTaken
	}
	return errors.Wrap(err, "insert user")
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, `SELECT username, password_hash FROM users WHERE username = ?`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user")
	}
	return &model.User{Username: row.Username, PasswordHash: row.PasswordHash}, nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT username, password_hash FROM users ORDER BY username`); err != nil {
		return nil, errors.Wrap(err, "list users")
	}

	users := make([]model.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, model.User{Username: row.Username, PasswordHash: row.PasswordHash})
	}
	return users, nil
}
