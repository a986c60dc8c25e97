package auth

import (
	"context"
	"database/sql"
	"errors"
)

type User struct {
	UserID       int64
	RoleID       int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
}

type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) UserStore {
	return &Store{db: db}
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*User, error) {
	const q = `
SELECT user_id, role_id, first_name, last_name, email, password_hash
FROM tbl_users
WHERE email = ?
LIMIT 1
`
	var u User
	err := s.db.QueryRowContext(ctx, q, email).Scan(
		&u.UserID,
		&u.RoleID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.PasswordHash,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
