package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"

	"github.com/minipos/minipos-golang/internal/models"
)

const mysqlErrDuplicateEntry = 1062

func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	user.Email = strings.ToLower(user.Email)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (email, full_name, password_hash, created_at)
		VALUES (?, ?, ?, ?)`,
		user.Email, user.FullName, user.PasswordHash, user.CreatedAt)

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
		return models.User{}, models.ErrDuplicateEmail
	}
	if err != nil {
		return models.User{}, errors.Wrap(err, "insert user")
	}
	return user, nil
}

func (s *Store) UserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user, `
		SELECT email, full_name, password_hash, created_at
		FROM users
		WHERE email = ?`,
		strings.ToLower(email))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, errors.Wrap(err, "query user")
	}
	return user, nil
}
