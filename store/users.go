// Copyright (c) 2024-2025 Darcy Buskermolen <darcy@dbitech.ca>
// SPDX-License-Identifier: BSD-3-Clause

package store

import (
	"context"
	"database/sql"
	"time"
)

const userColumns = "id, name, email, password_hash, created_at, updated_at, deleted_at, is_deleted"

func scanUser(row interface{ Scan(...interface{}) error }) (*User, error) {
	var (
		u         User
		updatedAt sql.NullTime
		deletedAt sql.NullTime
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash,
		&u.CreatedAt, &updatedAt, &deletedAt, &u.IsDeleted)
	if err != nil {
		return nil, err
	}
	if updatedAt.Valid {
		u.UpdatedAt = &updatedAt.Time
	}
	if deletedAt.Valid {
		u.DeletedAt = &deletedAt.Time
	}
	return &u, nil
}

// FindUserByEmail looks a user up by email. Soft-deleted users are
// still returned; they keep authenticating so they can restore their
// own account.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1", email)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// CreateUser inserts a new account with the given bcrypt hash.
func (s *Store) CreateUser(ctx context.Context, name, email, passwordHash string) (*User, error) {
	row := s.db.QueryRowContext(ctx,
		`INSERT INTO users (name, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING `+userColumns, name, email, passwordHash)
	u, err := scanUser(row)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// ListUsers returns all accounts that are not soft-deleted.
func (s *Store) ListUsers(ctx context.Context) ([]*User, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE is_deleted = FALSE ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// UpdateUser rewrites name, email and (when non-empty) the password
// hash of the given user.
func (s *Store) UpdateUser(ctx context.Context, id int64, name, email, passwordHash string) (*User, error) {
	var (
		row *sql.Row
		now = time.Now()
	)
	if passwordHash != "" {
		row = s.db.QueryRowContext(ctx,
			`UPDATE users SET name = $1, email = $2, password_hash = $3, updated_at = $4
			 WHERE id = $5
			 RETURNING `+userColumns, name, email, passwordHash, now, id)
	} else {
		row = s.db.QueryRowContext(ctx,
			`UPDATE users SET name = $1, email = $2, updated_at = $3
			 WHERE id = $4
			 RETURNING `+userColumns, name, email, now, id)
	}
	u, err := scanUser(row)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateEmail
	}
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// SoftDeleteUser tombstones the account without removing the row.
func (s *Store) SoftDeleteUser(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE users SET is_deleted = TRUE, deleted_at = $1 WHERE id = $2",
		time.Now(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// RestoreUser reverses a soft delete.
func (s *Store) RestoreUser(ctx context.Context, id int64) (*User, error) {
	row := s.db.QueryRowContext(ctx,
		`UPDATE users SET is_deleted = FALSE, deleted_at = NULL
		 WHERE id = $1
		 RETURNING `+userColumns, id)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
