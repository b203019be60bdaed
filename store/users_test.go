// Copyright (c) 2024-2025 Darcy Buskermolen <darcy@dbitech.ca>
// SPDX-License-Identifier: BSD-3-Clause

package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func setupStoreTest(t *testing.T) (*Store, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock: %v", err)
	}
	return &Store{db: db}, mock
}

func userRows(id int64, name, email, hash string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "email", "password_hash",
		"created_at", "updated_at", "deleted_at", "is_deleted",
	}).AddRow(id, name, email, hash, time.Now(), nil, nil, false)
}

func TestFindUserByEmail(t *testing.T) {
	store, mock := setupStoreTest(t)
	defer store.Close()
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE email`).
			WithArgs("alice@example.com").
			WillReturnRows(userRows(1, "Alice", "alice@example.com", "hash"))

		user, err := store.FindUserByEmail(ctx, "alice@example.com")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "Alice", user.Name)
		assert.False(t, user.IsDeleted)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE email`).
			WithArgs("nobody@example.com").
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "name", "email", "password_hash",
				"created_at", "updated_at", "deleted_at", "is_deleted",
			}))

		_, err := store.FindUserByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCreateUser(t *testing.T) {
	store, mock := setupStoreTest(t)
	defer store.Close()
	ctx := context.Background()

	t.Run("Created", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("Alice", "alice@example.com", "hash").
			WillReturnRows(userRows(1, "Alice", "alice@example.com", "hash"))

		user, err := store.CreateUser(ctx, "Alice", "alice@example.com", "hash")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("Alice2", "alice@example.com", "hash").
			WillReturnError(&pq.Error{Code: "23505"})

		_, err := store.CreateUser(ctx, "Alice2", "alice@example.com", "hash")
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})
}

func TestListUsers(t *testing.T) {
	store, mock := setupStoreTest(t)
	defer store.Close()

	rows := userRows(1, "Alice", "alice@example.com", "hash").
		AddRow(2, "Bob", "bob@example.com", "hash", time.Now(), nil, nil, false)
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE is_deleted = FALSE`).
		WillReturnRows(rows)

	users, err := store.ListUsers(context.Background())
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "bob@example.com", users[1].Email)
}

func TestUpdateUser(t *testing.T) {
	store, mock := setupStoreTest(t)
	defer store.Close()
	ctx := context.Background()

	t.Run("WithoutPassword", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE users SET name`).
			WithArgs("Alice B", "aliceb@example.com", sqlmock.AnyArg(), int64(1)).
			WillReturnRows(userRows(1, "Alice B", "aliceb@example.com", "hash"))

		user, err := store.UpdateUser(ctx, 1, "Alice B", "aliceb@example.com", "")
		assert.NoError(t, err)
		assert.Equal(t, "Alice B", user.Name)
	})

	t.Run("WithPassword", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE users SET name`).
			WithArgs("Alice B", "aliceb@example.com", "newhash", sqlmock.AnyArg(), int64(1)).
			WillReturnRows(userRows(1, "Alice B", "aliceb@example.com", "newhash"))

		user, err := store.UpdateUser(ctx, 1, "Alice B", "aliceb@example.com", "newhash")
		assert.NoError(t, err)
		assert.Equal(t, "newhash", user.PasswordHash)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE users SET name`).
			WithArgs("Alice B", "bob@example.com", sqlmock.AnyArg(), int64(1)).
			WillReturnError(&pq.Error{Code: "23505"})

		_, err := store.UpdateUser(ctx, 1, "Alice B", "bob@example.com", "")
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})
}

func TestSoftDeleteAndRestoreUser(t *testing.T) {
	store, mock := setupStoreTest(t)
	defer store.Close()
	ctx := context.Background()

	t.Run("Delete", func(t *testing.T) {
		mock.ExpectExec(`UPDATE users SET is_deleted = TRUE`).
			WithArgs(sqlmock.AnyArg(), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, store.SoftDeleteUser(ctx, 1))
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		mock.ExpectExec(`UPDATE users SET is_deleted = TRUE`).
			WithArgs(sqlmock.AnyArg(), int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, store.SoftDeleteUser(ctx, 99), ErrNotFound)
	})

	t.Run("Restore", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE users SET is_deleted = FALSE`).
			WithArgs(int64(1)).
			WillReturnRows(userRows(1, "Alice", "alice@example.com", "hash"))

		user, err := store.RestoreUser(ctx, 1)
		assert.NoError(t, err)
		assert.False(t, user.IsDeleted)
	})
}
