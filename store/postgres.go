// Copyright (c) 2024-2025 Darcy Buskermolen <darcy@dbitech.ca>
// SPDX-License-Identifier: BSD-3-Clause

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/VA7DBI/frameworkAPI/config"
	"github.com/lib/pq"
)

var (
	// ErrNotFound means no matching row (or a soft-deleted one where the
	// query excludes them).
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail maps the users.email unique constraint.
	ErrDuplicateEmail = errors.New("email already exists")
)

// Store wraps the PostgreSQL connection for users and frameworks.
type Store struct {
	db *sql.DB
}

func NewStore(cfg *config.Config) (*Store, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.DBName,
		cfg.Database.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("postgres connection failed: %v", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("postgres ping failed: %v", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// isUniqueViolation reports whether err is a unique-constraint failure.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
