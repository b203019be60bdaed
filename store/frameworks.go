// Copyright (c) 2024-2025 Darcy Buskermolen <darcy@dbitech.ca>
// SPDX-License-Identifier: BSD-3-Clause

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

const frameworkColumns = "id, user_id, name, entries, created_at, updated_at, deleted_at, is_deleted"

func scanFramework(row interface{ Scan(...interface{}) error }) (*Framework, error) {
	var (
		f         Framework
		entries   []byte
		updatedAt sql.NullTime
		deletedAt sql.NullTime
	)
	err := row.Scan(&f.ID, &f.UserID, &f.Name, &entries,
		&f.CreatedAt, &updatedAt, &deletedAt, &f.IsDeleted)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(entries, &f.Entries); err != nil {
		return nil, err
	}
	if updatedAt.Valid {
		f.UpdatedAt = &updatedAt.Time
	}
	if deletedAt.Valid {
		f.DeletedAt = &deletedAt.Time
	}
	return &f, nil
}

// ListFrameworks returns the owner's live frameworks.
func (s *Store) ListFrameworks(ctx context.Context, userID int64) ([]*Framework, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+frameworkColumns+` FROM frameworks
		 WHERE user_id = $1 AND is_deleted = FALSE ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var frameworks []*Framework
	for rows.Next() {
		f, err := scanFramework(rows)
		if err != nil {
			return nil, err
		}
		frameworks = append(frameworks, f)
	}
	return frameworks, rows.Err()
}

// GetFramework fetches one live framework owned by userID.
func (s *Store) GetFramework(ctx context.Context, id, userID int64) (*Framework, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+frameworkColumns+` FROM frameworks
		 WHERE id = $1 AND user_id = $2 AND is_deleted = FALSE`, id, userID)
	f, err := scanFramework(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// CreateFramework inserts a framework for the owner. Entries are stored
// as a JSONB document.
func (s *Store) CreateFramework(ctx context.Context, userID int64, name string, entries map[string]string) (*Framework, error) {
	doc, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}
	row := s.db.QueryRowContext(ctx,
		`INSERT INTO frameworks (user_id, name, entries)
		 VALUES ($1, $2, $3)
		 RETURNING `+frameworkColumns, userID, name, doc)
	return scanFramework(row)
}

// UpdateFramework rewrites the name and entries of an owned framework.
func (s *Store) UpdateFramework(ctx context.Context, id, userID int64, name string, entries map[string]string) (*Framework, error) {
	doc, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}
	row := s.db.QueryRowContext(ctx,
		`UPDATE frameworks SET name = $1, entries = $2, updated_at = $3
		 WHERE id = $4 AND user_id = $5 AND is_deleted = FALSE
		 RETURNING `+frameworkColumns, name, doc, time.Now(), id, userID)
	f, scanErr := scanFramework(row)
	if scanErr == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if scanErr != nil {
		return nil, scanErr
	}
	return f, nil
}

// SoftDeleteFramework tombstones an owned framework.
func (s *Store) SoftDeleteFramework(ctx context.Context, id, userID int64) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE frameworks SET is_deleted = TRUE, deleted_at = $1
		 WHERE id = $2 AND user_id = $3 AND is_deleted = FALSE`,
		time.Now(), id, userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}
