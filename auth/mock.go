// Copyright (c) 2024-2025 Darcy Buskermolen <darcy@dbitech.ca>
// SPDX-License-Identifier: BSD-3-Clause

package auth

import (
	"context"
	"sync"
	"time"

	"github.com/VA7DBI/frameworkAPI/store"
)

// MockDenylist is an in-memory Denylist for testing.
type MockDenylist struct {
	mu      sync.Mutex
	expiry  map[string]time.Time
	FailErr error // when set, both operations fail with it
}

func NewMockDenylist() *MockDenylist {
	return &MockDenylist{expiry: make(map[string]time.Time)}
}

func (m *MockDenylist) Deny(ctx context.Context, token string, ttl time.Duration) error {
	if m.FailErr != nil {
		return m.FailErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expiry[token] = time.Now().Add(ttl)
	return nil
}

func (m *MockDenylist) IsDenied(ctx context.Context, token string) (bool, error) {
	if m.FailErr != nil {
		return false, m.FailErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	exp, ok := m.expiry[token]
	if !ok {
		return false, nil
	}
	if time.Now().After(exp) {
		delete(m.expiry, token)
		return false, nil
	}
	return true, nil
}

// MockUserFinder is an in-memory UserFinder for testing.
type MockUserFinder struct {
	Users   map[string]*store.User
	FailErr error
}

func NewMockUserFinder(users ...*store.User) *MockUserFinder {
	m := &MockUserFinder{Users: make(map[string]*store.User)}
	for _, u := range users {
		m.Users[u.Email] = u
	}
	return m
}

func (m *MockUserFinder) FindUserByEmail(ctx context.Context, email string) (*store.User, error) {
	if m.FailErr != nil {
		return nil, m.FailErr
	}
	u, ok := m.Users[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u, nil
}
