// Copyright (c) 2024-2025 Darcy Buskermolen <darcy@dbitech.ca>
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/VA7DBI/frameworkAPI/auth"
	"github.com/VA7DBI/frameworkAPI/config"
	"github.com/VA7DBI/frameworkAPI/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// memRepo is an in-memory Repository (and auth.UserFinder) for handler
// tests.
type memRepo struct {
	mu              sync.Mutex
	nextUserID      int64
	nextFrameworkID int64
	users           map[int64]*store.User
	frameworks      map[int64]*store.Framework
}

func newMemRepo() *memRepo {
	return &memRepo{
		nextUserID:      1,
		nextFrameworkID: 1,
		users:           make(map[int64]*store.User),
		frameworks:      make(map[int64]*store.Framework),
	}
}

func (m *memRepo) FindUserByEmail(ctx context.Context, email string) (*store.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memRepo) CreateUser(ctx context.Context, name, email, passwordHash string) (*store.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return nil, store.ErrDuplicateEmail
		}
	}
	u := &store.User{
		ID:           m.nextUserID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	m.nextUserID++
	m.users[u.ID] = u
	return u, nil
}

func (m *memRepo) ListUsers(ctx context.Context) ([]*store.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var users []*store.User
	for id := int64(1); id < m.nextUserID; id++ {
		if u, ok := m.users[id]; ok && !u.IsDeleted {
			users = append(users, u)
		}
	}
	return users, nil
}

func (m *memRepo) UpdateUser(ctx context.Context, id int64, name, email, passwordHash string) (*store.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	for _, other := range m.users {
		if other.ID != id && other.Email == email {
			return nil, store.ErrDuplicateEmail
		}
	}
	u.Name = name
	u.Email = email
	if passwordHash != "" {
		u.PasswordHash = passwordHash
	}
	now := time.Now()
	u.UpdatedAt = &now
	return u, nil
}

func (m *memRepo) SoftDeleteUser(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return store.ErrNotFound
	}
	now := time.Now()
	u.IsDeleted = true
	u.DeletedAt = &now
	return nil
}

func (m *memRepo) RestoreUser(ctx context.Context, id int64) (*store.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	u.IsDeleted = false
	u.DeletedAt = nil
	return u, nil
}

func (m *memRepo) ListFrameworks(ctx context.Context, userID int64) ([]*store.Framework, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var frameworks []*store.Framework
	for id := int64(1); id < m.nextFrameworkID; id++ {
		if f, ok := m.frameworks[id]; ok && f.UserID == userID && !f.IsDeleted {
			frameworks = append(frameworks, f)
		}
	}
	return frameworks, nil
}

func (m *memRepo) GetFramework(ctx context.Context, id, userID int64) (*store.Framework, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.frameworks[id]
	if !ok || f.UserID != userID || f.IsDeleted {
		return nil, store.ErrNotFound
	}
	return f, nil
}

func (m *memRepo) CreateFramework(ctx context.Context, userID int64, name string, entries map[string]string) (*store.Framework, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f := &store.Framework{
		ID:        m.nextFrameworkID,
		UserID:    userID,
		Name:      name,
		Entries:   entries,
		CreatedAt: time.Now(),
	}
	m.nextFrameworkID++
	m.frameworks[f.ID] = f
	return f, nil
}

func (m *memRepo) UpdateFramework(ctx context.Context, id, userID int64, name string, entries map[string]string) (*store.Framework, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.frameworks[id]
	if !ok || f.UserID != userID || f.IsDeleted {
		return nil, store.ErrNotFound
	}
	f.Name = name
	f.Entries = entries
	now := time.Now()
	f.UpdatedAt = &now
	return f, nil
}

func (m *memRepo) SoftDeleteFramework(ctx context.Context, id, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.frameworks[id]
	if !ok || f.UserID != userID || f.IsDeleted {
		return store.ErrNotFound
	}
	now := time.Now()
	f.IsDeleted = true
	f.DeletedAt = &now
	return nil
}

// testAPI bundles everything a handler test needs.
type testAPI struct {
	router   *gin.Engine
	repo     *memRepo
	denylist *auth.MockDenylist
	clock    *time.Time
}

func setupAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	now := time.Now()
	clock := &now

	cfg := &config.Config{}
	cfg.Auth.SecretKey = "test-secret"
	cfg.Auth.AccessTokenTTL = 30

	repo := newMemRepo()
	denylist := auth.NewMockDenylist()
	codec := auth.NewCodec(cfg.Auth.SecretKey, 30*time.Minute).
		WithClock(func() time.Time { return *clock })
	gate := auth.NewGate(denylist, codec, repo)
	sessions := auth.NewSessions(codec, denylist, repo)
	service := NewAPIService(cfg, repo, sessions)

	r := gin.New()
	registerRoutes(r, cfg, service, gate)

	return &testAPI{router: r, repo: repo, denylist: denylist, clock: clock}
}

func (a *testAPI) addUser(t *testing.T, name, email, password string) *store.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	assert.NoError(t, err)
	u, err := a.repo.CreateUser(context.Background(), name, email, hash)
	assert.NoError(t, err)
	return u
}

func (a *testAPI) login(t *testing.T, email, password string) string {
	t.Helper()
	w := a.postForm("/auth/token", url.Values{
		"username": {email},
		"password": {password},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp TokenResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bearer", resp.TokenType)
	return resp.AccessToken
}

func (a *testAPI) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testAPI) request(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}
