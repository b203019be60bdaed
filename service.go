// Copyright (c) 2024-2025 Darcy Buskermolen <darcy@dbitech.ca>
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"

	"github.com/VA7DBI/frameworkAPI/auth"
	"github.com/VA7DBI/frameworkAPI/config"
	"github.com/VA7DBI/frameworkAPI/store"
)

// Repository is the persistence surface the handlers depend on.
// *store.Store implements it; tests substitute an in-memory version.
type Repository interface {
	FindUserByEmail(ctx context.Context, email string) (*store.User, error)
	CreateUser(ctx context.Context, name, email, passwordHash string) (*store.User, error)
	ListUsers(ctx context.Context) ([]*store.User, error)
	UpdateUser(ctx context.Context, id int64, name, email, passwordHash string) (*store.User, error)
	SoftDeleteUser(ctx context.Context, id int64) error
	RestoreUser(ctx context.Context, id int64) (*store.User, error)

	ListFrameworks(ctx context.Context, userID int64) ([]*store.Framework, error)
	GetFramework(ctx context.Context, id, userID int64) (*store.Framework, error)
	CreateFramework(ctx context.Context, userID int64, name string, entries map[string]string) (*store.Framework, error)
	UpdateFramework(ctx context.Context, id, userID int64, name string, entries map[string]string) (*store.Framework, error)
	SoftDeleteFramework(ctx context.Context, id, userID int64) error
}

// APIService carries the handler dependencies.
type APIService struct {
	cfg      *config.Config
	repo     Repository
	sessions *auth.Sessions
}

func NewAPIService(cfg *config.Config, repo Repository, sessions *auth.Sessions) *APIService {
	return &APIService{
		cfg:      cfg,
		repo:     repo,
		sessions: sessions,
	}
}

// TokenResponse is the body returned by login and refresh.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// DetailResponse is the generic message/error body.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// UserPublic is the externally visible shape of a user.
type UserPublic struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserListResponse wraps the user collection.
type UserListResponse struct {
	Users []UserPublic `json:"users"`
}

// FrameworkPublic is the externally visible shape of a framework.
type FrameworkPublic struct {
	ID      int64             `json:"id"`
	UserID  int64             `json:"user_id"`
	Name    string            `json:"name"`
	Entries map[string]string `json:"entries"`
}

// FrameworkListResponse wraps the framework collection.
type FrameworkListResponse struct {
	Frameworks []FrameworkPublic `json:"frameworks"`
}

func publicUser(u *store.User) UserPublic {
	return UserPublic{ID: u.ID, Name: u.Name, Email: u.Email}
}

func publicFramework(f *store.Framework) FrameworkPublic {
	return FrameworkPublic{ID: f.ID, UserID: f.UserID, Name: f.Name, Entries: f.Entries}
}
