// Copyright (c) 2024-2025 Darcy Buskermolen <darcy@dbitech.ca>
// SPDX-License-Identifier: BSD-3-Clause

package auth

import (
	"context"
	"errors"
	"log"

	"github.com/VA7DBI/frameworkAPI/store"
)

// Sessions implements the token lifecycle: login issues, logout
// revokes, refresh re-issues.
type Sessions struct {
	codec    *Codec
	denylist Denylist
	users    UserFinder
}

func NewSessions(codec *Codec, denylist Denylist, users UserFinder) *Sessions {
	return &Sessions{
		codec:    codec,
		denylist: denylist,
		users:    users,
	}
}

// Login verifies the email/password pair and issues an access token.
// An unknown email and a wrong password are indistinguishable to the
// caller.
func (s *Sessions) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrWrongCredentials
	}
	if err != nil {
		log.Printf("auth: login lookup failed: %v", err)
		return "", ErrStoreUnavailable
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return "", ErrWrongCredentials
	}

	return s.codec.Issue(user.Email)
}

// Logout revokes the presented token for the remainder of its
// lifetime. The token has already passed the gate; the subject check
// guards against a token/identity mix-up upstream.
func (s *Sessions) Logout(ctx context.Context, token string, current *store.User) error {
	claims, err := s.codec.Decode(token)
	if err != nil {
		return ErrInvalidCredentials
	}

	if claims.Subject != current.Email {
		return ErrForbidden
	}

	if err := s.denylist.Deny(ctx, token, s.codec.RemainingTTL(claims)); err != nil {
		log.Printf("auth: logout denylist write failed: %v", err)
		return ErrStoreUnavailable
	}
	return nil
}

// Refresh issues a fresh token for the current user. The token that
// authenticated this call stays valid until it expires or is logged
// out.
func (s *Sessions) Refresh(current *store.User) (string, error) {
	return s.codec.Issue(current.Email)
}
