// Copyright (c) 2024-2025 Darcy Buskermolen <darcy@dbitech.ca>
// SPDX-License-Identifier: BSD-3-Clause

package auth

import (
	"context"
	"errors"
	"log"

	"github.com/VA7DBI/frameworkAPI/store"
)

// UserFinder is the identity lookup the gate depends on.
type UserFinder interface {
	FindUserByEmail(ctx context.Context, email string) (*store.User, error)
}

// Gate answers "is this bearer token currently valid, and for whom?".
// Every rejection comes back as ErrInvalidCredentials; whether the
// token was revoked, expired, tampered with or references an unknown
// user is not observable to the caller.
type Gate struct {
	denylist Denylist
	codec    *Codec
	users    UserFinder
}

func NewGate(denylist Denylist, codec *Codec, users UserFinder) *Gate {
	return &Gate{
		denylist: denylist,
		codec:    codec,
		users:    users,
	}
}

// Authenticate resolves a bearer token to its user. A denylist or
// identity-store outage fails closed with ErrStoreUnavailable; a token
// is never accepted just because the revocation check could not run.
func (g *Gate) Authenticate(ctx context.Context, token string) (*store.User, error) {
	denied, err := g.denylist.IsDenied(ctx, token)
	if err != nil {
		log.Printf("auth: denylist check failed: %v", err)
		return nil, ErrStoreUnavailable
	}
	if denied {
		return nil, ErrInvalidCredentials
	}

	claims, err := g.codec.Decode(token)
	if err != nil {
		log.Printf("auth: token rejected: %v", err)
		return nil, ErrInvalidCredentials
	}

	user, err := g.users.FindUserByEmail(ctx, claims.Subject)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		log.Printf("auth: identity lookup failed: %v", err)
		return nil, ErrStoreUnavailable
	}

	return user, nil
}
