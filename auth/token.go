// Copyright (c) 2024-2025 Darcy Buskermolen <darcy@dbitech.ca>
// SPDX-License-Identifier: BSD-3-Clause

package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload carried by an access token. Only the subject
// (the user's email) and the expiry are ever read back.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// Codec issues and verifies HS256 access tokens. The secret, token
// lifetime and clock are fixed at construction so tests can substitute
// all three.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock replaces the codec's clock. Test use only.
func (c *Codec) WithClock(now func() time.Time) *Codec {
	c.now = now
	return c
}

// TTL returns the configured access token lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a new token for subject expiring ttl from now.
func (c *Codec) Issue(subject string) (string, error) {
	now := c.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Decode verifies the signature and expiry of token and returns its
// claims. Failures come back as errBadSignature or errTokenExpired;
// the gate collapses both before they reach a caller.
func (c *Codec) Decode(token string) (Claims, error) {
	var parsed jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, errTokenExpired
		}
		return Claims{}, errBadSignature
	}

	if parsed.Subject == "" {
		return Claims{}, errMissingClaims
	}

	claims := Claims{Subject: parsed.Subject}
	if parsed.ExpiresAt != nil {
		claims.ExpiresAt = parsed.ExpiresAt.Time
	}
	return claims, nil
}

// RemainingTTL returns how long the claims are still valid, floored at
// one second so a revocation entry always gets a positive TTL.
func (c *Codec) RemainingTTL(claims Claims) time.Duration {
	remaining := claims.ExpiresAt.Sub(c.now())
	if remaining < time.Second {
		return time.Second
	}
	return remaining.Truncate(time.Second)
}
