// Copyright (c) 2024-2025 Darcy Buskermolen <darcy@dbitech.ca>
// SPDX-License-Identifier: BSD-3-Clause

package auth

import "errors"

// Error values surfaced by the auth package. Handlers map these to HTTP
// statuses; everything behind ErrInvalidCredentials stays generic so a
// caller cannot tell a revoked token from an expired or tampered one.
var (
	// ErrWrongCredentials covers both an unknown email and a bad
	// password at login.
	ErrWrongCredentials = errors.New("wrong email or password")

	// ErrInvalidCredentials is the single error for every
	// authentication-gate failure.
	ErrInvalidCredentials = errors.New("could not validate credentials")

	// ErrForbidden means the caller is authenticated but not allowed to
	// act on the target.
	ErrForbidden = errors.New("not enough permissions")

	// ErrStoreUnavailable means the denylist or identity store could not
	// be reached. The gate fails closed on it.
	ErrStoreUnavailable = errors.New("auth store unavailable")
)

// Internal decode failures. Logged for diagnostics, never returned past
// the gate.
var (
	errTokenExpired  = errors.New("token expired")
	errBadSignature  = errors.New("invalid token signature")
	errMissingClaims = errors.New("token missing subject claim")
)
