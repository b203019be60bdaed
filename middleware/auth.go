// Copyright (c) 2024-2025 Darcy Buskermolen <darcy@dbitech.ca>
// SPDX-License-Identifier: BSD-3-Clause

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/VA7DBI/frameworkAPI/auth"
	"github.com/VA7DBI/frameworkAPI/store"
	"github.com/gin-gonic/gin"
)

const (
	userKey  = "currentUser"
	tokenKey = "bearerToken"
)

// BearerAuth authenticates the Authorization header through the gate
// and stashes the resolved user and raw token in the request context.
func BearerAuth(gate *auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
			c.Abort()
			return
		}

		user, err := gate.Authenticate(c.Request.Context(), token)
		if errors.Is(err, auth.ErrStoreUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "Service unavailable"})
			c.Abort()
			return
		}
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Set(tokenKey, token)
		c.Next()
	}
}

// CurrentUser returns the user resolved by BearerAuth.
func CurrentUser(c *gin.Context) *store.User {
	if v, ok := c.Get(userKey); ok {
		if u, ok := v.(*store.User); ok {
			return u
		}
	}
	return nil
}

// BearerToken returns the raw token that authenticated this request.
func BearerToken(c *gin.Context) string {
	if v, ok := c.Get(tokenKey); ok {
		if t, ok := v.(string); ok {
			return t
		}
	}
	return ""
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}
