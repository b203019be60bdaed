// Copyright (c) 2024-2025 Darcy Buskermolen <darcy@dbitech.ca>
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"net/http"

	"github.com/VA7DBI/frameworkAPI/auth"
	"github.com/VA7DBI/frameworkAPI/metrics"
	"github.com/VA7DBI/frameworkAPI/middleware"
	"github.com/gin-gonic/gin"
)

// @Summary     Issue an access token
// @Description Exchange an email/password pair for a bearer token
// @Tags        auth
// @Accept      x-www-form-urlencoded
// @Produce     json
// @Param       username formData string true "User email"
// @Param       password formData string true "Password"
// @Success     200 {object} TokenResponse
// @Failure     401 {object} DetailResponse
// @Router      /auth/token [post]
func (s *APIService) LoginHandler(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	token, err := s.sessions.Login(c.Request.Context(), username, password)
	switch {
	case errors.Is(err, auth.ErrWrongCredentials):
		metrics.AuthRequests.WithLabelValues("login", "unauthorized").Inc()
		c.JSON(http.StatusUnauthorized, DetailResponse{Detail: "Wrong email or password"})
		return
	case errors.Is(err, auth.ErrStoreUnavailable):
		metrics.AuthRequests.WithLabelValues("login", "error").Inc()
		c.JSON(http.StatusServiceUnavailable, DetailResponse{Detail: "Service unavailable"})
		return
	case err != nil:
		metrics.AuthRequests.WithLabelValues("login", "error").Inc()
		c.JSON(http.StatusInternalServerError, DetailResponse{Detail: "Internal server error"})
		return
	}

	metrics.AuthRequests.WithLabelValues("login", "ok").Inc()
	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// @Summary     Revoke the presented token
// @Description Put the bearer token on the denylist for the rest of its lifetime
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} DetailResponse
// @Failure     401 {object} DetailResponse
// @Failure     403 {object} DetailResponse
// @Router      /auth/revoke_token [post]
func (s *APIService) LogoutHandler(c *gin.Context) {
	current := middleware.CurrentUser(c)
	token := middleware.BearerToken(c)

	err := s.sessions.Logout(c.Request.Context(), token, current)
	switch {
	case errors.Is(err, auth.ErrForbidden):
		metrics.AuthRequests.WithLabelValues("logout", "forbidden").Inc()
		c.JSON(http.StatusForbidden, DetailResponse{Detail: "Not enough permissions"})
		return
	case errors.Is(err, auth.ErrStoreUnavailable):
		metrics.AuthRequests.WithLabelValues("logout", "error").Inc()
		c.JSON(http.StatusServiceUnavailable, DetailResponse{Detail: "Service unavailable"})
		return
	case err != nil:
		metrics.AuthRequests.WithLabelValues("logout", "unauthorized").Inc()
		c.JSON(http.StatusUnauthorized, DetailResponse{Detail: "Could not validate credentials"})
		return
	}

	metrics.AuthRequests.WithLabelValues("logout", "ok").Inc()
	metrics.TokensRevoked.Inc()
	c.JSON(http.StatusOK, DetailResponse{Detail: "Successfully logged out"})
}

// @Summary     Refresh the session
// @Description Issue a new bearer token for the authenticated user
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} TokenResponse
// @Failure     401 {object} DetailResponse
// @Router      /auth/refresh_token [post]
func (s *APIService) RefreshHandler(c *gin.Context) {
	current := middleware.CurrentUser(c)

	token, err := s.sessions.Refresh(current)
	if err != nil {
		metrics.AuthRequests.WithLabelValues("refresh", "error").Inc()
		c.JSON(http.StatusInternalServerError, DetailResponse{Detail: "Internal server error"})
		return
	}

	metrics.AuthRequests.WithLabelValues("refresh", "ok").Inc()
	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}
