// Copyright (c) 2024-2025 Darcy Buskermolen <darcy@dbitech.ca>
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/VA7DBI/frameworkAPI/auth"
	"github.com/VA7DBI/frameworkAPI/middleware"
	"github.com/VA7DBI/frameworkAPI/store"
	"github.com/gin-gonic/gin"
)

// UserCreateRequest is the body for user registration.
type UserCreateRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserUpdateRequest is the body for user updates. Password is optional;
// empty keeps the current hash.
type UserUpdateRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
}

// @Summary     List users
// @Tags        users
// @Produce     json
// @Success     200 {object} UserListResponse
// @Router      /users [get]
func (s *APIService) ListUsersHandler(c *gin.Context) {
	users, err := s.repo.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, DetailResponse{Detail: "Internal server error"})
		return
	}

	resp := UserListResponse{Users: make([]UserPublic, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, publicUser(u))
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary     Register a user
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       user body UserCreateRequest true "New user"
// @Success     201 {object} UserPublic
// @Failure     409 {object} DetailResponse
// @Router      /users [post]
func (s *APIService) CreateUserHandler(c *gin.Context) {
	var req UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, DetailResponse{Detail: err.Error()})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DetailResponse{Detail: "Internal server error"})
		return
	}

	user, err := s.repo.CreateUser(c.Request.Context(), req.Name, req.Email, hash)
	if errors.Is(err, store.ErrDuplicateEmail) {
		c.JSON(http.StatusConflict, DetailResponse{Detail: "Email already exists"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, DetailResponse{Detail: "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, publicUser(user))
}

// @Summary     Update a user
// @Tags        users
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path int               true "User ID"
// @Param       user body UserUpdateRequest true "Updated fields"
// @Success     200 {object} UserPublic
// @Failure     403 {object} DetailResponse
// @Failure     409 {object} DetailResponse
// @Router      /users/{id} [put]
func (s *APIService) UpdateUserHandler(c *gin.Context) {
	current := middleware.CurrentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	if current.ID != id {
		c.JSON(http.StatusForbidden, DetailResponse{Detail: "Not enough permissions"})
		return
	}

	var req UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, DetailResponse{Detail: err.Error()})
		return
	}

	hash := ""
	if req.Password != "" {
		var err error
		hash, err = auth.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, DetailResponse{Detail: "Internal server error"})
			return
		}
	}

	user, err := s.repo.UpdateUser(c.Request.Context(), id, req.Name, req.Email, hash)
	if errors.Is(err, store.ErrDuplicateEmail) {
		c.JSON(http.StatusConflict, DetailResponse{Detail: "Email already exists"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, DetailResponse{Detail: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, publicUser(user))
}

// @Summary     Soft-delete a user
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "User ID"
// @Success     200 {object} DetailResponse
// @Failure     400 {object} DetailResponse
// @Failure     403 {object} DetailResponse
// @Router      /users/{id} [delete]
func (s *APIService) DeleteUserHandler(c *gin.Context) {
	current := middleware.CurrentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	if current.ID != id {
		c.JSON(http.StatusForbidden, DetailResponse{Detail: "Not enough permissions"})
		return
	}
	if current.IsDeleted {
		c.JSON(http.StatusBadRequest, DetailResponse{Detail: "User already deleted"})
		return
	}

	if err := s.repo.SoftDeleteUser(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, DetailResponse{Detail: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, DetailResponse{Detail: "User deleted"})
}

// @Summary     Restore a soft-deleted user
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "User ID"
// @Success     200 {object} UserPublic
// @Failure     400 {object} DetailResponse
// @Failure     403 {object} DetailResponse
// @Router      /users/restore/{id} [put]
func (s *APIService) RestoreUserHandler(c *gin.Context) {
	current := middleware.CurrentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	if current.ID != id {
		c.JSON(http.StatusForbidden, DetailResponse{Detail: "Not enough permissions"})
		return
	}
	if !current.IsDeleted {
		c.JSON(http.StatusBadRequest, DetailResponse{Detail: "User is not deleted"})
		return
	}

	user, err := s.repo.RestoreUser(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DetailResponse{Detail: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, publicUser(user))
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, DetailResponse{Detail: "Invalid id"})
		return 0, false
	}
	return id, true
}
