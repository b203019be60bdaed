// Copyright (c) 2024-2025 Darcy Buskermolen <darcy@dbitech.ca>
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/VA7DBI/frameworkAPI/middleware"
	"github.com/VA7DBI/frameworkAPI/store"
	"github.com/gin-gonic/gin"
)

// FrameworkRequest is the body for framework create and update.
type FrameworkRequest struct {
	Name    string            `json:"name" binding:"required"`
	Entries map[string]string `json:"entries"`
}

// validateEntries enforces the entry key contract: at least one entry,
// every key shaped "line N", and the numbers covering exactly 1..N.
func validateEntries(entries map[string]string) error {
	if len(entries) == 0 {
		return errors.New("Framework must have at least one entry")
	}

	var (
		badKeys []string
		numbers []int
	)
	for key := range entries {
		rest, ok := strings.CutPrefix(key, "line ")
		n, err := strconv.Atoi(rest)
		if !ok || err != nil || n < 1 {
			badKeys = append(badKeys, key)
			continue
		}
		numbers = append(numbers, n)
	}
	if len(badKeys) > 0 {
		sort.Strings(badKeys)
		return fmt.Errorf("The following keys do not follow 'line X' pattern: %s",
			strings.Join(badKeys, ", "))
	}

	sort.Ints(numbers)
	for i, n := range numbers {
		if n != i+1 {
			return errors.New("Line numbers in dict keys are not sequencial and/or not ordered")
		}
	}
	return nil
}

// @Summary     List the user's frameworks
// @Tags        frameworks
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} FrameworkListResponse
// @Failure     401 {object} DetailResponse
// @Router      /frameworks [get]
func (s *APIService) ListFrameworksHandler(c *gin.Context) {
	current := middleware.CurrentUser(c)

	frameworks, err := s.repo.ListFrameworks(c.Request.Context(), current.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DetailResponse{Detail: "Internal server error"})
		return
	}

	resp := FrameworkListResponse{Frameworks: make([]FrameworkPublic, 0, len(frameworks))}
	for _, f := range frameworks {
		resp.Frameworks = append(resp.Frameworks, publicFramework(f))
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary     Get one framework
// @Tags        frameworks
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Framework ID"
// @Success     200 {object} FrameworkPublic
// @Failure     404 {object} DetailResponse
// @Router      /frameworks/{id} [get]
func (s *APIService) GetFrameworkHandler(c *gin.Context) {
	current := middleware.CurrentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	framework, err := s.repo.GetFramework(c.Request.Context(), id, current.ID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, DetailResponse{Detail: "Framework not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, DetailResponse{Detail: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, publicFramework(framework))
}

// @Summary     Create a framework
// @Tags        frameworks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       framework body FrameworkRequest true "New framework"
// @Success     201 {object} FrameworkPublic
// @Failure     400 {object} DetailResponse
// @Router      /frameworks [post]
func (s *APIService) CreateFrameworkHandler(c *gin.Context) {
	current := middleware.CurrentUser(c)

	var req FrameworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, DetailResponse{Detail: err.Error()})
		return
	}
	if err := validateEntries(req.Entries); err != nil {
		c.JSON(http.StatusBadRequest, DetailResponse{Detail: err.Error()})
		return
	}

	framework, err := s.repo.CreateFramework(c.Request.Context(), current.ID, req.Name, req.Entries)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DetailResponse{Detail: "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, publicFramework(framework))
}

// @Summary     Update a framework
// @Tags        frameworks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id        path int              true "Framework ID"
// @Param       framework body FrameworkRequest true "Updated framework"
// @Success     200 {object} FrameworkPublic
// @Failure     400 {object} DetailResponse
// @Failure     404 {object} DetailResponse
// @Router      /frameworks/{id} [put]
func (s *APIService) UpdateFrameworkHandler(c *gin.Context) {
	current := middleware.CurrentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req FrameworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, DetailResponse{Detail: err.Error()})
		return
	}
	if err := validateEntries(req.Entries); err != nil {
		c.JSON(http.StatusBadRequest, DetailResponse{Detail: err.Error()})
		return
	}

	framework, err := s.repo.UpdateFramework(c.Request.Context(), id, current.ID, req.Name, req.Entries)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, DetailResponse{Detail: "Framework not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, DetailResponse{Detail: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, publicFramework(framework))
}

// @Summary     Soft-delete a framework
// @Tags        frameworks
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Framework ID"
// @Success     200 {object} DetailResponse
// @Failure     404 {object} DetailResponse
// @Router      /frameworks/{id} [delete]
func (s *APIService) DeleteFrameworkHandler(c *gin.Context) {
	current := middleware.CurrentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	err := s.repo.SoftDeleteFramework(c.Request.Context(), id, current.ID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, DetailResponse{Detail: "Framework not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, DetailResponse{Detail: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, DetailResponse{Detail: "Framework deleted"})
}
