// Copyright (c) 2024-2025 Darcy Buskermolen <darcy@dbitech.ca>
// SPDX-License-Identifier: BSD-3-Clause

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AuthRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "frameworkapi_auth_requests_total",
		Help: "Total number of login, logout and refresh requests",
	}, []string{"operation", "status"})

	TokensRevoked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "frameworkapi_tokens_revoked_total",
		Help: "Total number of tokens written to the denylist",
	})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "frameworkapi_request_duration_seconds",
		Help:    "Time spent handling API requests",
		Buckets: prometheus.ExponentialBuckets(0.001, 2.0, 12), // 1ms to ~4s
	}, []string{"handler"})
)
