// Copyright (c) 2024-2025 Darcy Buskermolen <darcy@dbitech.ca>
// SPDX-License-Identifier: BSD-3-Clause

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/VA7DBI/frameworkAPI/config"
	"github.com/redis/go-redis/v9"
)

const denylistPrefix = "denylist:"

// Denylist records revoked tokens until their natural expiry.
type Denylist interface {
	// Deny tombstones a token for ttl. Idempotent; re-denying
	// overwrites the existing entry.
	Deny(ctx context.Context, token string, ttl time.Duration) error
	// IsDenied reports whether the token has been revoked.
	IsDenied(ctx context.Context, token string) (bool, error)
}

// RedisDenylist implements Denylist on a Redis instance. Entries carry
// a TTL equal to the token's remaining lifetime, so the denylist never
// grows past the set of live tokens.
type RedisDenylist struct {
	client  *redis.Client
	timeout time.Duration
}

func NewRedisDenylist(cfg *config.Config) (*RedisDenylist, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Auth.Redis.Host, cfg.Auth.Redis.Port),
		Password: cfg.Auth.Redis.Password,
		DB:       cfg.Auth.Redis.DB,
	})

	// Test connection
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %v", err)
	}

	return &RedisDenylist{
		client:  client,
		timeout: time.Duration(cfg.Auth.RedisTimeoutSec) * time.Second,
	}, nil
}

func (d *RedisDenylist) Deny(ctx context.Context, token string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	return d.client.Set(ctx, denylistPrefix+token, "1", ttl).Err()
}

func (d *RedisDenylist) IsDenied(ctx context.Context, token string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	exists, err := d.client.Exists(ctx, denylistPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return exists == 1, nil
}

func (d *RedisDenylist) Close() error {
	return d.client.Close()
}
