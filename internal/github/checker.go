// File: checker.go
// Title: GitHub Existence Checker
// Description: Implements the remote existence checks for GitHub
//              repositories and users. The checker is a thin REST client:
//              one request per check, a configured timeout, no retries.
//              Results are booleans; transport and unexpected-status
//              failures surface as external-service errors, never as user
//              input errors.
// Author: X-lab2017 Development Team
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial checker implementation

package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	oderror "github.com/X-lab2017/opendigger-cli/internal/core/error"
	odlog "github.com/X-lab2017/opendigger-cli/internal/core/log"
)

// Config holds checker configuration
type Config struct {
	APIBase   string        // GitHub API base URL
	Token     string        // Optional bearer token
	Timeout   time.Duration // Per-request timeout
	UserAgent string        // User agent string
}

// DefaultConfig returns the default checker configuration
func DefaultConfig() Config {
	return Config{
		APIBase:   "https://api.github.com",
		Timeout:   10 * time.Second,
		UserAgent: "opendigger-cli/1.0",
	}
}

// Checker performs existence checks against the GitHub API
type Checker struct {
	apiBase    string
	token      string
	userAgent  string
	httpClient *http.Client
	logger     *odlog.Logger
}

// NewChecker creates a checker from the given configuration
func NewChecker(cfg Config) *Checker {
	if cfg.APIBase == "" {
		cfg.APIBase = DefaultConfig().APIBase
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultConfig().UserAgent
	}

	return &Checker{
		apiBase:    strings.TrimRight(cfg.APIBase, "/"),
		token:      cfg.Token,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     odlog.GetDefault().WithField("component", "github-checker"),
	}
}

// RepoExists reports whether the repository owner/name exists on GitHub
func (c *Checker) RepoExists(ctx context.Context, owner, name string) (bool, error) {
	path := fmt.Sprintf("/repos/%s/%s", url.PathEscape(owner), url.PathEscape(name))
	return c.exists(ctx, path)
}

// UserExists reports whether the user login exists on GitHub
func (c *Checker) UserExists(ctx context.Context, login string) (bool, error) {
	path := fmt.Sprintf("/users/%s", url.PathEscape(login))
	return c.exists(ctx, path)
}

// exists performs a single existence lookup for an API path
func (c *Checker) exists(ctx context.Context, path string) (bool, error) {
	requestID := uuid.NewString()
	target := c.apiBase + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return false, oderror.Wrap(err, "building existence check request").
			WithCode(oderror.CodeExternalService).
			WithDetail("url", target)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-Request-ID", requestID)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.logger.Debug("existence check", odlog.Fields{
		"url":        target,
		"request_id": requestID,
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, oderror.Wrap(err, "existence check request failed").
			WithCode(oderror.CodeExternalService).
			WithDetail("url", target).
			WithDetail("request_id", requestID)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, oderror.Newf("unexpected status %d from existence check", resp.StatusCode).
			WithCode(oderror.CodeExternalService).
			WithDetail("url", target).
			WithDetail("status", resp.StatusCode).
			WithDetail("request_id", requestID)
	}
}
