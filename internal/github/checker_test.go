// File: checker_test.go
// Title: Existence Checker Unit Tests
// Description: Tests the checker against a local test server covering the
//              found, not-found, and unexpected-status paths.
// Author: X-lab2017 Development Team
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31

package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	oderror "github.com/X-lab2017/opendigger-cli/internal/core/error"
)

func newTestChecker(t *testing.T, handler http.HandlerFunc) *Checker {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewChecker(Config{
		APIBase: server.URL,
		Token:   "test-token",
		Timeout: 2 * time.Second,
	})
}

func TestRepoExists(t *testing.T) {
	checker := newTestChecker(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			t.Errorf("Expected bearer token header, got %q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("Expected a request ID header")
		}
		switch r.URL.Path {
		case "/repos/X-lab2017/open-digger":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	exists, err := checker.RepoExists(context.Background(), "X-lab2017", "open-digger")
	if err != nil || !exists {
		t.Errorf("Expected repo to exist, got %v, %v", exists, err)
	}

	exists, err = checker.RepoExists(context.Background(), "X-lab2017", "absent")
	if err != nil || exists {
		t.Errorf("Expected repo to be absent, got %v, %v", exists, err)
	}
}

func TestUserExists(t *testing.T) {
	checker := newTestChecker(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users/frank-zsy" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	exists, err := checker.UserExists(context.Background(), "frank-zsy")
	if err != nil || !exists {
		t.Errorf("Expected user to exist, got %v, %v", exists, err)
	}

	exists, err = checker.UserExists(context.Background(), "no-such-user")
	if err != nil || exists {
		t.Errorf("Expected user to be absent, got %v, %v", exists, err)
	}
}

func TestUnexpectedStatus(t *testing.T) {
	checker := newTestChecker(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := checker.UserExists(context.Background(), "anyone")
	if !oderror.HasCode(err, oderror.CodeExternalService) {
		t.Errorf("Expected CodeExternalService, got %v", err)
	}
}

func TestContextCancellation(t *testing.T) {
	checker := newTestChecker(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := checker.UserExists(ctx, "anyone")
	if !oderror.HasCode(err, oderror.CodeExternalService) {
		t.Errorf("Expected CodeExternalService on cancellation, got %v", err)
	}
}
