// Package log provides structured logging for opendigger-cli.
//
// Package: log
// Title: Structured Logging
// Description: Implements a leveled, structured logger with contextual
//              fields, text and JSON output formats, and an optional
//              rotating file sink. The CLI configures the package-level
//              default logger once at startup; packages derive named child
//              loggers via WithName.
// Author: X-lab2017 Development Team
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Usage:
//
//	import odlog "github.com/X-lab2017/opendigger-cli/internal/core/log"
//
//	logger := odlog.New().
//	    WithLevel(odlog.LevelDebug).
//	    WithName("github").
//	    WithField("request_id", requestID)
//
//	logger.Info("repository exists", odlog.Fields{"org": org, "repo": repo})
package log
