// Package error provides structured error handling for opendigger-cli.
//
// Package: error
// Title: Structured Error Handling
// Description: Implements a rich error type with standardized codes, detail
//              metadata, and cause chaining. Argument conversion failures
//              carry machine-readable codes so the CLI boundary can decide
//              how to present them; the package itself never formats user
//              messages.
// Author: X-lab2017 Development Team
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Usage:
//
//	import oderror "github.com/X-lab2017/opendigger-cli/internal/core/error"
//
//	err := oderror.New("unknown indicator name").
//	    WithCode(oderror.CodeUnknownIndicator).
//	    WithDetail("name", name).
//	    WithDetail("known_names", names)
//
//	if oderror.HasCode(err, oderror.CodeUnknownIndicator) {
//	    // render with the known-name list
//	}
package error
