// File: split.go
// Title: Argument Token Splitting
// Description: Implements the shared splitting discipline for CLI argument
//              tokens: indicator tokens split on the first ':' into name and
//              optional query body, repository tokens split on '/' into
//              owner and name. Absence of a separator yields an absent body,
//              never an empty string.
// Author: X-lab2017 Development Team
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial implementation

package cli

import (
	"strings"

	oderror "github.com/X-lab2017/opendigger-cli/internal/core/error"
)

// SplitToken is an indicator token split into name and optional query body
type SplitToken struct {
	Name string
	Body string
	// HasBody distinguishes "name" (no body) from "name:" (empty body)
	HasBody bool
}

// Split divides a raw indicator token on the first ':'.
// Both parts are edge-trimmed; a ':' inside the body is preserved verbatim.
func Split(token string) SplitToken {
	token = strings.TrimSpace(token)

	name, body, found := strings.Cut(token, ":")
	if !found {
		return SplitToken{Name: name}
	}
	return SplitToken{
		Name:    strings.TrimSpace(name),
		Body:    strings.TrimSpace(body),
		HasBody: true,
	}
}

// SplitRepo divides a repository token of the form "owner/name".
// Exactly one '/' is structurally required; anything else is a malformed
// token.
func SplitRepo(token string) (owner, name string, err error) {
	token = strings.TrimSpace(token)

	parts := strings.Split(token, "/")
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return "", "", oderror.Newf("%s is not a valid repository name, expected owner/name", token).
			WithCode(oderror.CodeMalformedToken).
			WithDetail("value", token)
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}
