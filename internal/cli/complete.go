// File: complete.go
// Title: Shell Completion Candidates
// Description: Produces completion candidates for indicator arguments.
//              The incomplete token is split like any other token; a held
//              query-body fragment is re-attached to every matching name so
//              the user's partial query survives completion.
// Author: X-lab2017 Development Team
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial completion support

package cli

import (
	"strings"

	"github.com/X-lab2017/opendigger-cli/internal/indicator"
)

// Complete returns candidate strings for an incomplete indicator token.
// Candidates are catalogue names prefix-matched against the name fragment;
// when the token already carries a query-body fragment, it is re-attached
// as name:body to every candidate. The result is computed fresh per call.
func Complete(incomplete string, reg *indicator.Registry) []string {
	split := Split(incomplete)

	candidates := make([]string, 0, reg.Len())
	for _, name := range reg.Names() {
		if !strings.HasPrefix(name, split.Name) {
			continue
		}
		if split.HasBody {
			candidates = append(candidates, name+":"+split.Body)
		} else {
			candidates = append(candidates, name)
		}
	}
	return candidates
}

// CompleteBare returns candidate bare names for an incomplete token,
// ignoring any query fragment. Used for name-only arguments.
func CompleteBare(incomplete string, reg *indicator.Registry) []string {
	split := Split(incomplete)

	candidates := make([]string, 0, reg.Len())
	for _, name := range reg.Names() {
		if strings.HasPrefix(name, split.Name) {
			candidates = append(candidates, name)
		}
	}
	return candidates
}
