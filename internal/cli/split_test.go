// File: split_test.go
// Title: Token Splitting Unit Tests
// Description: Tests for the first-colon split rule and the repository
//              owner/name split.
// Author: X-lab2017 Development Team
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31

package cli

import (
	"testing"

	oderror "github.com/X-lab2017/opendigger-cli/internal/core/error"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  SplitToken
	}{
		{
			name:  "No colon",
			token: "openrank",
			want:  SplitToken{Name: "openrank"},
		},
		{
			name:  "No colon trims whitespace",
			token: "  openrank  ",
			want:  SplitToken{Name: "openrank"},
		},
		{
			name:  "Name and body",
			token: "openrank:type=developer",
			want:  SplitToken{Name: "openrank", Body: "type=developer", HasBody: true},
		},
		{
			name:  "Split on first colon only",
			token: "a:b:c",
			want:  SplitToken{Name: "a", Body: "b:c", HasBody: true},
		},
		{
			name:  "Whitespace around parts",
			token: " openrank : type=developer ",
			want:  SplitToken{Name: "openrank", Body: "type=developer", HasBody: true},
		},
		{
			name:  "Trailing colon keeps empty body present",
			token: "openrank:",
			want:  SplitToken{Name: "openrank", Body: "", HasBody: true},
		},
		{
			name:  "Empty token",
			token: "",
			want:  SplitToken{Name: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Split(tt.token); got != tt.want {
				t.Errorf("Split(%q) = %+v, want %+v", tt.token, got, tt.want)
			}
		})
	}
}

func TestSplitRepo(t *testing.T) {
	owner, name, err := SplitRepo("X-lab2017/open-digger")
	if err != nil {
		t.Fatalf("SplitRepo failed: %v", err)
	}
	if owner != "X-lab2017" || name != "open-digger" {
		t.Errorf("Unexpected split: %q / %q", owner, name)
	}

	for _, bad := range []string{"", "noslash", "a/b/c", "/repo", "owner/", "/"} {
		_, _, err := SplitRepo(bad)
		if !oderror.HasCode(err, oderror.CodeMalformedToken) {
			t.Errorf("SplitRepo(%q): expected CodeMalformedToken, got %v", bad, err)
		}
	}
}
