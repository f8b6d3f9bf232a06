// File: lexer_test.go
// Title: Query Lexer Unit Tests
// Description: Tests for tokenization of query bodies including whitespace
//              handling, delimiter recognition, and position tracking.
// Author: X-lab2017 Development Team
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31

package query

import (
	"testing"
)

func TestLexer_NextToken(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "Single clause",
			input: "type=developer",
			want: []Token{
				{Type: TokenText, Value: "type", Position: 0},
				{Type: TokenEquals, Value: "=", Position: 4},
				{Type: TokenText, Value: "developer", Position: 5},
				{Type: TokenEOF, Value: "", Position: 14},
			},
		},
		{
			name:  "Two clauses",
			input: "start=2020-01,end=2020-12",
			want: []Token{
				{Type: TokenText, Value: "start", Position: 0},
				{Type: TokenEquals, Value: "=", Position: 5},
				{Type: TokenText, Value: "2020-01", Position: 6},
				{Type: TokenComma, Value: ",", Position: 13},
				{Type: TokenText, Value: "end", Position: 14},
				{Type: TokenEquals, Value: "=", Position: 17},
				{Type: TokenText, Value: "2020-12", Position: 18},
				{Type: TokenEOF, Value: "", Position: 25},
			},
		},
		{
			name:  "Edge whitespace trimmed",
			input: " type = developer ",
			want: []Token{
				{Type: TokenText, Value: "type", Position: 1},
				{Type: TokenEquals, Value: "=", Position: 6},
				{Type: TokenText, Value: "developer", Position: 8},
				{Type: TokenEOF, Value: "", Position: 18},
			},
		},
		{
			name:  "Colon preserved inside value",
			input: "repo=org:name",
			want: []Token{
				{Type: TokenText, Value: "repo", Position: 0},
				{Type: TokenEquals, Value: "=", Position: 4},
				{Type: TokenText, Value: "org:name", Position: 5},
				{Type: TokenEOF, Value: "", Position: 13},
			},
		},
		{
			name:  "Empty input",
			input: "",
			want: []Token{
				{Type: TokenEOF, Value: "", Position: 0},
			},
		},
		{
			name:  "Bare delimiters",
			input: "=,",
			want: []Token{
				{Type: TokenEquals, Value: "=", Position: 0},
				{Type: TokenComma, Value: ",", Position: 1},
				{Type: TokenEOF, Value: "", Position: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TokenizeInput(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %d tokens, got %d: %v", len(tt.want), len(got), got)
			}
			for i, want := range tt.want {
				if got[i] != want {
					t.Errorf("Token %d: expected %+v, got %+v", i, want, got[i])
				}
			}
		})
	}
}

func TestLexer_InternalWhitespacePreserved(t *testing.T) {
	tokens := TokenizeInput("repo=open digger")

	if len(tokens) != 4 {
		t.Fatalf("Expected 4 tokens, got %v", tokens)
	}
	if tokens[2].Value != "open digger" {
		t.Errorf("Expected internal whitespace preserved, got %q", tokens[2].Value)
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Type: TokenText, Value: "type"}
	if tok.String() != "TEXT(type)" {
		t.Errorf("Unexpected token string: %s", tok.String())
	}
	eof := Token{Type: TokenEOF}
	if eof.String() != "EOF" {
		t.Errorf("Unexpected EOF string: %s", eof.String())
	}
}
