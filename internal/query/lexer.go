// File: lexer.go
// Title: Query Body Lexical Analyzer
// Description: Implements the lexical analysis phase of indicator query
//              parsing. Converts a query body string into a stream of
//              tokens for the parser. Text runs between delimiters keep
//              their internal whitespace; only edge whitespace is trimmed.
// Author: X-lab2017 Development Team
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial lexer implementation

package query

import (
	"fmt"
	"strings"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// TokenText is a run of text between delimiters (a key or a value)
	TokenText

	// Delimiters
	TokenEquals // =
	TokenComma  // ,
)

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenText:
		return "TEXT"
	case TokenEquals:
		return "EQUALS"
	case TokenComma:
		return "COMMA"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with position information
type Token struct {
	Type     TokenType // Token type
	Value    string    // Token text, edge-trimmed for TokenText
	Position int       // Byte position in input (0-based, start of token)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return fmt.Sprintf("ILLEGAL(%s)", t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
	}
}

// Lexer performs lexical analysis of a query body
type Lexer struct {
	input    string // Input string
	position int    // Current position in input (points to current char)
	readPos  int    // Current reading position (after current char)
	ch       byte   // Current char under examination
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar() // Initialize first character
	return l
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := l.position

	switch l.ch {
	case '=':
		tok := Token{Type: TokenEquals, Value: "=", Position: pos}
		l.readChar()
		return tok
	case ',':
		tok := Token{Type: TokenComma, Value: ",", Position: pos}
		l.readChar()
		return tok
	case 0:
		return Token{Type: TokenEOF, Value: "", Position: pos}
	default:
		return Token{Type: TokenText, Value: l.readText(), Position: pos}
	}
}

// Tokenize returns all tokens from the input as a slice
func (l *Lexer) Tokenize() []Token {
	var tokens []Token

	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		if tok.Type == TokenEOF {
			break
		}
	}

	return tokens
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL represents EOF
	} else {
		l.ch = l.input[l.readPos]
	}

	l.position = l.readPos
	l.readPos++
}

// readText reads a run of text up to the next delimiter or EOF.
// Trailing whitespace is trimmed; internal whitespace is preserved.
func (l *Lexer) readText() string {
	start := l.position
	for l.ch != '=' && l.ch != ',' && l.ch != 0 {
		l.readChar()
	}
	return strings.TrimRight(l.input[start:l.position], " \t")
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// TokenizeInput is a convenience function that tokenizes a query body
func TokenizeInput(input string) []Token {
	return NewLexer(input).Tokenize()
}
