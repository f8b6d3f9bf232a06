// File: parser.go
// Title: Indicator Query Parser
// Description: Implements parsing of indicator query bodies into structured
//              IndicatorQuery values. The grammar is a comma-separated list
//              of key=value clauses; keys must be unique and drawn from the
//              configured field catalogue, values are coerced per field kind.
//              Each rejection carries a distinct, stable error code.
// Author: X-lab2017 Development Team
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial parser implementation

package query

import (
	"strings"

	oderror "github.com/X-lab2017/opendigger-cli/internal/core/error"
	odlog "github.com/X-lab2017/opendigger-cli/internal/core/log"
)

// MaxBodyLength bounds accepted query body inputs
const MaxBodyLength = 4096

// Parser parses indicator query bodies against a field catalogue
type Parser struct {
	fields  FieldSet
	logger  *odlog.Logger
	current Token
	lexer   *Lexer
}

// Options configures parser behavior
type Options struct {
	Logger *odlog.Logger
	Fields FieldSet
}

// New creates a new query parser with the given options. A zero Fields
// option selects the default OpenDigger field catalogue.
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = odlog.GetDefault()
	}
	if opts.Fields.Len() == 0 {
		opts.Fields = DefaultFields()
	}

	return &Parser{
		fields: opts.Fields,
		logger: opts.Logger.WithField("component", "query-parser"),
	}
}

// Parse parses a query body with the default field catalogue
func Parse(body string) (*IndicatorQuery, error) {
	return New(Options{}).Parse(body)
}

// ParseWithFields parses a query body against a caller-supplied catalogue
func ParseWithFields(body string, fields FieldSet) (*IndicatorQuery, error) {
	return New(Options{Fields: fields}).Parse(body)
}

// Parse parses a query body string and returns the structured query.
// The operation is pure: same body and catalogue always yield the same
// result or the same failure code.
func (p *Parser) Parse(body string) (*IndicatorQuery, error) {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return nil, oderror.New("query body is empty").
			WithCode(oderror.CodeEmptyQuery).
			WithDetail("body", body)
	}
	if len(trimmed) > MaxBodyLength {
		return nil, oderror.Newf("query body exceeds maximum length: %d > %d", len(trimmed), MaxBodyLength).
			WithCode(oderror.CodeMalformedClause).
			WithDetail("length", len(trimmed))
	}

	p.lexer = NewLexer(trimmed)
	p.advance()

	p.logger.Debug("parsing query body", odlog.Fields{"body": trimmed})

	clauses, err := p.parseClauseList(trimmed)
	if err != nil {
		p.logger.Debug("query body rejected", odlog.Fields{
			"body":  trimmed,
			"error": err.Error(),
		})
		return nil, err
	}

	return newIndicatorQuery(clauses), nil
}

// parseClauseList parses the comma-separated clause list
func (p *Parser) parseClauseList(body string) ([]Clause, error) {
	var clauses []Clause
	seen := make(map[string]bool)

	for {
		clause, err := p.parseClause(body)
		if err != nil {
			return nil, err
		}

		if seen[clause.Key] {
			return nil, oderror.Newf("duplicate query key: %s", clause.Key).
				WithCode(oderror.CodeDuplicateKey).
				WithDetail("key", clause.Key).
				WithDetail("body", body)
		}
		seen[clause.Key] = true
		clauses = append(clauses, clause)

		switch p.current.Type {
		case TokenComma:
			p.advance()
		case TokenEOF:
			return clauses, nil
		default:
			return nil, p.malformed(body, "expected ',' between clauses")
		}
	}
}

// parseClause parses a single key=value clause
func (p *Parser) parseClause(body string) (Clause, error) {
	if p.current.Type != TokenText {
		return Clause{}, p.malformed(body, "expected a field name")
	}
	key := strings.ToLower(p.current.Value)
	p.advance()

	if p.current.Type != TokenEquals {
		return Clause{}, p.malformed(body, "clause is missing '='")
	}
	p.advance()

	if p.current.Type != TokenText {
		return Clause{}, p.malformed(body, "clause is missing a value")
	}
	raw := p.current.Value
	p.advance()

	// A second '=' inside the same clause is structural, not a value
	if p.current.Type == TokenEquals {
		return Clause{}, p.malformed(body, "unexpected '=' inside clause")
	}

	spec, ok := p.fields.Get(key)
	if !ok {
		return Clause{}, oderror.Newf("unknown query key: %s", key).
			WithCode(oderror.CodeUnknownKey).
			WithDetail("key", key).
			WithDetail("known_keys", p.fields.Names()).
			WithDetail("body", body)
	}

	value, err := spec.Coerce(raw)
	if err != nil {
		return Clause{}, err
	}

	return Clause{Key: key, Value: value}, nil
}

// advance loads the next token
func (p *Parser) advance() {
	p.current = p.lexer.NextToken()
}

// malformed builds the standard malformed-clause failure at the current token
func (p *Parser) malformed(body, reason string) error {
	return oderror.Newf("malformed query clause: %s", reason).
		WithCode(oderror.CodeMalformedClause).
		WithDetail("body", body).
		WithDetail("position", p.current.Position).
		WithDetail("near", p.current.Value)
}

// Fields returns the parser's field catalogue
func (p *Parser) Fields() FieldSet {
	return p.fields
}
