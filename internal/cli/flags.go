// File: flags.go
// Title: Custom Flag Values
// Description: pflag.Value implementations for query-typed command-line
//              options. The uniform query option is parsed eagerly at flag
//              time because it has no sibling dependencies; indicator tokens
//              are collected raw and converted later against the final
//              sibling snapshot.
// Author: X-lab2017 Development Team
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial flag value types

package cli

import (
	"github.com/spf13/pflag"

	"github.com/X-lab2017/opendigger-cli/internal/query"
)

// QueryValue is a pflag.Value holding a parsed bare indicator query
type QueryValue struct {
	converter *Converter
	parsed    *query.IndicatorQuery
}

// compile-time interface check
var _ pflag.Value = (*QueryValue)(nil)

// NewQueryValue creates a flag value converting through the given converter
func NewQueryValue(converter *Converter) *QueryValue {
	return &QueryValue{converter: converter}
}

// Set parses and stores the query body
func (v *QueryValue) Set(s string) error {
	parsed, err := v.converter.ConvertQuery(s)
	if err != nil {
		return err
	}
	v.parsed = parsed
	return nil
}

// String returns the normal form of the stored query
func (v *QueryValue) String() string {
	if v.parsed == nil {
		return ""
	}
	return v.parsed.String()
}

// Type names the flag value type in help output
func (v *QueryValue) Type() string {
	return "indicator_query"
}

// Query returns the parsed query, or nil when the flag was not supplied
func (v *QueryValue) Query() *query.IndicatorQuery {
	return v.parsed
}

// IsSet reports whether the flag was supplied with a valid query
func (v *QueryValue) IsSet() bool {
	return v.parsed != nil
}
