// File: convert.go
// Title: Indicator Token Conversion
// Description: Implements the conversion gate for indicator arguments. A
//              filtered token is split, checked against the capability
//              catalogue, gated on whether a query suffix is required or
//              forbidden under the sibling-parameter snapshot, and its body
//              delegated to the query parser. Conversion is all-or-nothing:
//              every failure is terminal for the offending argument and
//              carries a structured, stable error code.
// Author: X-lab2017 Development Team
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial conversion gate

package cli

import (
	oderror "github.com/X-lab2017/opendigger-cli/internal/core/error"
	"github.com/X-lab2017/opendigger-cli/internal/indicator"
	"github.com/X-lab2017/opendigger-cli/internal/query"
)

// Conversion is the accepted outcome of a filtered indicator token: the
// indicator name plus the parsed query, if one was attached.
type Conversion struct {
	Name  string
	Query *query.IndicatorQuery // nil when the token had no query suffix
}

// Converter converts indicator tokens against a capability catalogue
type Converter struct {
	registry *indicator.Registry
	parser   *query.Parser
}

// NewConverter creates a converter over the given catalogue. A nil parser
// option selects the default field catalogue.
func NewConverter(reg *indicator.Registry, parser *query.Parser) *Converter {
	if parser == nil {
		parser = query.New(query.Options{})
	}
	return &Converter{registry: reg, parser: parser}
}

// ConvertFiltered converts a "name" or "name:body" token. The sibling
// snapshot is taken by value at call time and never mutated.
func (c *Converter) ConvertFiltered(token string, siblings indicator.Siblings) (Conversion, error) {
	split := Split(token)

	def, err := c.registry.Get(split.Name)
	if err != nil {
		return Conversion{}, oderror.Wrap(err, "invalid indicator argument").
			WithOperation("convert_filtered").
			WithDetail("value", token)
	}

	if !split.HasBody {
		if c.registry.RequiresQuery(def.Name, siblings) {
			return Conversion{}, oderror.Newf("%s requires an indicator query, use %s:<query>", def.Name, def.Name).
				WithCode(oderror.CodeQueryRequired).
				WithOperation("convert_filtered").
				WithDetail("name", def.Name).
				WithDetail("value", token)
		}
		return Conversion{Name: def.Name}, nil
	}

	if !def.AcceptsQuery {
		return Conversion{}, oderror.Newf("%s does not support an indicator query, use %s directly", def.Name, def.Name).
			WithCode(oderror.CodeQueryNotSupported).
			WithOperation("convert_filtered").
			WithDetail("name", def.Name).
			WithDetail("value", token)
	}

	parsed, err := c.parser.Parse(split.Body)
	if err != nil {
		return Conversion{}, oderror.Wrap(err, "invalid indicator query body").
			WithCode(oderror.CodeInvalidQueryBody).
			WithOperation("convert_filtered").
			WithDetail("name", def.Name).
			WithDetail("body", split.Body).
			WithDetail("detail_code", string(oderror.GetCode(err)))
	}

	return Conversion{Name: def.Name, Query: parsed}, nil
}

// ConvertBare validates a bare indicator name against the catalogue with no
// query semantics. Used where only membership matters, such as the ignore
// list.
func (c *Converter) ConvertBare(token string) (string, error) {
	split := Split(token)
	if split.HasBody {
		return "", oderror.Newf("%s does not take an indicator query here", split.Name).
			WithCode(oderror.CodeQueryNotSupported).
			WithOperation("convert_bare").
			WithDetail("value", token)
	}

	def, err := c.registry.Get(split.Name)
	if err != nil {
		return "", oderror.Wrap(err, "invalid indicator argument").
			WithOperation("convert_bare").
			WithDetail("value", token)
	}
	return def.Name, nil
}

// ConvertQuery converts a token known in advance to be a bare query body
// with no name prefix, such as the uniform query option.
func (c *Converter) ConvertQuery(token string) (*query.IndicatorQuery, error) {
	parsed, err := c.parser.Parse(token)
	if err != nil {
		return nil, oderror.Wrap(err, "invalid indicator query").
			WithCode(oderror.CodeInvalidQueryBody).
			WithOperation("convert_query").
			WithDetail("body", token).
			WithDetail("detail_code", string(oderror.GetCode(err)))
	}
	return parsed, nil
}

// Registry returns the converter's capability catalogue
func (c *Converter) Registry() *indicator.Registry {
	return c.registry
}
