// Package query implements the indicator query sub-language.
//
// Package: query
// Title: Indicator Query Grammar
// Description: Provides the lexer and parser that turn a query body such as
//              "type=developer,start=2020-01,end=2020-12" into an immutable
//              IndicatorQuery value. The clause structure (comma-separated
//              key=value pairs, unique keys) is grammar; the field names and
//              value kinds are configuration supplied as a FieldSet, with
//              DefaultFields covering the OpenDigger dimensions. Parsing is
//              deterministic and free of I/O; every rejection carries a
//              stable error code for the validation layer to compose
//              messages from.
// Author: X-lab2017 Development Team
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
package query
