// File: query.go
// Title: Indicator Query Value
// Description: Defines the immutable IndicatorQuery value produced by the
//              parser: an ordered list of typed key/value clauses with
//              structural equality and a normal-form serialization that
//              round-trips through the parser.
// Author: X-lab2017 Development Team
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial query value implementation

package query

import (
	"fmt"
	"strings"
)

// Month represents a YYYY-MM month designator
type Month struct {
	Year  int
	Month int
}

// String renders the month in its normal YYYY-MM form
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

// Before reports whether m is strictly earlier than other
func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// Value is a typed query field value
type Value struct {
	Kind  FieldKind
	Raw   string // Original text as written (edge-trimmed)
	Str   string // String/enum payload
	Int   int64  // Integer payload
	Month Month  // Month payload
}

// String renders the value in its normal form
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return fmt.Sprintf("%d", v.Int)
	case KindMonth:
		return v.Month.String()
	default:
		return v.Str
	}
}

// Equal reports structural equality of two values
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindInt:
		return v.Int == other.Int
	case KindMonth:
		return v.Month == other.Month
	default:
		return v.Str == other.Str
	}
}

// Clause is a single key=value pair in parse order
type Clause struct {
	Key   string
	Value Value
}

// IndicatorQuery is an immutable, structured indicator query. It is produced
// only by the parser; callers treat it as read-only.
type IndicatorQuery struct {
	clauses []Clause
}

// newIndicatorQuery builds a query from parsed clauses. Internal: the parser
// guarantees key uniqueness and coerced values.
func newIndicatorQuery(clauses []Clause) *IndicatorQuery {
	owned := make([]Clause, len(clauses))
	copy(owned, clauses)
	return &IndicatorQuery{clauses: owned}
}

// Len returns the number of clauses
func (q *IndicatorQuery) Len() int {
	return len(q.clauses)
}

// Clauses returns a copy of the clauses in parse order
func (q *IndicatorQuery) Clauses() []Clause {
	out := make([]Clause, len(q.clauses))
	copy(out, q.clauses)
	return out
}

// Get returns the value for a key
func (q *IndicatorQuery) Get(key string) (Value, bool) {
	key = strings.ToLower(key)
	for _, c := range q.clauses {
		if c.Key == key {
			return c.Value, true
		}
	}
	return Value{}, false
}

// Has reports whether the query contains a clause for key
func (q *IndicatorQuery) Has(key string) bool {
	_, ok := q.Get(key)
	return ok
}

// String renders the query in its normal form: clauses in parse order,
// key=value joined by commas. Parsing the result yields an equal query.
func (q *IndicatorQuery) String() string {
	parts := make([]string, 0, len(q.clauses))
	for _, c := range q.clauses {
		parts = append(parts, fmt.Sprintf("%s=%s", c.Key, c.Value.String()))
	}
	return strings.Join(parts, ",")
}

// Equal reports structural equality: same clauses with equal values. Clause
// order is not significant for equality, only membership.
func (q *IndicatorQuery) Equal(other *IndicatorQuery) bool {
	if q == nil || other == nil {
		return q == other
	}
	if len(q.clauses) != len(other.clauses) {
		return false
	}
	for _, c := range q.clauses {
		v, ok := other.Get(c.Key)
		if !ok || !v.Equal(c.Value) {
			return false
		}
	}
	return true
}
