// File: fields.go
// Title: Query Field Catalogue
// Description: Defines the pluggable field catalogue for indicator queries.
//              Field names, kinds, and constraints are configuration handed
//              to the parser; the grammar itself only fixes the clause
//              structure (comma-separated key=value, no duplicate keys).
// Author: X-lab2017 Development Team
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial field catalogue implementation

package query

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	oderror "github.com/X-lab2017/opendigger-cli/internal/core/error"
)

// FieldKind represents the value type of a query field
type FieldKind int

const (
	// KindString accepts any non-empty string verbatim
	KindString FieldKind = iota

	// KindInt accepts a decimal integer, optionally range-bounded
	KindInt

	// KindMonth accepts a YYYY-MM month designator
	KindMonth

	// KindEnum accepts one of a declared set of values
	KindEnum
)

// String returns the string representation of the field kind
func (k FieldKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindMonth:
		return "month"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// FieldSpec declares a single query field with its value constraints
type FieldSpec struct {
	Name        string    // Normalized field name (lower case)
	Kind        FieldKind // Value kind
	Enum        []string  // Allowed values for KindEnum
	Min         int64     // Lower bound for KindInt (inclusive), if Bounded
	Max         int64     // Upper bound for KindInt (inclusive), if Bounded
	Bounded     bool      // Whether Min/Max apply
	Description string    // Field description for help output
}

// FieldSet is an immutable collection of field specs keyed by name
type FieldSet struct {
	specs map[string]FieldSpec
}

// NewFieldSet builds a field set from specs. Names are normalized to lower
// case; duplicate names are an error.
func NewFieldSet(specs ...FieldSpec) (FieldSet, error) {
	m := make(map[string]FieldSpec, len(specs))
	for _, spec := range specs {
		name := strings.ToLower(strings.TrimSpace(spec.Name))
		if name == "" {
			return FieldSet{}, oderror.New("field spec with empty name").
				WithCode(oderror.CodeInternal)
		}
		if _, exists := m[name]; exists {
			return FieldSet{}, oderror.Newf("duplicate field spec: %s", name).
				WithCode(oderror.CodeInternal).
				WithDetail("field", name)
		}
		spec.Name = name
		m[name] = spec
	}
	return FieldSet{specs: m}, nil
}

// MustFieldSet is like NewFieldSet but panics on error; for package-level
// catalogue construction only.
func MustFieldSet(specs ...FieldSpec) FieldSet {
	fs, err := NewFieldSet(specs...)
	if err != nil {
		panic(err)
	}
	return fs
}

// Has reports whether the set contains a field with the given name
func (fs FieldSet) Has(name string) bool {
	_, ok := fs.specs[strings.ToLower(name)]
	return ok
}

// Get returns the spec for the given name
func (fs FieldSet) Get(name string) (FieldSpec, bool) {
	spec, ok := fs.specs[strings.ToLower(name)]
	return spec, ok
}

// Names returns all field names in sorted order
func (fs FieldSet) Names() []string {
	names := make([]string, 0, len(fs.specs))
	for name := range fs.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of fields in the set
func (fs FieldSet) Len() int {
	return len(fs.specs)
}

// monthPattern matches a YYYY-MM month designator
var monthPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// Coerce validates raw against the spec and returns the typed value
func (spec FieldSpec) Coerce(raw string) (Value, error) {
	switch spec.Kind {
	case KindString:
		if raw == "" {
			return Value{}, coercionError(spec, raw, "value must not be empty")
		}
		return Value{Kind: KindString, Raw: raw, Str: raw}, nil

	case KindInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, coercionError(spec, raw, "value is not an integer")
		}
		if spec.Bounded && (n < spec.Min || n > spec.Max) {
			return Value{}, coercionError(spec, raw,
				fmt.Sprintf("value out of range [%d, %d]", spec.Min, spec.Max))
		}
		return Value{Kind: KindInt, Raw: raw, Int: n}, nil

	case KindMonth:
		m := monthPattern.FindStringSubmatch(raw)
		if m == nil {
			return Value{}, coercionError(spec, raw, "value is not a YYYY-MM month")
		}
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 {
			return Value{}, coercionError(spec, raw, "month must be between 01 and 12")
		}
		return Value{Kind: KindMonth, Raw: raw, Month: Month{Year: year, Month: month}}, nil

	case KindEnum:
		for _, allowed := range spec.Enum {
			if raw == allowed {
				return Value{Kind: KindEnum, Raw: raw, Str: raw}, nil
			}
		}
		return Value{}, coercionError(spec, raw,
			fmt.Sprintf("value must be one of [%s]", strings.Join(spec.Enum, ", ")))

	default:
		return Value{}, oderror.Newf("unhandled field kind: %s", spec.Kind).
			WithCode(oderror.CodeInternal)
	}
}

// coercionError builds the standard value-coercion failure
func coercionError(spec FieldSpec, raw, reason string) error {
	return oderror.Newf("invalid value for %s: %s", spec.Name, reason).
		WithCode(oderror.CodeValueCoercion).
		WithDetail("field", spec.Name).
		WithDetail("kind", spec.Kind.String()).
		WithDetail("value", raw)
}

// DefaultFields returns the OpenDigger indicator query field catalogue.
// This is configuration, not grammar: callers with other dimensions supply
// their own FieldSet to ParseWithFields.
func DefaultFields() FieldSet {
	return MustFieldSet(
		FieldSpec{
			Name:        "type",
			Kind:        KindEnum,
			Enum:        []string{"developer", "repo", "user"},
			Description: "entity type the indicator is filtered to",
		},
		FieldSpec{
			Name:        "start",
			Kind:        KindMonth,
			Description: "first month of the query range (YYYY-MM)",
		},
		FieldSpec{
			Name:        "end",
			Kind:        KindMonth,
			Description: "last month of the query range (YYYY-MM)",
		},
		FieldSpec{
			Name:        "top",
			Kind:        KindInt,
			Min:         1,
			Max:         100,
			Bounded:     true,
			Description: "number of top entries to keep",
		},
		FieldSpec{
			Name:        "repo",
			Kind:        KindString,
			Description: "repository the network indicator is scoped to",
		},
		FieldSpec{
			Name:        "limit",
			Kind:        KindInt,
			Min:         1,
			Max:         10000,
			Bounded:     true,
			Description: "maximum number of data points returned",
		},
	)
}
