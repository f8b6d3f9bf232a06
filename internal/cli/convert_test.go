// File: convert_test.go
// Title: Conversion Gate Unit Tests
// Description: Tests for indicator token conversion: splitting, catalogue
//              membership, query requirement and prohibition gates, body
//              delegation, and the bare-name companion gate.
// Author: X-lab2017 Development Team
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31

package cli

import (
	"testing"

	oderror "github.com/X-lab2017/opendigger-cli/internal/core/error"
	"github.com/X-lab2017/opendigger-cli/internal/indicator"
)

func newTestConverter(t *testing.T) *Converter {
	t.Helper()
	reg := indicator.New(indicator.Options{})

	defs := []*indicator.Definition{
		{Name: "openrank", Type: indicator.TypeRepo, AcceptsQuery: true},
		{Name: "activity", Type: indicator.TypeRepo, AcceptsQuery: true},
		{Name: "devnet", Type: indicator.TypeRepo, AcceptsQuery: false},
		{
			Name: "opennet", Type: indicator.TypeRepo,
			AcceptsQuery: true, RequiresQuery: indicator.UnlessUniformQuery,
		},
	}
	for _, def := range defs {
		if err := reg.Register(def); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
	}
	return NewConverter(reg, nil)
}

func TestConvertFiltered(t *testing.T) {
	c := newTestConverter(t)

	tests := []struct {
		name     string
		token    string
		siblings indicator.Siblings
		wantCode oderror.Code // zero value means success expected
		check    func(t *testing.T, conv Conversion)
	}{
		{
			name:  "Bare name accepted",
			token: "openrank",
			check: func(t *testing.T, conv Conversion) {
				if conv.Name != "openrank" || conv.Query != nil {
					t.Errorf("Unexpected conversion: %+v", conv)
				}
			},
		},
		{
			name:  "Name with query accepted",
			token: "openrank:type=developer,start=2020-01,end=2020-12",
			check: func(t *testing.T, conv Conversion) {
				if conv.Query == nil || conv.Query.Len() != 3 {
					t.Fatalf("Expected 3-clause query, got %+v", conv.Query)
				}
			},
		},
		{
			name:  "Token whitespace tolerated",
			token: "  openrank : type=developer  ",
			check: func(t *testing.T, conv Conversion) {
				if conv.Name != "openrank" || conv.Query == nil {
					t.Errorf("Unexpected conversion: %+v", conv)
				}
			},
		},
		{
			name:     "Unknown name",
			token:    "openrankk",
			wantCode: oderror.CodeUnknownIndicator,
		},
		{
			name:     "Unknown name with query",
			token:    "nonsense:type=developer",
			wantCode: oderror.CodeUnknownIndicator,
		},
		{
			name:     "Required query missing",
			token:    "opennet",
			wantCode: oderror.CodeQueryRequired,
		},
		{
			name:     "Uniform query relaxes requirement",
			token:    "opennet",
			siblings: indicator.Siblings{UniformQuery: true},
			check: func(t *testing.T, conv Conversion) {
				if conv.Name != "opennet" || conv.Query != nil {
					t.Errorf("Unexpected conversion: %+v", conv)
				}
			},
		},
		{
			name:  "Required query supplied",
			token: "opennet:type=developer",
			check: func(t *testing.T, conv Conversion) {
				if conv.Query == nil {
					t.Error("Expected parsed query")
				}
			},
		},
		{
			name:     "Query on non-query indicator",
			token:    "devnet:x=1",
			wantCode: oderror.CodeQueryNotSupported,
		},
		{
			name:     "Query forbidden regardless of body validity",
			token:    "devnet:anything at all",
			wantCode: oderror.CodeQueryNotSupported,
		},
		{
			name:     "Invalid query body",
			token:    "openrank:type",
			wantCode: oderror.CodeInvalidQueryBody,
		},
		{
			name:     "Empty query body",
			token:    "openrank:",
			wantCode: oderror.CodeInvalidQueryBody,
		},
		{
			name:     "Duplicate key in body",
			token:    "openrank:type=developer,type=user",
			wantCode: oderror.CodeInvalidQueryBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv, err := c.ConvertFiltered(tt.token, tt.siblings)

			if tt.wantCode != "" {
				if err == nil {
					t.Fatalf("Expected failure with code %s, got %+v", tt.wantCode, conv)
				}
				if !oderror.HasCode(err, tt.wantCode) {
					t.Errorf("Expected code %s, got %s (%v)", tt.wantCode, oderror.GetCode(err), err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ConvertFiltered failed: %v", err)
			}
			if tt.check != nil {
				tt.check(t, conv)
			}
		})
	}
}

func TestConvertFilteredDetailCode(t *testing.T) {
	c := newTestConverter(t)

	tests := []struct {
		token      string
		detailCode string
	}{
		{"openrank:", "EMPTY_QUERY"},
		{"openrank:type", "MALFORMED_CLAUSE"},
		{"openrank:type=developer,type=user", "DUPLICATE_KEY"},
		{"openrank:color=red", "UNKNOWN_KEY"},
		{"openrank:top=ten", "VALUE_COERCION"},
	}

	for _, tt := range tests {
		_, err := c.ConvertFiltered(tt.token, indicator.Siblings{})
		odErr, ok := err.(*oderror.Error)
		if !ok {
			t.Fatalf("%s: expected *oderror.Error, got %T", tt.token, err)
		}
		if got := odErr.Detail("detail_code"); got != tt.detailCode {
			t.Errorf("%s: detail_code = %v, want %s", tt.token, got, tt.detailCode)
		}
	}
}

func TestConvertFilteredUnknownListsCatalogue(t *testing.T) {
	c := newTestConverter(t)

	_, err := c.ConvertFiltered("nope", indicator.Siblings{})
	odErr, ok := err.(*oderror.Error)
	if !ok {
		t.Fatalf("Expected *oderror.Error, got %T", err)
	}
	known, ok := odErr.Detail("known_names").([]string)
	if !ok || len(known) != 4 {
		t.Errorf("Expected full catalogue in known_names, got %v", odErr.Detail("known_names"))
	}
	if odErr.Detail("value") != "nope" {
		t.Errorf("Expected offending value in details, got %v", odErr.Detail("value"))
	}
}

func TestConvertBare(t *testing.T) {
	c := newTestConverter(t)

	name, err := c.ConvertBare("activity")
	if err != nil || name != "activity" {
		t.Errorf("Expected bare conversion to succeed, got %q, %v", name, err)
	}

	if _, err := c.ConvertBare("unknown"); !oderror.HasCode(err, oderror.CodeUnknownIndicator) {
		t.Errorf("Expected CodeUnknownIndicator, got %v", err)
	}

	if _, err := c.ConvertBare("activity:type=developer"); !oderror.HasCode(err, oderror.CodeQueryNotSupported) {
		t.Errorf("Expected CodeQueryNotSupported for query on bare argument, got %v", err)
	}
}

func TestConvertQuery(t *testing.T) {
	c := newTestConverter(t)

	q, err := c.ConvertQuery("type=developer,top=5")
	if err != nil {
		t.Fatalf("ConvertQuery failed: %v", err)
	}
	if q.Len() != 2 {
		t.Errorf("Expected 2 clauses, got %d", q.Len())
	}

	if _, err := c.ConvertQuery(""); !oderror.HasCode(err, oderror.CodeInvalidQueryBody) {
		t.Errorf("Expected CodeInvalidQueryBody for empty body, got %v", err)
	}
}

func TestConversionIsAllOrNothing(t *testing.T) {
	c := newTestConverter(t)

	// A token with a valid name but invalid body yields no partial result
	conv, err := c.ConvertFiltered("openrank:type=developer,type=user", indicator.Siblings{})
	if err == nil {
		t.Fatal("Expected failure")
	}
	if conv.Name != "" || conv.Query != nil {
		t.Errorf("Expected zero-value conversion on failure, got %+v", conv)
	}
}
