// File: render.go
// Title: Terminal Rendering
// Description: Renders the indicator catalogue and conversion errors for
//              the terminal. Error rendering is the single place where
//              structured conversion errors become user-facing text: the
//              offending value, the reason, and for unknown names the full
//              catalogue are always included so the user can self-correct.
// Author: X-lab2017 Development Team
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial rendering implementation

package display

import (
	"fmt"
	"strings"

	oderror "github.com/X-lab2017/opendigger-cli/internal/core/error"
	"github.com/X-lab2017/opendigger-cli/internal/indicator"
)

// Catalogue renders indicator definitions as an aligned listing
func Catalogue(defs []*indicator.Definition) string {
	if len(defs) == 0 {
		return MutedStyle.Render("no indicators") + "\n"
	}

	nameWidth := 0
	for _, def := range defs {
		if len(def.Name) > nameWidth {
			nameWidth = len(def.Name)
		}
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("%-*s  %-5s  %-7s  %s", nameWidth, "NAME", "TYPE", "QUERY", "DESCRIPTION")))
	b.WriteString("\n")

	for _, def := range defs {
		capability := "no"
		if def.AcceptsQuery {
			capability = "yes"
			if def.RequiresQuery != nil {
				capability = "req"
			}
		}
		b.WriteString(fmt.Sprintf("%s  %-5s  %-7s  %s\n",
			NameStyle.Render(fmt.Sprintf("%-*s", nameWidth, def.Name)),
			string(def.Type),
			capability,
			MutedStyle.Render(def.Description)))
	}

	return b.String()
}

// SelectionItem is one accepted indicator with its query in normal form
type SelectionItem struct {
	Name  string
	Query string // empty when the indicator carries no query
}

// Selection renders the accepted indicator selection for a target
func Selection(target string, items []SelectionItem) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(target))
	b.WriteString("\n")

	if len(items) == 0 {
		b.WriteString(MutedStyle.Render("no indicators selected"))
		b.WriteString("\n")
		return b.String()
	}

	for _, item := range items {
		b.WriteString("  ")
		b.WriteString(NameStyle.Render(item.Name))
		if item.Query != "" {
			b.WriteString(MutedStyle.Render(" [" + item.Query + "]"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ConversionError renders a structured conversion error as user-facing text
func ConversionError(err error) string {
	odErr, ok := err.(*oderror.Error)
	if !ok {
		return ErrorStyle.Render("error: ") + err.Error()
	}

	var b strings.Builder
	b.WriteString(ErrorStyle.Render("error: "))
	b.WriteString(odErr.Error())

	switch odErr.Code() {
	case oderror.CodeUnknownIndicator:
		if names, ok := odErr.Detail("known_names").([]string); ok {
			b.WriteString("\n")
			b.WriteString(HintStyle.Render("valid indicators: "))
			b.WriteString(strings.Join(names, ", "))
		}
	case oderror.CodeInvalidQueryBody:
		if keys, ok := odErr.Detail("known_keys").([]string); ok {
			b.WriteString("\n")
			b.WriteString(HintStyle.Render("valid query keys: "))
			b.WriteString(strings.Join(keys, ", "))
		}
	case oderror.CodeQueryRequired:
		if name, ok := odErr.Detail("name").(string); ok {
			b.WriteString("\n")
			b.WriteString(HintStyle.Render("hint: "))
			b.WriteString(fmt.Sprintf("use %s:<key>=<value>[,...] or supply --uniform-query", name))
		}
	}

	return b.String()
}
