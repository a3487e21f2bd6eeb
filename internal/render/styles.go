// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render turns parsed markdown blocks into terminal output.
package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/morganforge/mistral-tui/internal/highlight"
	"github.com/morganforge/mistral-tui/internal/ui/styles"
)

// =============================================================================
// PALETTE
// =============================================================================

// Palette holds every style the renderer applies. When colour is
// disabled all styles are passthrough, so the rendered layout is
// byte-identical minus the escape codes.
type Palette struct {
	Bold       lipgloss.Style
	Italic     lipgloss.Style
	InlineCode lipgloss.Style

	H1       lipgloss.Style
	H2       lipgloss.Style
	HDeep    lipgloss.Style
	Bullet   lipgloss.Style
	CodeLang lipgloss.Style

	tokens map[highlight.Category]lipgloss.Style
}

// NewPalette builds the render styles. The colour profile is forced
// rather than sniffed from the environment so rendering is deterministic:
// the caller decides colour capability once (TTY, NO_COLOR) and passes it
// here.
func NewPalette(color bool) Palette {
	r := lipgloss.NewRenderer(io.Discard)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	p := Palette{
		Bold:       r.NewStyle().Bold(true),
		Italic:     r.NewStyle().Italic(true),
		InlineCode: r.NewStyle().Foreground(styles.Cyan),

		H1:       r.NewStyle().Bold(true).Underline(true).Foreground(styles.Purple),
		H2:       r.NewStyle().Bold(true).Foreground(styles.Purple),
		HDeep:    r.NewStyle().Foreground(styles.Purple),
		Bullet:   r.NewStyle().Foreground(styles.TextSecondary),
		CodeLang: r.NewStyle().Foreground(styles.TextMuted),

		tokens: map[highlight.Category]lipgloss.Style{
			highlight.CategoryKeyword: r.NewStyle().Foreground(styles.Rose),
			highlight.CategoryString:  r.NewStyle().Foreground(styles.Emerald),
			highlight.CategoryComment: r.NewStyle().Foreground(styles.TextMuted).Italic(true),
			highlight.CategoryNumber:  r.NewStyle().Foreground(styles.Amber),
			highlight.CategoryIdent:   r.NewStyle().Foreground(styles.Cyan),
			highlight.CategoryPunct:   r.NewStyle().Foreground(styles.TextSecondary),
			highlight.CategoryPlain:   r.NewStyle(),
		},
	}
	return p
}

// Heading returns the style for a heading level; deeper levels render
// progressively plainer.
func (p Palette) Heading(level int) lipgloss.Style {
	switch level {
	case 1:
		return p.H1
	case 2:
		return p.H2
	default:
		return p.HDeep
	}
}

// Token returns the style for a highlight category.
func (p Palette) Token(c highlight.Category) lipgloss.Style {
	if s, ok := p.tokens[c]; ok {
		return s
	}
	return p.tokens[highlight.CategoryPlain]
}
