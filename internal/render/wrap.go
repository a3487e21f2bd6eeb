// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render turns parsed markdown blocks into terminal output.
package render

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// =============================================================================
// WORD WRAPPING
// =============================================================================

// Wrap greedily word-wraps text to width. ANSI escape sequences count as
// zero width, and existing newlines are preserved, so wrapping text whose
// lines already fit is the identity.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}

// wrapIndented wraps text to fit width with a first-line prefix and a
// continuation prefix repeated on every wrapped line. Used for list items
// (bullet then hanging indent) and plain paragraphs (uniform margin).
func wrapIndented(text string, width int, first, rest string) string {
	inner := width - len(rest)
	if inner < 1 {
		inner = 1
	}

	lines := strings.Split(Wrap(text, inner), "\n")
	var b strings.Builder
	for i, line := range lines {
		if i == 0 {
			b.WriteString(first)
		} else {
			b.WriteString("\n")
			b.WriteString(rest)
		}
		b.WriteString(line)
	}
	return b.String()
}
