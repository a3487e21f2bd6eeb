// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render turns parsed markdown blocks into terminal output.
package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/morganforge/mistral-tui/internal/highlight"
	"github.com/morganforge/mistral-tui/internal/markdown"
	"github.com/morganforge/mistral-tui/internal/table"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// DefaultWidth is used when the terminal width is unavailable.
	DefaultWidth = 80

	// MinWidth is the floor for wrapping and table arithmetic.
	MinWidth = 40

	// proseIndent is the fixed left margin for paragraphs.
	proseIndent = "  "

	// codeIndent is the fixed left margin framing code blocks.
	codeIndent = "    "
)

var langTitle = cases.Title(language.Und)

// =============================================================================
// RENDERER
// =============================================================================

// Options configures a single renderer.
type Options struct {
	// Width is the terminal column width, sampled once by the caller.
	// Zero or negative falls back to DefaultWidth.
	Width int

	// Color enables ANSI styling. When false the output is plain text
	// with identical layout.
	Color bool

	// PromptHint is the user prompt that produced the response, used by
	// the language classifier when a fence carries no usable hint.
	PromptHint string
}

// Renderer renders one response. It holds no state across Render calls
// beyond its immutable options, so it is safe to reuse, but the intended
// use is one renderer per response with a freshly sampled width.
type Renderer struct {
	width int
	hint  string
	pal   Palette
}

// New creates a renderer. Width is clamped into [MinWidth, ∞) with
// DefaultWidth substituted for zero so layout arithmetic never divides
// by zero or goes negative.
func New(opts Options) *Renderer {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	if width < MinWidth {
		width = MinWidth
	}
	return &Renderer{
		width: width,
		hint:  opts.PromptHint,
		pal:   NewPalette(opts.Color),
	}
}

// Render parses raw response text and renders it for the terminal.
func (r *Renderer) Render(raw string) string {
	return r.RenderBlocks(markdown.Parse(raw))
}

// RenderBlocks renders an already-parsed block sequence. Blocks are
// joined by blank lines, except consecutive list items which stay
// adjacent.
func (r *Renderer) RenderBlocks(blocks []markdown.Block) string {
	var parts []string
	var prevList bool

	for _, block := range blocks {
		_, isList := block.(markdown.ListItem)
		rendered := r.renderBlock(block)
		if rendered == "" {
			continue
		}
		if len(parts) > 0 {
			if isList && prevList {
				parts = append(parts, "\n")
			} else {
				parts = append(parts, "\n\n")
			}
		}
		parts = append(parts, rendered)
		prevList = isList
	}
	return strings.Join(parts, "")
}

// renderBlock dispatches on the block variant. The type switch is
// exhaustive over the markdown package's block kinds.
func (r *Renderer) renderBlock(block markdown.Block) string {
	switch b := block.(type) {
	case markdown.Paragraph:
		return wrapIndented(r.renderSpans(b.Spans), r.width, proseIndent, proseIndent)
	case markdown.Heading:
		return r.renderHeading(b)
	case markdown.ListItem:
		return r.renderListItem(b)
	case markdown.CodeBlock:
		return r.renderCode(b)
	case markdown.Table:
		return strings.Join(table.Render(b, r.width), "\n")
	default:
		return ""
	}
}

// =============================================================================
// PROSE
// =============================================================================

// renderSpans translates inline spans to styled substrings.
func (r *Renderer) renderSpans(spans []markdown.Inline) string {
	var b strings.Builder
	for _, span := range spans {
		switch s := span.(type) {
		case markdown.Text:
			b.WriteString(s.Text)
		case markdown.Bold:
			b.WriteString(r.pal.Bold.Render(markdown.Plain(s.Spans)))
		case markdown.Italic:
			b.WriteString(r.pal.Italic.Render(markdown.Plain(s.Spans)))
		case markdown.Code:
			b.WriteString(r.pal.InlineCode.Render(s.Text))
		}
	}
	return b.String()
}

func (r *Renderer) renderHeading(h markdown.Heading) string {
	text := markdown.Plain(h.Spans)
	styled := r.pal.Heading(h.Level).Render(text)
	return Wrap(styled, r.width)
}

// renderListItem draws the bullet (or the source's ordinal marker) and
// reproduces the indent on every wrapped line.
func (r *Renderer) renderListItem(item markdown.ListItem) string {
	indent := strings.Repeat(proseIndent, item.Depth+1)
	marker := "• "
	if item.Ordered {
		marker = item.Marker + " "
	}
	first := indent + r.pal.Bullet.Render(marker)
	rest := indent + strings.Repeat(" ", runewidth.StringWidth(marker))
	return wrapIndented(r.renderSpans(item.Spans), r.width, first, rest)
}

// =============================================================================
// CODE BLOCKS
// =============================================================================

// renderCode highlights the block and frames it with a fixed left
// margin. Code lines are never wrapped: breaking code would corrupt it,
// so long lines pass through unmodified.
func (r *Renderer) renderCode(b markdown.CodeBlock) string {
	lang := highlight.Classify(b.Lang, r.hint)
	source := strings.Join(b.Lines, "\n")

	var out []string
	if lang != highlight.LangPlain {
		out = append(out, codeIndent+r.pal.CodeLang.Render(langTitle.String(string(lang))))
	}

	highlighted := r.renderTokens(highlight.Highlight(source, lang))
	for _, line := range strings.Split(highlighted, "\n") {
		out = append(out, codeIndent+line)
	}
	return strings.Join(out, "\n")
}

// renderTokens styles each token per its category. Tokens spanning
// newlines are styled per line so the margin can be inserted cleanly.
func (r *Renderer) renderTokens(tokens []highlight.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		style := r.pal.Token(tok.Category)
		for i, part := range strings.Split(tok.Text, "\n") {
			if i > 0 {
				b.WriteString("\n")
			}
			if part != "" {
				b.WriteString(style.Render(part))
			}
		}
	}
	return b.String()
}
