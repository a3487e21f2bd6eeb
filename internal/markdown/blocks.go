// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package markdown parses raw chat responses into block-level structure.
package markdown

import "strings"

// =============================================================================
// BLOCK VARIANTS
// =============================================================================

// Block is a top-level structural unit of parsed markdown.
// Implementations: Paragraph, Heading, ListItem, CodeBlock, Table.
// Blocks appear in source order; nesting is recorded as integer depth on
// ListItem rather than as a tree.
type Block interface {
	block()
}

// Paragraph is a run of prose lines terminated by a blank line.
type Paragraph struct {
	Spans []Inline
}

// Heading is a "#"-prefixed line. Level is 1-6.
type Heading struct {
	Level int
	Spans []Inline
}

// ListItem is a single bullet or numbered item.
// Depth counts nesting levels (leading indent / 2 spaces).
// Marker holds the literal marker text ("-", "*", or "3.").
type ListItem struct {
	Depth   int
	Ordered bool
	Marker  string
	Spans   []Inline
}

// CodeBlock is a fenced code block. Lines are captured verbatim.
// Lang is the raw fence hint ("python", "js", or empty).
type CodeBlock struct {
	Lang  string
	Lines []string
}

// Cell is one table cell.
type Cell struct {
	Spans []Inline
}

// Table is a pipe table: one header row, per-column alignment, body rows.
// Every row has exactly len(Header) cells; the parser pads or truncates.
type Table struct {
	Header []Cell
	Aligns []Alignment
	Rows   [][]Cell
}

func (Paragraph) block() {}
func (Heading) block()   {}
func (ListItem) block()  {}
func (CodeBlock) block() {}
func (Table) block()     {}

// =============================================================================
// INLINE VARIANTS
// =============================================================================

// Inline is a styled fragment of text within a block.
// Implementations: Text, Bold, Italic, Code.
// Spans never cross block boundaries.
type Inline interface {
	inline()
}

// Text is unstyled literal text.
type Text struct {
	Text string
}

// Bold wraps spans delimited by ** or __.
type Bold struct {
	Spans []Inline
}

// Italic wraps spans delimited by * or _.
type Italic struct {
	Spans []Inline
}

// Code is inline code delimited by backticks. Content is literal.
type Code struct {
	Text string
}

func (Text) inline()   {}
func (Bold) inline()   {}
func (Italic) inline() {}
func (Code) inline()   {}

// =============================================================================
// ALIGNMENT
// =============================================================================

// Alignment is a table column alignment. The zero value is AlignLeft.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// =============================================================================
// HELPERS
// =============================================================================

// Plain flattens spans to their literal text, dropping styling.
func Plain(spans []Inline) string {
	var b strings.Builder
	for _, s := range spans {
		switch s := s.(type) {
		case Text:
			b.WriteString(s.Text)
		case Bold:
			b.WriteString(Plain(s.Spans))
		case Italic:
			b.WriteString(Plain(s.Spans))
		case Code:
			b.WriteString(s.Text)
		}
	}
	return b.String()
}
