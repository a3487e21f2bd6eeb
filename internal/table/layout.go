// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package table renders parsed pipe tables as Unicode box-drawn grids.
package table

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/morganforge/mistral-tui/internal/markdown"
)

// =============================================================================
// LAYOUT CONSTANTS
// =============================================================================

const (
	// minColumnWidth is the floor applied when shrinking columns.
	minColumnWidth = 3

	// leftMargin indents the whole grid from the terminal edge.
	leftMargin = "  "

	// cellPadding is one space on each side of cell content.
	cellPadding = 2
)

// =============================================================================
// RENDER
// =============================================================================

// Render lays out a parsed table within maxWidth and returns the rendered
// lines. Every line has the same display width. Columns wider than their
// share are shrunk proportionally (floored at minColumnWidth) and their
// content re-wrapped into multi-line cells. A table with no body rows
// renders header and borders only. Render never fails; impossible widths
// are clamped, not reported.
func Render(t markdown.Table, maxWidth int) []string {
	columns := len(t.Header)
	if columns == 0 {
		return nil
	}

	header := flattenRow(t.Header)
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = flattenRow(row)
	}
	aligns := make([]markdown.Alignment, columns)
	copy(aligns, t.Aligns)

	widths := negotiateWidths(header, rows, columns, maxWidth)

	var out []string
	out = append(out, borderLine(widths, "┌", "┬", "┐"))
	out = append(out, contentLines(header, widths, aligns)...)
	out = append(out, separatorLine(widths, aligns))
	for i, row := range rows {
		out = append(out, contentLines(row, widths, aligns)...)
		if i < len(rows)-1 {
			out = append(out, borderLine(widths, "├", "┼", "┤"))
		}
	}
	out = append(out, borderLine(widths, "└", "┴", "┘"))
	return out
}

func flattenRow(cells []markdown.Cell) []string {
	texts := make([]string, len(cells))
	for i, c := range cells {
		texts[i] = strings.TrimSpace(markdown.Plain(c.Spans))
	}
	return texts
}

// =============================================================================
// WIDTH NEGOTIATION
// =============================================================================

// negotiateWidths computes per-column content widths. Natural widths are
// used when they fit; otherwise columns shrink proportionally with a
// floor of minColumnWidth.
func negotiateWidths(header []string, rows [][]string, columns, maxWidth int) []int {
	// Overhead per line: margin, one border per column plus one, and
	// padding inside every column.
	overhead := len(leftMargin) + columns + 1 + columns*cellPadding
	available := maxWidth - overhead
	if available < columns {
		// Degenerate terminal width; clamp rather than divide by zero
		// or go negative.
		available = columns
	}

	widths := make([]int, columns)
	for i := range widths {
		widths[i] = cellWidth(header, i)
		for _, row := range rows {
			if w := cellWidth(row, i); w > widths[i] {
				widths[i] = w
			}
		}
		if widths[i] < 1 {
			widths[i] = 1
		}
	}

	total := sum(widths)
	if total <= available {
		return widths
	}

	// Proportional shrink with a readability floor.
	for i, w := range widths {
		scaled := w * available / total
		if scaled < minColumnWidth {
			scaled = minColumnWidth
		}
		widths[i] = scaled
	}

	// Flooring can leave the total over budget; take the excess from the
	// widest columns until it fits or nothing is left to take.
	for sum(widths) > available {
		widest := 0
		for i, w := range widths {
			if w > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= minColumnWidth {
			break
		}
		widths[widest]--
	}
	return widths
}

func cellWidth(row []string, i int) int {
	if i >= len(row) {
		return 0
	}
	return runewidth.StringWidth(row[i])
}

func sum(ns []int) int {
	total := 0
	for _, n := range ns {
		total += n
	}
	return total
}

// =============================================================================
// ROW RENDERING
// =============================================================================

// contentLines renders one logical row, which expands to multiple output
// lines when any cell wraps. Shorter cells pad with blank lines.
func contentLines(row []string, widths []int, aligns []markdown.Alignment) []string {
	wrapped := make([][]string, len(widths))
	height := 1
	for i := range widths {
		text := ""
		if i < len(row) {
			text = row[i]
		}
		wrapped[i] = wrapCell(text, widths[i])
		if len(wrapped[i]) > height {
			height = len(wrapped[i])
		}
	}

	lines := make([]string, height)
	for ln := 0; ln < height; ln++ {
		var b strings.Builder
		b.WriteString(leftMargin)
		b.WriteString("│")
		for i, w := range widths {
			content := ""
			if ln < len(wrapped[i]) {
				content = wrapped[i][ln]
			}
			b.WriteString(" ")
			b.WriteString(pad(content, w, aligns[i]))
			b.WriteString(" │")
		}
		lines[ln] = b.String()
	}
	return lines
}

// pad aligns content within width. Left pads on the right, Right pads on
// the left, Center splits padding with the odd space going right.
func pad(content string, width int, align markdown.Alignment) string {
	gap := width - runewidth.StringWidth(content)
	if gap < 0 {
		gap = 0
	}
	switch align {
	case markdown.AlignRight:
		return strings.Repeat(" ", gap) + content
	case markdown.AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + content + strings.Repeat(" ", gap-left)
	default:
		return content + strings.Repeat(" ", gap)
	}
}

// =============================================================================
// BORDERS
// =============================================================================

func borderLine(widths []int, left, mid, right string) string {
	var b strings.Builder
	b.WriteString(leftMargin)
	b.WriteString(left)
	for i, w := range widths {
		b.WriteString(strings.Repeat("─", w+cellPadding))
		if i < len(widths)-1 {
			b.WriteString(mid)
		}
	}
	b.WriteString(right)
	return b.String()
}

// separatorLine draws the header separator with alignment markers, the
// way the source table's alignment row is written.
func separatorLine(widths []int, aligns []markdown.Alignment) string {
	var b strings.Builder
	b.WriteString(leftMargin)
	b.WriteString("├")
	for i, w := range widths {
		switch aligns[i] {
		case markdown.AlignCenter:
			b.WriteString(":")
			b.WriteString(strings.Repeat("─", w))
			b.WriteString(":")
		case markdown.AlignRight:
			b.WriteString(strings.Repeat("─", w+1))
			b.WriteString(":")
		default:
			b.WriteString(":")
			b.WriteString(strings.Repeat("─", w+1))
		}
		if i < len(widths)-1 {
			b.WriteString("┼")
		}
	}
	b.WriteString("┤")
	return b.String()
}

// =============================================================================
// CELL WRAPPING
// =============================================================================

// wrapCell word-wraps cell content to width, hard-breaking words longer
// than the column so no line can overflow the border.
func wrapCell(text string, width int) []string {
	if text == "" {
		return []string{""}
	}
	if width < 1 {
		width = 1
	}

	var lines []string
	var current strings.Builder
	currentWidth := 0

	flush := func() {
		lines = append(lines, current.String())
		current.Reset()
		currentWidth = 0
	}

	for _, word := range strings.Fields(text) {
		w := runewidth.StringWidth(word)

		// Hard-break words that cannot fit on any line.
		for w > width {
			if currentWidth > 0 {
				flush()
			}
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				// A single rune wider than the column; emit it anyway.
				head = string([]rune(word)[:1])
			}
			lines = append(lines, head)
			word = word[len(head):]
			w = runewidth.StringWidth(word)
		}
		if word == "" {
			continue
		}

		switch {
		case currentWidth == 0:
			current.WriteString(word)
			currentWidth = w
		case currentWidth+1+w <= width:
			current.WriteString(" ")
			current.WriteString(word)
			currentWidth += 1 + w
		default:
			flush()
			current.WriteString(word)
			currentWidth = w
		}
	}
	if currentWidth > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}
