// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package markdown parses raw chat responses into block-level structure.
package markdown

import (
	"strings"
	"unicode"
)

// =============================================================================
// PARSER STATE
// =============================================================================

// parserState identifies which block the parser is currently accumulating.
type parserState int

const (
	stateIdle parserState = iota
	stateParagraph
	stateCode
	stateTable
)

// indentUnit is how many leading spaces make one list nesting level.
const indentUnit = 2

// parser is a line-oriented state machine with accumulator buffers.
// It is created fresh per Parse call, so parsing is reentrant.
type parser struct {
	state  parserState
	blocks []Block

	// Paragraph accumulator
	para []string

	// Code fence accumulator
	fenceChar byte
	fenceLen  int
	codeLang  string
	codeLines []string

	// Table accumulator (raw candidate lines)
	tableLines []string
}

// =============================================================================
// PARSE
// =============================================================================

// Parse scans raw text into an ordered sequence of blocks.
// It never fails: malformed input degrades to plain paragraphs, and an
// unterminated code fence is treated as closed at end of input. The input
// is an untrusted API response that must always produce some output.
func Parse(raw string) []Block {
	p := &parser{}
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	for _, line := range strings.Split(raw, "\n") {
		p.feed(line)
	}
	p.flushAll()
	return p.blocks
}

// feed processes one source line.
func (p *parser) feed(line string) {
	// Inside a fence everything is verbatim until the closing delimiter.
	if p.state == stateCode {
		if p.closesFence(line) {
			p.endCode()
			return
		}
		p.codeLines = append(p.codeLines, line)
		return
	}

	trimmed := strings.TrimSpace(line)

	if ch, n, rest := fenceOpen(trimmed); n >= 3 {
		p.flushAll()
		p.state = stateCode
		p.fenceChar = ch
		p.fenceLen = n
		p.codeLang = strings.TrimSpace(rest)
		return
	}

	if isTableCandidate(trimmed) {
		if p.state != stateTable {
			p.flushAll()
			p.state = stateTable
		}
		p.tableLines = append(p.tableLines, trimmed)
		return
	}
	if p.state == stateTable {
		p.endTable()
	}

	if trimmed == "" {
		p.flushParagraph()
		return
	}

	if level, rest, ok := headingLine(trimmed); ok {
		p.flushParagraph()
		p.blocks = append(p.blocks, Heading{Level: level, Spans: ParseInline(rest)})
		return
	}

	if item, ok := listItemLine(line); ok {
		p.flushParagraph()
		p.blocks = append(p.blocks, item)
		return
	}

	p.state = stateParagraph
	p.para = append(p.para, trimmed)
}

// flushAll closes every open accumulator in source order.
func (p *parser) flushAll() {
	switch p.state {
	case stateCode:
		p.endCode()
	case stateTable:
		p.endTable()
	default:
		p.flushParagraph()
	}
}

func (p *parser) flushParagraph() {
	if len(p.para) > 0 {
		text := strings.Join(p.para, " ")
		p.blocks = append(p.blocks, Paragraph{Spans: ParseInline(text)})
		p.para = nil
	}
	p.state = stateIdle
}

// =============================================================================
// CODE FENCES
// =============================================================================

// fenceOpen reports the fence character, run length, and trailing hint for
// a line that starts with a run of ` or ~ characters.
func fenceOpen(trimmed string) (byte, int, string) {
	if trimmed == "" || (trimmed[0] != '`' && trimmed[0] != '~') {
		return 0, 0, ""
	}
	ch := trimmed[0]
	n := 0
	for n < len(trimmed) && trimmed[n] == ch {
		n++
	}
	return ch, n, trimmed[n:]
}

// closesFence reports whether line closes the currently open fence:
// same character, at least the opening run length, nothing else.
func (p *parser) closesFence(line string) bool {
	trimmed := strings.TrimSpace(line)
	ch, n, rest := fenceOpen(trimmed)
	return ch == p.fenceChar && n >= p.fenceLen && rest == ""
}

func (p *parser) endCode() {
	p.blocks = append(p.blocks, CodeBlock{Lang: p.codeLang, Lines: p.codeLines})
	p.codeLang = ""
	p.codeLines = nil
	p.state = stateIdle
}

// =============================================================================
// HEADINGS AND LISTS
// =============================================================================

// headingLine matches "#"-runs. Level caps at 6.
func headingLine(trimmed string) (int, string, bool) {
	if !strings.HasPrefix(trimmed, "#") {
		return 0, "", false
	}
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	rest := strings.TrimSpace(trimmed[level:])
	if level > 6 {
		level = 6
	}
	return level, rest, true
}

// listItemLine matches "- ", "* ", or "1. " markers with optional indent.
func listItemLine(line string) (ListItem, bool) {
	indent := 0
	for indent < len(line) && line[indent] == ' ' {
		indent++
	}
	rest := line[indent:]
	depth := indent / indentUnit

	if len(rest) >= 2 && (rest[0] == '-' || rest[0] == '*') && rest[1] == ' ' {
		return ListItem{
			Depth:  depth,
			Marker: rest[:1],
			Spans:  ParseInline(strings.TrimSpace(rest[2:])),
		}, true
	}

	// Ordered: one or more digits followed by ". "
	i := 0
	for i < len(rest) && unicode.IsDigit(rune(rest[i])) {
		i++
	}
	if i > 0 && i+1 < len(rest) && rest[i] == '.' && rest[i+1] == ' ' {
		return ListItem{
			Depth:   depth,
			Ordered: true,
			Marker:  rest[:i+1],
			Spans:   ParseInline(strings.TrimSpace(rest[i+2:])),
		}, true
	}
	return ListItem{}, false
}

// =============================================================================
// TABLES
// =============================================================================

// isTableCandidate matches lines that begin with a pipe and contain at
// least one more.
func isTableCandidate(trimmed string) bool {
	return strings.HasPrefix(trimmed, "|") && strings.Count(trimmed, "|") >= 2
}

// isSeparatorRow matches the alignment row: only dashes, colons, pipes,
// and spaces, with at least one dash.
func isSeparatorRow(trimmed string) bool {
	hasDash := false
	for _, r := range trimmed {
		switch r {
		case '-':
			hasDash = true
		case ':', '|', ' ':
		default:
			return false
		}
	}
	return hasDash
}

// endTable finalizes accumulated candidate lines. A run that lacks a
// separator as its second line is not a table and degrades to a paragraph
// of the literal lines.
func (p *parser) endTable() {
	lines := p.tableLines
	p.tableLines = nil
	p.state = stateIdle

	if len(lines) < 2 || !isSeparatorRow(lines[1]) {
		for _, l := range lines {
			p.para = append(p.para, l)
		}
		p.flushParagraph()
		return
	}

	header := splitRow(lines[0])
	if len(header) == 0 {
		return
	}

	aligns := parseAlignments(lines[1], len(header))

	var rows [][]Cell
	for _, line := range lines[2:] {
		cells := splitRow(line)
		if allEmpty(cells) {
			continue
		}
		rows = append(rows, padCells(cells, len(header)))
	}

	p.blocks = append(p.blocks, Table{
		Header: toCells(header),
		Aligns: aligns,
		Rows:   rows,
	})
}

// splitRow strips the outer pipes and splits on the inner ones.
func splitRow(trimmed string) []string {
	trimmed = strings.Trim(trimmed, "|")
	parts := strings.Split(trimmed, "|")
	cells := make([]string, len(parts))
	for i, part := range parts {
		cells[i] = strings.TrimSpace(part)
	}
	return cells
}

// parseAlignments reads colon placement from the separator row.
// A segment without a dash is malformed and defaults to left.
func parseAlignments(sep string, columns int) []Alignment {
	aligns := make([]Alignment, columns)
	for i, seg := range splitRow(sep) {
		if i >= columns {
			break
		}
		if !strings.Contains(seg, "-") {
			continue
		}
		left := strings.HasPrefix(seg, ":")
		right := strings.HasSuffix(seg, ":")
		switch {
		case left && right:
			aligns[i] = AlignCenter
		case right:
			aligns[i] = AlignRight
		}
	}
	return aligns
}

func padCells(cells []string, columns int) []Cell {
	row := make([]Cell, columns)
	for i := range row {
		if i < len(cells) {
			row[i] = Cell{Spans: ParseInline(cells[i])}
		} else {
			row[i] = Cell{}
		}
	}
	return row
}

func toCells(texts []string) []Cell {
	cells := make([]Cell, len(texts))
	for i, t := range texts {
		cells[i] = Cell{Spans: ParseInline(t)}
	}
	return cells
}

func allEmpty(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
