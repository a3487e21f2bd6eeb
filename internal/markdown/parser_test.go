// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package markdown parses raw chat responses into block-level structure.
package markdown

import (
	"testing"
)

// =============================================================================
// PARAGRAPH TESTS
// =============================================================================

func TestParse_ParagraphAccumulation(t *testing.T) {
	blocks := Parse("first line\nsecond line\n\nnext paragraph")

	if len(blocks) != 2 {
		t.Fatalf("Expected 2 blocks, got %d: %#v", len(blocks), blocks)
	}

	p, ok := blocks[0].(Paragraph)
	if !ok {
		t.Fatalf("Expected Paragraph, got %T", blocks[0])
	}
	if got := Plain(p.Spans); got != "first line second line" {
		t.Errorf("Continuation lines not joined: got %q", got)
	}

	p2 := blocks[1].(Paragraph)
	if got := Plain(p2.Spans); got != "next paragraph" {
		t.Errorf("Second paragraph mismatch: got %q", got)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	if blocks := Parse(""); len(blocks) != 0 {
		t.Errorf("Empty input should yield no blocks, got %d", len(blocks))
	}
	if blocks := Parse("\n\n\n"); len(blocks) != 0 {
		t.Errorf("Blank input should yield no blocks, got %d", len(blocks))
	}
}

// =============================================================================
// HEADING TESTS
// =============================================================================

func TestParse_Headings(t *testing.T) {
	tests := []struct {
		line  string
		level int
		text  string
	}{
		{"# Title", 1, "Title"},
		{"## Section", 2, "Section"},
		{"###### Deep", 6, "Deep"},
		{"######## Capped", 6, "Capped"}, // level caps at 6
		{"#NoSpace", 1, "NoSpace"},
	}

	for _, tt := range tests {
		blocks := Parse(tt.line)
		if len(blocks) != 1 {
			t.Fatalf("%q: expected 1 block, got %d", tt.line, len(blocks))
		}
		h, ok := blocks[0].(Heading)
		if !ok {
			t.Fatalf("%q: expected Heading, got %T", tt.line, blocks[0])
		}
		if h.Level != tt.level {
			t.Errorf("%q: level = %d, want %d", tt.line, h.Level, tt.level)
		}
		if got := Plain(h.Spans); got != tt.text {
			t.Errorf("%q: text = %q, want %q", tt.line, got, tt.text)
		}
	}
}

// =============================================================================
// LIST TESTS
// =============================================================================

func TestParse_ListItems(t *testing.T) {
	blocks := Parse("- one\n- two\n  - nested\n1. ordered")

	if len(blocks) != 4 {
		t.Fatalf("Expected 4 blocks, got %d", len(blocks))
	}

	first := blocks[0].(ListItem)
	if first.Depth != 0 || first.Ordered {
		t.Errorf("First item: depth=%d ordered=%v", first.Depth, first.Ordered)
	}
	if got := Plain(first.Spans); got != "one" {
		t.Errorf("First item text = %q", got)
	}

	nested := blocks[2].(ListItem)
	if nested.Depth != 1 {
		t.Errorf("Nested item depth = %d, want 1", nested.Depth)
	}

	ordered := blocks[3].(ListItem)
	if !ordered.Ordered || ordered.Marker != "1." {
		t.Errorf("Ordered item: ordered=%v marker=%q", ordered.Ordered, ordered.Marker)
	}
}

func TestParse_DashWithoutSpaceIsNotList(t *testing.T) {
	blocks := Parse("-not a list")
	if _, ok := blocks[0].(Paragraph); !ok {
		t.Errorf("Expected Paragraph, got %T", blocks[0])
	}
}

// =============================================================================
// CODE FENCE TESTS
// =============================================================================

func TestParse_FencedCode(t *testing.T) {
	blocks := Parse("```python\nprint(\"hi\")\n```\nafter")

	if len(blocks) != 2 {
		t.Fatalf("Expected 2 blocks, got %d", len(blocks))
	}

	cb, ok := blocks[0].(CodeBlock)
	if !ok {
		t.Fatalf("Expected CodeBlock, got %T", blocks[0])
	}
	if cb.Lang != "python" {
		t.Errorf("Lang = %q, want python", cb.Lang)
	}
	if len(cb.Lines) != 1 || cb.Lines[0] != `print("hi")` {
		t.Errorf("Lines = %#v", cb.Lines)
	}
}

func TestParse_UnterminatedFence(t *testing.T) {
	// An unterminated fence is closed at end of input, never discarded.
	blocks := Parse("```go\nfunc main() {}")

	if len(blocks) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(blocks))
	}
	cb := blocks[0].(CodeBlock)
	if len(cb.Lines) != 1 || cb.Lines[0] != "func main() {}" {
		t.Errorf("Captured lines = %#v", cb.Lines)
	}
}

func TestParse_FenceContentIsVerbatim(t *testing.T) {
	// Markdown syntax inside a fence must not be interpreted.
	blocks := Parse("```\n# not a heading\n- not a list\n| not | a table |\n```")

	cb := blocks[0].(CodeBlock)
	if len(cb.Lines) != 3 {
		t.Fatalf("Expected 3 verbatim lines, got %#v", cb.Lines)
	}
}

func TestParse_TildeFence(t *testing.T) {
	blocks := Parse("~~~\ncode\n~~~")
	if _, ok := blocks[0].(CodeBlock); !ok {
		t.Fatalf("Expected CodeBlock, got %T", blocks[0])
	}
}

func TestParse_LongerClosingFence(t *testing.T) {
	blocks := Parse("```\ncode\n`````")
	cb := blocks[0].(CodeBlock)
	if len(cb.Lines) != 1 || cb.Lines[0] != "code" {
		t.Errorf("Lines = %#v", cb.Lines)
	}
}

// =============================================================================
// TABLE TESTS
// =============================================================================

func TestParse_Table(t *testing.T) {
	src := "| Name | Age |\n|:-----|----:|\n| Ann | 3 |\n| Bob | 41 |"
	blocks := Parse(src)

	if len(blocks) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(blocks))
	}
	tbl, ok := blocks[0].(Table)
	if !ok {
		t.Fatalf("Expected Table, got %T", blocks[0])
	}
	if len(tbl.Header) != 2 {
		t.Fatalf("Header columns = %d, want 2", len(tbl.Header))
	}
	if tbl.Aligns[0] != AlignLeft || tbl.Aligns[1] != AlignRight {
		t.Errorf("Aligns = %v", tbl.Aligns)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("Rows = %d, want 2", len(tbl.Rows))
	}
	if got := Plain(tbl.Rows[1][1].Spans); got != "41" {
		t.Errorf("Cell = %q, want 41", got)
	}
}

func TestParse_TableAlignments(t *testing.T) {
	src := "| A | B | C | D |\n|:-:|:--|--:|xxx|\n| 1 | 2 | 3 | 4 |"
	tbl := Parse(src)[0].(Table)

	want := []Alignment{AlignCenter, AlignLeft, AlignRight, AlignLeft}
	for i, a := range want {
		if tbl.Aligns[i] != a {
			t.Errorf("Column %d alignment = %v, want %v (malformed defaults left)", i, tbl.Aligns[i], a)
		}
	}
}

func TestParse_TableShortRowPadded(t *testing.T) {
	src := "| A | B | C |\n|---|---|---|\n| 1 |"
	tbl := Parse(src)[0].(Table)

	if len(tbl.Rows[0]) != 3 {
		t.Fatalf("Row not padded to header width: %d cells", len(tbl.Rows[0]))
	}
	if got := Plain(tbl.Rows[0][2].Spans); got != "" {
		t.Errorf("Padding cell = %q, want empty", got)
	}
}

func TestParse_PipeRunWithoutSeparatorIsParagraph(t *testing.T) {
	blocks := Parse("| just | pipes |\n| more | pipes |")

	if len(blocks) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(blocks))
	}
	p, ok := blocks[0].(Paragraph)
	if !ok {
		t.Fatalf("Expected degraded Paragraph, got %T", blocks[0])
	}
	if got := Plain(p.Spans); got == "" {
		t.Error("Degraded paragraph lost the literal text")
	}
}

func TestParse_ZeroRowTable(t *testing.T) {
	blocks := Parse("| A | B |\n|---|---|")
	tbl, ok := blocks[0].(Table)
	if !ok {
		t.Fatalf("Expected Table, got %T", blocks[0])
	}
	if len(tbl.Rows) != 0 {
		t.Errorf("Rows = %d, want 0", len(tbl.Rows))
	}
}

// =============================================================================
// ORDERING
// =============================================================================

func TestParse_BlockOrderMatchesSource(t *testing.T) {
	src := "# Title\n\nintro\n\n- item\n\n```\ncode\n```\n\n| A |\n|---|\n| 1 |\n\noutro"
	blocks := Parse(src)

	wantTypes := []string{"Heading", "Paragraph", "ListItem", "CodeBlock", "Table", "Paragraph"}
	if len(blocks) != len(wantTypes) {
		t.Fatalf("Expected %d blocks, got %d: %#v", len(wantTypes), len(blocks), blocks)
	}
	for i, want := range wantTypes {
		var got string
		switch blocks[i].(type) {
		case Heading:
			got = "Heading"
		case Paragraph:
			got = "Paragraph"
		case ListItem:
			got = "ListItem"
		case CodeBlock:
			got = "CodeBlock"
		case Table:
			got = "Table"
		}
		if got != want {
			t.Errorf("Block %d = %s, want %s", i, got, want)
		}
	}
}
