// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package markdown parses raw chat responses into block-level structure.
package markdown

import (
	"testing"
)

func TestParseInline_BoldAndItalic(t *testing.T) {
	spans := ParseInline("**bold** and *italic*")

	if len(spans) != 3 {
		t.Fatalf("Expected 3 spans, got %d: %#v", len(spans), spans)
	}

	b, ok := spans[0].(Bold)
	if !ok {
		t.Fatalf("Span 0: expected Bold, got %T", spans[0])
	}
	if got := Plain(b.Spans); got != "bold" {
		t.Errorf("Bold content = %q", got)
	}

	mid, ok := spans[1].(Text)
	if !ok || mid.Text != " and " {
		t.Errorf("Literal spaces not preserved: %#v", spans[1])
	}

	it, ok := spans[2].(Italic)
	if !ok {
		t.Fatalf("Span 2: expected Italic, got %T", spans[2])
	}
	if got := Plain(it.Spans); got != "italic" {
		t.Errorf("Italic content = %q", got)
	}
}

func TestParseInline_Underscores(t *testing.T) {
	spans := ParseInline("__strong__ and _soft_")

	if _, ok := spans[0].(Bold); !ok {
		t.Errorf("__ should parse as Bold, got %T", spans[0])
	}
	if _, ok := spans[2].(Italic); !ok {
		t.Errorf("_ should parse as Italic, got %T", spans[2])
	}
}

func TestParseInline_InlineCode(t *testing.T) {
	spans := ParseInline("run `go test` now")

	if len(spans) != 3 {
		t.Fatalf("Expected 3 spans, got %#v", spans)
	}
	code, ok := spans[1].(Code)
	if !ok || code.Text != "go test" {
		t.Errorf("Code span = %#v", spans[1])
	}
}

func TestParseInline_CodeContentIsLiteral(t *testing.T) {
	spans := ParseInline("`**not bold**`")

	code, ok := spans[0].(Code)
	if !ok {
		t.Fatalf("Expected Code, got %T", spans[0])
	}
	if code.Text != "**not bold**" {
		t.Errorf("Code content = %q", code.Text)
	}
}

func TestParseInline_UnmatchedDelimiterIsLiteral(t *testing.T) {
	tests := []string{"a * b", "lone ` tick", "trailing **", "_", "5 * 3 = 15"}

	for _, src := range tests {
		spans := ParseInline(src)
		if got := Plain(spans); got != src {
			t.Errorf("%q degraded to %q, want identical literal", src, got)
		}
		for _, s := range spans {
			if _, ok := s.(Text); !ok {
				t.Errorf("%q: expected only Text spans, got %T", src, s)
			}
		}
	}
}

func TestParseInline_EmptySpanIsLiteral(t *testing.T) {
	for _, src := range []string{"``", "**** done"} {
		spans := ParseInline(src)
		if got := Plain(spans); got != src {
			t.Errorf("%q rendered as %q", src, got)
		}
	}
}

func TestParseInline_Nested(t *testing.T) {
	spans := ParseInline("**outer *inner* text**")

	b, ok := spans[0].(Bold)
	if !ok {
		t.Fatalf("Expected Bold, got %T", spans[0])
	}
	foundItalic := false
	for _, s := range b.Spans {
		if _, ok := s.(Italic); ok {
			foundItalic = true
		}
	}
	if !foundItalic {
		t.Error("Nested italic inside bold was not parsed")
	}
	if got := Plain(spans); got != "outer inner text" {
		t.Errorf("Flattened = %q", got)
	}
}

func TestParseInline_NoTextLoss(t *testing.T) {
	// Whatever the delimiter structure, no literal characters may vanish.
	tests := []struct{ src, want string }{
		{"**a** `b` *c*", "a b c"},
		{"plain text", "plain text"},
		{"mix `code` and **bold", "mix code and **bold"},
	}
	for _, tt := range tests {
		if got := Plain(ParseInline(tt.src)); got != tt.want {
			t.Errorf("%q → %q, want %q", tt.src, got, tt.want)
		}
	}
}
