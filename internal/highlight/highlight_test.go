// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package highlight resolves code languages and produces coloured tokens.
package highlight

import (
	"strings"
	"testing"
)

// concat joins all token texts.
func concat(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
	}
	return b.String()
}

func TestHighlight_TotalCoverage(t *testing.T) {
	// Concatenating token texts must reproduce the source exactly,
	// whatever the language or how malformed the code is.
	tests := []struct {
		name   string
		source string
		lang   Language
	}{
		{"python", "def f(x):\n    return x * 2\n", LangPython},
		{"python no trailing newline", `print("hi")`, LangPython},
		{"go", "package main\n\nfunc main() {}\n", LangGo},
		{"rust", "fn main() { println!(\"ok\"); }", LangRust},
		{"json", `{"a": [1, 2, null]}`, LangJSON},
		{"malformed", "def def def ((( \"unclosed", LangPython},
		{"plain", "just some text", LangPlain},
		{"unicode", "s = \"héllo, wörld\" # ünïcode\n", LangPython},
		{"multiline string", "s = \"\"\"line one\nline two\"\"\"\n", LangPython},
	}

	for _, tt := range tests {
		tokens := Highlight(tt.source, tt.lang)
		if got := concat(tokens); got != tt.source {
			t.Errorf("%s: coverage broken:\n got %q\nwant %q", tt.name, got, tt.source)
		}
	}
}

func TestHighlight_EmptySource(t *testing.T) {
	if tokens := Highlight("", LangGo); len(tokens) != 0 {
		t.Errorf("Empty source should yield no tokens, got %#v", tokens)
	}
}

func TestHighlight_PlainIsSingleToken(t *testing.T) {
	tokens := Highlight("anything at all", LangPlain)

	if len(tokens) != 1 {
		t.Fatalf("Expected 1 token, got %d", len(tokens))
	}
	if tokens[0].Category != CategoryPlain {
		t.Errorf("Category = %v, want plain", tokens[0].Category)
	}
}

func TestHighlight_PythonCategories(t *testing.T) {
	tokens := Highlight(`print("hi")`, LangPython)

	categories := map[string]Category{}
	for _, tok := range tokens {
		for _, part := range strings.Fields(tok.Text) {
			categories[part] = tok.Category
		}
		categories[tok.Text] = tok.Category
	}

	printCat, ok := categories["print"]
	if !ok {
		t.Fatalf("No token for print: %#v", tokens)
	}
	stringCat, ok := categories[`"hi"`]
	if !ok {
		// The string may tokenize as quote + content + quote.
		for _, tok := range tokens {
			if tok.Category == CategoryString {
				stringCat, ok = tok.Category, true
				break
			}
		}
	}
	if !ok {
		t.Fatalf("No string-category token: %#v", tokens)
	}

	punctCat := CategoryPlain
	foundPunct := false
	for _, tok := range tokens {
		if strings.Contains(tok.Text, "(") {
			punctCat = tok.Category
			foundPunct = true
		}
	}
	if !foundPunct {
		t.Fatalf("No token containing open paren: %#v", tokens)
	}

	// print, the string literal, and punctuation carry distinct categories.
	if printCat == stringCat || printCat == punctCat || stringCat == punctCat {
		t.Errorf("Categories not distinct: print=%v string=%v punct=%v",
			printCat, stringCat, punctCat)
	}
}

func TestHighlight_CommentCategory(t *testing.T) {
	tokens := Highlight("x = 1  # a comment\n", LangPython)

	found := false
	for _, tok := range tokens {
		if tok.Category == CategoryComment && strings.Contains(tok.Text, "comment") {
			found = true
		}
	}
	if !found {
		t.Errorf("No comment token found: %#v", tokens)
	}
}

func TestHighlight_NumberCategory(t *testing.T) {
	tokens := Highlight("x = 42\n", LangPython)

	found := false
	for _, tok := range tokens {
		if tok.Text == "42" && tok.Category == CategoryNumber {
			found = true
		}
	}
	if !found {
		t.Errorf("42 not tagged as number: %#v", tokens)
	}
}

func TestHighlight_Deterministic(t *testing.T) {
	src := "func add(a, b int) int { return a + b }"
	a := Highlight(src, LangGo)
	b := Highlight(src, LangGo)

	if len(a) != len(b) {
		t.Fatalf("Token counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Token %d differs: %#v vs %#v", i, a[i], b[i])
		}
	}
}
