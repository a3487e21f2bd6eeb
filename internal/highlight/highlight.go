// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package highlight resolves code languages and produces coloured tokens.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// =============================================================================
// TOKEN TYPES
// =============================================================================

// Category is the semantic class of a highlighted fragment.
type Category int

const (
	CategoryPlain Category = iota
	CategoryKeyword
	CategoryString
	CategoryComment
	CategoryNumber
	CategoryIdent
	CategoryPunct
)

// String returns the category name, mainly for test failure messages.
func (c Category) String() string {
	switch c {
	case CategoryKeyword:
		return "keyword"
	case CategoryString:
		return "string"
	case CategoryComment:
		return "comment"
	case CategoryNumber:
		return "number"
	case CategoryIdent:
		return "identifier"
	case CategoryPunct:
		return "punctuation"
	default:
		return "plain"
	}
}

// Token is one highlighted fragment of source text. Concatenating the
// Text of all tokens reproduces the source exactly.
type Token struct {
	Text     string
	Category Category
}

// =============================================================================
// HIGHLIGHTER
// =============================================================================

// Highlight tokenizes source for the given language. An unknown language,
// LangPlain, or any tokenizer failure yields the whole input as a single
// plain token; highlighting never returns an error. Multi-line string and
// comment state is carried across line breaks within the source because
// the whole block is tokenized in one pass.
func Highlight(source string, lang Language) []Token {
	if source == "" {
		return nil
	}
	if lang == LangPlain {
		return []Token{{Text: source}}
	}

	lexer := lexers.Get(string(lang))
	if lexer == nil {
		lexer = lexers.Analyse(source)
	}
	if lexer == nil {
		return []Token{{Text: source}}
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return []Token{{Text: source}}
	}

	var out []Token
	for _, t := range iterator.Tokens() {
		out = append(out, Token{Text: t.Value, Category: categoryOf(t.Type)})
	}
	return reconcile(out, source)
}

// reconcile enforces the total-coverage invariant: token texts must
// concatenate to exactly the source. Some lexers append a trailing
// newline; anything else falls back to one plain token.
func reconcile(tokens []Token, source string) []Token {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
	}
	joined := b.String()

	if joined == source {
		return tokens
	}
	if joined == source+"\n" {
		last := &tokens[len(tokens)-1]
		last.Text = strings.TrimSuffix(last.Text, "\n")
		if last.Text == "" {
			tokens = tokens[:len(tokens)-1]
		}
		return tokens
	}
	return []Token{{Text: source}}
}

// categoryOf folds chroma's fine-grained token types into the small
// fixed category set the renderer styles.
func categoryOf(t chroma.TokenType) Category {
	switch {
	case t.InCategory(chroma.Keyword):
		return CategoryKeyword
	case t.InSubCategory(chroma.LiteralString):
		return CategoryString
	case t.InSubCategory(chroma.LiteralNumber):
		return CategoryNumber
	case t.InCategory(chroma.Comment):
		return CategoryComment
	case t.InCategory(chroma.Name):
		return CategoryIdent
	case t.InCategory(chroma.Operator), t.InCategory(chroma.Punctuation):
		return CategoryPunct
	default:
		return CategoryPlain
	}
}
