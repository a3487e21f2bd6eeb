// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package markdown parses raw chat responses into block-level structure.
//
// The parser is a line-oriented state machine that scans untrusted API
// response text into an ordered sequence of blocks: paragraphs, headings,
// list items, fenced code blocks, and pipe tables. Inline emphasis (bold,
// italic, inline code) is extracted from any non-code text.
//
// The parser never returns an error. Malformed markdown degrades to
// literal text: unterminated fences close at end of input, unmatched
// emphasis delimiters stay literal, and a pipe run without a separator
// row becomes an ordinary paragraph. The caller always gets something
// renderable.
//
// # Supported Subset
//
// This is deliberately not a CommonMark implementation. It covers the
// subset LLM responses actually use:
//   - Paragraphs separated by blank lines
//   - ATX headings (#, up to 6 levels)
//   - Bulleted (-, *) and numbered lists, nested by 2-space indent
//   - Fenced code blocks (``` or ~~~) with a language hint
//   - Pipe tables with :--- / :---: / ---: alignment rows
//   - **bold**, *italic*, and `inline code`
//
// # Usage
//
//	blocks := markdown.Parse(response)
//	for _, b := range blocks {
//		switch b := b.(type) {
//		case markdown.CodeBlock:
//			// highlight b.Lines with hint b.Lang
//		}
//	}
package markdown
