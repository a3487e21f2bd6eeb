// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package highlight resolves code languages and produces coloured tokens.
//
// Two pieces live here:
//
//   - Classify maps a fence hint (or, failing that, the user's prompt
//     text) onto a fixed catalog of supported languages, falling back to
//     LangPlain deterministically.
//   - Highlight tokenizes source code for a resolved language into
//     (text, category) pairs, with categories drawn from a small fixed
//     set the renderer knows how to colour.
//
// Tokenization is driven by chroma lexers; the fine-grained chroma token
// types are folded down to keyword/string/comment/number/identifier/
// punctuation/plain. The invariant callers rely on: concatenating all
// token texts reproduces the source byte for byte, so a code block can
// never lose characters to highlighting. Unknown languages and lexer
// failures degrade to a single plain token, never an error.
package highlight
