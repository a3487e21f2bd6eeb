// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package markdown parses raw chat responses into block-level structure.
package markdown

import "strings"

// =============================================================================
// INLINE SPAN SCANNER
// =============================================================================

// ParseInline extracts emphasis and inline-code spans from text.
// Delimiters: ** or __ for bold, * or _ for italic, backticks for code.
// An unmatched delimiter, or a pair that would produce an empty span,
// degrades to literal text; scanning never fails.
func ParseInline(text string) []Inline {
	var spans []Inline
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			spans = append(spans, Text{Text: plain.String()})
			plain.Reset()
		}
	}

	i := 0
	for i < len(text) {
		c := text[i]

		switch {
		case c == '`':
			end := strings.IndexByte(text[i+1:], '`')
			if end <= 0 {
				// Unmatched or empty pair: literal backtick.
				plain.WriteByte(c)
				i++
				continue
			}
			flush()
			spans = append(spans, Code{Text: text[i+1 : i+1+end]})
			i += end + 2

		case c == '*' || c == '_':
			delim := string(c)
			if i+1 < len(text) && text[i+1] == c {
				delim = delim + delim
			}
			end := strings.Index(text[i+len(delim):], delim)
			if end <= 0 {
				plain.WriteByte(c)
				i++
				continue
			}
			inner := text[i+len(delim) : i+len(delim)+end]
			flush()
			if len(delim) == 2 {
				spans = append(spans, Bold{Spans: ParseInline(inner)})
			} else {
				spans = append(spans, Italic{Spans: ParseInline(inner)})
			}
			i += 2*len(delim) + end

		default:
			plain.WriteByte(c)
			i++
		}
	}

	flush()
	return spans
}
