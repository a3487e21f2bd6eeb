// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the colour palette for terminal output.
//
// The palette is a small set of lipgloss AdaptiveColor values shared by
// the markdown renderer and the chat REPL, so headings, code tokens,
// prompts, and error text stay visually consistent. AdaptiveColor picks
// the light or dark variant based on the detected terminal background.
//
// Styles themselves (bold, foreground, padding) are built by the
// consumers; this package only owns the colours.
package styles
