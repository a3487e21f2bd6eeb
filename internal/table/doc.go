// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package table renders parsed pipe tables as Unicode box-drawn grids.
//
// The layout engine negotiates column widths against the terminal width:
// natural widths (the widest cell per column, measured with runewidth so
// CJK content counts double) are used when they fit, and shrink
// proportionally with a 3-column readability floor when they do not.
// Cell content that no longer fits its shrunk column is re-wrapped into
// multi-line cells, hard-breaking words longer than the column.
//
// Output is a bordered grid (┌─┬─┐ style) with the source table's
// alignment markers reproduced in the header separator. Every rendered
// line has the same display width, and that width never exceeds the
// budget except in degenerate terminals narrower than the borders
// themselves, where widths are clamped instead of failing.
package table
