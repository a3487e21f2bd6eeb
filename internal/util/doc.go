// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small string helpers shared across the client.
//
// Everything here is width-aware: display width is measured with
// go-runewidth so double-width (CJK) characters occupy two columns, and
// truncation never splits a multi-byte UTF-8 sequence.
package util
