// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the interactive chat REPL.
//
// The loop reads input with line editing and history, dispatches the
// built-in commands (exit, clear, new), and sends everything else to
// the API. Assistant replies are rendered as styled markdown sized to
// the terminal.
package cli
