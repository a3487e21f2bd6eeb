// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import "strings"

// =============================================================================
// COMMAND PARSING
// =============================================================================

// CommandKind identifies a REPL input.
type CommandKind int

const (
	// CmdMessage is ordinary chat input.
	CmdMessage CommandKind = iota
	// CmdExit quits the application.
	CmdExit
	// CmdClear clears the screen.
	CmdClear
	// CmdNew starts a fresh conversation.
	CmdNew
)

// Command is a parsed line of REPL input.
type Command struct {
	Kind CommandKind
	// Text is the trimmed input for CmdMessage.
	Text string
}

// ParseCommand classifies a line of input. Command words are matched
// case-insensitively after trimming.
func ParseCommand(line string) Command {
	trimmed := strings.TrimSpace(line)
	switch strings.ToLower(trimmed) {
	case "exit":
		return Command{Kind: CmdExit}
	case "clear":
		return Command{Kind: CmdClear}
	case "new":
		return Command{Kind: CmdNew}
	default:
		return Command{Kind: CmdMessage, Text: trimmed}
	}
}

// commandBox lists the built-in commands, shown at startup and after
// a clear.
const commandBox = "┌──────────────────────────────────────┐\n" +
	"│          Available Commands          │\n" +
	"├──────────────────────────────────────┤\n" +
	"│    `exit`  - Quit the application    │\n" +
	"├──────────────────────────────────────┤\n" +
	"│    `clear` - Clear the screen        │\n" +
	"├──────────────────────────────────────┤\n" +
	"│    `new`   - Start a new chat        │\n" +
	"└──────────────────────────────────────┘"

// welcomeMessage greets the user on startup, rendered as markdown.
const welcomeMessage = "I am Mistral Chat AI, a helpful and respectful assistant\n" +
	"powered by Mistral. Here are some ways I can assist you:\n\n" +
	"• Provide information and answer questions on a wide\n" +
	"range of topics\n" +
	"• Generate ideas, suggestions, and recommendations\n\n" +
	"I'm ready to help! How can I assist you today?"
