// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/peterh/liner"

	"github.com/morganforge/mistral-tui/internal/api"
	"github.com/morganforge/mistral-tui/internal/config"
	"github.com/morganforge/mistral-tui/internal/model"
	"github.com/morganforge/mistral-tui/internal/render"
	"github.com/morganforge/mistral-tui/internal/storage"
	"github.com/morganforge/mistral-tui/internal/ui/styles"
)

const maxHistoryEntries = 100

// =============================================================================
// CHROME STYLES
// =============================================================================

// chrome holds the styles for REPL furniture around rendered markdown.
type chrome struct {
	Prompt   lipgloss.Style
	Welcome  lipgloss.Style
	Commands lipgloss.Style
	Notice   lipgloss.Style
	Thinking lipgloss.Style
	Error    lipgloss.Style
}

func newChrome(color bool) chrome {
	r := lipgloss.NewRenderer(os.Stdout)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return chrome{
		Prompt:   r.NewStyle().Foreground(styles.Purple).Bold(true),
		Welcome:  r.NewStyle().Foreground(styles.Cyan),
		Commands: r.NewStyle().Foreground(styles.Emerald),
		Notice:   r.NewStyle().Foreground(styles.Emerald),
		Thinking: r.NewStyle().Foreground(styles.Amber),
		Error:    r.NewStyle().Foreground(styles.Rose),
	}
}

// =============================================================================
// CHAT REPL
// =============================================================================

// ChatCLI runs the interactive chat loop.
type ChatCLI struct {
	cfg    *config.Config
	client *api.Client
	store  *storage.Store

	line        *liner.State
	historyPath string

	conv  *model.Conversation
	out   io.Writer
	style chrome
	color bool
}

// New creates the REPL. The store may be nil to disable persistence.
func New(cfg *config.Config, client *api.Client, store *storage.Store) *ChatCLI {
	color := ColorEnabled(cfg.UI.Color)

	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	historyPath := ".mistral_history"
	if dir, err := config.Dir(); err == nil {
		historyPath = filepath.Join(dir, "history")
	}
	if f, err := os.Open(historyPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	return &ChatCLI{
		cfg:         cfg,
		client:      client,
		store:       store,
		line:        line,
		historyPath: historyPath,
		conv:        model.NewConversation(cfg.Model),
		out:         os.Stdout,
		style:       newChrome(color),
		color:       color,
	}
}

// Run executes the REPL until exit or EOF.
func (c *ChatCLI) Run(ctx context.Context) error {
	defer c.shutdown()

	c.showWelcome()

	for {
		input, err := c.line.Prompt(c.style.Prompt.Render("> "))
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintln(c.out, "Use 'exit' to quit")
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch cmd := ParseCommand(input); cmd.Kind {
		case CmdExit:
			return nil

		case CmdClear:
			c.clearScreen()
			c.showCommandBox()

		case CmdNew:
			c.persist()
			c.conv = model.NewConversation(c.cfg.Model)
			c.clearScreen()
			c.showCommandBox()
			fmt.Fprintln(c.out, c.style.Notice.Render("Starting a fresh conversation..."))

		case CmdMessage:
			if cmd.Text == "" {
				continue
			}
			c.line.AppendHistory(cmd.Text)
			c.handleMessage(ctx, cmd.Text)
		}
	}
}

// shutdown saves readline history and restores the terminal.
func (c *ChatCLI) shutdown() {
	if f, err := os.Create(c.historyPath); err == nil {
		c.line.WriteHistory(f)
		f.Close()
	}
	c.line.Close()
	c.persist()
}

// persist saves the current conversation if it has content.
func (c *ChatCLI) persist() {
	if c.store == nil || c.conv.IsEmpty() {
		return
	}
	if err := c.store.Save(c.conv); err != nil {
		slog.Error("failed to save conversation", "id", c.conv.ID, "error", err)
	}
}

// =============================================================================
// MESSAGE HANDLING
// =============================================================================

// handleMessage sends the input to the API and renders the reply.
func (c *ChatCLI) handleMessage(ctx context.Context, input string) {
	c.conv.AddUserMessage(input)

	fmt.Fprint(c.out, c.style.Thinking.Render("Thinking..."))

	resp, err := c.client.Chat(ctx, c.conv.Messages)
	if err != nil {
		fmt.Fprint(c.out, "\r\033[K")
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, c.style.Error.Render(errorMessage(err)))
		fmt.Fprintln(c.out)
		return
	}

	reply := resp.Content()
	c.conv.AddAssistantMessage(reply)
	c.persist()

	c.clearScreen()
	c.showCommandBox()

	fmt.Fprint(c.out, c.style.Prompt.Render("> "))
	fmt.Fprintln(c.out, input)
	fmt.Fprintln(c.out)

	r := render.New(render.Options{
		Width:      c.renderWidth(),
		Color:      c.color,
		PromptHint: input,
	})
	fmt.Fprintln(c.out, r.Render(reply))
	fmt.Fprintln(c.out)
}

// renderWidth returns the width for markdown rendering.
func (c *ChatCLI) renderWidth() int {
	if c.cfg.UI.Width > 0 {
		return c.cfg.UI.Width
	}
	return TerminalWidth()
}

// errorMessage maps client errors to user-facing text.
func errorMessage(err error) string {
	switch {
	case api.IsAuth(err):
		return "Error: invalid or missing API key (set MISTRAL_API_KEY)"
	case api.IsRateLimited(err):
		return "Error: rate limited by the API, try again shortly"
	case api.IsTimeout(err):
		return "Error: request timed out"
	default:
		return "Error: " + err.Error()
	}
}

// =============================================================================
// SCREEN FURNITURE
// =============================================================================

func (c *ChatCLI) showWelcome() {
	c.clearScreen()

	r := render.New(render.Options{Width: c.renderWidth(), Color: false})
	fmt.Fprint(c.out, c.style.Welcome.Render(r.Render(welcomeMessage)))
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out)
	c.showCommandBox()
}

func (c *ChatCLI) showCommandBox() {
	fmt.Fprintln(c.out, c.style.Commands.Render(commandBox))
	fmt.Fprintln(c.out)
}

func (c *ChatCLI) clearScreen() {
	if IsStdoutTTY() {
		fmt.Fprint(c.out, "\033[2J\033[H")
	}
}
