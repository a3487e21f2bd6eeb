// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render turns parsed markdown blocks into terminal output.
//
// The renderer walks the block sequence produced by the markdown parser
// and dispatches: prose is styled and word-wrapped to the terminal
// width, code blocks go through the language classifier and syntax
// highlighter and come back framed but never wrapped, and tables are
// delegated to the table layout engine.
//
// Rendering is pure: a renderer is built from (width, colour, prompt
// hint) and transforms text to text. Width is sampled once by the caller
// before the render so a concurrent terminal resize cannot tear the
// layout mid-response, and nothing is shared between render calls. With
// colour disabled the output is the same layout with zero escape codes.
//
// # Usage
//
//	r := render.New(render.Options{
//		Width:      cli.TerminalWidth(),
//		Color:      cli.ColorEnabled(),
//		PromptHint: userPrompt,
//	})
//	fmt.Println(r.Render(responseText))
package render
