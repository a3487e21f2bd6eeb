// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api implements the Mistral chat completions client.
//
// The client is deliberately small: one request shape, one response
// shape, and an error taxonomy the REPL can act on (auth, timeout,
// rate limit, everything else). Requests are paced with a token
// bucket when the config sets requests_per_minute.
package api
