// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and
// messages. Both are plain data carriers shared by the API client,
// the storage layer, and the REPL.
package model
