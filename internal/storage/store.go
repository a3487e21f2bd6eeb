// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides SQLite-backed conversation persistence.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/morganforge/mistral-tui/internal/model"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	ErrNotFound = errors.New("conversation not found")
)

// =============================================================================
// SCHEMA
// =============================================================================

const schema = `
CREATE TABLE IF NOT EXISTS conversations (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL DEFAULT '',
	model      TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS messages (
	id              TEXT PRIMARY KEY,
	conversation_id TEXT NOT NULL REFERENCES conversations(id) ON DELETE CASCADE,
	seq             INTEGER NOT NULL,
	role            TEXT NOT NULL,
	content         TEXT NOT NULL,
	timestamp       INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_messages_conversation
	ON messages(conversation_id, seq);

CREATE INDEX IF NOT EXISTS idx_conversations_updated
	ON conversations(updated_at DESC);
`

// =============================================================================
// STORE
// =============================================================================

// Store persists conversations in a SQLite database.
type Store struct {
	db *sql.DB
}

// Meta is a conversation summary row for listings.
type Meta struct {
	ID        string
	Title     string
	Model     string
	UpdatedAt time.Time
	Messages  int
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite supports one writer at a time, so limit connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// =============================================================================
// SAVE / LOAD
// =============================================================================

// Save writes a conversation and all its messages, replacing any
// previous version.
func (s *Store) Save(conv *model.Conversation) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO conversations (id, title, model, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			model = excluded.model,
			updated_at = excluded.updated_at
	`, conv.ID, conv.Title, conv.Model, conv.CreatedAt.Unix(), conv.UpdatedAt.Unix())
	if err != nil {
		return err
	}

	// Rewrite messages wholesale. Conversations are small enough that
	// diffing is not worth the bookkeeping.
	if _, err := tx.Exec(`DELETE FROM messages WHERE conversation_id = ?`, conv.ID); err != nil {
		return err
	}

	for i, msg := range conv.Messages {
		_, err := tx.Exec(`
			INSERT INTO messages (id, conversation_id, seq, role, content, timestamp)
			VALUES (?, ?, ?, ?, ?, ?)
		`, msg.ID, conv.ID, i, msg.Role.String(), msg.Content, msg.Timestamp.Unix())
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Load reads a conversation by ID.
func (s *Store) Load(id string) (*model.Conversation, error) {
	conv := &model.Conversation{}
	var created, updated int64

	err := s.db.QueryRow(`
		SELECT id, title, model, created_at, updated_at
		FROM conversations WHERE id = ?
	`, id).Scan(&conv.ID, &conv.Title, &conv.Model, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	conv.CreatedAt = time.Unix(created, 0)
	conv.UpdatedAt = time.Unix(updated, 0)

	rows, err := s.db.Query(`
		SELECT id, role, content, timestamp
		FROM messages WHERE conversation_id = ?
		ORDER BY seq
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	conv.Messages = make([]*model.Message, 0)
	for rows.Next() {
		msg := &model.Message{}
		var role string
		var ts int64
		if err := rows.Scan(&msg.ID, &role, &msg.Content, &ts); err != nil {
			return nil, err
		}
		msg.Role = model.Role(role)
		msg.Timestamp = time.Unix(ts, 0)
		conv.Messages = append(conv.Messages, msg)
	}
	return conv, rows.Err()
}

// =============================================================================
// LISTING / DELETION
// =============================================================================

// List returns conversation summaries, most recently updated first.
func (s *Store) List() ([]Meta, error) {
	rows, err := s.db.Query(`
		SELECT c.id, c.title, c.model, c.updated_at, COUNT(m.id)
		FROM conversations c
		LEFT JOIN messages m ON m.conversation_id = c.id
		GROUP BY c.id
		ORDER BY c.updated_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var metas []Meta
	for rows.Next() {
		var m Meta
		var updated int64
		if err := rows.Scan(&m.ID, &m.Title, &m.Model, &updated, &m.Messages); err != nil {
			return nil, err
		}
		m.UpdatedAt = time.Unix(updated, 0)
		metas = append(metas, m)
	}
	return metas, rows.Err()
}

// Delete removes a conversation and its messages.
func (s *Store) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM conversations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
