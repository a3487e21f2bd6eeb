// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"testing"
)

func TestNewMessage(t *testing.T) {
	msg := NewUserMessage("hello")

	if msg.ID == "" {
		t.Error("message should have an ID")
	}
	if msg.Role != RoleUser {
		t.Errorf("Role = %q", msg.Role)
	}
	if msg.Content != "hello" {
		t.Errorf("Content = %q", msg.Content)
	}
	if msg.Timestamp.IsZero() {
		t.Error("Timestamp should be set")
	}
}

func TestMessagePreview(t *testing.T) {
	tests := []struct {
		content string
		maxLen  int
		want    string
	}{
		{"short", 60, "short"},
		{"first line\nsecond line", 60, "first line"},
		{"abcdefghij", 8, "abcde..."},
		{"日本語のテキストです", 5, "日本..."},
	}

	for _, tt := range tests {
		msg := NewUserMessage(tt.content)
		if got := msg.Preview(tt.maxLen); got != tt.want {
			t.Errorf("Preview(%q, %d) = %q, want %q", tt.content, tt.maxLen, got, tt.want)
		}
	}
}

func TestRoleDisplayName(t *testing.T) {
	if got := RoleUser.DisplayName(); got != "You" {
		t.Errorf("DisplayName = %q", got)
	}
	if got := RoleAssistant.DisplayName(); got != "Assistant" {
		t.Errorf("DisplayName = %q", got)
	}
	if got := Role("other").DisplayName(); got != "other" {
		t.Errorf("DisplayName = %q", got)
	}
}

func TestConversationTitle(t *testing.T) {
	conv := NewConversation("mistral-small")

	conv.AddAssistantMessage("hi there")
	if conv.Title != "" {
		t.Errorf("assistant message should not set title, got %q", conv.Title)
	}

	conv.AddUserMessage("explain quicksort in python")
	if conv.Title != "explain quicksort in python" {
		t.Errorf("Title = %q", conv.Title)
	}

	conv.AddUserMessage("another question")
	if conv.Title != "explain quicksort in python" {
		t.Errorf("title should not change, got %q", conv.Title)
	}
}

func TestConversationLastUserMessage(t *testing.T) {
	conv := NewConversation("mistral-small")

	if conv.LastUserMessage() != nil {
		t.Error("empty conversation should have no user message")
	}

	conv.AddUserMessage("first")
	conv.AddAssistantMessage("reply")
	conv.AddUserMessage("second")
	conv.AddAssistantMessage("reply2")

	last := conv.LastUserMessage()
	if last == nil || last.Content != "second" {
		t.Errorf("LastUserMessage = %v", last)
	}
}

func TestConversationClear(t *testing.T) {
	conv := NewConversation("mistral-small")
	conv.AddUserMessage("hello")
	conv.Clear()

	if !conv.IsEmpty() {
		t.Error("conversation should be empty after Clear")
	}
	if conv.Title != "" {
		t.Errorf("Title = %q after Clear", conv.Title)
	}
	if conv.Model != "mistral-small" {
		t.Errorf("Model = %q after Clear", conv.Model)
	}
}

func TestConversationPrune(t *testing.T) {
	conv := NewConversation("mistral-small")
	conv.AddMessage(NewMessage(RoleSystem, "system prompt"))

	for i := 0; i < MaxMessages+10; i++ {
		conv.AddUserMessage(strings.Repeat("x", 4))
	}

	if len(conv.Messages) != MaxMessages {
		t.Fatalf("len = %d, want %d", len(conv.Messages), MaxMessages)
	}
	if conv.Messages[0].Role != RoleSystem {
		t.Error("system prompt should survive pruning")
	}
}
