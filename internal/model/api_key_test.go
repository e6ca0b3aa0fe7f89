// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"database/sql"
	"testing"
	"time"
)

func TestGenerateAPIKey(t *testing.T) {
	rawKey, prefix, err := GenerateAPIKey()
	if err != nil {
		t.Fatalf("GenerateAPIKey: %v", err)
	}

	if len(rawKey) == 0 {
		t.Error("rawKey is empty")
	}
	if len(prefix) != 8 {
		t.Errorf("len(prefix) = %d, want 8", len(prefix))
	}
	if rawKey[:8] != prefix {
		t.Errorf("prefix %q does not match key start %q", prefix, rawKey[:8])
	}

	other, _, err := GenerateAPIKey()
	if err != nil {
		t.Fatalf("GenerateAPIKey: %v", err)
	}
	if other == rawKey {
		t.Error("two generated keys are identical")
	}
}

func TestHashAPIKey(t *testing.T) {
	h1 := HashAPIKey("some-key")
	h2 := HashAPIKey("some-key")
	if h1 != h2 {
		t.Error("hash is not deterministic")
	}
	if len(h1) != 64 {
		t.Errorf("len(hash) = %d, want 64 hex chars", len(h1))
	}
	if HashAPIKey("other-key") == h1 {
		t.Error("different keys hash identically")
	}
}

func TestAPIKeyIsValid(t *testing.T) {
	future := sql.NullTime{Time: time.Now().Add(time.Hour), Valid: true}
	past := sql.NullTime{Time: time.Now().Add(-time.Hour), Valid: true}

	tests := []struct {
		name string
		key  APIKey
		want bool
	}{
		{"active without expiry", APIKey{IsActive: true}, true},
		{"active not yet expired", APIKey{IsActive: true, ExpiresAt: future}, true},
		{"inactive", APIKey{IsActive: false}, false},
		{"expired", APIKey{IsActive: true, ExpiresAt: past}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.key.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}
