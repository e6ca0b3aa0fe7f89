// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package logging

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/olegiv/onav-go/internal/model"
	"github.com/olegiv/onav-go/internal/store"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	f, err := os.CreateTemp("", "onav-logging-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	f.Close()

	db, err := store.NewDB(dbPath)
	if err != nil {
		os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}
	if err := store.Migrate(db); err != nil {
		db.Close()
		os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
		os.Remove(dbPath)
	})

	return db
}

func recentEvents(t *testing.T, db *sql.DB) []store.Event {
	t.Helper()
	events, err := store.New(db).ListRecentEvents(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	return events
}

func TestEventLogHandlerForwardsToInner(t *testing.T) {
	db := testDB(t)
	var buf bytes.Buffer
	logger := slog.New(NewEventLogHandler(slog.NewTextHandler(&buf, nil), db))

	logger.Info("plain info line")

	if !strings.Contains(buf.String(), "plain info line") {
		t.Errorf("inner handler output missing record: %q", buf.String())
	}
	// INFO stays out of the event log
	if events := recentEvents(t, db); len(events) != 0 {
		t.Errorf("len(events) = %d, want 0", len(events))
	}
}

func TestEventLogHandlerMirrorsWarnings(t *testing.T) {
	db := testDB(t)
	logger := slog.New(NewEventLogHandler(slog.NewTextHandler(&bytes.Buffer{}, nil), db))

	logger.Warn("item went missing", "item_id", int64(3))
	logger.Error("menu cascade failed", "menu_id", int64(7))

	events := recentEvents(t, db)
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}

	byMessage := make(map[string]store.Event, len(events))
	for _, e := range events {
		byMessage[e.Message] = e
	}

	warn := byMessage["item went missing"]
	if warn.Level != model.EventLevelWarning || warn.Category != model.EventCategoryItem {
		t.Errorf("warn event = %+v", warn)
	}

	errEvent := byMessage["menu cascade failed"]
	if errEvent.Level != model.EventLevelError || errEvent.Category != model.EventCategoryMenu {
		t.Errorf("error event = %+v", errEvent)
	}

	var metadata map[string]any
	if err := json.Unmarshal([]byte(errEvent.Metadata), &metadata); err != nil {
		t.Fatalf("metadata not JSON: %v", err)
	}
	if metadata["menu_id"] != float64(7) {
		t.Errorf("metadata = %v", metadata)
	}
}

func TestEventLogHandlerCustomLevel(t *testing.T) {
	db := testDB(t)
	logger := slog.New(NewEventLogHandlerWithLevel(slog.NewTextHandler(&bytes.Buffer{}, nil), db, slog.LevelInfo))

	logger.Info("mirrored info")

	events := recentEvents(t, db)
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	if events[0].Level != model.EventLevelInfo || events[0].Category != model.EventCategorySystem {
		t.Errorf("event = %+v", events[0])
	}
}
