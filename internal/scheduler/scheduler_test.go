// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/olegiv/onav-go/internal/store"
)

func testQueries(t *testing.T) *store.Queries {
	t.Helper()

	f, err := os.CreateTemp("", "onav-scheduler-test-*.db")
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

	return store.New(db)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createEventAt(t *testing.T, q *store.Queries, ts time.Time) {
	t.Helper()
	_, err := q.CreateEvent(context.Background(), store.CreateEventParams{
		Level:     "info",
		Category:  "system",
		Message:   "event",
		UserID:    sql.NullInt64{},
		Metadata:  "{}",
		CreatedAt: ts,
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
}

func TestSweepEvents(t *testing.T) {
	q := testQueries(t)
	createEventAt(t, q, time.Now().AddDate(0, 0, -40))
	createEventAt(t, q, time.Now())

	s := New(q, quietLogger(), 30)
	if err := s.sweepEvents(); err != nil {
		t.Fatalf("sweepEvents: %v", err)
	}

	events, err := q.ListRecentEvents(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("len(events) = %d, want 1", len(events))
	}
}

func TestStartStop(t *testing.T) {
	q := testQueries(t)

	s := New(q, quietLogger(), 30)
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.Stop()
}

func TestStartDisabledRetention(t *testing.T) {
	q := testQueries(t)

	s := New(q, quietLogger(), 0)
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if entries := s.cron.Entries(); len(entries) != 0 {
		t.Errorf("jobs scheduled despite disabled retention: %d", len(entries))
	}
}
