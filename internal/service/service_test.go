// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/olegiv/onav-go/internal/store"
)

// testDB creates a temporary migrated test database.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	f, err := os.CreateTemp("", "onav-service-test-*.db")
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

// newTestMenuService builds a MenuService over a fresh database without a
// cache.
func newTestMenuService(t *testing.T) (*sql.DB, *MenuService) {
	t.Helper()
	db := testDB(t)
	return db, NewMenuService(db, NewPageCatalog(db), nil)
}

func createPage(t *testing.T, db *sql.DB, title, slug, status string) store.Page {
	t.Helper()
	now := time.Now()
	page, err := store.New(db).CreatePage(context.Background(), store.CreatePageParams{
		Title:     title,
		Slug:      slug,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreatePage(%s): %v", slug, err)
	}
	return page
}

func createMenu(t *testing.T, svc *MenuService, name, location string) store.Menu {
	t.Helper()
	detail, err := svc.CreateMenu(context.Background(), CreateMenuInput{
		Name:     name,
		Location: sql.NullString{String: location, Valid: location != ""},
	})
	if err != nil {
		t.Fatalf("CreateMenu(%s): %v", name, err)
	}
	return detail.Menu
}

func createItem(t *testing.T, svc *MenuService, input CreateItemInput) store.MenuItem {
	t.Helper()
	item, err := svc.Items().CreateItem(context.Background(), input)
	if err != nil {
		t.Fatalf("CreateItem(%s): %v", input.Title, err)
	}
	return item
}

func nullInt(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: true}
}

func nullStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}
