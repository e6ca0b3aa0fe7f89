// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/onav-go/internal/store"
)

func testQueries(t *testing.T) *store.Queries {
	t.Helper()

	f, err := os.CreateTemp("", "onav-cache-test-*.db")
	require.NoError(t, err)
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

func seedMenuWithItem(t *testing.T, q *store.Queries, title string) store.Menu {
	t.Helper()
	ctx := context.Background()
	now := time.Now()

	menu, err := q.CreateMenu(ctx, store.CreateMenuParams{
		Name:      title,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)

	_, err = q.CreateMenuItem(ctx, store.CreateMenuItemParams{
		MenuID:    menu.ID,
		Title:     title,
		Url:       sql.NullString{String: "/" + title, Valid: true},
		Position:  1,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)

	return menu
}

func TestMenuCacheReadThrough(t *testing.T) {
	q := testQueries(t)
	backend := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Minute})
	defer backend.Close()
	mc := NewMenuCache(backend, q)
	ctx := context.Background()

	menu := seedMenuWithItem(t, q, "main")

	// First read misses and populates, second hits
	rows, err := mc.Items(ctx, menu.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	rows, err = mc.Items(ctx, menu.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	stats, ok := mc.Stats()
	require.True(t, ok)
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
}

func TestMenuCacheInvalidateMenu(t *testing.T) {
	q := testQueries(t)
	backend := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Minute})
	defer backend.Close()
	mc := NewMenuCache(backend, q)
	ctx := context.Background()

	menu := seedMenuWithItem(t, q, "main")

	rows, err := mc.Items(ctx, menu.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// A write behind the cache's back is visible after invalidation
	now := time.Now()
	_, err = q.CreateMenuItem(ctx, store.CreateMenuItemParams{
		MenuID:    menu.ID,
		Title:     "fresh",
		Url:       sql.NullString{String: "/fresh", Valid: true},
		Position:  2,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)

	rows, err = mc.Items(ctx, menu.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "stale read expected before invalidation")

	mc.InvalidateMenu(menu.ID)

	rows, err = mc.Items(ctx, menu.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestMenuCacheCorruptEntryFallsBack(t *testing.T) {
	q := testQueries(t)
	backend := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Minute})
	defer backend.Close()
	mc := NewMenuCache(backend, q)
	ctx := context.Background()

	menu := seedMenuWithItem(t, q, "main")

	require.NoError(t, backend.Set(ctx, menuItemsKey(menu.ID), []byte("not json"), 0))

	rows, err := mc.Items(ctx, menu.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestMenuCacheClosedBackendDegrades(t *testing.T) {
	q := testQueries(t)
	backend := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Minute})
	require.NoError(t, backend.Close())
	mc := NewMenuCache(backend, q)

	menu := seedMenuWithItem(t, q, "main")

	// A dead backend must not take reads down with it
	rows, err := mc.Items(context.Background(), menu.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
