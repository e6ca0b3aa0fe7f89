// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/olegiv/onav-go/internal/store"
)

// MenuCache is a read-through cache over a menu's item rows, keyed by menu
// id. Mutating operations must call InvalidateMenu for every touched menu.
type MenuCache struct {
	cache   Cacher
	queries *store.Queries
}

// NewMenuCache creates a new menu cache over the given backend.
func NewMenuCache(cache Cacher, queries *store.Queries) *MenuCache {
	return &MenuCache{
		cache:   cache,
		queries: queries,
	}
}

func menuItemsKey(menuID int64) string {
	return fmt.Sprintf("menu_items:%d", menuID)
}

// Items returns the item rows of a menu, loading from the database on a
// cache miss. Cache backend failures degrade to a direct database read.
func (c *MenuCache) Items(ctx context.Context, menuID int64) ([]store.ListMenuItemsWithPageRow, error) {
	key := menuItemsKey(menuID)

	raw, err := c.cache.Get(ctx, key)
	if err == nil {
		var rows []store.ListMenuItemsWithPageRow
		if err := json.Unmarshal(raw, &rows); err == nil {
			return rows, nil
		}
		// Corrupt entry: drop it and fall through to the database
		_ = c.cache.Delete(ctx, key)
	} else if !errors.Is(err, ErrCacheMiss) {
		slog.Warn("menu cache read failed", "menu_id", menuID, "error", err)
	}

	rows, err := c.queries.ListMenuItemsWithPage(ctx, menuID)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(rows); err == nil {
		if err := c.cache.Set(ctx, key, raw, 0); err != nil {
			slog.Warn("menu cache write failed", "menu_id", menuID, "error", err)
		}
	}

	return rows, nil
}

// InvalidateMenu drops the cached items of one menu.
func (c *MenuCache) InvalidateMenu(menuID int64) {
	if err := c.cache.Delete(context.Background(), menuItemsKey(menuID)); err != nil {
		slog.Warn("menu cache invalidation failed", "menu_id", menuID, "error", err)
	}
}

// Invalidate drops every cached menu.
func (c *MenuCache) Invalidate() {
	if err := c.cache.Clear(context.Background()); err != nil {
		slog.Warn("menu cache clear failed", "error", err)
	}
}

// Stats reports backend statistics when the backend provides them.
func (c *MenuCache) Stats() (Stats, bool) {
	if sp, ok := c.cache.(StatsProvider); ok {
		return sp.Stats(), true
	}
	return Stats{}, false
}
