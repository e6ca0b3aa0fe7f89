// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/olegiv/onav-go/internal/cache"
	"github.com/olegiv/onav-go/internal/model"
	"github.com/olegiv/onav-go/internal/store"
)

// maxTreeDepth bounds ancestry walks so a corrupted parent chain cannot
// loop forever.
const maxTreeDepth = 1000

// ItemService manages individual menu tree nodes: creation with sibling
// order assignment, updates with link re-resolution, and cascading deletes.
type ItemService struct {
	db        *sql.DB
	queries   *store.Queries
	resolver  *URLResolver
	catalog   PageCatalog
	menuCache *cache.MenuCache
}

// NewItemService creates a new ItemService. menuCache may be nil.
func NewItemService(db *sql.DB, catalog PageCatalog, menuCache *cache.MenuCache) *ItemService {
	return &ItemService{
		db:        db,
		queries:   store.New(db),
		resolver:  NewURLResolver(catalog),
		catalog:   catalog,
		menuCache: menuCache,
	}
}

// CreateItemInput carries the fields for a new menu item.
type CreateItemInput struct {
	MenuID   int64
	ParentID sql.NullInt64
	Title    string
	URL      sql.NullString
	PageID   sql.NullInt64
	Target   sql.NullString
	Icon     sql.NullString
}

// UpdateItemInput carries the mutable fields of an existing item.
// ParentSet distinguishes "move the item" from "keep the current parent":
// when false, ParentID is ignored.
type UpdateItemInput struct {
	Title     string
	URL       sql.NullString
	PageID    sql.NullInt64
	Target    sql.NullString
	Icon      sql.NullString
	ParentID  sql.NullInt64
	ParentSet bool
}

// CreateItem creates a menu item. The item's position becomes one greater
// than the highest position in its sibling group (1 for an empty group),
// and its URL is resolved from the page link or the explicit URL.
func (s *ItemService) CreateItem(ctx context.Context, input CreateItemInput) (store.MenuItem, error) {
	if input.Title == "" {
		return store.MenuItem{}, model.Validationf("title is required")
	}
	if input.Target.Valid && !model.IsValidTarget(input.Target.String) {
		return store.MenuItem{}, model.Validationf("invalid target %q", input.Target.String)
	}

	if _, err := s.queries.GetMenuByID(ctx, input.MenuID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.MenuItem{}, model.NotFoundf("menu %d", input.MenuID)
		}
		return store.MenuItem{}, fmt.Errorf("looking up menu %d: %w", input.MenuID, err)
	}

	if input.ParentID.Valid {
		parent, err := s.queries.GetMenuItemByID(ctx, input.ParentID.Int64)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return store.MenuItem{}, model.NotFoundf("parent item %d", input.ParentID.Int64)
			}
			return store.MenuItem{}, fmt.Errorf("looking up parent item %d: %w", input.ParentID.Int64, err)
		}
		if parent.MenuID != input.MenuID {
			return store.MenuItem{}, model.Validationf("parent item %d belongs to another menu", parent.ID)
		}
	}

	url, err := s.resolver.Resolve(ctx, input.URL, input.PageID)
	if err != nil {
		return store.MenuItem{}, err
	}

	maxPos, err := s.queries.GetMaxMenuItemPosition(ctx, store.GetMaxMenuItemPositionParams{
		MenuID:   input.MenuID,
		ParentID: input.ParentID,
	})
	if err != nil {
		return store.MenuItem{}, fmt.Errorf("getting max position: %w", err)
	}

	now := time.Now()
	item, err := s.queries.CreateMenuItem(ctx, store.CreateMenuItemParams{
		MenuID:    input.MenuID,
		ParentID:  input.ParentID,
		Title:     input.Title,
		Url:       url,
		PageID:    input.PageID,
		Target:    input.Target,
		Icon:      input.Icon,
		Position:  maxPos + 1,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return store.MenuItem{}, fmt.Errorf("creating menu item: %w", err)
	}

	s.invalidate(item.MenuID)
	slog.Info("menu item created", "item_id", item.ID, "menu_id", item.MenuID, "position", item.Position)
	return item, nil
}

// UpdateItem edits an item's fields, re-running link resolution. A reparent
// (ParentSet true) is validated against the tree: the new parent must belong
// to the same menu and must not be the item itself or one of its
// descendants. Position is left untouched; use reordering for that.
func (s *ItemService) UpdateItem(ctx context.Context, id int64, input UpdateItemInput) (store.MenuItem, error) {
	if input.Title == "" {
		return store.MenuItem{}, model.Validationf("title is required")
	}
	if input.Target.Valid && !model.IsValidTarget(input.Target.String) {
		return store.MenuItem{}, model.Validationf("invalid target %q", input.Target.String)
	}

	item, err := s.queries.GetMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.MenuItem{}, model.NotFoundf("menu item %d", id)
		}
		return store.MenuItem{}, fmt.Errorf("looking up menu item %d: %w", id, err)
	}

	parentID := item.ParentID
	if input.ParentSet {
		if err := checkAncestry(ctx, s.queries, item, input.ParentID); err != nil {
			return store.MenuItem{}, err
		}
		parentID = input.ParentID
	}

	url, err := s.resolver.Resolve(ctx, input.URL, input.PageID)
	if err != nil {
		return store.MenuItem{}, err
	}

	updated, err := s.queries.UpdateMenuItem(ctx, store.UpdateMenuItemParams{
		ID:        id,
		ParentID:  parentID,
		Title:     input.Title,
		Url:       url,
		PageID:    input.PageID,
		Target:    input.Target,
		Icon:      input.Icon,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return store.MenuItem{}, fmt.Errorf("updating menu item %d: %w", id, err)
	}

	s.invalidate(updated.MenuID)
	slog.Info("menu item updated", "item_id", id, "menu_id", updated.MenuID)
	return updated, nil
}

// checkAncestry rejects a parent that would detach the item into another
// menu or make it its own ancestor. The ancestry walk runs from the proposed
// parent up to the root.
func checkAncestry(ctx context.Context, q *store.Queries, item store.MenuItem, newParent sql.NullInt64) error {
	if !newParent.Valid {
		return nil
	}
	if newParent.Int64 == item.ID {
		return model.Validationf("item %d cannot be its own parent", item.ID)
	}

	current := newParent
	for depth := 0; current.Valid; depth++ {
		if depth >= maxTreeDepth {
			return model.Validationf("parent chain of item %d exceeds maximum depth", item.ID)
		}
		ancestor, err := q.GetMenuItemByID(ctx, current.Int64)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return model.NotFoundf("parent item %d", current.Int64)
			}
			return fmt.Errorf("walking ancestry of item %d: %w", item.ID, err)
		}
		if ancestor.MenuID != item.MenuID {
			return model.Validationf("parent item %d belongs to another menu", ancestor.ID)
		}
		if ancestor.ID == item.ID {
			return model.Validationf("item %d cannot become its own ancestor", item.ID)
		}
		current = ancestor.ParentID
	}
	return nil
}

// DeleteItem removes an item and its entire subtree, children first, inside
// one transaction. Returns the number of items deleted.
func (s *ItemService) DeleteItem(ctx context.Context, id int64) (int64, error) {
	item, err := s.queries.GetMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, model.NotFoundf("menu item %d", id)
		}
		return 0, fmt.Errorf("looking up menu item %d: %w", id, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	qtx := s.queries.WithTx(tx)

	items, err := qtx.ListMenuItemsByMenu(ctx, item.MenuID)
	if err != nil {
		return 0, fmt.Errorf("listing items of menu %d: %w", item.MenuID, err)
	}

	var deleted int64
	for _, victim := range subtreeIDs(items, id) {
		n, err := qtx.DeleteMenuItem(ctx, victim)
		if err != nil {
			return 0, fmt.Errorf("deleting menu item %d: %w", victim, err)
		}
		deleted += n
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing item delete: %w", err)
	}

	s.invalidate(item.MenuID)
	slog.Info("menu item deleted", "item_id", id, "menu_id", item.MenuID, "deleted", deleted)
	return deleted, nil
}

// Children returns the ordered sibling group under the given parent.
// A null parentID selects the menu's top-level items.
func (s *ItemService) Children(ctx context.Context, menuID int64, parentID sql.NullInt64) ([]store.MenuItem, error) {
	items, err := s.queries.ListMenuItemsByParent(ctx, store.ListMenuItemsByParentParams{
		MenuID:   menuID,
		ParentID: parentID,
	})
	if err != nil {
		return nil, fmt.Errorf("listing children of menu %d: %w", menuID, err)
	}
	return items, nil
}

// ResolvedPage returns the page an item links to, or nil for explicit-URL
// items.
func (s *ItemService) ResolvedPage(ctx context.Context, item store.MenuItem) (*model.Page, error) {
	if !item.PageID.Valid {
		return nil, nil
	}
	page, err := s.catalog.PageByID(ctx, item.PageID.Int64)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// SetPosition sets a single item's position without touching its parent or
// renumbering siblings.
func (s *ItemService) SetPosition(ctx context.Context, id int64, position int64) (store.MenuItem, error) {
	item, err := s.queries.GetMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.MenuItem{}, model.NotFoundf("menu item %d", id)
		}
		return store.MenuItem{}, fmt.Errorf("looking up menu item %d: %w", id, err)
	}

	if _, err := s.queries.UpdateMenuItemPosition(ctx, store.UpdateMenuItemPositionParams{
		ID:        id,
		Position:  position,
		UpdatedAt: time.Now(),
	}); err != nil {
		return store.MenuItem{}, fmt.Errorf("updating position of item %d: %w", id, err)
	}

	updated, err := s.queries.GetMenuItemByID(ctx, id)
	if err != nil {
		return store.MenuItem{}, fmt.Errorf("re-reading menu item %d: %w", id, err)
	}

	s.invalidate(item.MenuID)
	return updated, nil
}

func (s *ItemService) invalidate(menuID int64) {
	if s.menuCache != nil {
		s.menuCache.InvalidateMenu(menuID)
	}
}
