// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/olegiv/onav-go/internal/cache"
	"github.com/olegiv/onav-go/internal/model"
	"github.com/olegiv/onav-go/internal/store"
)

// MenuDetail is the full menu aggregate: the menu row, its item tree, and
// both attached style records (nil when absent).
type MenuDetail struct {
	Menu        store.Menu
	Items       []MenuItemNode
	HeaderStyle *model.HeaderStyle
	FooterStyle *model.FooterStyle
}

// CreateMenuInput carries the fields for a new menu. A supplied HeaderStyle
// is attached to the menu in the same transaction.
type CreateMenuInput struct {
	Name        string
	Location    sql.NullString
	HeaderStyle *HeaderStyleInput
}

// UpdateMenuInput carries the mutable menu fields. Nil pointers keep the
// current value; an empty Location clears the slot.
type UpdateMenuInput struct {
	Name        *string
	Location    *string
	HeaderStyle *HeaderStyleInput
}

// ReorderUpdate is one entry of a bulk reorder request. ParentSet records
// whether the entry carried a parent_id at all: an omitted parent_id keeps
// the item's current parent, while an explicit null promotes it to the top
// level.
type ReorderUpdate struct {
	ID        int64
	Position  int64
	ParentID  sql.NullInt64
	ParentSet bool
}

// UnmarshalJSON decodes a reorder entry, distinguishing an absent parent_id
// from an explicit null.
func (u *ReorderUpdate) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       int64           `json:"id"`
		Order    int64           `json:"order"`
		ParentID json.RawMessage `json:"parent_id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	u.ID = raw.ID
	u.Position = raw.Order
	u.ParentSet = raw.ParentID != nil
	u.ParentID = sql.NullInt64{}
	if u.ParentSet && string(raw.ParentID) != "null" {
		var parent int64
		if err := json.Unmarshal(raw.ParentID, &parent); err != nil {
			return err
		}
		u.ParentID = sql.NullInt64{Int64: parent, Valid: true}
	}
	return nil
}

// MenuService is the aggregate root over menus: lifecycle, full-tree reads,
// cascade deletion and bulk reordering. Item- and style-level operations are
// delegated to ItemService and StyleService.
type MenuService struct {
	db        *sql.DB
	queries   *store.Queries
	items     *ItemService
	styles    *StyleService
	menuCache *cache.MenuCache
}

// NewMenuService creates a new MenuService. menuCache may be nil.
func NewMenuService(db *sql.DB, catalog PageCatalog, menuCache *cache.MenuCache) *MenuService {
	return &MenuService{
		db:        db,
		queries:   store.New(db),
		items:     NewItemService(db, catalog, menuCache),
		styles:    NewStyleService(db, menuCache),
		menuCache: menuCache,
	}
}

// Items exposes the item-level operations of the aggregate.
func (s *MenuService) Items() *ItemService { return s.items }

// Styles exposes the style-attachment operations of the aggregate.
func (s *MenuService) Styles() *StyleService { return s.styles }

// CreateMenu creates a menu and, when supplied, its header style, in one
// transaction. The returned detail carries an empty item tree.
func (s *MenuService) CreateMenu(ctx context.Context, input CreateMenuInput) (MenuDetail, error) {
	if input.Name == "" {
		return MenuDetail{}, model.Validationf("name is required")
	}
	if input.HeaderStyle != nil && input.HeaderStyle.Layout != "" && !model.IsValidHeaderLayout(input.HeaderStyle.Layout) {
		return MenuDetail{}, model.Validationf("invalid header layout %q", input.HeaderStyle.Layout)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return MenuDetail{}, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	qtx := s.queries.WithTx(tx)

	now := time.Now()
	menu, err := qtx.CreateMenu(ctx, store.CreateMenuParams{
		Name:      input.Name,
		Location:  input.Location,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return MenuDetail{}, fmt.Errorf("creating menu: %w", err)
	}

	detail := MenuDetail{Menu: menu}
	if input.HeaderStyle != nil {
		row, err := upsertHeaderStyle(ctx, qtx, menu.ID, *input.HeaderStyle)
		if err != nil {
			return MenuDetail{}, err
		}
		hs, err := headerStyleFromStore(row)
		if err != nil {
			return MenuDetail{}, err
		}
		detail.HeaderStyle = &hs
	}

	if err := tx.Commit(); err != nil {
		return MenuDetail{}, fmt.Errorf("committing menu create: %w", err)
	}

	slog.Info("menu created", "menu_id", menu.ID, "name", menu.Name, "location", menu.Location.String)
	return detail, nil
}

// UpdateMenu updates the menu's mutable fields and, when supplied, upserts
// its header style, in one transaction.
func (s *MenuService) UpdateMenu(ctx context.Context, id int64, input UpdateMenuInput) (MenuDetail, error) {
	menu, err := s.queries.GetMenuByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MenuDetail{}, model.NotFoundf("menu %d", id)
		}
		return MenuDetail{}, fmt.Errorf("looking up menu %d: %w", id, err)
	}

	name := menu.Name
	if input.Name != nil {
		if *input.Name == "" {
			return MenuDetail{}, model.Validationf("name is required")
		}
		name = *input.Name
	}
	location := menu.Location
	if input.Location != nil {
		location = sql.NullString{String: *input.Location, Valid: *input.Location != ""}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return MenuDetail{}, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	qtx := s.queries.WithTx(tx)

	updated, err := qtx.UpdateMenu(ctx, store.UpdateMenuParams{
		ID:        id,
		Name:      name,
		Location:  location,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return MenuDetail{}, fmt.Errorf("updating menu %d: %w", id, err)
	}

	if input.HeaderStyle != nil {
		if _, err := upsertHeaderStyle(ctx, qtx, id, *input.HeaderStyle); err != nil {
			return MenuDetail{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return MenuDetail{}, fmt.Errorf("committing menu update: %w", err)
	}

	s.invalidate(id)
	slog.Info("menu updated", "menu_id", id)
	return s.detail(ctx, updated)
}

// GetMenu returns the full menu aggregate by id.
func (s *MenuService) GetMenu(ctx context.Context, id int64) (MenuDetail, error) {
	menu, err := s.queries.GetMenuByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MenuDetail{}, model.NotFoundf("menu %d", id)
		}
		return MenuDetail{}, fmt.Errorf("looking up menu %d: %w", id, err)
	}
	return s.detail(ctx, menu)
}

// GetMenuByLocation returns the full menu aggregate bound to a location
// slot. Location uniqueness is not enforced; the oldest match wins.
func (s *MenuService) GetMenuByLocation(ctx context.Context, location string) (MenuDetail, error) {
	menu, err := s.queries.GetMenuByLocation(ctx, sql.NullString{String: location, Valid: true})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MenuDetail{}, model.NotFoundf("menu at location %q", location)
		}
		return MenuDetail{}, fmt.Errorf("looking up menu at %q: %w", location, err)
	}
	return s.detail(ctx, menu)
}

// GetMenuByName returns the full menu aggregate by name.
func (s *MenuService) GetMenuByName(ctx context.Context, name string) (MenuDetail, error) {
	menu, err := s.queries.GetMenuByName(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MenuDetail{}, model.NotFoundf("menu %q", name)
		}
		return MenuDetail{}, fmt.Errorf("looking up menu %q: %w", name, err)
	}
	return s.detail(ctx, menu)
}

// ListMenus returns all menu rows without items or styles.
func (s *MenuService) ListMenus(ctx context.Context) ([]store.Menu, error) {
	menus, err := s.queries.ListMenus(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing menus: %w", err)
	}
	return menus, nil
}

// DeleteMenu removes a menu and everything it owns in dependency order:
// style records first (best effort), then every item in one bulk statement,
// then the menu row. The whole cascade runs in a single transaction; a
// failed style delete is logged and skipped, but an item or menu delete
// failure rolls everything back.
func (s *MenuService) DeleteMenu(ctx context.Context, id int64) error {
	if _, err := s.queries.GetMenuByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.NotFoundf("menu %d", id)
		}
		return fmt.Errorf("looking up menu %d: %w", id, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	qtx := s.queries.WithTx(tx)

	if _, err := qtx.DeleteHeaderStyleByMenu(ctx, id); err != nil {
		slog.Warn("failed to delete header style during menu cascade", "menu_id", id, "error", err)
	}
	if _, err := qtx.DeleteFooterStyleByMenu(ctx, id); err != nil {
		slog.Warn("failed to delete footer style during menu cascade", "menu_id", id, "error", err)
	}

	if _, err := qtx.DeleteMenuItemsByMenu(ctx, id); err != nil {
		return fmt.Errorf("deleting items of menu %d: %w", id, err)
	}

	if _, err := qtx.DeleteMenu(ctx, id); err != nil {
		return fmt.Errorf("deleting menu %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing menu delete: %w", err)
	}

	s.invalidate(id)
	slog.Info("menu deleted", "menu_id", id)
	return nil
}

// ReorderItems applies a batch of position (and optional parent) updates as
// one all-or-nothing transaction. Any invalid entry rolls the whole batch
// back.
func (s *MenuService) ReorderItems(ctx context.Context, updates []ReorderUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	qtx := s.queries.WithTx(tx)

	now := time.Now()
	menus := make(map[int64]struct{})
	for _, update := range updates {
		item, err := qtx.GetMenuItemByID(ctx, update.ID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return model.Transactionf("failed to update menu item order: item %d not found", update.ID)
			}
			return model.Transactionf("failed to update menu item order: %v", err)
		}
		menus[item.MenuID] = struct{}{}

		if update.ParentSet {
			if err := checkAncestry(ctx, qtx, item, update.ParentID); err != nil {
				return model.Transactionf("failed to update menu item order: %v", err)
			}
			if _, err := qtx.UpdateMenuItemPositionAndParent(ctx, store.UpdateMenuItemPositionAndParentParams{
				ID:        update.ID,
				Position:  update.Position,
				ParentID:  update.ParentID,
				UpdatedAt: now,
			}); err != nil {
				return model.Transactionf("failed to update menu item order: %v", err)
			}
		} else {
			if _, err := qtx.UpdateMenuItemPosition(ctx, store.UpdateMenuItemPositionParams{
				ID:        update.ID,
				Position:  update.Position,
				UpdatedAt: now,
			}); err != nil {
				return model.Transactionf("failed to update menu item order: %v", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return model.Transactionf("failed to update menu item order: %v", err)
	}

	for menuID := range menus {
		s.invalidate(menuID)
	}
	slog.Info("menu items reordered", "updates", len(updates))
	return nil
}

// detail assembles the full aggregate for a menu row.
func (s *MenuService) detail(ctx context.Context, menu store.Menu) (MenuDetail, error) {
	var rows []store.ListMenuItemsWithPageRow
	var err error

	if s.menuCache != nil {
		rows, err = s.menuCache.Items(ctx, menu.ID)
	} else {
		rows, err = s.queries.ListMenuItemsWithPage(ctx, menu.ID)
	}
	if err != nil {
		return MenuDetail{}, fmt.Errorf("listing items of menu %d: %w", menu.ID, err)
	}

	header, err := s.styles.HeaderStyle(ctx, menu.ID)
	if err != nil {
		return MenuDetail{}, err
	}
	footer, err := s.styles.FooterStyle(ctx, menu.ID)
	if err != nil {
		return MenuDetail{}, err
	}

	return MenuDetail{
		Menu:        menu,
		Items:       buildTree(rows),
		HeaderStyle: header,
		FooterStyle: footer,
	}, nil
}

func (s *MenuService) invalidate(menuID int64) {
	if s.menuCache != nil {
		s.menuCache.InvalidateMenu(menuID)
	}
}
