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

// HeaderStyleInput carries the header presentation fields for an upsert.
type HeaderStyleInput struct {
	Transparency    int64
	Layout          string
	ShowBorder      bool
	AdvancedOptions map[string]any
}

// FooterStyleInput carries the footer presentation fields for an upsert.
type FooterStyleInput struct {
	Transparency    int64
	Alignment       string
	ShowBorder      bool
	AdvancedOptions map[string]any
}

// FooterStyleResult is the footer upsert's result envelope. Unlike the
// header path, a missing menu is reported here rather than as an error.
type FooterStyleResult struct {
	Success     bool               `json:"success"`
	Message     string             `json:"message"`
	FooterStyle *model.FooterStyle `json:"footer_style,omitempty"`
}

// StyleService manages the per-menu header and footer presentation records.
// Each menu owns at most one of each, keyed by menu id.
type StyleService struct {
	db        *sql.DB
	queries   *store.Queries
	menuCache *cache.MenuCache
}

// NewStyleService creates a new StyleService. menuCache may be nil.
func NewStyleService(db *sql.DB, menuCache *cache.MenuCache) *StyleService {
	return &StyleService{
		db:        db,
		queries:   store.New(db),
		menuCache: menuCache,
	}
}

// UpdateHeaderStyle upserts the header style of a menu. The caller identity
// must already be verified; userID comes from the API key that authorized
// the request.
func (s *StyleService) UpdateHeaderStyle(ctx context.Context, userID int64, menuID int64, input HeaderStyleInput) (model.HeaderStyle, error) {
	if userID <= 0 {
		return model.HeaderStyle{}, model.Authf("a verified caller identity is required")
	}
	if input.Layout != "" && !model.IsValidHeaderLayout(input.Layout) {
		return model.HeaderStyle{}, model.Validationf("invalid header layout %q", input.Layout)
	}

	if _, err := s.queries.GetMenuByID(ctx, menuID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.HeaderStyle{}, model.NotFoundf("menu %d", menuID)
		}
		return model.HeaderStyle{}, fmt.Errorf("looking up menu %d: %w", menuID, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.HeaderStyle{}, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := upsertHeaderStyle(ctx, s.queries.WithTx(tx), menuID, input)
	if err != nil {
		return model.HeaderStyle{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.HeaderStyle{}, fmt.Errorf("committing header style: %w", err)
	}

	s.invalidate(menuID)
	slog.Info("header style updated", "menu_id", menuID, "user_id", userID)
	return headerStyleFromStore(row)
}

// UpdateFooterStyle upserts the footer style of a menu. A missing menu is
// reported through the result envelope, not as an error.
func (s *StyleService) UpdateFooterStyle(ctx context.Context, menuID int64, input FooterStyleInput) (FooterStyleResult, error) {
	if input.Alignment != "" && !model.IsValidFooterAlignment(input.Alignment) {
		return FooterStyleResult{}, model.Validationf("invalid footer alignment %q", input.Alignment)
	}

	if _, err := s.queries.GetMenuByID(ctx, menuID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return FooterStyleResult{Success: false, Message: "Menu not found"}, nil
		}
		return FooterStyleResult{}, fmt.Errorf("looking up menu %d: %w", menuID, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return FooterStyleResult{}, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := upsertFooterStyle(ctx, s.queries.WithTx(tx), menuID, input)
	if err != nil {
		return FooterStyleResult{}, err
	}

	if err := tx.Commit(); err != nil {
		return FooterStyleResult{}, fmt.Errorf("committing footer style: %w", err)
	}

	s.invalidate(menuID)
	slog.Info("footer style updated", "menu_id", menuID)

	fs, err := footerStyleFromStore(row)
	if err != nil {
		return FooterStyleResult{}, err
	}
	return FooterStyleResult{Success: true, Message: "Footer style updated", FooterStyle: &fs}, nil
}

// HeaderStyle returns the menu's header style, or nil when none exists.
func (s *StyleService) HeaderStyle(ctx context.Context, menuID int64) (*model.HeaderStyle, error) {
	row, err := s.queries.GetHeaderStyleByMenu(ctx, menuID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("looking up header style of menu %d: %w", menuID, err)
	}
	hs, err := headerStyleFromStore(row)
	if err != nil {
		return nil, err
	}
	return &hs, nil
}

// FooterStyle returns the menu's footer style, or nil when none exists.
func (s *StyleService) FooterStyle(ctx context.Context, menuID int64) (*model.FooterStyle, error) {
	row, err := s.queries.GetFooterStyleByMenu(ctx, menuID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("looking up footer style of menu %d: %w", menuID, err)
	}
	fs, err := footerStyleFromStore(row)
	if err != nil {
		return nil, err
	}
	return &fs, nil
}

func (s *StyleService) invalidate(menuID int64) {
	if s.menuCache != nil {
		s.menuCache.InvalidateMenu(menuID)
	}
}

// upsertHeaderStyle creates or merges the header style row for a menu using
// the given (possibly transactional) query handle.
func upsertHeaderStyle(ctx context.Context, q *store.Queries, menuID int64, input HeaderStyleInput) (store.HeaderStyle, error) {
	opts, err := model.NormalizeAdvancedOptions(input.AdvancedOptions)
	if err != nil {
		return store.HeaderStyle{}, model.Validationf("bad advanced options: %v", err)
	}
	rawOpts, err := model.MarshalAdvancedOptions(opts)
	if err != nil {
		return store.HeaderStyle{}, err
	}

	layout := input.Layout
	if layout == "" {
		layout = model.HeaderLayoutInline
	}

	now := time.Now()
	existing, err := q.GetHeaderStyleByMenu(ctx, menuID)
	if errors.Is(err, sql.ErrNoRows) {
		created, err := q.CreateHeaderStyle(ctx, store.CreateHeaderStyleParams{
			MenuID:          menuID,
			Transparency:    input.Transparency,
			Layout:          layout,
			ShowBorder:      input.ShowBorder,
			AdvancedOptions: rawOpts,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			return store.HeaderStyle{}, fmt.Errorf("creating header style for menu %d: %w", menuID, err)
		}
		return created, nil
	}
	if err != nil {
		return store.HeaderStyle{}, fmt.Errorf("looking up header style of menu %d: %w", menuID, err)
	}

	updated, err := q.UpdateHeaderStyle(ctx, store.UpdateHeaderStyleParams{
		MenuID:          existing.MenuID,
		Transparency:    input.Transparency,
		Layout:          layout,
		ShowBorder:      input.ShowBorder,
		AdvancedOptions: rawOpts,
		UpdatedAt:       now,
	})
	if err != nil {
		return store.HeaderStyle{}, fmt.Errorf("updating header style of menu %d: %w", menuID, err)
	}
	return updated, nil
}

// upsertFooterStyle creates or merges the footer style row for a menu using
// the given (possibly transactional) query handle.
func upsertFooterStyle(ctx context.Context, q *store.Queries, menuID int64, input FooterStyleInput) (store.FooterStyle, error) {
	opts, err := model.NormalizeAdvancedOptions(input.AdvancedOptions)
	if err != nil {
		return store.FooterStyle{}, model.Validationf("bad advanced options: %v", err)
	}
	rawOpts, err := model.MarshalAdvancedOptions(opts)
	if err != nil {
		return store.FooterStyle{}, err
	}

	alignment := input.Alignment
	if alignment == "" {
		alignment = model.FooterAlignLeft
	}

	now := time.Now()
	existing, err := q.GetFooterStyleByMenu(ctx, menuID)
	if errors.Is(err, sql.ErrNoRows) {
		created, err := q.CreateFooterStyle(ctx, store.CreateFooterStyleParams{
			MenuID:          menuID,
			Transparency:    input.Transparency,
			Alignment:       alignment,
			ShowBorder:      input.ShowBorder,
			AdvancedOptions: rawOpts,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			return store.FooterStyle{}, fmt.Errorf("creating footer style for menu %d: %w", menuID, err)
		}
		return created, nil
	}
	if err != nil {
		return store.FooterStyle{}, fmt.Errorf("looking up footer style of menu %d: %w", menuID, err)
	}

	updated, err := q.UpdateFooterStyle(ctx, store.UpdateFooterStyleParams{
		MenuID:          existing.MenuID,
		Transparency:    input.Transparency,
		Alignment:       alignment,
		ShowBorder:      input.ShowBorder,
		AdvancedOptions: rawOpts,
		UpdatedAt:       now,
	})
	if err != nil {
		return store.FooterStyle{}, fmt.Errorf("updating footer style of menu %d: %w", menuID, err)
	}
	return updated, nil
}

func headerStyleFromStore(row store.HeaderStyle) (model.HeaderStyle, error) {
	opts, err := model.UnmarshalAdvancedOptions(row.AdvancedOptions)
	if err != nil {
		return model.HeaderStyle{}, fmt.Errorf("header style of menu %d: %w", row.MenuID, err)
	}
	return model.HeaderStyle{
		ID:              row.ID,
		MenuID:          row.MenuID,
		Transparency:    row.Transparency,
		Layout:          row.Layout,
		ShowBorder:      row.ShowBorder,
		AdvancedOptions: opts,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}, nil
}

func footerStyleFromStore(row store.FooterStyle) (model.FooterStyle, error) {
	opts, err := model.UnmarshalAdvancedOptions(row.AdvancedOptions)
	if err != nil {
		return model.FooterStyle{}, fmt.Errorf("footer style of menu %d: %w", row.MenuID, err)
	}
	return model.FooterStyle{
		ID:              row.ID,
		MenuID:          row.MenuID,
		Transparency:    row.Transparency,
		Alignment:       row.Alignment,
		ShowBorder:      row.ShowBorder,
		AdvancedOptions: opts,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}, nil
}
