// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/olegiv/onav-go/internal/model"
)

// Seed creates initial data in the database: a published starter page
// catalog, a main menu pointing at it, and one active API key for the
// style-management endpoints. Safe to call repeatedly.
func Seed(ctx context.Context, db *sql.DB) error {
	queries := New(db)

	// Check if the main menu already exists
	_, err := queries.GetMenuByLocation(ctx, sql.NullString{String: model.LocationMain, Valid: true})
	if err == nil {
		slog.Info("main menu already exists, skipping seed")
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking for main menu: %w", err)
	}

	now := time.Now()

	pages := []CreatePageParams{
		{Title: "Home", Slug: "home", Status: model.PageStatusPublished, CreatedAt: now, UpdatedAt: now},
		{Title: "About", Slug: "about", Status: model.PageStatusPublished, CreatedAt: now, UpdatedAt: now},
		{Title: "Contact", Slug: "contact", Status: model.PageStatusPublished, CreatedAt: now, UpdatedAt: now},
	}
	created := make([]Page, 0, len(pages))
	for _, p := range pages {
		page, err := queries.CreatePage(ctx, p)
		if err != nil {
			return fmt.Errorf("creating page %q: %w", p.Slug, err)
		}
		created = append(created, page)
	}

	menu, err := queries.CreateMenu(ctx, CreateMenuParams{
		Name:      "Main",
		Location:  sql.NullString{String: model.LocationMain, Valid: true},
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("creating main menu: %w", err)
	}

	for i, page := range created {
		_, err := queries.CreateMenuItem(ctx, CreateMenuItemParams{
			MenuID:    menu.ID,
			Title:     page.Title,
			Url:       sql.NullString{String: "/" + page.Slug, Valid: true},
			PageID:    sql.NullInt64{Int64: page.ID, Valid: true},
			Target:    sql.NullString{String: model.TargetSelf, Valid: true},
			Position:  int64(i + 1),
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("creating menu item for page %q: %w", page.Slug, err)
		}
	}

	rawKey, prefix, err := model.GenerateAPIKey()
	if err != nil {
		return fmt.Errorf("generating API key: %w", err)
	}
	key, err := queries.CreateAPIKey(ctx, CreateAPIKeyParams{
		Name:      "seed-" + uuid.NewString()[:8],
		KeyHash:   model.HashAPIKey(rawKey),
		KeyPrefix: prefix,
		UserID:    1,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("creating API key: %w", err)
	}

	slog.Info("seeded navigation data",
		"menu_id", menu.ID,
		"pages", len(created),
		"api_key_id", key.ID,
		"api_key", rawKey,
	)

	return nil
}
