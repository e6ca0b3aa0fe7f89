// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service provides the navigation engine's business logic: menu and
// item lifecycle, URL resolution, style attachment, and tree composition.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/olegiv/onav-go/internal/model"
	"github.com/olegiv/onav-go/internal/store"
)

// PageCatalog resolves CMS pages for menu item link targets. The catalog is
// a read-only collaborator; the engine never mutates pages.
type PageCatalog interface {
	// PageByID returns the page with the given id, or model.ErrNotFound.
	PageByID(ctx context.Context, id int64) (model.Page, error)
	// PublishedPages lists pages available for item-target selection.
	PublishedPages(ctx context.Context) ([]model.Page, error)
}

// storeCatalog is a PageCatalog backed by the pages table.
type storeCatalog struct {
	queries *store.Queries
}

// NewPageCatalog creates a PageCatalog over the local pages table.
func NewPageCatalog(db *sql.DB) PageCatalog {
	return &storeCatalog{queries: store.New(db)}
}

func (c *storeCatalog) PageByID(ctx context.Context, id int64) (model.Page, error) {
	page, err := c.queries.GetPageByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Page{}, model.NotFoundf("page %d", id)
		}
		return model.Page{}, fmt.Errorf("looking up page %d: %w", id, err)
	}
	return pageFromStore(page), nil
}

func (c *storeCatalog) PublishedPages(ctx context.Context) ([]model.Page, error) {
	pages, err := c.queries.ListPublishedPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing published pages: %w", err)
	}
	out := make([]model.Page, 0, len(pages))
	for _, p := range pages {
		out = append(out, pageFromStore(p))
	}
	return out, nil
}

func pageFromStore(p store.Page) model.Page {
	return model.Page{
		ID:        p.ID,
		Title:     p.Title,
		Slug:      p.Slug,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
