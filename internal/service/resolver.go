// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/olegiv/onav-go/internal/model"
)

// URLResolver derives a menu item's effective navigation target from either
// an explicit URL or a linked page's slug.
type URLResolver struct {
	catalog PageCatalog
}

// NewURLResolver creates a URLResolver over the given page catalog.
func NewURLResolver(catalog PageCatalog) *URLResolver {
	return &URLResolver{catalog: catalog}
}

// Resolve applies the link resolution rule. A page link wins over any
// explicit URL: the effective URL becomes "/" followed by the page slug.
// Without a page link the explicit URL is used as given. An item that ends
// up with neither is invalid. The same rule applies on create and update,
// including an update that clears the page link.
func (r *URLResolver) Resolve(ctx context.Context, explicitURL sql.NullString, pageID sql.NullInt64) (sql.NullString, error) {
	if pageID.Valid {
		page, err := r.catalog.PageByID(ctx, pageID.Int64)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return sql.NullString{}, model.NotFoundf("selected page not found")
			}
			return sql.NullString{}, err
		}
		return sql.NullString{String: "/" + page.Slug, Valid: true}, nil
	}

	if !explicitURL.Valid || explicitURL.String == "" {
		return sql.NullString{}, model.Validationf("either a page or a custom URL must be provided")
	}
	return explicitURL, nil
}
