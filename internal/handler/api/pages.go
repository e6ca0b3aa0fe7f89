// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"time"

	"github.com/olegiv/onav-go/internal/handler"
	"github.com/olegiv/onav-go/internal/model"
)

// PageResponse represents a page available for item-target selection.
type PageResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func pageToResponse(p model.Page) PageResponse {
	return PageResponse{
		ID:        p.ID,
		Title:     p.Title,
		Slug:      p.Slug,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ListPages handles GET /pages. Only published pages are listed; drafts
// cannot be linked from menu items.
func (h *Handler) ListPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.catalog.PublishedPages(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]PageResponse, 0, len(pages))
	for _, p := range pages {
		out = append(out, pageToResponse(p))
	}
	handler.WriteJSONSuccess(w, map[string]any{"pages": out})
}
