// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/olegiv/onav-go/internal/handler"
	"github.com/olegiv/onav-go/internal/service"
	"github.com/olegiv/onav-go/internal/store"
	"github.com/olegiv/onav-go/internal/util"
)

// ItemResponse represents a single menu item row in API responses.
type ItemResponse struct {
	ID        int64     `json:"id"`
	MenuID    int64     `json:"menu_id"`
	ParentID  *int64    `json:"parent_id,omitempty"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	PageID    *int64    `json:"page_id,omitempty"`
	Target    string    `json:"target,omitempty"`
	Icon      string    `json:"icon,omitempty"`
	Position  int64     `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateItemRequest is the request body for adding an item to a menu. Either
// page_id or url must be provided; a page link overrides the explicit URL.
type CreateItemRequest struct {
	Title    string `json:"title"`
	URL      string `json:"url,omitempty"`
	PageID   *int64 `json:"page_id,omitempty"`
	ParentID *int64 `json:"parent_id,omitempty"`
	Target   string `json:"target,omitempty"`
	Icon     string `json:"icon,omitempty"`
}

// UpdateItemRequest is the request body for editing an item. parent_id is
// tri-state: omitted keeps the current parent, null promotes the item to the
// top level, a number reparents it.
type UpdateItemRequest struct {
	Title    string          `json:"title"`
	URL      string          `json:"url,omitempty"`
	PageID   *int64          `json:"page_id,omitempty"`
	ParentID json.RawMessage `json:"parent_id,omitempty"`
	Target   string          `json:"target,omitempty"`
	Icon     string          `json:"icon,omitempty"`
}

// SetItemOrderRequest is the request body for a single-item position set.
type SetItemOrderRequest struct {
	Order int64 `json:"order"`
}

// ReorderRequest is the request body for an atomic bulk reorder.
type ReorderRequest struct {
	Items []service.ReorderUpdate `json:"items"`
}

func itemToResponse(item store.MenuItem) ItemResponse {
	return ItemResponse{
		ID:        item.ID,
		MenuID:    item.MenuID,
		ParentID:  util.NullInt64ToPtr(item.ParentID),
		Title:     item.Title,
		URL:       item.Url.String,
		PageID:    util.NullInt64ToPtr(item.PageID),
		Target:    item.Target.String,
		Icon:      item.Icon.String,
		Position:  item.Position,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// CreateItem handles POST /menus/{id}/items.
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	menuID, err := handler.ParseIDParam(r)
	if err != nil {
		handler.WriteJSONError(w, http.StatusBadRequest, "invalid menu ID")
		return
	}

	var req CreateItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := h.menus.Items().CreateItem(r.Context(), service.CreateItemInput{
		MenuID:   menuID,
		ParentID: util.NullInt64FromPtr(req.ParentID),
		Title:    req.Title,
		URL:      util.NullStringFromValue(req.URL),
		PageID:   util.NullInt64FromPtr(req.PageID),
		Target:   util.NullStringFromValue(req.Target),
		Icon:     util.NullStringFromValue(req.Icon),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	handler.WriteJSONSuccessStatus(w, http.StatusCreated, map[string]any{"item": itemToResponse(item)})
}

// UpdateItem handles PUT /items/{id}.
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := handler.ParseIDParam(r)
	if err != nil {
		handler.WriteJSONError(w, http.StatusBadRequest, "invalid item ID")
		return
	}

	var req UpdateItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := service.UpdateItemInput{
		Title:  req.Title,
		URL:    util.NullStringFromValue(req.URL),
		PageID: util.NullInt64FromPtr(req.PageID),
		Target: util.NullStringFromValue(req.Target),
		Icon:   util.NullStringFromValue(req.Icon),
	}
	if req.ParentID != nil {
		input.ParentSet = true
		if string(req.ParentID) != "null" {
			var parent int64
			if err := json.Unmarshal(req.ParentID, &parent); err != nil {
				handler.WriteJSONError(w, http.StatusBadRequest, "invalid parent_id")
				return
			}
			input.ParentID = sql.NullInt64{Int64: parent, Valid: true}
		}
	}

	item, err := h.menus.Items().UpdateItem(r.Context(), id, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	handler.WriteJSONSuccess(w, map[string]any{"item": itemToResponse(item)})
}

// DeleteItem handles DELETE /items/{id}. The item's entire subtree goes
// with it.
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := handler.ParseIDParam(r)
	if err != nil {
		handler.WriteJSONError(w, http.StatusBadRequest, "invalid item ID")
		return
	}

	deleted, err := h.menus.Items().DeleteItem(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	handler.WriteJSONSuccess(w, map[string]any{"deleted": deleted})
}

// SetItemOrder handles PUT /items/{id}/order. Only the one item moves;
// siblings are not renumbered.
func (h *Handler) SetItemOrder(w http.ResponseWriter, r *http.Request) {
	id, err := handler.ParseIDParam(r)
	if err != nil {
		handler.WriteJSONError(w, http.StatusBadRequest, "invalid item ID")
		return
	}

	var req SetItemOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := h.menus.Items().SetPosition(r.Context(), id, req.Order)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	handler.WriteJSONSuccess(w, map[string]any{"item": itemToResponse(item)})
}

// ReorderItems handles POST /items/reorder. The batch is applied atomically;
// one invalid entry leaves every item untouched.
func (h *Handler) ReorderItems(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.Items) == 0 {
		handler.WriteJSONError(w, http.StatusBadRequest, "items is required")
		return
	}

	if err := h.menus.ReorderItems(r.Context(), req.Items); err != nil {
		writeServiceError(w, err)
		return
	}
	handler.WriteJSONSuccess(w, map[string]any{"updated": len(req.Items)})
}
